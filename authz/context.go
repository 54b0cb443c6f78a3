package authz

import (
	"context"
)

// Context keys for authz-related values.
type contextKey int

const (
	tokenKey contextKey = iota
	grantKey
)

// WithToken returns a new context carrying a bearer token for gated execution.
func WithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenKey, token)
}

// TokenFromContext retrieves the bearer token from the context.
// Returns empty string if no token is present.
func TokenFromContext(ctx context.Context) string {
	token, _ := ctx.Value(tokenKey).(string)
	return token
}

// WithGrant returns a new context with the given verified grant attached.
func WithGrant(ctx context.Context, g *Grant) context.Context {
	return context.WithValue(ctx, grantKey, g)
}

// GrantFromContext retrieves the verified grant from the context.
// Returns nil if no grant is present.
func GrantFromContext(ctx context.Context) *Grant {
	g, _ := ctx.Value(grantKey).(*Grant)
	return g
}

// SubjectFromContext retrieves the grant subject from the context.
// Returns empty string if no grant is present.
func SubjectFromContext(ctx context.Context) string {
	g := GrantFromContext(ctx)
	if g == nil {
		return ""
	}
	return g.Subject
}
