package authz

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Config configures the token verifier.
type Config struct {
	// Issuer is the expected token issuer (iss claim). Empty skips the check.
	Issuer string

	// Audience is the expected token audience (aud claim). Empty skips the check.
	Audience string

	// ScopeClaim is the claim carrying space-delimited scopes.
	// Default: "scope"
	ScopeClaim string
}

// Grant is the verified outcome of a token: who may execute, with which
// scopes, for how long.
type Grant struct {
	// Subject is the token subject (sub claim).
	Subject string

	// Scopes are the granted scopes.
	Scopes []string

	// ExpiresAt is when the grant expires.
	ExpiresAt time.Time

	// IssuedAt is when the token was issued.
	IssuedAt time.Time

	// Claims holds all token claims.
	Claims map[string]any
}

// HasScope reports whether the grant carries the given scope.
func (g *Grant) HasScope(scope string) bool {
	for _, s := range g.Scopes {
		if s == scope {
			return true
		}
	}
	return false
}

// Verifier validates bearer tokens and produces grants.
type Verifier struct {
	config Config
	keys   KeyProvider
}

// NewVerifier creates a token verifier.
func NewVerifier(config Config, keys KeyProvider) *Verifier {
	// Apply defaults
	if config.ScopeClaim == "" {
		config.ScopeClaim = "scope"
	}

	return &Verifier{
		config: config,
		keys:   keys,
	}
}

// Config returns the verifier configuration.
func (v *Verifier) Config() Config {
	return v.config
}

// Verify validates the token and returns its grant. Signature, expiry,
// issuer, and audience are all checked before any scope is readable.
func (v *Verifier) Verify(ctx context.Context, tokenString string) (*Grant, error) {
	if strings.TrimSpace(tokenString) == "" {
		return nil, ErrMissingToken
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		// Get key ID from header
		kid := ""
		if kidVal, ok := token.Header["kid"].(string); ok {
			kid = kidVal
		}

		return v.keys.GetKey(ctx, kid)
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, fmt.Errorf("%w: %v", ErrTokenInvalid, err)
	}

	if !token.Valid {
		return nil, ErrTokenInvalid
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrTokenInvalid
	}

	// Validate issuer if configured
	if v.config.Issuer != "" {
		if iss, ok := claims["iss"].(string); !ok || iss != v.config.Issuer {
			return nil, fmt.Errorf("%w: issuer mismatch", ErrTokenInvalid)
		}
	}

	// Validate audience if configured
	if v.config.Audience != "" {
		if !containsAudience(audienceClaim(claims), v.config.Audience) {
			return nil, fmt.Errorf("%w: audience mismatch", ErrTokenInvalid)
		}
	}

	return v.buildGrant(claims), nil
}

func (v *Verifier) buildGrant(claims jwt.MapClaims) *Grant {
	grant := &Grant{
		Claims: make(map[string]any, len(claims)),
	}

	// Copy claims
	for k, val := range claims {
		grant.Claims[k] = val
	}

	// Extract subject
	if sub, ok := claims["sub"].(string); ok {
		grant.Subject = sub
	}

	grant.Scopes = scopesFromClaims(claims, v.config.ScopeClaim)

	// Extract expiration
	if exp, ok := claims["exp"].(float64); ok {
		grant.ExpiresAt = time.Unix(int64(exp), 0)
	}

	// Extract issued at
	if iat, ok := claims["iat"].(float64); ok {
		grant.IssuedAt = time.Unix(int64(iat), 0)
	}

	return grant
}

// scopesFromClaims reads the configured space-delimited claim, falling back
// to the "scp" string-array form some issuers emit.
func scopesFromClaims(claims jwt.MapClaims, scopeClaim string) []string {
	if raw, ok := claims[scopeClaim].(string); ok && raw != "" {
		return strings.Fields(raw)
	}

	if list, ok := claims["scp"].([]any); ok {
		scopes := make([]string, 0, len(list))
		for _, s := range list {
			if str, ok := s.(string); ok {
				scopes = append(scopes, str)
			}
		}
		return scopes
	}

	return nil
}

func audienceClaim(claims jwt.MapClaims) []string {
	switch v := claims["aud"].(type) {
	case string:
		return []string{v}
	case []any:
		result := make([]string, 0, len(v))
		for _, a := range v {
			if s, ok := a.(string); ok {
				result = append(result, s)
			}
		}
		return result
	default:
		return nil
	}
}

func containsAudience(audiences []string, target string) bool {
	for _, aud := range audiences {
		if aud == target {
			return true
		}
	}
	return false
}
