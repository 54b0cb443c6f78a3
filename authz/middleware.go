package authz

import (
	"context"
	"fmt"

	"github.com/jonwraymond/execwrap/wrap"
)

// Gate returns a middleware that only invokes the work when the caller's
// context carries a token that verifies and covers every required scope.
// The work runs with the verified grant attached to its context. All gate
// failures happen before the work is invoked.
func Gate[T any](v *Verifier, scopes ...string) wrap.Middleware[T] {
	return func(work wrap.Work[T]) wrap.Work[T] {
		return func(ctx context.Context) (T, error) {
			var zero T

			token := TokenFromContext(ctx)
			if token == "" {
				return zero, ErrMissingToken
			}

			grant, err := v.Verify(ctx, token)
			if err != nil {
				return zero, err
			}

			for _, scope := range scopes {
				if !grant.HasScope(scope) {
					return zero, fmt.Errorf("%w: %q", ErrScopeMissing, scope)
				}
			}

			return work(WithGrant(ctx, grant))
		}
	}
}
