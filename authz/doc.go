// Package authz gates execution of a unit of work on a verified bearer
// token. A Verifier turns a JWT into a Grant (subject, scopes, validity
// window); Gate wraps a unit of work so it only runs when the caller's
// context carries a token that verifies and covers the required scopes.
//
// Usage:
//
//	verifier := authz.NewVerifier(authz.Config{
//		Issuer:   "https://issuer.example.com",
//		Audience: "reports",
//	}, authz.NewStaticKeyProvider(secret))
//
//	gated := authz.Gate[Report](verifier, "reports:run")(buildReport)
//
//	ctx := authz.WithToken(context.Background(), token)
//	report, err := gated(ctx)
//
// All gate failures (missing token, failed verification, missing scope)
// happen before the work is invoked. The work itself observes the verified
// grant through GrantFromContext.
package authz
