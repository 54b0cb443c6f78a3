package authz

import "errors"

// Sentinel errors for token-gated execution.
var (
	// ErrMissingToken indicates the context carries no bearer token.
	ErrMissingToken = errors.New("authz: missing token")

	// ErrTokenInvalid indicates the token failed signature or claim checks.
	ErrTokenInvalid = errors.New("authz: token invalid")

	// ErrTokenExpired indicates the token is past its expiry.
	ErrTokenExpired = errors.New("authz: token expired")

	// ErrScopeMissing indicates the grant lacks a required scope.
	ErrScopeMissing = errors.New("authz: required scope missing")
)
