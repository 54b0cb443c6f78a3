package authz

import "context"

// KeyProvider resolves the verification key for a token's key ID. Rotating
// deployments implement this against their key store; tests and single-key
// setups use StaticKeyProvider.
type KeyProvider interface {
	GetKey(ctx context.Context, keyID string) (any, error)
}

// StaticKeyProvider serves one fixed HMAC secret for every key ID.
type StaticKeyProvider struct {
	key []byte
}

// NewStaticKeyProvider creates a static key provider.
func NewStaticKeyProvider(key []byte) *StaticKeyProvider {
	return &StaticKeyProvider{key: key}
}

// GetKey returns the static key, whatever the key ID.
func (p *StaticKeyProvider) GetKey(_ context.Context, _ string) (any, error) {
	return p.key, nil
}

var _ KeyProvider = (*StaticKeyProvider)(nil)
