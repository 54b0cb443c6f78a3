package memo

import (
	"errors"
	"strings"
)

// MaxKeyLength bounds call keys. Derived keys are short hashes; a key this
// long is a caller bug, not a real argument tuple.
const MaxKeyLength = 512

// Sentinel errors for memoization.
var (
	ErrInvalidKey      = errors.New("memo: key is invalid")
	ErrKeyTooLong      = errors.New("memo: key exceeds max length")
	ErrNotSerializable = errors.New("memo: arguments are not serializable")
)

// ValidateKey rejects keys that cannot index the cache: empty or blank
// strings, keys over MaxKeyLength, and keys containing line breaks.
func ValidateKey(key string) error {
	switch {
	case strings.TrimSpace(key) == "":
		return ErrInvalidKey
	case len(key) > MaxKeyLength:
		return ErrKeyTooLong
	case strings.ContainsAny(key, "\n\r"):
		return ErrInvalidKey
	}
	return nil
}
