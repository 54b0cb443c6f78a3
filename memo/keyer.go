package memo

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"sort"
)

// Keyer derives call keys from invocation arguments.
//
// Contract:
// - Determinism: equal arguments produce equal keys, whatever the map iteration order.
// - Concurrency: safe for concurrent use.
type Keyer interface {
	// Key derives a call key from a unit name and its arguments.
	Key(name string, args any) (string, error)
}

// DefaultKeyer hashes a canonical JSON rendering of the arguments, so two
// calls with equal arguments share a key even when the arguments are maps
// whose iteration order differs.
type DefaultKeyer struct{}

// NewDefaultKeyer creates a new default keyer.
func NewDefaultKeyer() *DefaultKeyer {
	return &DefaultKeyer{}
}

// Key derives the call key memo:<name>:<hash>, where hash is the first
// 8 bytes of SHA-256 over the canonical argument JSON, hex encoded.
// Arguments that cannot be rendered to JSON yield ErrNotSerializable.
func (k *DefaultKeyer) Key(name string, args any) (string, error) {
	var buf bytes.Buffer
	if err := writeCanonical(&buf, args); err != nil {
		return "", fmt.Errorf("%w: %v", ErrNotSerializable, err)
	}

	sum := sha256.Sum256(buf.Bytes())
	return fmt.Sprintf("memo:%s:%s", name, hex.EncodeToString(sum[:8])), nil
}

// writeCanonical renders v as JSON with map keys in sorted order. Only the
// shapes json.Unmarshal produces (map[string]any, []any) need explicit
// handling; everything else already marshals deterministically.
func writeCanonical(buf *bytes.Buffer, v any) error {
	switch val := v.(type) {
	case nil:
		buf.WriteString("null")
		return nil

	case map[string]any:
		keys := make([]string, 0, len(val))
		for k := range val {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		buf.WriteByte('{')
		for i, k := range keys {
			if i > 0 {
				buf.WriteByte(',')
			}
			name, err := json.Marshal(k)
			if err != nil {
				return err
			}
			buf.Write(name)
			buf.WriteByte(':')
			if err := writeCanonical(buf, val[k]); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
		return nil

	case []any:
		buf.WriteByte('[')
		for i, elem := range val {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeCanonical(buf, elem); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
		return nil

	default:
		data, err := json.Marshal(v)
		if err != nil {
			return err
		}
		buf.Write(data)
		return nil
	}
}

var _ Keyer = (*DefaultKeyer)(nil)
