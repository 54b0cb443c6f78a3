package memo

import (
	"context"

	"github.com/jonwraymond/execwrap/wrap"
)

// Wrap memoizes a unit of work under a fixed key. The first successful
// invocation populates the cache; subsequent calls return the stored value
// without invoking the work again.
func Wrap[V any](m *Memoizer[V], key string, work wrap.Work[V]) wrap.Work[V] {
	return func(ctx context.Context) (V, error) {
		return m.Do(ctx, key, work)
	}
}

// Func memoizes a single-argument function, deriving the call key from the
// function name and the argument via the keyer. A nil keyer falls back to the
// default canonical-JSON keyer.
//
// If key derivation fails the call is executed without caching rather than
// failing; keying problems degrade to a cache miss, never to an error.
func Func[A, V any](m *Memoizer[V], keyer Keyer, name string, fn func(ctx context.Context, arg A) (V, error)) func(ctx context.Context, arg A) (V, error) {
	if keyer == nil {
		keyer = NewDefaultKeyer()
	}

	return func(ctx context.Context, arg A) (V, error) {
		key, err := keyer.Key(name, arg)
		if err != nil {
			// Key derivation failed - execute without caching.
			return fn(ctx, arg)
		}

		return m.Do(ctx, key, func(ctx context.Context) (V, error) {
			return fn(ctx, arg)
		})
	}
}
