package memo

import (
	"context"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/jonwraymond/execwrap/wrap"
)

// Memoizer caches the results of units of work by call key. A hit returns the
// stored value without invoking the work; a miss invokes it and stores the
// result. Failures are never cached: the key stays absent and the next call
// with the same key retries the underlying work.
//
// The cache grows monotonically for the lifetime of the memoizer. There is no
// eviction; callers needing bounded memory must bound their distinct key
// volume or use Forget explicitly.
type Memoizer[V any] struct {
	mu     sync.RWMutex
	values map[string]V
	group  singleflight.Group
}

// New creates an empty memoizer.
func New[V any]() *Memoizer[V] {
	return &Memoizer[V]{
		values: make(map[string]V),
	}
}

// Do returns the cached value for key, invoking work to produce it on a miss.
// Concurrent misses for the same key are coalesced into a single invocation;
// every waiter receives that invocation's outcome.
func (m *Memoizer[V]) Do(ctx context.Context, key string, work wrap.Work[V]) (V, error) {
	var zero V

	if err := ValidateKey(key); err != nil {
		return zero, err
	}

	// Fast path
	m.mu.RLock()
	value, ok := m.values[key]
	m.mu.RUnlock()
	if ok {
		return value, nil
	}

	result, err, _ := m.group.Do(key, func() (any, error) {
		// A coalesced caller may have stored the value already.
		m.mu.RLock()
		value, ok := m.values[key]
		m.mu.RUnlock()
		if ok {
			return value, nil
		}

		value, err := work(ctx)
		if err != nil {
			// Failures are not cached; the key remains absent.
			return zero, err
		}

		m.mu.Lock()
		m.values[key] = value
		m.mu.Unlock()

		return value, nil
	})
	if err != nil {
		return zero, err
	}

	return result.(V), nil
}

// Get returns the cached value for key, if present.
func (m *Memoizer[V]) Get(key string) (V, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	value, ok := m.values[key]
	return value, ok
}

// Len returns the number of cached keys.
func (m *Memoizer[V]) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return len(m.values)
}

// Forget removes a key so the next Do invokes the work again.
// Idempotent - removing an absent key is a no-op.
func (m *Memoizer[V]) Forget(key string) {
	m.mu.Lock()
	delete(m.values, key)
	m.mu.Unlock()

	m.group.Forget(key)
}
