package memo

import (
	"context"
	"fmt"
	"testing"
)

// BenchmarkMemoizer_Do_Hit measures the fast path for a cached key.
func BenchmarkMemoizer_Do_Hit(b *testing.B) {
	m := New[int]()
	ctx := context.Background()
	work := func(ctx context.Context) (int, error) { return 1, nil }

	if _, err := m.Do(ctx, "hot", work); err != nil {
		b.Fatalf("prime: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = m.Do(ctx, "hot", work)
	}
}

// BenchmarkMemoizer_Do_Miss measures the cost of populating distinct keys.
func BenchmarkMemoizer_Do_Miss(b *testing.B) {
	m := New[int]()
	ctx := context.Background()
	work := func(ctx context.Context) (int, error) { return 1, nil }

	keys := make([]string, b.N)
	for i := range keys {
		keys[i] = fmt.Sprintf("key-%d", i)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = m.Do(ctx, keys[i], work)
	}
}

// BenchmarkDefaultKeyer_Key measures canonical key derivation.
func BenchmarkDefaultKeyer_Key(b *testing.B) {
	keyer := NewDefaultKeyer()
	args := map[string]any{"query": "status", "limit": 25, "verbose": true}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = keyer.Key("lookup", args)
	}
}
