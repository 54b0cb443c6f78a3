package memlimit

import (
	"context"
	"testing"
)

// BenchmarkGuard_Execute measures the per-call overhead of the ceiling
// save/install/restore cycle around trivial work.
func BenchmarkGuard_Execute(b *testing.B) {
	guard, err := NewGuard[int](Config{Bytes: 4 << 30})
	if err != nil {
		b.Fatalf("NewGuard() error = %v", err)
	}
	ctx := context.Background()
	work := func(ctx context.Context) (int, error) { return 1, nil }

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = guard.Execute(ctx, work)
	}
}

// BenchmarkRuntimeUsage measures the cost of one usage sample.
func BenchmarkRuntimeUsage(b *testing.B) {
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = RuntimeUsage()
	}
}
