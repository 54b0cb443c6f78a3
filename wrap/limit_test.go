package wrap

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestNewLimit(t *testing.T) {
	l := NewLimit[int](LimitConfig{})

	if l.config.MaxConcurrent != 10 {
		t.Errorf("MaxConcurrent = %d, want 10", l.config.MaxConcurrent)
	}
}

func TestLimit_AcquireRelease(t *testing.T) {
	l := NewLimit[int](LimitConfig{
		MaxConcurrent: 2,
	})

	// Acquire 2 slots
	if err := l.Acquire(context.Background()); err != nil {
		t.Errorf("First Acquire() error = %v", err)
	}
	if err := l.Acquire(context.Background()); err != nil {
		t.Errorf("Second Acquire() error = %v", err)
	}

	// Third should fail
	if err := l.Acquire(context.Background()); err != ErrCapacityFull {
		t.Errorf("Third Acquire() error = %v, want ErrCapacityFull", err)
	}

	// Release one
	l.Release()

	// Should be able to acquire again
	if err := l.Acquire(context.Background()); err != nil {
		t.Errorf("Acquire after release error = %v", err)
	}
}

func TestLimit_AcquireWithWait(t *testing.T) {
	l := NewLimit[int](LimitConfig{
		MaxConcurrent: 1,
		MaxWait:       100 * time.Millisecond,
	})

	if err := l.Acquire(context.Background()); err != nil {
		t.Fatalf("First Acquire() error = %v", err)
	}

	go func() {
		time.Sleep(20 * time.Millisecond)
		l.Release()
	}()

	// Should wait and succeed
	if err := l.Acquire(context.Background()); err != nil {
		t.Errorf("Second Acquire() error = %v", err)
	}
}

func TestLimit_AcquireTimeout(t *testing.T) {
	l := NewLimit[int](LimitConfig{
		MaxConcurrent: 1,
		MaxWait:       10 * time.Millisecond,
	})

	if err := l.Acquire(context.Background()); err != nil {
		t.Fatalf("First Acquire() error = %v", err)
	}

	if err := l.Acquire(context.Background()); err != ErrCapacityFull {
		t.Errorf("Second Acquire() error = %v, want ErrCapacityFull", err)
	}
}

func TestLimit_ContextCancellation(t *testing.T) {
	l := NewLimit[int](LimitConfig{
		MaxConcurrent: 1,
		MaxWait:       time.Second,
	})

	if err := l.Acquire(context.Background()); err != nil {
		t.Fatalf("First Acquire() error = %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()

	if err := l.Acquire(ctx); err != context.Canceled {
		t.Errorf("Acquire() error = %v, want context.Canceled", err)
	}
}

func TestLimit_Execute(t *testing.T) {
	l := NewLimit[string](LimitConfig{
		MaxConcurrent: 1,
	})

	value, err := l.Execute(context.Background(), func(ctx context.Context) (string, error) {
		return "ran", nil
	})

	if err != nil {
		t.Errorf("Execute() error = %v", err)
	}
	if value != "ran" {
		t.Errorf("Execute() = %q, want \"ran\"", value)
	}
}

func TestLimit_ExecuteFull(t *testing.T) {
	l := NewLimit[int](LimitConfig{
		MaxConcurrent: 1,
	})

	blocker := make(chan struct{})
	var started sync.WaitGroup
	started.Add(1)

	go func() {
		_, _ = l.Execute(context.Background(), func(ctx context.Context) (int, error) {
			started.Done()
			<-blocker
			return 0, nil
		})
	}()

	started.Wait()

	_, err := l.Execute(context.Background(), func(ctx context.Context) (int, error) {
		return 0, nil
	})
	if err != ErrCapacityFull {
		t.Errorf("Execute() error = %v, want ErrCapacityFull", err)
	}

	close(blocker)
}

func TestLimit_ConcurrencyBound(t *testing.T) {
	const limit = 3
	l := NewLimit[int](LimitConfig{
		MaxConcurrent: limit,
		MaxWait:       time.Second,
	})

	var (
		active    int64
		maxActive int64
	)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = l.Execute(context.Background(), func(ctx context.Context) (int, error) {
				n := atomic.AddInt64(&active, 1)
				for {
					max := atomic.LoadInt64(&maxActive)
					if n <= max || atomic.CompareAndSwapInt64(&maxActive, max, n) {
						break
					}
				}
				time.Sleep(5 * time.Millisecond)
				atomic.AddInt64(&active, -1)
				return 0, nil
			})
		}()
	}
	wg.Wait()

	if got := atomic.LoadInt64(&maxActive); got > limit {
		t.Errorf("max concurrent executions = %d, want <= %d", got, limit)
	}
}

func TestLimit_Metrics(t *testing.T) {
	l := NewLimit[int](LimitConfig{
		MaxConcurrent: 2,
	})

	_ = l.Acquire(context.Background())
	_ = l.Acquire(context.Background())
	_ = l.Acquire(context.Background()) // rejected

	m := l.Metrics()
	if m.Active != 2 {
		t.Errorf("Metrics().Active = %d, want 2", m.Active)
	}
	if m.MaxActive != 2 {
		t.Errorf("Metrics().MaxActive = %d, want 2", m.MaxActive)
	}
	if m.Available != 0 {
		t.Errorf("Metrics().Available = %d, want 0", m.Available)
	}
	if m.Rejected != 1 {
		t.Errorf("Metrics().Rejected = %d, want 1", m.Rejected)
	}

	l.Release()
	m = l.Metrics()
	if m.Active != 1 {
		t.Errorf("Metrics().Active after release = %d, want 1", m.Active)
	}
}
