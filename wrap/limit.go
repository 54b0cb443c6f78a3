package wrap

import (
	"context"
	"sync"
	"time"
)

// LimitConfig configures the concurrency limit.
type LimitConfig struct {
	// MaxConcurrent is the maximum number of concurrent executions.
	// Default: 10
	MaxConcurrent int

	// MaxWait is the maximum time to wait for a slot.
	// Default: 0 (no waiting, fail immediately)
	MaxWait time.Duration
}

// Limit bounds how many executions of the wrapped work may run at once.
type Limit[T any] struct {
	config LimitConfig
	sem    chan struct{}

	mu        sync.Mutex
	active    int
	maxActive int
	rejected  int64
}

// NewLimit creates a concurrency limit.
func NewLimit[T any](config LimitConfig) *Limit[T] {
	// Apply defaults
	if config.MaxConcurrent <= 0 {
		config.MaxConcurrent = 10
	}

	return &Limit[T]{
		config: config,
		sem:    make(chan struct{}, config.MaxConcurrent),
	}
}

// Acquire claims a slot. Returns ErrCapacityFull if no slot becomes
// available within MaxWait.
func (l *Limit[T]) Acquire(ctx context.Context) error {
	// Fast path: try non-blocking acquire
	select {
	case l.sem <- struct{}{}:
		l.mu.Lock()
		l.active++
		if l.active > l.maxActive {
			l.maxActive = l.active
		}
		l.mu.Unlock()
		return nil
	default:
	}

	if l.config.MaxWait <= 0 {
		l.mu.Lock()
		l.rejected++
		l.mu.Unlock()
		return ErrCapacityFull
	}

	timer := time.NewTimer(l.config.MaxWait)
	defer timer.Stop()

	select {
	case l.sem <- struct{}{}:
		l.mu.Lock()
		l.active++
		if l.active > l.maxActive {
			l.maxActive = l.active
		}
		l.mu.Unlock()
		return nil
	case <-timer.C:
		l.mu.Lock()
		l.rejected++
		l.mu.Unlock()
		return ErrCapacityFull
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Release returns a slot.
func (l *Limit[T]) Release() {
	select {
	case <-l.sem:
		l.mu.Lock()
		l.active--
		l.mu.Unlock()
	default:
		// Release without a matching Acquire; nothing to return.
	}
}

// Execute runs the work within the limit.
func (l *Limit[T]) Execute(ctx context.Context, work Work[T]) (T, error) {
	if err := l.Acquire(ctx); err != nil {
		var zero T
		return zero, err
	}
	defer l.Release()

	return work(ctx)
}

// Wrap returns a unit of work bounded by this limit.
func (l *Limit[T]) Wrap(work Work[T]) Work[T] {
	return func(ctx context.Context) (T, error) {
		return l.Execute(ctx, work)
	}
}

// Metrics returns current limit metrics.
func (l *Limit[T]) Metrics() LimitMetrics {
	l.mu.Lock()
	defer l.mu.Unlock()

	return LimitMetrics{
		Active:        l.active,
		MaxActive:     l.maxActive,
		Available:     l.config.MaxConcurrent - l.active,
		MaxConcurrent: l.config.MaxConcurrent,
		Rejected:      l.rejected,
	}
}

// LimitMetrics contains concurrency limit statistics.
type LimitMetrics struct {
	Active        int
	MaxActive     int
	Available     int
	MaxConcurrent int
	Rejected      int64
}
