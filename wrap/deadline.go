package wrap

import (
	"context"
	"errors"
	"time"
)

// DeadlineConfig configures the deadline guard.
type DeadlineConfig struct {
	// Budget is the wall-clock time the work may take.
	// Must be positive; there is no default. Immutable after wrap.
	Budget time.Duration
}

// Deadline bounds the wall-clock time of a unit of work. The work runs on its
// own goroutine and races a timer; if the timer wins, the caller receives
// ErrDeadlineExceeded while the work's context is cancelled. Cancellation is
// cooperative: work that ignores its context keeps running, but its eventual
// result is discarded and the caller never waits for it.
type Deadline[T any] struct {
	config DeadlineConfig
}

// NewDeadline creates a deadline guard. A non-positive budget is a
// configuration error.
func NewDeadline[T any](config DeadlineConfig) (*Deadline[T], error) {
	if config.Budget <= 0 {
		return nil, configError("Budget", config.Budget, "must be positive")
	}

	return &Deadline[T]{config: config}, nil
}

type outcome[T any] struct {
	value T
	err   error
}

// Execute runs the work against the budget.
func (d *Deadline[T]) Execute(ctx context.Context, work Work[T]) (T, error) {
	ctx, cancel := context.WithTimeout(ctx, d.config.Budget)
	defer cancel()

	// Buffered so a late finisher can deposit its outcome without blocking
	// and exit; the outcome is then unreachable and collected.
	done := make(chan outcome[T], 1)

	go func() {
		value, err := work(ctx)
		done <- outcome[T]{value: value, err: err}
	}()

	select {
	case out := <-done:
		return out.value, out.err
	case <-ctx.Done():
		var zero T
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return zero, ErrDeadlineExceeded
		}
		return zero, ctx.Err()
	}
}

// Wrap returns a unit of work with the deadline applied.
func (d *Deadline[T]) Wrap(work Work[T]) Work[T] {
	return func(ctx context.Context) (T, error) {
		return d.Execute(ctx, work)
	}
}

// Config returns the deadline configuration.
func (d *Deadline[T]) Config() DeadlineConfig {
	return d.config
}

// ExecuteWithDeadline is a convenience function to run work under a budget.
func ExecuteWithDeadline[T any](ctx context.Context, budget time.Duration, work Work[T]) (T, error) {
	d, err := NewDeadline[T](DeadlineConfig{Budget: budget})
	if err != nil {
		var zero T
		return zero, err
	}
	return d.Execute(ctx, work)
}
