package wrap

import (
	"context"
	"sync/atomic"
)

// Once permits at most one invocation of the work for the lifetime of the
// guard. The "has run" flag is claimed atomically before the work is invoked
// and never resets: a failed first invocation still consumes the single
// permit, and every later call fails with ErrAlreadyExecuted without the
// work being invoked.
type Once[T any] struct {
	ran atomic.Bool
}

// NewOnce creates a singleton guard.
func NewOnce[T any]() *Once[T] {
	return &Once[T]{}
}

// Execute invokes the work if and only if this guard has never run before.
// Two simultaneous callers cannot both win the flag.
func (o *Once[T]) Execute(ctx context.Context, work Work[T]) (T, error) {
	if !o.ran.CompareAndSwap(false, true) {
		var zero T
		return zero, ErrAlreadyExecuted
	}

	return work(ctx)
}

// Wrap returns a unit of work guarded by this Once.
func (o *Once[T]) Wrap(work Work[T]) Work[T] {
	return func(ctx context.Context) (T, error) {
		return o.Execute(ctx, work)
	}
}

// Ran reports whether the single execution has been claimed.
func (o *Once[T]) Ran() bool {
	return o.ran.Load()
}
