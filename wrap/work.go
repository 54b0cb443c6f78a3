package wrap

import "context"

// Work is a unit of work: an opaque callable that produces a value or fails.
// Modifiers invoke it zero or more times and never inspect it beyond that.
type Work[T any] func(ctx context.Context) (T, error)

// Middleware transforms a unit of work into a wrapped unit with the same
// external shape but modified failure, timing, or resource behavior.
type Middleware[T any] func(Work[T]) Work[T]

// Compose combines middlewares into one. The first middleware is outermost:
// Compose(a, b)(work) behaves as a(b(work)).
func Compose[T any](mws ...Middleware[T]) Middleware[T] {
	return func(work Work[T]) Work[T] {
		for i := len(mws) - 1; i >= 0; i-- {
			work = mws[i](work)
		}
		return work
	}
}
