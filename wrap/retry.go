package wrap

import (
	"context"
	"time"
)

// RetryConfig configures the retry behavior.
type RetryConfig struct {
	// Runs is the total number of attempts, including the first.
	// Must be >= 1; there is no default. Immutable after wrap.
	Runs int

	// Delay is an optional fixed pause between attempts.
	// Default: 0 (retry immediately)
	Delay time.Duration

	// OnRetry is called before each re-attempt with the attempt number
	// that just failed and its error.
	OnRetry func(attempt int, err error)
}

// Retrier re-invokes failing work up to a fixed bound. Intermediate failures
// are suppressed; the final attempt's failure is returned to the caller
// unchanged. Every failure is retried identically: there is no backoff growth
// and no filtering by failure kind.
type Retrier[T any] struct {
	config RetryConfig
}

// NewRetrier creates a retrier. Runs < 1 is a configuration error.
func NewRetrier[T any](config RetryConfig) (*Retrier[T], error) {
	if config.Runs < 1 {
		return nil, configError("Runs", config.Runs, "must be at least 1")
	}
	if config.Delay < 0 {
		return nil, configError("Delay", config.Delay, "must not be negative")
	}

	return &Retrier[T]{config: config}, nil
}

// Execute runs the work, retrying on failure until an attempt succeeds or
// the attempt budget is exhausted.
func (r *Retrier[T]) Execute(ctx context.Context, work Work[T]) (T, error) {
	var (
		value   T
		lastErr error
	)

	for attempt := 1; attempt <= r.config.Runs; attempt++ {
		value, lastErr = work(ctx)

		if lastErr == nil {
			return value, nil
		}

		// Last attempt: report its failure as-is.
		if attempt >= r.config.Runs {
			break
		}

		if r.config.OnRetry != nil {
			r.config.OnRetry(attempt, lastErr)
		}

		if r.config.Delay > 0 {
			select {
			case <-ctx.Done():
				var zero T
				return zero, ctx.Err()
			case <-time.After(r.config.Delay):
			}
		} else {
			select {
			case <-ctx.Done():
				var zero T
				return zero, ctx.Err()
			default:
			}
		}
	}

	var zero T
	return zero, lastErr
}

// Wrap returns a unit of work with retry behavior applied.
func (r *Retrier[T]) Wrap(work Work[T]) Work[T] {
	return func(ctx context.Context) (T, error) {
		return r.Execute(ctx, work)
	}
}

// Config returns the retry configuration.
func (r *Retrier[T]) Config() RetryConfig {
	return r.config
}
