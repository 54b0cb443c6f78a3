package wrap

import (
	"context"
	"time"
)

type runnerSettings struct {
	throttle *ThrottleConfig
	limit    *LimitConfig
	breaker  *BreakerConfig
	retry    *RetryConfig
	deadline *DeadlineConfig
}

// Option configures a Runner.
type Option func(*runnerSettings)

// WithThrottle adds a rate gate to the runner.
func WithThrottle(config ThrottleConfig) Option {
	return func(s *runnerSettings) {
		s.throttle = &config
	}
}

// WithLimit adds a concurrency limit to the runner.
func WithLimit(config LimitConfig) Option {
	return func(s *runnerSettings) {
		s.limit = &config
	}
}

// WithBreaker adds a circuit breaker to the runner.
func WithBreaker(config BreakerConfig) Option {
	return func(s *runnerSettings) {
		s.breaker = &config
	}
}

// WithRetry adds retry behavior to the runner.
func WithRetry(config RetryConfig) Option {
	return func(s *runnerSettings) {
		s.retry = &config
	}
}

// WithDeadline adds a wall-clock budget to the runner.
func WithDeadline(budget time.Duration) Option {
	return func(s *runnerSettings) {
		s.deadline = &DeadlineConfig{Budget: budget}
	}
}

// Runner composes multiple execution modifiers around one unit of work.
type Runner[T any] struct {
	throttle *Throttle[T]
	limit    *Limit[T]
	breaker  *Breaker[T]
	retrier  *Retrier[T]
	deadline *Deadline[T]
}

// NewRunner creates a runner from the given options. Configuration errors
// from any modifier are reported here, at wrap time.
func NewRunner[T any](opts ...Option) (*Runner[T], error) {
	var s runnerSettings
	for _, opt := range opts {
		opt(&s)
	}

	r := &Runner[T]{}

	if s.throttle != nil {
		r.throttle = NewThrottle[T](*s.throttle)
	}
	if s.limit != nil {
		r.limit = NewLimit[T](*s.limit)
	}
	if s.breaker != nil {
		r.breaker = NewBreaker[T](*s.breaker)
	}
	if s.retry != nil {
		retrier, err := NewRetrier[T](*s.retry)
		if err != nil {
			return nil, err
		}
		r.retrier = retrier
	}
	if s.deadline != nil {
		deadline, err := NewDeadline[T](*s.deadline)
		if err != nil {
			return nil, err
		}
		r.deadline = deadline
	}

	return r, nil
}

// Execute runs the work through all configured modifiers.
//
// The execution order is:
//  1. Throttle (if configured) - limits execution rate
//  2. Limit (if configured) - limits concurrency
//  3. Breaker (if configured) - stops calls to persistently failing work
//  4. Retry (if configured) - retries on failure
//  5. Deadline (if configured) - bounds execution time
func (r *Runner[T]) Execute(ctx context.Context, work Work[T]) (T, error) {
	// Build the execution chain from inside out
	execute := work

	if r.deadline != nil {
		execute = r.deadline.Wrap(execute)
	}
	if r.retrier != nil {
		execute = r.retrier.Wrap(execute)
	}
	if r.breaker != nil {
		execute = r.breaker.Wrap(execute)
	}
	if r.limit != nil {
		execute = r.limit.Wrap(execute)
	}
	if r.throttle != nil {
		execute = r.throttle.Wrap(execute)
	}

	return execute(ctx)
}

// Wrap returns a unit of work with all configured modifiers applied.
func (r *Runner[T]) Wrap(work Work[T]) Work[T] {
	return func(ctx context.Context) (T, error) {
		return r.Execute(ctx, work)
	}
}
