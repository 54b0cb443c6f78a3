package wrap

import (
	"context"
	"time"

	"golang.org/x/time/rate"
)

// ThrottleConfig configures the rate gate.
type ThrottleConfig struct {
	// Rate is the number of executions allowed per second.
	// Default: 100
	Rate float64

	// Burst is the maximum burst size.
	// Default: 10
	Burst int

	// WaitOnLimit waits for a token instead of failing immediately.
	// Default: false
	WaitOnLimit bool

	// MaxWait is the maximum time to wait for a token.
	// Default: 1 second
	MaxWait time.Duration
}

// Throttle gates executions through a token bucket.
type Throttle[T any] struct {
	config  ThrottleConfig
	limiter *rate.Limiter
}

// NewThrottle creates a rate gate.
func NewThrottle[T any](config ThrottleConfig) *Throttle[T] {
	// Apply defaults
	if config.Rate <= 0 {
		config.Rate = 100
	}
	if config.Burst <= 0 {
		config.Burst = 10
	}
	if config.MaxWait <= 0 {
		config.MaxWait = time.Second
	}

	return &Throttle[T]{
		config:  config,
		limiter: rate.NewLimiter(rate.Limit(config.Rate), config.Burst),
	}
}

// Allow reports whether an execution is allowed right now, consuming a token
// if so.
func (t *Throttle[T]) Allow() bool {
	return t.limiter.Allow()
}

// Execute runs the work if the rate limit permits it. With WaitOnLimit set it
// waits up to MaxWait for a token first.
func (t *Throttle[T]) Execute(ctx context.Context, work Work[T]) (T, error) {
	if t.config.WaitOnLimit {
		waitCtx, cancel := context.WithTimeout(ctx, t.config.MaxWait)
		err := t.limiter.Wait(waitCtx)
		cancel()
		if err != nil {
			var zero T
			if ctx.Err() != nil {
				return zero, ctx.Err()
			}
			return zero, ErrThrottled
		}
	} else if !t.limiter.Allow() {
		var zero T
		return zero, ErrThrottled
	}

	return work(ctx)
}

// Wrap returns a unit of work gated by this throttle.
func (t *Throttle[T]) Wrap(work Work[T]) Work[T] {
	return func(ctx context.Context) (T, error) {
		return t.Execute(ctx, work)
	}
}

// Tokens returns the number of tokens currently available.
func (t *Throttle[T]) Tokens() float64 {
	return t.limiter.Tokens()
}

// Config returns the throttle configuration.
func (t *Throttle[T]) Config() ThrottleConfig {
	return t.config
}
