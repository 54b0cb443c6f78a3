// Package wrap provides execution-control modifiers for units of work.
//
// A unit of work is a function of the shape
//
//	func(ctx context.Context) (T, error)
//
// and every modifier turns one unit into another with the same shape but
// changed failure, timing, or resource behavior. The work itself is opaque:
// modifiers invoke it zero or more times and never inspect or mutate it.
//
// # Modifiers
//
//   - Retrier: re-invokes failing work up to a fixed attempt bound,
//     suppressing intermediate failures and reporting the last one unchanged.
//
//   - Deadline: races the work against a wall-clock budget; the loser's
//     outcome is discarded and the work's context is cancelled.
//
//   - FanOut: launches N concurrent invocations and joins all of them
//     before returning.
//
//   - Once: permits at most one invocation ever, rejecting the rest with
//     ErrAlreadyExecuted.
//
//   - Limit: bounds how many invocations run concurrently.
//
//   - Throttle: gates invocations through a token bucket.
//
//   - Breaker: stops invoking persistently failing work until it recovers.
//
//   - PlatformGate: rejects execution on disallowed operating systems.
//
// # Usage
//
// Modifiers can be used directly or composed:
//
//	retrier, err := wrap.NewRetrier[string](wrap.RetryConfig{Runs: 3})
//	if err != nil {
//	    return err
//	}
//
//	value, err := retrier.Execute(ctx, func(ctx context.Context) (string, error) {
//	    return fetchRecord(ctx, id)
//	})
//
// A Runner composes several modifiers in a fixed order:
//
//	runner, err := wrap.NewRunner[string](
//	    wrap.WithThrottle(wrap.ThrottleConfig{Rate: 50, Burst: 5}),
//	    wrap.WithRetry(wrap.RetryConfig{Runs: 3}),
//	    wrap.WithDeadline(2*time.Second),
//	)
//
//	value, err := runner.Execute(ctx, fetch)
//
// Arbitrary chains build with Compose, where the first middleware is
// outermost:
//
//	guarded := wrap.Compose(retrier.Wrap, deadline.Wrap)(fetch)
//
// Wrap-time parameters are validated when a modifier is constructed; invalid
// values produce a ConfigError and the work is never invoked.
package wrap
