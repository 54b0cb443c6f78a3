package wrap

import (
	"errors"
	"fmt"
)

// Sentinel errors for execution modifiers.
var (
	// ErrDeadlineExceeded is returned when a deadline-guarded call runs out
	// of budget before the work finishes.
	ErrDeadlineExceeded = errors.New("wrap: deadline exceeded")

	// ErrAlreadyExecuted is returned when a once-guarded unit is called
	// after its single permitted execution.
	ErrAlreadyExecuted = errors.New("wrap: already executed")

	// ErrCapacityFull is returned when a concurrency limit is at capacity.
	ErrCapacityFull = errors.New("wrap: concurrency limit at capacity")

	// ErrThrottled is returned when the rate limit denies an execution.
	ErrThrottled = errors.New("wrap: rate limit exceeded")

	// ErrBreakerOpen is returned when the circuit breaker is open.
	ErrBreakerOpen = errors.New("wrap: circuit breaker is open")

	// ErrUnsupportedOS is returned by the platform gate when the current
	// operating system is not permitted.
	ErrUnsupportedOS = errors.New("wrap: operating system not supported")

	// ErrInvalidConfig is returned (wrapped in a ConfigError) when a
	// wrap-time parameter is invalid.
	ErrInvalidConfig = errors.New("wrap: invalid configuration")
)

// ConfigError reports an invalid wrap-time parameter. Validation happens when
// the modifier is constructed, never when the wrapped unit is called.
type ConfigError struct {
	// Param is the offending configuration field.
	Param string

	// Value is the rejected value.
	Value any

	// Reason explains what a valid value looks like.
	Reason string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	return fmt.Sprintf("wrap: invalid %s (%v): %s", e.Param, e.Value, e.Reason)
}

// Unwrap returns ErrInvalidConfig so errors.Is matching works.
func (e *ConfigError) Unwrap() error {
	return ErrInvalidConfig
}

func configError(param string, value any, reason string) error {
	return &ConfigError{Param: param, Value: value, Reason: reason}
}
