package wrap

import (
	"context"
	"sync"
	"time"
)

// State represents the circuit breaker state.
type State int

const (
	// StateClosed means executions flow normally.
	StateClosed State = iota
	// StateOpen means all executions are rejected.
	StateOpen
	// StateHalfOpen means a limited number of probe executions are allowed.
	StateHalfOpen
)

// String returns the string representation of the state.
func (s State) String() string {
	switch s {
	case StateClosed:
		return "closed"
	case StateOpen:
		return "open"
	case StateHalfOpen:
		return "half-open"
	default:
		return "unknown"
	}
}

// BreakerConfig configures the circuit breaker.
type BreakerConfig struct {
	// MaxFailures is the number of failures before opening the circuit.
	// Default: 5
	MaxFailures int

	// ResetTimeout is how long to wait before attempting recovery.
	// Default: 30 seconds
	ResetTimeout time.Duration

	// HalfOpenMaxRequests is the max probes allowed in half-open state.
	// Default: 1
	HalfOpenMaxRequests int

	// OnStateChange is called when the circuit state changes.
	OnStateChange func(from, to State)

	// IsFailure determines if an error should count as a failure.
	// Default: all non-nil errors are failures.
	IsFailure func(err error) bool
}

// Breaker stops invoking failing work once a failure threshold is reached,
// rejecting calls with ErrBreakerOpen until a reset timeout elapses and a
// probe succeeds.
type Breaker[T any] struct {
	config BreakerConfig

	mu            sync.Mutex
	state         State
	failures      int
	successes     int
	lastFailure   time.Time
	halfOpenCount int
}

// NewBreaker creates a circuit breaker.
func NewBreaker[T any](config BreakerConfig) *Breaker[T] {
	// Apply defaults
	if config.MaxFailures <= 0 {
		config.MaxFailures = 5
	}
	if config.ResetTimeout <= 0 {
		config.ResetTimeout = 30 * time.Second
	}
	if config.HalfOpenMaxRequests <= 0 {
		config.HalfOpenMaxRequests = 1
	}
	if config.IsFailure == nil {
		config.IsFailure = func(err error) bool { return err != nil }
	}

	return &Breaker[T]{
		config: config,
		state:  StateClosed,
	}
}

// Execute runs the work through the circuit breaker.
func (b *Breaker[T]) Execute(ctx context.Context, work Work[T]) (T, error) {
	if err := b.beforeRequest(); err != nil {
		var zero T
		return zero, err
	}

	value, err := work(ctx)
	b.afterRequest(err)
	return value, err
}

// Wrap returns a unit of work guarded by this breaker.
func (b *Breaker[T]) Wrap(work Work[T]) Work[T] {
	return func(ctx context.Context) (T, error) {
		return b.Execute(ctx, work)
	}
}

// State returns the current circuit state.
func (b *Breaker[T]) State() State {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.currentStateLocked()
}

// Reset resets the circuit breaker to closed state.
func (b *Breaker[T]) Reset() {
	b.mu.Lock()
	defer b.mu.Unlock()

	oldState := b.state
	b.state = StateClosed
	b.failures = 0
	b.successes = 0
	b.halfOpenCount = 0

	if oldState != StateClosed && b.config.OnStateChange != nil {
		b.config.OnStateChange(oldState, StateClosed)
	}
}

func (b *Breaker[T]) beforeRequest() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	state := b.currentStateLocked()

	switch state {
	case StateOpen:
		return ErrBreakerOpen
	case StateHalfOpen:
		if b.halfOpenCount >= b.config.HalfOpenMaxRequests {
			return ErrBreakerOpen
		}
		b.halfOpenCount++
	}

	return nil
}

func (b *Breaker[T]) afterRequest(err error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	isFailure := b.config.IsFailure(err)
	oldState := b.state

	switch b.state {
	case StateClosed:
		if isFailure {
			b.failures++
			b.lastFailure = time.Now()
			if b.failures >= b.config.MaxFailures {
				b.setState(StateOpen)
			}
		} else {
			// Reset failure count on success
			b.failures = 0
		}

	case StateHalfOpen:
		if isFailure {
			// Failed during probe, go back to open
			b.lastFailure = time.Now()
			b.setState(StateOpen)
		} else {
			b.successes++
			// Successful probe, close the circuit
			b.setState(StateClosed)
			b.failures = 0
			b.successes = 0
		}
	}

	if oldState != b.state && b.config.OnStateChange != nil {
		b.config.OnStateChange(oldState, b.state)
	}
}

func (b *Breaker[T]) currentStateLocked() State {
	if b.state == StateOpen && time.Since(b.lastFailure) >= b.config.ResetTimeout {
		b.state = StateHalfOpen
		b.halfOpenCount = 0
		if b.config.OnStateChange != nil {
			b.config.OnStateChange(StateOpen, StateHalfOpen)
		}
	}
	return b.state
}

func (b *Breaker[T]) setState(state State) {
	b.state = state
	if state == StateHalfOpen {
		b.halfOpenCount = 0
	}
}

// Metrics returns current circuit breaker metrics.
func (b *Breaker[T]) Metrics() BreakerMetrics {
	b.mu.Lock()
	defer b.mu.Unlock()

	return BreakerMetrics{
		State:       b.currentStateLocked(),
		Failures:    b.failures,
		Successes:   b.successes,
		LastFailure: b.lastFailure,
	}
}

// BreakerMetrics contains circuit breaker statistics.
type BreakerMetrics struct {
	State       State
	Failures    int
	Successes   int
	LastFailure time.Time
}
