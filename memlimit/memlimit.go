package memlimit

import (
	"context"
	"runtime/debug"
	"sync"
	"time"

	"github.com/jonwraymond/execwrap/wrap"
)

// Default configuration values.
const (
	// DefaultInterval is the default usage sampling period.
	DefaultInterval = 5 * time.Millisecond

	// DefaultGrace is the default wait for breached work to honor
	// cancellation before the guard returns.
	DefaultGrace = 250 * time.Millisecond
)

// ceilingMu serializes guarded executions. The runtime memory ceiling is
// process-wide state; interleaved save/restore pairs would corrupt it.
var ceilingMu sync.Mutex

// Config holds memory guard configuration.
type Config struct {
	// Bytes is the memory ceiling installed while the work runs.
	Bytes int64

	// Interval is the usage sampling period. Defaults to DefaultInterval.
	Interval time.Duration

	// Grace bounds how long a breached execution waits for the work to
	// honor cancellation before returning. Defaults to DefaultGrace.
	Grace time.Duration

	// Usage reports current memory usage in bytes. Defaults to
	// RuntimeUsage.
	Usage UsageFunc

	// AddressSpace additionally installs an RLIMIT_AS ceiling on Linux
	// and macOS for hard enforcement. Execute fails with ErrUnsupportedOS
	// elsewhere.
	AddressSpace bool
}

// Guard executes units of work under a memory ceiling.
type Guard[T any] struct {
	config Config
}

// NewGuard creates a memory guard with the given configuration.
func NewGuard[T any](config Config) (*Guard[T], error) {
	if config.Bytes < 1 {
		return nil, &wrap.ConfigError{Param: "Bytes", Value: config.Bytes, Reason: "must be at least 1"}
	}
	if config.Interval < 0 {
		return nil, &wrap.ConfigError{Param: "Interval", Value: config.Interval, Reason: "must not be negative"}
	}
	if config.Grace < 0 {
		return nil, &wrap.ConfigError{Param: "Grace", Value: config.Grace, Reason: "must not be negative"}
	}

	if config.Interval == 0 {
		config.Interval = DefaultInterval
	}
	if config.Grace == 0 {
		config.Grace = DefaultGrace
	}
	if config.Usage == nil {
		config.Usage = RuntimeUsage
	}

	return &Guard[T]{config: config}, nil
}

type outcome[T any] struct {
	value T
	err   error
}

// Execute runs the work under the configured ceiling.
//
// The previous ceiling is saved on entry and restored before Execute
// returns, whether the work succeeds, fails, breaches the ceiling, or the
// context is cancelled. While the work runs, usage is sampled every
// Interval; a sample above the ceiling cancels the work's context, waits up
// to Grace for the work to return, and reports a LimitError. Work that
// ignores cancellation keeps running past the guard; the result it
// eventually produces is discarded.
func (g *Guard[T]) Execute(ctx context.Context, work wrap.Work[T]) (T, error) {
	var zero T

	ceilingMu.Lock()
	defer ceilingMu.Unlock()

	prev := debug.SetMemoryLimit(g.config.Bytes)
	defer debug.SetMemoryLimit(prev)

	if g.config.AddressSpace {
		prevAS, err := SetAddressSpaceCeiling(uint64(g.config.Bytes))
		if err != nil {
			return zero, err
		}
		defer SetAddressSpaceCeiling(prevAS)
	}

	workCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Buffered so a finisher after breach or cancellation can deposit its
	// result without blocking.
	done := make(chan outcome[T], 1)
	go func() {
		value, err := work(workCtx)
		done <- outcome[T]{value: value, err: err}
	}()

	ticker := time.NewTicker(g.config.Interval)
	defer ticker.Stop()

	for {
		select {
		case out := <-done:
			return out.value, out.err

		case <-ctx.Done():
			return zero, ctx.Err()

		case <-ticker.C:
			observed := g.config.Usage()
			if observed <= uint64(g.config.Bytes) {
				continue
			}

			cancel()
			grace := time.NewTimer(g.config.Grace)
			select {
			case <-done:
			case <-grace.C:
			}
			grace.Stop()

			return zero, &LimitError{Limit: g.config.Bytes, Observed: observed}
		}
	}
}

// Wrap returns a unit of work with the guard applied.
func (g *Guard[T]) Wrap(work wrap.Work[T]) wrap.Work[T] {
	return func(ctx context.Context) (T, error) {
		return g.Execute(ctx, work)
	}
}

// Config returns the guard configuration.
func (g *Guard[T]) Config() Config {
	return g.config
}

// CurrentCeiling reports the process memory ceiling without changing it.
func CurrentCeiling() int64 {
	return debug.SetMemoryLimit(-1)
}
