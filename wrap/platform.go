package wrap

import (
	"context"
	"runtime"
)

// PlatformConfig configures the platform gate.
type PlatformConfig struct {
	// Allow lists GOOS names the work may run on. Empty means all
	// operating systems are allowed unless denied.
	Allow []string

	// Deny lists GOOS names the work must not run on. Deny wins over Allow.
	Deny []string
}

// PlatformGate rejects execution on operating systems outside the configured
// allow/deny lists. The check is a single runtime.GOOS comparison performed
// before the work is invoked; there is no state and no concurrency.
type PlatformGate[T any] struct {
	config PlatformConfig
	goos   string
}

// NewPlatformGate creates a platform gate. Listing the same GOOS in both
// Allow and Deny is a configuration error.
func NewPlatformGate[T any](config PlatformConfig) (*PlatformGate[T], error) {
	for _, a := range config.Allow {
		for _, d := range config.Deny {
			if a == d {
				return nil, configError("Allow/Deny", a, "listed in both allow and deny")
			}
		}
	}

	return &PlatformGate[T]{config: config, goos: runtime.GOOS}, nil
}

// Permitted reports whether the current operating system may run the work.
func (g *PlatformGate[T]) Permitted() bool {
	for _, d := range g.config.Deny {
		if g.goos == d {
			return false
		}
	}
	if len(g.config.Allow) == 0 {
		return true
	}
	for _, a := range g.config.Allow {
		if g.goos == a {
			return true
		}
	}
	return false
}

// Execute invokes the work if the current operating system is permitted.
func (g *PlatformGate[T]) Execute(ctx context.Context, work Work[T]) (T, error) {
	if !g.Permitted() {
		var zero T
		return zero, ErrUnsupportedOS
	}

	return work(ctx)
}

// Wrap returns a unit of work guarded by this platform gate.
func (g *PlatformGate[T]) Wrap(work Work[T]) Work[T] {
	return func(ctx context.Context) (T, error) {
		return g.Execute(ctx, work)
	}
}
