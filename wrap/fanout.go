package wrap

import (
	"context"
	"sync"
)

// FanOutConfig configures the fan-out runner.
type FanOutConfig struct {
	// Workers is the number of concurrent invocations per call.
	// Must be >= 1; there is no default. Immutable after wrap.
	Workers int
}

// FanOut launches N concurrent invocations of the same work and joins all of
// them before returning. Workers are independent: one worker's failure never
// cancels its siblings. Per-worker values and failures are not combined into
// the aggregate call's result; only "all finished" is observable, so Execute
// returns the zero value with a nil error. Cumulative worker outcomes are
// available through Metrics.
type FanOut[T any] struct {
	config FanOutConfig

	mu        sync.Mutex
	launched  int64
	completed int64
	failed    int64
}

// NewFanOut creates a fan-out runner. Workers < 1 is a configuration error.
func NewFanOut[T any](config FanOutConfig) (*FanOut[T], error) {
	if config.Workers < 1 {
		return nil, configError("Workers", config.Workers, "must be at least 1")
	}

	return &FanOut[T]{config: config}, nil
}

// Execute launches the configured number of workers and waits for all of
// them to finish. It returns only after every worker has completed.
func (f *FanOut[T]) Execute(ctx context.Context, work Work[T]) (T, error) {
	var wg sync.WaitGroup

	for i := 0; i < f.config.Workers; i++ {
		wg.Add(1)
		f.mu.Lock()
		f.launched++
		f.mu.Unlock()

		go func() {
			defer wg.Done()

			_, err := work(ctx)

			f.mu.Lock()
			f.completed++
			if err != nil {
				f.failed++
			}
			f.mu.Unlock()
		}()
	}

	wg.Wait()

	var zero T
	return zero, nil
}

// Wrap returns a unit of work with fan-out behavior applied.
func (f *FanOut[T]) Wrap(work Work[T]) Work[T] {
	return func(ctx context.Context) (T, error) {
		return f.Execute(ctx, work)
	}
}

// Config returns the fan-out configuration.
func (f *FanOut[T]) Config() FanOutConfig {
	return f.config
}

// Metrics returns cumulative worker counts across all calls.
func (f *FanOut[T]) Metrics() FanOutMetrics {
	f.mu.Lock()
	defer f.mu.Unlock()

	return FanOutMetrics{
		Launched:  f.launched,
		Completed: f.completed,
		Failed:    f.failed,
	}
}

// FanOutMetrics contains fan-out worker statistics.
type FanOutMetrics struct {
	Launched  int64
	Completed int64
	Failed    int64
}
