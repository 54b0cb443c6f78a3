package observe

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/metric"
)

// Metrics records per-execution measurements.
//
// Contract:
// - Concurrency: safe for concurrent use.
// - Latency: recording returns quickly; export happens out of band.
// - Errors: recording never panics and never fails the caller.
type Metrics interface {
	// RecordExecution records one work execution with its duration and error status.
	RecordExecution(ctx context.Context, meta WorkMeta, duration time.Duration, err error)
}

type metricsImpl struct {
	meter        metric.Meter
	totalCount   metric.Int64Counter
	errorCount   metric.Int64Counter
	durationHist metric.Float64Histogram
}

// newMetrics registers the execution instruments on the meter. Instrument
// creation can fail (duplicate registration with conflicting schemas), so a
// partially constructed metricsImpl is never returned.
func newMetrics(meter metric.Meter) (*metricsImpl, error) {
	m := &metricsImpl{meter: meter}

	var err error
	if m.totalCount, err = meter.Int64Counter(
		"work.exec.total",
		metric.WithDescription("Total number of work executions"),
		metric.WithUnit("{call}"),
	); err != nil {
		return nil, err
	}
	if m.errorCount, err = meter.Int64Counter(
		"work.exec.errors",
		metric.WithDescription("Total number of work execution errors"),
		metric.WithUnit("{error}"),
	); err != nil {
		return nil, err
	}
	if m.durationHist, err = meter.Float64Histogram(
		"work.exec.duration_ms",
		metric.WithDescription("Work execution duration in milliseconds"),
		metric.WithUnit("ms"),
	); err != nil {
		return nil, err
	}

	return m, nil
}

// RecordExecution adds one point to each instrument: the total counter
// always, the error counter only on failure, and the duration histogram in
// milliseconds. All points carry the work's identifying attributes.
func (m *metricsImpl) RecordExecution(ctx context.Context, meta WorkMeta, duration time.Duration, err error) {
	opt := metric.WithAttributes(meta.attributes()...)

	m.totalCount.Add(ctx, 1, opt)
	if err != nil {
		m.errorCount.Add(ctx, 1, opt)
	}
	m.durationHist.Record(ctx, float64(duration.Milliseconds()), opt)
}

// noopMetrics records nothing.
type noopMetrics struct{}

func (m *noopMetrics) RecordExecution(ctx context.Context, meta WorkMeta, duration time.Duration, err error) {
}
