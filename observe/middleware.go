package observe

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"

	"github.com/jonwraymond/execwrap/wrap"
)

// Middleware bundles the telemetry components applied around work execution.
//
// Contract:
//   - Concurrency: Instrument returns a thread-safe unit of work.
//   - Context: Propagates context through tracing spans.
//   - Errors: Errors from the wrapped unit are recorded and propagated unchanged.
//   - Ownership: Result values are passed through without modification.
type Middleware struct {
	tracer  Tracer
	metrics Metrics
	logger  Logger
}

// NewMiddleware creates a new Middleware with the given observability components.
func NewMiddleware(tracer Tracer, metrics Metrics, logger Logger) *Middleware {
	return &Middleware{
		tracer:  tracer,
		metrics: metrics,
		logger:  logger,
	}
}

// Instrument returns a modifier that traces, meters, and logs each execution
// of a unit of work. Every invocation is assigned a fresh invocation ID that
// appears as a span attribute and a log field.
func Instrument[T any](m *Middleware, meta WorkMeta) wrap.Middleware[T] {
	return func(work wrap.Work[T]) wrap.Work[T] {
		return func(ctx context.Context) (T, error) {
			invocation := uuid.New().String()

			// Start span
			ctx, span := m.tracer.StartSpan(ctx, meta)
			span.SetAttributes(attribute.String("work.invocation", invocation))

			// Record start time
			start := time.Now()

			// Execute the unit
			result, err := work(ctx)

			// Calculate duration
			duration := time.Since(start)

			// End span (records error status if err != nil)
			m.tracer.EndSpan(span, err)

			// Record metrics
			m.metrics.RecordExecution(ctx, meta, duration, err)

			// Log the execution
			workLogger := m.logger.WithWork(meta)
			fields := []Field{
				{Key: "invocation", Value: invocation},
				{Key: "duration_ms", Value: float64(duration.Milliseconds())},
			}

			if err != nil {
				fields = append(fields, Field{Key: "error", Value: err.Error()})
				workLogger.Error(ctx, "work execution failed", fields...)
			} else {
				workLogger.Info(ctx, "work execution completed", fields...)
			}

			return result, err
		}
	}
}

// MiddlewareFromObserver creates a Middleware from an Observer.
// This is a convenience function for common use cases.
func MiddlewareFromObserver(obs Observer) (*Middleware, error) {
	if obs == nil {
		return nil, ErrNilObserver
	}

	tracer := newTracer(obs.Tracer())

	metrics, err := newMetrics(obs.Meter())
	if err != nil {
		return nil, err
	}

	return NewMiddleware(tracer, metrics, obs.Logger()), nil
}
