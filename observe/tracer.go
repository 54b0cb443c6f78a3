package observe

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	tracenoop "go.opentelemetry.io/otel/trace/noop"
)

// WorkMeta identifies a unit of work for telemetry purposes. Name is the
// only required field; everything else refines attribution.
type WorkMeta struct {
	ID        string   // fully qualified work ID, defaults to namespace.name
	Namespace string   // grouping namespace, may be empty
	Name      string   // work name, required
	Version   string   // work version, optional
	Tags      []string // filter tags, optional
	Kind      string   // work kind, e.g. "fetch" or "compute", optional
}

// SpanName returns the deterministic span name for this unit of work:
// work.exec.<namespace>.<name>, or work.exec.<name> without a namespace.
func (m WorkMeta) SpanName() string {
	if m.Namespace != "" {
		return "work.exec." + m.Namespace + "." + m.Name
	}
	return "work.exec." + m.Name
}

// WorkID returns the fully qualified work identifier. An explicit ID wins;
// otherwise the ID is derived from namespace and name.
func (m WorkMeta) WorkID() string {
	switch {
	case m.ID != "":
		return m.ID
	case m.Namespace != "":
		return m.Namespace + "." + m.Name
	default:
		return m.Name
	}
}

// Validate checks that the metadata names a unit of work.
func (m WorkMeta) Validate() error {
	if m.Name == "" {
		return ErrMissingWorkName
	}
	return nil
}

// attributes returns the identifying attribute set shared by spans, metric
// points, and log records. Optional fields are omitted rather than emitted
// empty.
func (m WorkMeta) attributes() []attribute.KeyValue {
	attrs := []attribute.KeyValue{
		attribute.String("work.id", m.WorkID()),
		attribute.String("work.name", m.Name),
	}
	if m.Namespace != "" {
		attrs = append(attrs, attribute.String("work.namespace", m.Namespace))
	}
	return attrs
}

// Tracer manages one span per work execution.
//
// Contract:
// - Concurrency: safe for concurrent use.
// - Pairing: every StartSpan is matched by exactly one EndSpan, on every exit path.
// - Errors: EndSpan is best-effort and never panics.
type Tracer interface {
	// StartSpan opens a span for one work execution.
	StartSpan(ctx context.Context, meta WorkMeta) (context.Context, trace.Span)

	// EndSpan closes the span, recording any error.
	EndSpan(span trace.Span, err error)
}

type tracerImpl struct {
	tracer trace.Tracer
}

func newTracer(t trace.Tracer) Tracer {
	return &tracerImpl{tracer: t}
}

// StartSpan opens an internal span carrying the work's identifying
// attributes. work.error starts false; EndSpan flips it on failure so a
// span query can filter on the attribute without inspecting status codes.
func (t *tracerImpl) StartSpan(ctx context.Context, meta WorkMeta) (context.Context, trace.Span) {
	attrs := append(meta.attributes(), attribute.Bool("work.error", false))
	if meta.Version != "" {
		attrs = append(attrs, attribute.String("work.version", meta.Version))
	}
	if meta.Kind != "" {
		attrs = append(attrs, attribute.String("work.kind", meta.Kind))
	}
	if len(meta.Tags) > 0 {
		attrs = append(attrs, attribute.StringSlice("work.tags", meta.Tags))
	}

	return t.tracer.Start(ctx, meta.SpanName(),
		trace.WithAttributes(attrs...),
		trace.WithSpanKind(trace.SpanKindInternal),
	)
}

// EndSpan closes the span, recording the error and marking the span status.
func (t *tracerImpl) EndSpan(span trace.Span, err error) {
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		span.SetAttributes(attribute.Bool("work.error", true))
		span.RecordError(err)
	} else {
		span.SetStatus(codes.Ok, "")
	}
	span.End()
}

// noopTracer still produces (inert) spans so EndSpan has something to close.
type noopTracer struct {
	noop trace.Tracer
}

func newNoopTracer() Tracer {
	return &noopTracer{
		noop: tracenoop.NewTracerProvider().Tracer("noop"),
	}
}

func (t *noopTracer) StartSpan(ctx context.Context, meta WorkMeta) (context.Context, trace.Span) {
	return t.noop.Start(ctx, meta.SpanName())
}

func (t *noopTracer) EndSpan(span trace.Span, err error) {
	span.End()
}
