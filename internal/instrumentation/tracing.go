package instrumentation

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// TracerName is the tracer name used for every span rendezvous starts.
const TracerName = "github.com/teemow/rendezvous"

// Span attribute keys.
const (
	SpanAttrPipeline = "rendezvous.pipeline"
	SpanAttrCommand  = "process.command"
	SpanAttrArgCount = "process.command_args.count"
	SpanAttrExitCode = "process.exit.code"
	SpanAttrRecords  = "rendezvous.records"
	SpanAttrDropped  = "rendezvous.records.dropped"
	SpanAttrResults  = "rendezvous.results"
	SpanAttrPolicy   = "rendezvous.failure_policy"
)

// SpanAttributeBuilder helps construct span attributes with consistent naming.
type SpanAttributeBuilder struct {
	attrs []attribute.KeyValue
}

// NewSpanAttributeBuilder creates a new SpanAttributeBuilder.
func NewSpanAttributeBuilder() *SpanAttributeBuilder {
	return &SpanAttributeBuilder{
		attrs: make([]attribute.KeyValue, 0, 6),
	}
}

// WithPipeline adds the pipeline attribute.
func (b *SpanAttributeBuilder) WithPipeline(pipeline string) *SpanAttributeBuilder {
	b.attrs = append(b.attrs, attribute.String(SpanAttrPipeline, pipeline))
	return b
}

// WithPolicy adds the failure policy attribute.
func (b *SpanAttributeBuilder) WithPolicy(policy string) *SpanAttributeBuilder {
	if policy != "" {
		b.attrs = append(b.attrs, attribute.String(SpanAttrPolicy, policy))
	}
	return b
}

// WithCounts adds record, dropped and result counts. Negative values are skipped.
func (b *SpanAttributeBuilder) WithCounts(records, dropped, results int) *SpanAttributeBuilder {
	if records >= 0 {
		b.attrs = append(b.attrs, attribute.Int(SpanAttrRecords, records))
	}
	if dropped >= 0 {
		b.attrs = append(b.attrs, attribute.Int(SpanAttrDropped, dropped))
	}
	if results >= 0 {
		b.attrs = append(b.attrs, attribute.Int(SpanAttrResults, results))
	}
	return b
}

// Build returns the constructed attributes.
func (b *SpanAttributeBuilder) Build() []attribute.KeyValue {
	return b.attrs
}

// StartSpan starts a new span with the given name and attributes.
// The caller is responsible for ending the span with defer span.End().
func StartSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	tracer := otel.GetTracerProvider().Tracer(TracerName)
	return tracer.Start(ctx, name, trace.WithAttributes(attrs...))
}

// StartCommandSpan starts a client span for an external command.
// Arguments are counted, not recorded: they carry calendar IDs and locations.
func StartCommandSpan(ctx context.Context, command string, argCount int) (context.Context, trace.Span) {
	tracer := otel.GetTracerProvider().Tracer(TracerName)
	return tracer.Start(ctx, "external."+command,
		trace.WithAttributes(
			attribute.String(SpanAttrCommand, command),
			attribute.Int(SpanAttrArgCount, argCount),
		),
		trace.WithSpanKind(trace.SpanKindClient),
	)
}

// SetSpanError records an error on the span and sets the status to error.
func SetSpanError(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
}

// SetSpanSuccess sets the span status to OK.
func SetSpanSuccess(span trace.Span) {
	span.SetStatus(codes.Ok, "")
}

// GetTraceID returns the trace ID from the current span in context.
// Returns empty string if no valid span is present.
func GetTraceID(ctx context.Context) string {
	span := trace.SpanFromContext(ctx)
	if span.SpanContext().IsValid() {
		return span.SpanContext().TraceID().String()
	}
	return ""
}
