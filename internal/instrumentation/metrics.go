package instrumentation

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Metric attribute keys
const (
	attrCommand  = "command"
	attrStatus   = "status"
	attrReason   = "reason"
	attrPipeline = "pipeline"
)

// Metrics provides methods for recording observability metrics.
// The zero value and a nil *Metrics are valid no-op recorders.
type Metrics struct {
	// External command metrics
	commandInvocationsTotal metric.Int64Counter
	commandDuration         metric.Float64Histogram

	// Pipeline metrics
	recordsDroppedTotal metric.Int64Counter
	resultsEmittedTotal metric.Int64Counter
}

// NewMetrics creates a new Metrics instance with all metrics initialized.
func NewMetrics(meter metric.Meter) (*Metrics, error) {
	m := &Metrics{}

	var err error

	m.commandInvocationsTotal, err = meter.Int64Counter(
		"external_command_invocations_total",
		metric.WithDescription("Total number of external command invocations"),
		metric.WithUnit("{invocation}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create external_command_invocations_total counter: %w", err)
	}

	m.commandDuration, err = meter.Float64Histogram(
		"external_command_duration_seconds",
		metric.WithDescription("External command run time in seconds"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(0.05, 0.1, 0.25, 0.5, 1.0, 2.5, 5.0, 10.0, 30.0),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create external_command_duration_seconds histogram: %w", err)
	}

	m.recordsDroppedTotal, err = meter.Int64Counter(
		"records_dropped_total",
		metric.WithDescription("Records dropped before reaching the result"),
		metric.WithUnit("{record}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create records_dropped_total counter: %w", err)
	}

	m.resultsEmittedTotal, err = meter.Int64Counter(
		"results_emitted_total",
		metric.WithDescription("Free slots or venues emitted"),
		metric.WithUnit("{result}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create results_emitted_total counter: %w", err)
	}

	return m, nil
}

// RecordCommand records one external command invocation.
//
// Parameters:
//   - command: executable name (gog, goplaces)
//   - status: "success" or "error"
//   - reason: failure reason, empty on success
//   - duration: wall time until the process exited
func (m *Metrics) RecordCommand(ctx context.Context, command, status, reason string, duration time.Duration) {
	if m == nil || m.commandInvocationsTotal == nil || m.commandDuration == nil {
		return
	}

	attrs := []attribute.KeyValue{
		attribute.String(attrCommand, command),
		attribute.String(attrStatus, status),
	}

	m.commandDuration.Record(ctx, duration.Seconds(), metric.WithAttributes(attrs...))

	if reason != "" {
		attrs = append(attrs, attribute.String(attrReason, reason))
	}
	m.commandInvocationsTotal.Add(ctx, 1, metric.WithAttributes(attrs...))
}

// RecordDropped records n records dropped by a pipeline for the given reason.
func (m *Metrics) RecordDropped(ctx context.Context, pipeline, reason string, n int) {
	if m == nil || m.recordsDroppedTotal == nil || n <= 0 {
		return
	}

	m.recordsDroppedTotal.Add(ctx, int64(n), metric.WithAttributes(
		attribute.String(attrPipeline, pipeline),
		attribute.String(attrReason, reason),
	))
}

// RecordResults records n results emitted by a pipeline.
func (m *Metrics) RecordResults(ctx context.Context, pipeline string, n int) {
	if m == nil || m.resultsEmittedTotal == nil {
		return
	}

	m.resultsEmittedTotal.Add(ctx, int64(n), metric.WithAttributes(
		attribute.String(attrPipeline, pipeline),
	))
}
