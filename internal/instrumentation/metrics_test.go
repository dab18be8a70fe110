package instrumentation

import (
	"context"
	"io"
	"testing"
	"time"
)

func newTestMetrics(t *testing.T) (*Metrics, func()) {
	t.Helper()
	ctx := context.Background()
	provider, err := NewProvider(ctx, Config{
		ServiceName:     "test-service",
		ServiceVersion:  "1.0.0",
		Enabled:         true,
		MetricsExporter: ExporterStdout,
		TracingExporter: ExporterNone,
		Output:          io.Discard,
	})
	if err != nil {
		t.Fatalf("failed to create provider: %v", err)
	}
	return provider.Metrics(), func() { _ = provider.Shutdown(ctx) }
}

func TestMetrics_RecordCommand(t *testing.T) {
	metrics, shutdown := newTestMetrics(t)
	defer shutdown()

	ctx := context.Background()
	// Should not panic
	metrics.RecordCommand(ctx, "gog", StatusSuccess, "", 200*time.Millisecond)
	metrics.RecordCommand(ctx, "goplaces", StatusError, "exit_status", time.Second)
}

func TestMetrics_RecordDroppedAndResults(t *testing.T) {
	metrics, shutdown := newTestMetrics(t)
	defer shutdown()

	ctx := context.Background()
	// Should not panic
	metrics.RecordDropped(ctx, PipelineAvailability, DropReasonMalformed, 2)
	metrics.RecordDropped(ctx, PipelineVenues, DropReasonFiltered, 0)
	metrics.RecordResults(ctx, PipelineAvailability, 4)
}

func TestMetrics_NoOp(t *testing.T) {
	ctx := context.Background()

	var zero Metrics
	zero.RecordCommand(ctx, "gog", StatusSuccess, "", time.Second)
	zero.RecordDropped(ctx, PipelineVenues, DropReasonFiltered, 1)
	zero.RecordResults(ctx, PipelineVenues, 1)

	var nilMetrics *Metrics
	nilMetrics.RecordCommand(ctx, "gog", StatusSuccess, "", time.Second)
	nilMetrics.RecordDropped(ctx, PipelineVenues, DropReasonFiltered, 1)
	nilMetrics.RecordResults(ctx, PipelineVenues, 1)
}
