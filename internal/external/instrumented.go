package external

import (
	"context"
	"errors"
	"path/filepath"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/teemow/rendezvous/internal/instrumentation"
	"github.com/teemow/rendezvous/internal/logging"
)

// InstrumentedRunner wraps a Runner with a client span, command metrics and
// a debug log record per invocation.
type InstrumentedRunner struct {
	next    Runner
	metrics *instrumentation.Metrics
	logger  logging.Logger
}

// Instrument wraps next so every invocation is traced, measured and logged.
// A nil metrics recorder or logger only disables that part.
//
// Usage:
//
//	runner := external.Instrument(external.NewExecRunner(), provider.Metrics(), logger)
func Instrument(next Runner, metrics *instrumentation.Metrics, logger logging.Logger) *InstrumentedRunner {
	return &InstrumentedRunner{next: next, metrics: metrics, logger: logger}
}

// Run delegates to the wrapped Runner.
func (r *InstrumentedRunner) Run(ctx context.Context, name string, args ...string) ([]byte, error) {
	command := filepath.Base(name)
	ctx, span := instrumentation.StartCommandSpan(ctx, command, len(args))
	defer span.End()

	start := time.Now()
	out, err := r.next.Run(ctx, name, args...)
	duration := time.Since(start)

	status := instrumentation.StatusSuccess
	reason := ReasonNone
	if err != nil {
		status = instrumentation.StatusError
		reason = Failure[byte](err).Reason()
		var cerr *CommandError
		if errors.As(err, &cerr) && cerr.ExitCode >= 0 {
			span.SetAttributes(attribute.Int(instrumentation.SpanAttrExitCode, cerr.ExitCode))
		}
		instrumentation.SetSpanError(span, err)
	} else {
		span.SetAttributes(attribute.Int(instrumentation.SpanAttrExitCode, 0))
		instrumentation.SetSpanSuccess(span)
	}

	r.metrics.RecordCommand(ctx, command, status, reason, duration)

	if r.logger != nil {
		logArgs := []any{
			logging.Command(command),
			logging.Status(status),
			"duration", duration,
			"stdout_bytes", len(out),
		}
		if reason != ReasonNone {
			logArgs = append(logArgs, "reason", reason)
		}
		if traceID := instrumentation.GetTraceID(ctx); traceID != "" {
			logArgs = append(logArgs, "trace_id", traceID)
		}
		r.logger.Debug("external command finished", logArgs...)
	}

	return out, err
}
