// Package instrumentation provides OpenTelemetry metrics and tracing for
// rendezvous runs.
//
// Instrumentation is off unless INSTRUMENTATION_ENABLED=true. Each command
// run is short-lived, so exporters are flushed by Provider.Shutdown before
// the process exits.
//
// # Metrics
//
//   - external_command_invocations_total: external tool runs by command, status and reason
//   - external_command_duration_seconds: external tool run time by command and status
//   - records_dropped_total: records discarded by pipeline and reason (malformed, filtered)
//   - results_emitted_total: free slots or venues written to stdout, by pipeline
//
// # Tracing
//
// Spans are created for availability.check, places.search and one
// external.<command> client span per subprocess.
//
// # Configuration
//
//   - INSTRUMENTATION_ENABLED: enable instrumentation (default: false)
//   - METRICS_EXPORTER: prometheus, otlp or stdout (default: stdout, written to stderr)
//   - PROMETHEUS_TEXTFILE: file the prometheus exporter writes on shutdown
//   - TRACING_EXPORTER: otlp, stdout or none (default: none)
//   - OTEL_EXPORTER_OTLP_ENDPOINT: OTLP endpoint for traces and metrics
//   - OTEL_TRACES_SAMPLER_ARG: sampling rate (0.0 to 1.0, default: 1.0)
//   - OTEL_SERVICE_NAME: service name (default: rendezvous)
//
// # Example Usage
//
//	provider, err := instrumentation.NewProvider(ctx, instrumentation.DefaultConfig())
//	if err != nil {
//		return err
//	}
//	defer provider.Shutdown(ctx)
//
//	provider.Metrics().RecordCommand(ctx, "gog", instrumentation.StatusSuccess, "", time.Since(start))
package instrumentation
