// Package instrumentation provides OpenTelemetry instrumentation for zoomctl.
//
// # Metrics
//
// Zoom API Metrics:
//   - zoom_api_operations_total: Counter of Zoom API calls by operation, status and status_code
//   - zoom_api_operation_duration_seconds: Histogram of Zoom API call durations
//
// OAuth Metrics:
//   - oauth_exchange_total: Counter of authorization code exchanges by result
//
// MCP Tool Metrics:
//   - mcp_tool_invocations_total: Counter of MCP tool invocations by tool name and status
//   - mcp_tool_duration_seconds: Histogram of MCP tool execution durations
//
// # Tracing
//
// Client spans named zoom.<operation> wrap every Zoom API call and
// tool.<name> server spans wrap MCP tool invocations.
//
// # Configuration
//
// Instrumentation is opt-in for the CLI and configured via environment variables:
//   - INSTRUMENTATION_ENABLED: Enable/disable instrumentation (default: false)
//   - METRICS_EXPORTER: prometheus, otlp, stdout (default: prometheus)
//   - TRACING_EXPORTER: otlp, stdout, none (default: none)
//   - OTEL_EXPORTER_OTLP_ENDPOINT: OTLP endpoint for traces/metrics
//   - OTEL_TRACES_SAMPLER_ARG: Sampling rate (0.0 to 1.0, default: 1.0)
//   - METRICS_TEXTFILE: write the Prometheus exposition to this file on exit
//
// # Example Usage
//
//	provider, err := instrumentation.NewProvider(ctx, instrumentation.DefaultConfig())
//	if err != nil {
//		return err
//	}
//	defer provider.Shutdown(ctx)
//
//	provider.Metrics().RecordZoomAPIOperation(ctx, instrumentation.OperationCurrentUser, 200, time.Since(start))
package instrumentation
