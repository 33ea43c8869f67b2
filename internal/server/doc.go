// Package server holds the runtime state shared by the MCP tools of
// `zoomctl serve` and the optional side server that exposes Prometheus
// metrics and health checks while the MCP server runs.
//
// ServerContext owns the authenticated Zoom client and the metrics recorder.
// MetricsServer serves /metrics, /healthz and /readyz on a dedicated address
// so telemetry never shares the MCP transport.
package server
