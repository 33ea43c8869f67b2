// Package common provides shared helpers for the zoomctl MCP tools:
// argument extraction, JSON results and the instrumented handler wrapper.
package common
