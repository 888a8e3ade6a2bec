// Package instrumentation provides OpenTelemetry metrics for the MCP
// server: tool invocation counters and durations plus Google Calendar API
// operation counters and durations, exported through a Prometheus
// registry scraped by the dedicated metrics server.
package instrumentation
