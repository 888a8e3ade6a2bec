// Package server provides the MCP server context plus the HTTP
// sidecars that accompany it.
//
// ServerContext manages Google Calendar clients with lazy
// initialization and caching. It supports multiple accounts, each
// authenticated through its own cached OAuth token.
//
// HealthChecker exposes /healthz and /readyz handlers for liveness
// and readiness probes on the streamable HTTP transport.
//
// MetricsServer serves Prometheus metrics on a dedicated port so that
// operational metrics stay off the MCP listener.
package server
