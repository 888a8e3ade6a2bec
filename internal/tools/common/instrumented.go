package common

import (
	"context"
	"log/slog"
	"time"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/meetmcp/meetmcp/internal/instrumentation"
	"github.com/meetmcp/meetmcp/internal/logging"
	"github.com/meetmcp/meetmcp/internal/server"
)

// ToolHandler is the handler signature expected by the MCP server. It is an
// alias so wrapped handlers stay assignable to mcp-go's ToolHandlerFunc.
type ToolHandler = func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error)

// InstrumentedToolHandler wraps a tool handler with metrics and audit logging.
// It records tool invocation metrics and emits one structured log line per
// invocation.
//
// Usage:
//
//	s.AddTool(myTool, common.InstrumentedToolHandler("my_tool", sc, handler))
func InstrumentedToolHandler(toolName string, sc *server.ServerContext, handler ToolHandler) ToolHandler {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		start := time.Now()

		args := request.GetArguments()
		account := GetAccountFromArgs(args)

		result, err := handler(ctx, request)
		duration := time.Since(start)

		status := instrumentation.StatusSuccess
		if err != nil || (result != nil && result.IsError) {
			status = instrumentation.StatusError
		}

		if metrics := sc.Metrics(); metrics != nil {
			metrics.RecordToolInvocation(ctx, toolName, status, duration)
		}

		logging.WithTool(slog.Default(), toolName).Debug("tool invocation",
			logging.Account(account),
			logging.Status(status),
			slog.Duration(logging.KeyDuration, duration),
			logging.Err(err),
		)

		return result, err
	}
}

// InstrumentedToolHandlerWithService is like InstrumentedToolHandler but also
// records the Google service and operation type for more detailed metrics.
//
// Usage:
//
//	s.AddTool(myTool, common.InstrumentedToolHandlerWithService("my_tool", "calendar", "insert", sc, handler))
func InstrumentedToolHandlerWithService(toolName, serviceName, operation string, sc *server.ServerContext, handler ToolHandler) ToolHandler {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		start := time.Now()

		args := request.GetArguments()
		account := GetAccountFromArgs(args)

		result, err := handler(ctx, request)
		duration := time.Since(start)

		status := instrumentation.StatusSuccess
		if err != nil || (result != nil && result.IsError) {
			status = instrumentation.StatusError
		}

		if metrics := sc.Metrics(); metrics != nil {
			metrics.RecordToolInvocation(ctx, toolName, status, duration)
			metrics.RecordGoogleAPIOperation(ctx, serviceName, operation, status, duration)
		}

		logging.WithTool(slog.Default(), toolName).Debug("tool invocation",
			logging.Service(serviceName),
			logging.Operation(operation),
			logging.Account(account),
			logging.Status(status),
			slog.Duration(logging.KeyDuration, duration),
			logging.Err(err),
		)

		return result, err
	}
}
