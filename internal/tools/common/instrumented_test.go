package common

import (
	"context"
	"errors"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meetmcp/meetmcp/internal/server"
)

func newTestServerContext(t *testing.T) *server.ServerContext {
	t.Helper()
	t.Setenv("XDG_CACHE_HOME", t.TempDir())

	sc, err := server.NewServerContext(t.Context())
	require.NoError(t, err)
	return sc
}

func TestInstrumentedToolHandler_UsableAsServerHandler(t *testing.T) {
	sc := newTestServerContext(t)

	wrapped := InstrumentedToolHandler("echo", sc, func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return mcp.NewToolResultText("ok"), nil
	})
	withService := InstrumentedToolHandlerWithService("echo", "calendar", "get", sc, func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return mcp.NewToolResultText("ok"), nil
	})

	// Wrapped handlers must satisfy mcp-go's handler type directly.
	var _ mcpserver.ToolHandlerFunc = wrapped
	var _ mcpserver.ToolHandlerFunc = withService

	s := mcpserver.NewMCPServer("test", "0.0.0")
	s.AddTool(mcp.NewTool("echo"), wrapped)
	s.AddTool(mcp.NewTool("echo-with-service"), withService)
}

func TestInstrumentedToolHandler_PassesThroughResult(t *testing.T) {
	sc := newTestServerContext(t)

	want := mcp.NewToolResultText("ok")
	wrapped := InstrumentedToolHandler("create-meeting", sc, func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return want, nil
	})

	got, err := wrapped(t.Context(), mcp.CallToolRequest{})
	require.NoError(t, err)
	assert.Same(t, want, got)
}

func TestInstrumentedToolHandler_PassesThroughError(t *testing.T) {
	sc := newTestServerContext(t)

	wantErr := errors.New("handler failed")
	wrapped := InstrumentedToolHandler("delete-meeting", sc, func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return nil, wantErr
	})

	got, err := wrapped(t.Context(), mcp.CallToolRequest{})
	assert.ErrorIs(t, err, wantErr)
	assert.Nil(t, got)
}

func TestInstrumentedToolHandler_NoMetricsConfigured(t *testing.T) {
	sc := newTestServerContext(t)
	require.Nil(t, sc.Metrics())

	// Must not panic when no metrics recorder is set
	wrapped := InstrumentedToolHandler("list-meetings", sc, func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return mcp.NewToolResultText("ok"), nil
	})

	_, err := wrapped(t.Context(), mcp.CallToolRequest{})
	require.NoError(t, err)
}

func TestInstrumentedToolHandlerWithService(t *testing.T) {
	sc := newTestServerContext(t)

	called := false
	wrapped := InstrumentedToolHandlerWithService("get-meeting-details", "calendar", "get", sc, func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		called = true
		return mcp.NewToolResultError("Failed to get meeting details for abc: not found"), nil
	})

	result, err := wrapped(t.Context(), mcp.CallToolRequest{})
	require.NoError(t, err)
	assert.True(t, called)
	assert.True(t, result.IsError)
}
