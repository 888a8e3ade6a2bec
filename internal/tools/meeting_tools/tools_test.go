package meeting_tools

import (
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

func newRequest(args map[string]interface{}) mcp.CallToolRequest {
	request := mcp.CallToolRequest{}
	request.Params.Arguments = args
	return request
}

func resultText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	require.NotEmpty(t, result.Content)
	text, ok := result.Content[0].(mcp.TextContent)
	require.True(t, ok)
	return text.Text
}

func TestRegisterMeetingTools(t *testing.T) {
	sc := newTestServerContext(t)
	s := mcpserver.NewMCPServer("test", "0.0.0")

	require.NoError(t, RegisterMeetingTools(s, sc, false))
}

func TestRegisterMeetingTools_ReadOnly(t *testing.T) {
	sc := newTestServerContext(t)
	s := mcpserver.NewMCPServer("test", "0.0.0")

	require.NoError(t, RegisterMeetingTools(s, sc, true))
}

func TestHandleCreateMeeting_RequiredArgs(t *testing.T) {
	sc := newTestServerContext(t)

	tests := []struct {
		name string
		args map[string]interface{}
		want string
	}{
		{"missing summary", map[string]interface{}{}, "summary is required"},
		{"missing start", map[string]interface{}{"summary": "Standup"}, "start_iso is required"},
		{"missing end", map[string]interface{}{"summary": "Standup", "start_iso": "2026-01-15T10:00:00Z"}, "end_iso is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := handleCreateMeeting(t.Context(), newRequest(tt.args), sc)
			require.NoError(t, err)
			assert.True(t, result.IsError)
			assert.Equal(t, tt.want, resultText(t, result))
		})
	}
}

func TestHandleCreateMeeting_NoToken(t *testing.T) {
	sc := newTestServerContext(t)

	result, err := handleCreateMeeting(t.Context(), newRequest(map[string]interface{}{
		"summary":   "Standup",
		"start_iso": "2026-01-15T10:00:00Z",
		"end_iso":   "2026-01-15T10:30:00Z",
	}), sc)
	require.NoError(t, err)
	assert.True(t, result.IsError)
	assert.Contains(t, resultText(t, result), "google_save_auth_code")
}

func TestHandleGetMeetingDetails_RequiresEventID(t *testing.T) {
	sc := newTestServerContext(t)

	result, err := handleGetMeetingDetails(t.Context(), newRequest(map[string]interface{}{}), sc)
	require.NoError(t, err)
	assert.True(t, result.IsError)
	assert.Equal(t, "event_id is required", resultText(t, result))
}

func TestHandleUpdateMeeting_RequiresEventID(t *testing.T) {
	sc := newTestServerContext(t)

	result, err := handleUpdateMeeting(t.Context(), newRequest(map[string]interface{}{}), sc)
	require.NoError(t, err)
	assert.True(t, result.IsError)
	assert.Equal(t, "event_id is required", resultText(t, result))
}

func TestHandleDeleteMeeting_RequiresEventID(t *testing.T) {
	sc := newTestServerContext(t)

	result, err := handleDeleteMeeting(t.Context(), newRequest(map[string]interface{}{}), sc)
	require.NoError(t, err)
	assert.True(t, result.IsError)
	assert.Equal(t, "event_id is required", resultText(t, result))
}

func TestHandleListMeetings_InvalidWindow(t *testing.T) {
	sc := newTestServerContext(t)

	result, err := handleListMeetings(t.Context(), newRequest(map[string]interface{}{
		"time_min_iso": "not-a-timestamp",
	}), sc)
	require.NoError(t, err)
	assert.True(t, result.IsError)
	assert.Contains(t, resultText(t, result), "invalid time_min_iso")
}

func TestToolFailure(t *testing.T) {
	tests := []struct {
		operation string
		want      string
	}{
		{"create meeting", "Failed to create meeting: backend down"},
		{"list meetings", "Failed to list meetings: backend down"},
		{"get meeting details for abc123", "Failed to get meeting details for abc123: backend down"},
		{"update meeting abc123", "Failed to update meeting abc123: backend down"},
		{"delete meeting abc123", "Failed to delete meeting abc123: backend down"},
	}

	cause := errors.New("backend down")
	for _, tt := range tests {
		t.Run(tt.operation, func(t *testing.T) {
			result := toolFailure(tt.operation, cause)
			assert.True(t, result.IsError)
			assert.Equal(t, tt.want, resultText(t, result))
		})
	}
}

func TestJSONResult(t *testing.T) {
	result, err := jsonResult("delete meeting abc123", deleteResult{Status: "deleted", EventID: "abc123"})
	require.NoError(t, err)
	assert.False(t, result.IsError)

	text := resultText(t, result)
	assert.Contains(t, text, `"status": "deleted"`)
	assert.Contains(t, text, `"eventId": "abc123"`)
}
