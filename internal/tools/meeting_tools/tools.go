package meeting_tools

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/meetmcp/meetmcp/internal/calendar"
	"github.com/meetmcp/meetmcp/internal/google"
	"github.com/meetmcp/meetmcp/internal/logging"
	"github.com/meetmcp/meetmcp/internal/server"
	"github.com/meetmcp/meetmcp/internal/tools/common"
)

// deleteResult is the shape returned by delete-meeting
type deleteResult struct {
	Status  string `json:"status"`
	EventID string `json:"eventId"`
}

// getCalendarClient retrieves or creates a Calendar client for the specified account
func getCalendarClient(ctx context.Context, account string, sc *server.ServerContext) (*calendar.Client, error) {
	client := sc.CalendarClientForAccount(account)
	if client == nil {
		// Check if token exists before trying to create client
		if !calendar.HasTokenForAccount(account) {
			return nil, fmt.Errorf("%s", google.GetAuthenticationErrorMessage(account))
		}

		var err error
		client, err = calendar.NewClientForAccount(ctx, account)
		if err != nil {
			return nil, fmt.Errorf("failed to create Calendar client for account %s: %w", account, err)
		}
		sc.SetCalendarClientForAccount(account, client)
	}

	return client, nil
}

// toolFailure converts any backend failure into the uniform tool-level
// error surfaced to the caller. The operation string names what was being
// attempted, including the target event ID where one exists.
func toolFailure(operation string, err error) *mcp.CallToolResult {
	return mcp.NewToolResultError(fmt.Sprintf("Failed to %s: %v", operation, err))
}

// jsonResult marshals v as an indented JSON tool result
func jsonResult(operation string, v interface{}) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return toolFailure(operation, err), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}

// RegisterMeetingTools registers all meeting-related tools with the MCP server.
// When readOnly is set, only list-meetings and get-meeting-details are registered.
func RegisterMeetingTools(s *mcpserver.MCPServer, sc *server.ServerContext, readOnly bool) error {
	listMeetingsTool := mcp.NewTool("list-meetings",
		mcp.WithDescription("List upcoming Google Calendar meetings, by default only those with a Google Meet link"),
		mcp.WithString("account",
			mcp.Description("Account name (default: 'default'). Used to manage multiple Google accounts."),
		),
		mcp.WithString("time_min_iso",
			mcp.Description("Start of the listing window as RFC3339 timestamp (default: now)"),
		),
		mcp.WithString("time_max_iso",
			mcp.Description("End of the listing window as RFC3339 timestamp (default: now + 7 days)"),
		),
		mcp.WithNumber("max_results",
			mcp.Description("Maximum number of events to return (default: 20)"),
		),
		mcp.WithBoolean("only_with_meet_link",
			mcp.Description("Only include events that have a Google Meet link (default: true)"),
		),
	)

	s.AddTool(listMeetingsTool, common.InstrumentedToolHandlerWithService("list-meetings", "calendar", "list", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleListMeetings(ctx, request, sc)
		}))

	getMeetingTool := mcp.NewTool("get-meeting-details",
		mcp.WithDescription("Get the full Google Calendar event resource for a meeting"),
		mcp.WithString("account",
			mcp.Description("Account name (default: 'default'). Used to manage multiple Google accounts."),
		),
		mcp.WithString("event_id",
			mcp.Required(),
			mcp.Description("The calendar event ID of the meeting"),
		),
	)

	s.AddTool(getMeetingTool, common.InstrumentedToolHandlerWithService("get-meeting-details", "calendar", "get", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleGetMeetingDetails(ctx, request, sc)
		}))

	if readOnly {
		return nil
	}

	createMeetingTool := mcp.NewTool("create-meeting",
		mcp.WithDescription("Create a Google Calendar event with a fresh Google Meet link"),
		mcp.WithString("account",
			mcp.Description("Account name (default: 'default'). Used to manage multiple Google accounts."),
		),
		mcp.WithString("summary",
			mcp.Required(),
			mcp.Description("Meeting title"),
		),
		mcp.WithString("start_iso",
			mcp.Required(),
			mcp.Description("Meeting start as RFC3339 timestamp (e.g., '2026-01-15T10:00:00')"),
		),
		mcp.WithString("end_iso",
			mcp.Required(),
			mcp.Description("Meeting end as RFC3339 timestamp"),
		),
		mcp.WithString("description",
			mcp.Description("Meeting description (optional)"),
		),
		mcp.WithString("attendees",
			mcp.Description("Comma-separated list of attendee email addresses (optional)"),
		),
		mcp.WithString("timezone_str",
			mcp.Description("IANA timezone name for start and end (default: 'UTC')"),
		),
	)

	s.AddTool(createMeetingTool, common.InstrumentedToolHandlerWithService("create-meeting", "calendar", "insert", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleCreateMeeting(ctx, request, sc)
		}))

	updateMeetingTool := mcp.NewTool("update-meeting",
		mcp.WithDescription("Update selected fields of an existing meeting, preserving everything else including its Meet link"),
		mcp.WithString("account",
			mcp.Description("Account name (default: 'default'). Used to manage multiple Google accounts."),
		),
		mcp.WithString("event_id",
			mcp.Required(),
			mcp.Description("The calendar event ID of the meeting to update"),
		),
		mcp.WithString("summary",
			mcp.Description("New meeting title (optional)"),
		),
		mcp.WithString("description",
			mcp.Description("New meeting description (optional)"),
		),
		mcp.WithString("start_iso",
			mcp.Description("New meeting start as RFC3339 timestamp (optional)"),
		),
		mcp.WithString("end_iso",
			mcp.Description("New meeting end as RFC3339 timestamp (optional)"),
		),
		mcp.WithString("timezone_str",
			mcp.Description("IANA timezone name applied to changed timestamps (default: 'UTC' when a timestamp changes)"),
		),
	)

	s.AddTool(updateMeetingTool, common.InstrumentedToolHandlerWithService("update-meeting", "calendar", "update", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleUpdateMeeting(ctx, request, sc)
		}))

	deleteMeetingTool := mcp.NewTool("delete-meeting",
		mcp.WithDescription("Delete a meeting from Google Calendar"),
		mcp.WithString("account",
			mcp.Description("Account name (default: 'default'). Used to manage multiple Google accounts."),
		),
		mcp.WithString("event_id",
			mcp.Required(),
			mcp.Description("The calendar event ID of the meeting to delete"),
		),
	)

	s.AddTool(deleteMeetingTool, common.InstrumentedToolHandlerWithService("delete-meeting", "calendar", "delete", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleDeleteMeeting(ctx, request, sc)
		}))

	return nil
}

func handleCreateMeeting(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	account := common.GetAccountFromArgs(args)

	summary, ok := args["summary"].(string)
	if !ok || summary == "" {
		return mcp.NewToolResultError("summary is required"), nil
	}

	startISO, ok := args["start_iso"].(string)
	if !ok || startISO == "" {
		return mcp.NewToolResultError("start_iso is required"), nil
	}

	endISO, ok := args["end_iso"].(string)
	if !ok || endISO == "" {
		return mcp.NewToolResultError("end_iso is required"), nil
	}

	input := calendar.MeetingInput{
		Summary: summary,
		Start:   startISO,
		End:     endISO,
	}

	if description, ok := args["description"].(string); ok {
		input.Description = description
	}

	if timeZone, ok := args["timezone_str"].(string); ok {
		input.TimeZone = timeZone
	}

	if attendeesStr, ok := args["attendees"].(string); ok && attendeesStr != "" {
		input.Attendees = strings.Split(attendeesStr, ",")
		for i := range input.Attendees {
			input.Attendees[i] = strings.TrimSpace(input.Attendees[i])
		}
	}

	client, err := getCalendarClient(ctx, account, sc)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	for _, email := range input.Attendees {
		slog.Debug("inviting attendee", logging.Account(account), logging.UserHash(email))
	}

	created, err := client.CreateMeeting(ctx, calendar.DefaultCalendarID, input)
	if err != nil {
		return toolFailure("create meeting", err), nil
	}

	return jsonResult("create meeting", created)
}

func handleListMeetings(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	account := common.GetAccountFromArgs(args)

	timeMin, timeMax := calendar.DefaultListWindow(time.Now())

	if timeMinISO, ok := args["time_min_iso"].(string); ok && timeMinISO != "" {
		parsed, err := time.Parse(time.RFC3339, timeMinISO)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid time_min_iso: %v", err)), nil
		}
		timeMin = parsed
	}

	if timeMaxISO, ok := args["time_max_iso"].(string); ok && timeMaxISO != "" {
		parsed, err := time.Parse(time.RFC3339, timeMaxISO)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid time_max_iso: %v", err)), nil
		}
		timeMax = parsed
	}

	maxResults := int64(calendar.DefaultMaxResults)
	if maxResultsVal, ok := args["max_results"].(float64); ok && maxResultsVal > 0 {
		maxResults = int64(maxResultsVal)
	}

	onlyWithMeetLink := true
	if onlyVal, ok := args["only_with_meet_link"].(bool); ok {
		onlyWithMeetLink = onlyVal
	}

	client, err := getCalendarClient(ctx, account, sc)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	events, err := client.ListUpcoming(ctx, calendar.DefaultCalendarID, timeMin, timeMax, maxResults)
	if err != nil {
		return toolFailure("list meetings", err), nil
	}

	return jsonResult("list meetings", calendar.ProjectMeetings(events, onlyWithMeetLink))
}

func handleGetMeetingDetails(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	account := common.GetAccountFromArgs(args)

	eventID, ok := args["event_id"].(string)
	if !ok || eventID == "" {
		return mcp.NewToolResultError("event_id is required"), nil
	}

	client, err := getCalendarClient(ctx, account, sc)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	operation := fmt.Sprintf("get meeting details for %s", eventID)

	event, err := client.GetEvent(ctx, calendar.DefaultCalendarID, eventID)
	if err != nil {
		return toolFailure(operation, err), nil
	}

	return jsonResult(operation, event)
}

func handleUpdateMeeting(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	account := common.GetAccountFromArgs(args)

	eventID, ok := args["event_id"].(string)
	if !ok || eventID == "" {
		return mcp.NewToolResultError("event_id is required"), nil
	}

	patch := calendar.MeetingPatch{}
	if summary, ok := args["summary"].(string); ok {
		patch.Summary = summary
	}
	if description, ok := args["description"].(string); ok {
		patch.Description = description
	}
	if startISO, ok := args["start_iso"].(string); ok {
		patch.Start = startISO
	}
	if endISO, ok := args["end_iso"].(string); ok {
		patch.End = endISO
	}
	if timeZone, ok := args["timezone_str"].(string); ok {
		patch.TimeZone = timeZone
	}

	// A timestamp change without an explicit timezone lands in UTC.
	// Without a timestamp change the timezone stays untouched unless the
	// caller supplied one.
	if patch.TimeZone == "" && (patch.Start != "" || patch.End != "") {
		patch.TimeZone = calendar.DefaultTimeZone
	}

	client, err := getCalendarClient(ctx, account, sc)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	operation := fmt.Sprintf("update meeting %s", eventID)

	updated, err := client.PatchMeeting(ctx, calendar.DefaultCalendarID, eventID, patch)
	if err != nil {
		return toolFailure(operation, err), nil
	}

	return jsonResult(operation, updated)
}

func handleDeleteMeeting(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	account := common.GetAccountFromArgs(args)

	eventID, ok := args["event_id"].(string)
	if !ok || eventID == "" {
		return mcp.NewToolResultError("event_id is required"), nil
	}

	client, err := getCalendarClient(ctx, account, sc)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	operation := fmt.Sprintf("delete meeting %s", eventID)

	if err := client.DeleteEvent(ctx, calendar.DefaultCalendarID, eventID); err != nil {
		return toolFailure(operation, err), nil
	}

	return jsonResult(operation, deleteResult{Status: "deleted", EventID: eventID})
}
