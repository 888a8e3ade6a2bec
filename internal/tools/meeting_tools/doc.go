// Package meeting_tools registers the five MCP tools for managing
// Google Calendar meetings with Meet links: create-meeting,
// list-meetings, get-meeting-details, update-meeting and
// delete-meeting.
//
// Handlers translate tool arguments into calendar operations and
// return JSON results. Every backend failure is converted at this
// boundary into a single tool-level error carrying the operation,
// the target event ID when applicable, and the underlying cause.
package meeting_tools
