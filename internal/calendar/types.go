package calendar

import (
	calendar "google.golang.org/api/calendar/v3"
)

// MeetingInput represents the input for creating a new meeting
type MeetingInput struct {
	Summary     string
	Description string
	Start       string // RFC3339 timestamp, passed through verbatim
	End         string // RFC3339 timestamp, passed through verbatim
	TimeZone    string // IANA zone name; DefaultTimeZone when empty
	Attendees   []string
}

// MeetingPatch represents a sparse update to an existing meeting.
// Empty fields are left untouched on the event.
type MeetingPatch struct {
	Summary     string
	Description string
	Start       string // RFC3339 timestamp
	End         string // RFC3339 timestamp
	TimeZone    string // applied to patched sides and backfilled onto sides missing one
}

// MeetingSummary is the compact projection of an event used for listing
type MeetingSummary struct {
	EventID  string                  `json:"eventId"`
	Summary  string                  `json:"summary,omitempty"`
	Start    *calendar.EventDateTime `json:"start,omitempty"`
	End      *calendar.EventDateTime `json:"end,omitempty"`
	MeetLink string                  `json:"meetLink,omitempty"`
	HTMLLink string                  `json:"htmlLink,omitempty"`
}

// CreatedMeeting is the result shape returned after creating a meeting
type CreatedMeeting struct {
	EventID     string                  `json:"eventId"`
	HTMLLink    string                  `json:"htmlLink,omitempty"`
	HangoutLink string                  `json:"hangoutLink,omitempty"` // legacy field
	MeetLink    string                  `json:"meetLink,omitempty"`
	Summary     string                  `json:"summary,omitempty"`
	Start       *calendar.EventDateTime `json:"start,omitempty"`
	End         *calendar.EventDateTime `json:"end,omitempty"`
}

// toCreatedMeeting converts a freshly inserted event to the create result shape
func toCreatedMeeting(event *calendar.Event) CreatedMeeting {
	if event == nil {
		return CreatedMeeting{}
	}
	return CreatedMeeting{
		EventID:     event.Id,
		HTMLLink:    event.HtmlLink,
		HangoutLink: event.HangoutLink,
		MeetLink:    MeetLink(event),
		Summary:     event.Summary,
		Start:       event.Start,
		End:         event.End,
	}
}

// toMeetingSummary converts a raw event to the listing projection
func toMeetingSummary(event *calendar.Event) MeetingSummary {
	if event == nil {
		return MeetingSummary{}
	}
	return MeetingSummary{
		EventID:  event.Id,
		Summary:  event.Summary,
		Start:    event.Start,
		End:      event.End,
		MeetLink: MeetLink(event),
		HTMLLink: event.HtmlLink,
	}
}
