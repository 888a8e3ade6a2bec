package calendar

import (
	"time"

	"github.com/google/uuid"
	calendar "google.golang.org/api/calendar/v3"
)

const (
	// DefaultCalendarID is the calendar all meeting tools operate on.
	DefaultCalendarID = "primary"

	// DefaultTimeZone is used when the caller supplies no timezone.
	DefaultTimeZone = "UTC"

	// DefaultMaxResults bounds a single listing page.
	DefaultMaxResults = 20

	// DefaultListWindowDays is the span of the default listing window.
	DefaultListWindowDays = 7

	// meetSolutionType selects Google Meet as the conferencing solution
	// when requesting a fresh link on creation.
	meetSolutionType = "hangoutsMeet"

	// entryPointVideo marks a user-joinable conference entry point.
	entryPointVideo = "video"
)

// DefaultListWindow returns the default listing bounds for the given
// instant: [now, now+7d], both in UTC.
func DefaultListWindow(now time.Time) (timeMin, timeMax time.Time) {
	now = now.UTC()
	return now, now.AddDate(0, 0, DefaultListWindowDays)
}

// BuildMeetingEvent constructs the insert body for a new meeting.
// A conferenceData.createRequest with a fresh request ID is always
// attached; the backend mints the Meet link when the insert is submitted
// with conference data version 1. Pure apart from the generated request
// ID, which must be unique per call so the backend does not deduplicate
// two distinct creations.
func BuildMeetingEvent(input MeetingInput) *calendar.Event {
	timeZone := input.TimeZone
	if timeZone == "" {
		timeZone = DefaultTimeZone
	}

	event := &calendar.Event{
		Summary: input.Summary,
		Start: &calendar.EventDateTime{
			DateTime: input.Start,
			TimeZone: timeZone,
		},
		End: &calendar.EventDateTime{
			DateTime: input.End,
			TimeZone: timeZone,
		},
		ConferenceData: &calendar.ConferenceData{
			CreateRequest: &calendar.CreateConferenceRequest{
				RequestId: uuid.NewString(),
				ConferenceSolutionKey: &calendar.ConferenceSolutionKey{
					Type: meetSolutionType,
				},
			},
		},
	}

	if input.Description != "" {
		event.Description = input.Description
	}

	if len(input.Attendees) > 0 {
		attendees := make([]*calendar.EventAttendee, 0, len(input.Attendees))
		for _, email := range input.Attendees {
			attendees = append(attendees, &calendar.EventAttendee{Email: email})
		}
		event.Attendees = attendees
	}

	return event
}

// ApplyMeetingPatch merges a sparse patch into an event fetched from the
// backend and returns the same event, ready to submit for update. Fields
// not named by the patch are never altered, so server-populated fields the
// patch does not model (recurrence, status, organizer, attendees,
// conference data) ride through a get/merge/update round trip untouched.
//
// A timezone in the patch is applied to any side whose timestamp is
// patched, and additionally backfilled onto a side that exists but has no
// timezone yet. Backfill never overwrites an existing timezone.
func ApplyMeetingPatch(event *calendar.Event, patch MeetingPatch) *calendar.Event {
	if event == nil {
		return nil
	}

	if patch.Summary != "" {
		event.Summary = patch.Summary
	}
	if patch.Description != "" {
		event.Description = patch.Description
	}

	if patch.Start != "" {
		if event.Start == nil {
			event.Start = &calendar.EventDateTime{}
		}
		event.Start.DateTime = patch.Start
		if patch.TimeZone != "" {
			event.Start.TimeZone = patch.TimeZone
		}
	}

	if patch.End != "" {
		if event.End == nil {
			event.End = &calendar.EventDateTime{}
		}
		event.End.DateTime = patch.End
		if patch.TimeZone != "" {
			event.End.TimeZone = patch.TimeZone
		}
	}

	if patch.TimeZone != "" {
		if event.Start != nil && event.Start.TimeZone == "" {
			event.Start.TimeZone = patch.TimeZone
		}
		if event.End != nil && event.End.TimeZone == "" {
			event.End.TimeZone = patch.TimeZone
		}
	}

	return event
}

// MeetLink resolves the user-facing join URL of an event. The first
// conference entry point of type "video" wins; the legacy hangoutLink
// field is consulted only when no such entry point exists. Returns the
// empty string when the event carries no link at all.
func MeetLink(event *calendar.Event) string {
	if event == nil {
		return ""
	}
	if event.ConferenceData != nil {
		for _, ep := range event.ConferenceData.EntryPoints {
			if ep.EntryPointType == entryPointVideo {
				return ep.Uri
			}
		}
	}
	return event.HangoutLink
}

// ProjectMeetings converts raw events to meeting summaries, preserving
// input order. When onlyWithMeetLink is set, events without a resolvable
// join URL are dropped; otherwise they are included with MeetLink empty.
func ProjectMeetings(events []*calendar.Event, onlyWithMeetLink bool) []MeetingSummary {
	meetings := make([]MeetingSummary, 0, len(events))
	for _, event := range events {
		summary := toMeetingSummary(event)
		if onlyWithMeetLink && summary.MeetLink == "" {
			continue
		}
		meetings = append(meetings, summary)
	}
	return meetings
}
