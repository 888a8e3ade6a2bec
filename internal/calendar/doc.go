// Package calendar provides a client for managing Google Meet meetings
// through the Google Calendar API.
//
// The package has two layers. The client layer wraps the Calendar v3
// events service with the five operations the meeting tools need (insert,
// list, get, update, delete), always negotiating conference data so Meet
// links survive mutations. The pure layer builds insert payloads, merges
// sparse patches into fetched events, extracts the Meet join URL from
// modern and legacy response shapes, and projects raw events to compact
// meeting summaries. The pure layer performs no I/O and never fails;
// missing nested structures are treated as empty.
//
// Example usage:
//
//	ctx := context.Background()
//	client, err := calendar.NewClient(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	timeMin, timeMax := calendar.DefaultListWindow(time.Now())
//	events, err := client.ListUpcoming(ctx, calendar.DefaultCalendarID, timeMin, timeMax, calendar.DefaultMaxResults)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	meetings := calendar.ProjectMeetings(events, true)
package calendar
