package calendar

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/oauth2"
	calendar "google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"

	"github.com/meetmcp/meetmcp/internal/google"
)

// conferenceDataVersion is the conference data version negotiated on
// every mutation. Version 1 makes the backend honor createRequest on
// insert and keep existing conference data intact on update.
const conferenceDataVersion = 1

// Client wraps the Google Calendar service
type Client struct {
	svc           *calendar.Service
	account       string // The account this client is associated with
	tokenProvider google.TokenProvider
}

// Account returns the account name this client is associated with
func (c *Client) Account() string {
	return c.account
}

// HasTokenForAccountWithProvider checks if a valid OAuth token exists for the specified account
func HasTokenForAccountWithProvider(account string, provider google.TokenProvider) bool {
	if provider == nil {
		return false
	}
	return provider.HasTokenForAccount(account)
}

// HasTokenForAccount checks if a valid OAuth token exists for the specified account
func HasTokenForAccount(account string) bool {
	provider := google.NewFileTokenProvider()
	return HasTokenForAccountWithProvider(account, provider)
}

// HasToken checks if a valid OAuth token exists for the default account
func HasToken() bool {
	return HasTokenForAccount("default")
}

// GetAuthURLForAccount returns the OAuth URL for authorizing the specified account
func GetAuthURLForAccount(account string) string {
	return google.GetAuthURLForAccount(account)
}

// NewClientForAccountWithProvider creates a new Calendar client with OAuth2 authentication for a specific account
// The OAuth token is retrieved from the provided token provider
func NewClientForAccountWithProvider(ctx context.Context, account string, tokenProvider google.TokenProvider) (*Client, error) {
	if tokenProvider == nil {
		return nil, fmt.Errorf("token provider cannot be nil")
	}

	// Get token from the provided provider
	token, err := tokenProvider.GetTokenForAccount(ctx, account)
	if err != nil {
		return nil, fmt.Errorf("failed to get Google OAuth token for account %s: %w", account, err)
	}

	// Create OAuth2 config and token source
	conf := google.GetOAuthConfig()
	tokenSource := conf.TokenSource(ctx, token)

	// Create HTTP client with the token
	client := oauth2.NewClient(ctx, tokenSource)

	// Force HTTP/1.1 by disabling HTTP/2
	transport := client.Transport.(*oauth2.Transport)
	baseTransport := &http.Transport{
		ForceAttemptHTTP2: false,
	}
	transport.Base = baseTransport

	svc, err := calendar.NewService(ctx, option.WithHTTPClient(client))
	if err != nil {
		return nil, fmt.Errorf("failed to create Calendar service: %w", err)
	}

	return &Client{
		svc:           svc,
		account:       account,
		tokenProvider: tokenProvider,
	}, nil
}

// NewClientForAccount creates a new Calendar client with OAuth2 authentication for a specific account
// Uses the default file-based token provider
func NewClientForAccount(ctx context.Context, account string) (*Client, error) {
	provider := google.NewFileTokenProvider()
	return NewClientForAccountWithProvider(ctx, account, provider)
}

// NewClient creates a new Calendar client with OAuth2 authentication for the default account
func NewClient(ctx context.Context) (*Client, error) {
	return NewClientForAccount(ctx, "default")
}

// NewClientWithProvider creates a new Calendar client with OAuth2 authentication for the default account
// using the provided token provider
func NewClientWithProvider(ctx context.Context, provider google.TokenProvider) (*Client, error) {
	return NewClientForAccountWithProvider(ctx, "default", provider)
}

// InsertMeeting inserts a new meeting event. The body is expected to carry
// a conference create request (see BuildMeetingEvent); conference data
// version 1 is negotiated so the backend mints the Meet link.
func (c *Client) InsertMeeting(ctx context.Context, calendarID string, event *calendar.Event) (*calendar.Event, error) {
	created, err := c.svc.Events.Insert(calendarID, event).
		ConferenceDataVersion(conferenceDataVersion).
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("failed to insert event: %w", err)
	}
	return created, nil
}

// ListUpcoming lists single, expanded event instances in a calendar within
// a time range, ordered by start time. A single bounded page is fetched.
func (c *Client) ListUpcoming(ctx context.Context, calendarID string, timeMin, timeMax time.Time, maxResults int64) ([]*calendar.Event, error) {
	events, err := c.svc.Events.List(calendarID).
		TimeMin(timeMin.Format(time.RFC3339)).
		TimeMax(timeMax.Format(time.RFC3339)).
		SingleEvents(true).
		OrderBy("startTime").
		MaxResults(maxResults).
		ShowDeleted(false).
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	return events.Items, nil
}

// GetEvent retrieves the full raw event resource by ID
func (c *Client) GetEvent(ctx context.Context, calendarID, eventID string) (*calendar.Event, error) {
	event, err := c.svc.Events.Get(calendarID, eventID).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to get event: %w", err)
	}
	return event, nil
}

// UpdateMeeting submits a merged event resource for update. Conference
// data version 1 is negotiated so the backend does not drop existing
// conference data on a partial update.
func (c *Client) UpdateMeeting(ctx context.Context, calendarID, eventID string, event *calendar.Event) (*calendar.Event, error) {
	updated, err := c.svc.Events.Update(calendarID, eventID, event).
		ConferenceDataVersion(conferenceDataVersion).
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("failed to update event: %w", err)
	}
	return updated, nil
}

// DeleteEvent deletes a calendar event. Deleting an already-deleted event
// is a backend-defined error and is surfaced as-is.
func (c *Client) DeleteEvent(ctx context.Context, calendarID, eventID string) error {
	if err := c.svc.Events.Delete(calendarID, eventID).Context(ctx).Do(); err != nil {
		return fmt.Errorf("failed to delete event: %w", err)
	}
	return nil
}

// CreateMeeting builds the insert body from input and inserts it,
// returning the compact creation result.
func (c *Client) CreateMeeting(ctx context.Context, calendarID string, input MeetingInput) (CreatedMeeting, error) {
	created, err := c.InsertMeeting(ctx, calendarID, BuildMeetingEvent(input))
	if err != nil {
		return CreatedMeeting{}, err
	}
	return toCreatedMeeting(created), nil
}

// PatchMeeting fetches the current event, merges the patch into it and
// submits the result for update. The read and the write are the only two
// backend round trips; there is no compensating rollback if the write
// fails after a successful read.
func (c *Client) PatchMeeting(ctx context.Context, calendarID, eventID string, patch MeetingPatch) (*calendar.Event, error) {
	existing, err := c.GetEvent(ctx, calendarID, eventID)
	if err != nil {
		return nil, err
	}
	return c.UpdateMeeting(ctx, calendarID, eventID, ApplyMeetingPatch(existing, patch))
}
