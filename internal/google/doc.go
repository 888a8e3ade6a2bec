// Package google provides OAuth2 authentication for the Google Calendar API.
//
// It owns the OAuth2 configuration, the per-account token files stored in
// the user cache directory, and the TokenProvider abstraction used by the
// calendar client to obtain credentials.
package google
