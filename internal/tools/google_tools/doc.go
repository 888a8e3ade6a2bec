// Package google_tools registers the OAuth bootstrap tools:
// google_get_auth_url hands out the authorization URL for an account
// and google_save_auth_code exchanges the authorization code for
// tokens and persists them.
package google_tools
