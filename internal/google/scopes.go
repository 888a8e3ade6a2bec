package google

// DefaultOAuthScopes are the Google OAuth scopes required for meeting
// management. The calendar scope covers event create/read/update/delete,
// including conference data.
var DefaultOAuthScopes = []string{
	"https://www.googleapis.com/auth/calendar",
}
