package invite

import "time"

// Claims is the payload signed into an invitation token. It is never stored
// server side: it exists in a request, in the token string, and again after a
// decode. ExpiresAt is an ISO-8601 UTC timestamp carried as a string claim.
type Claims struct {
	TID          string `json:"tid"`
	InviteeEmail string `json:"invitee_email"`
	InvitedBy    int    `json:"invited_by"`
	Role         string `json:"role"`
	URL          string `json:"url"`
	ExpiresAt    string `json:"expires_at"`
}

// ExpiresAtTime parses the ExpiresAt claim.
func (c Claims) ExpiresAtTime() (time.Time, error) {
	return time.Parse(time.RFC3339, c.ExpiresAt)
}
