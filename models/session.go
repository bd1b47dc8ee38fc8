package models

import "time"

// Session maps an opaque browser token to an authenticated username.
// Sessions live server-side only; the cookie carries nothing but the token.
type Session struct {
	// Token is the opaque identifier stored in the session cookie.
	Token string

	// Username is the identity the session was issued for.
	Username string

	// ExpiresAt is the moment after which the session is no longer valid.
	ExpiresAt time.Time
}

// Expired reports whether the session is past its expiry at the given time.
func (s Session) Expired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}

// Flash levels understood by the page templates.
const (
	FlashInfo    = "info"
	FlashPrimary = "primary"
	FlashWarning = "warning"
)

// Flash is a one-shot message shown to the user on the next rendered page,
// typically across a redirect.
type Flash struct {
	Level   string
	Message string
}
