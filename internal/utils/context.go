// Package utils provides general-purpose helper utilities used across
// different parts of the application: type-safe context keys, HTTP response
// writing, and other common operations.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// UsernameCtxKey is the key under which the session middleware stores the
// authenticated username. An absent value means the request is anonymous.
var UsernameCtxKey = contextKey("username")

// SessionTokenCtxKey is the key under which the session middleware stores the
// raw session token of the current request, so handlers can drop the session
// on logout or account deletion without re-reading the cookie.
var SessionTokenCtxKey = contextKey("sessionToken")

// GetUsernameFromContext retrieves the authenticated username from the
// context.
//
// Returns the username and an ok flag:
//   - ok == true  — a session middleware stored a non-empty username
//   - ok == false — the request is anonymous
func GetUsernameFromContext(ctx context.Context) (string, bool) {
	username, ok := ctx.Value(UsernameCtxKey).(string)
	if !ok || username == "" {
		return "", false
	}
	return username, true
}

// GetSessionTokenFromContext retrieves the raw session token from the
// context, if the request carried a valid session.
func GetSessionTokenFromContext(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(SessionTokenCtxKey).(string)
	if !ok || token == "" {
		return "", false
	}
	return token, true
}
