package models

import "time"

// User represents a registered account. The username doubles as the primary
// key and as the identity stored in sessions.
// PasswordHash is a bcrypt digest; the plaintext password never leaves the
// registration or login request.
type User struct {
	// Username is the unique account identifier, chosen by the user.
	Username string `json:"username"`

	// PasswordHash is the bcrypt hash of the account password.
	// It is never exposed via JSON or rendered in any template.
	PasswordHash string `json:"-"`

	// FirstName is the user's given name, shown on the profile page.
	FirstName string `json:"first_name"`

	// LastName is the user's family name, shown on the profile page.
	LastName string `json:"last_name"`

	// Email is the unique contact address of the account.
	Email string `json:"email"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"created_at"`
}

// FullName returns the display name used on profile pages.
func (u User) FullName() string {
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
