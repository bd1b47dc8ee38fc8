package models

import "time"

// Feedback is a note authored by a single user. Ownership is carried by the
// Username column; every item belongs to exactly one user and is removed
// together with its owner.
type Feedback struct {
	// ID is the server-assigned surrogate identifier.
	ID int64 `json:"id"`

	// Title is a short bounded-length heading.
	Title string `json:"title"`

	// Content is the unbounded note body.
	Content string `json:"content"`

	// Username identifies the owning user. Authorization decisions for
	// feedback operations are made against this field, never against a
	// request path parameter.
	Username string `json:"username"`

	// CreatedAt is the timestamp when the item was created.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is the timestamp of the last title/content change.
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the Feedback model.
func (f Feedback) TableName() string {
	return "feedback"
}
