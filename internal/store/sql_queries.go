package store

import (
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/mlevkin/feedboard/models"
)

const (
	createUser = `INSERT INTO users (username, password_hash, first_name, last_name, email)
    VALUES ($1, $2, $3, $4, $5)
    RETURNING username, password_hash, first_name, last_name, email, created_at;`

	findUserByUsername = `SELECT username, password_hash, first_name, last_name, email, created_at
    FROM users
    WHERE username = $1;`

	deleteFeedbackByOwner = `DELETE FROM feedback
    WHERE username = $1;`

	deleteUserByUsername = `DELETE FROM users
    WHERE username = $1;`

	createFeedback = `INSERT INTO feedback (title, content, username)
    VALUES ($1, $2, $3)
    RETURNING id, title, content, username, created_at, updated_at;`

	findFeedbackByID = `SELECT id, title, content, username, created_at, updated_at
    FROM feedback
    WHERE id = $1;`

	deleteFeedbackByID = `DELETE FROM feedback
    WHERE id = $1;`
)

// feedbackColumns is the canonical column list scanned into models.Feedback.
var feedbackColumns = []string{"id", "title", "content", "username", "created_at", "updated_at"}

// buildListFeedbackByOwnerQuery builds the SELECT returning every feedback
// item owned by username, newest first.
func buildListFeedbackByOwnerQuery(username string) (string, []any, error) {
	return sq.
		Select(feedbackColumns...).
		From(models.Feedback{}.TableName()).
		Where(sq.Eq{"username": username}).
		OrderBy("created_at DESC", "id DESC").
		PlaceholderFormat(sq.Dollar).
		ToSql()
}

// buildUpdateFeedbackQuery builds the UPDATE changing title and content of a
// single feedback item. Ownership is never part of the SET list; the owning
// username of an item cannot change.
func buildUpdateFeedbackQuery(feedback models.Feedback) (string, []any, error) {
	return sq.
		Update(models.Feedback{}.TableName()).
		Set("title", feedback.Title).
		Set("content", feedback.Content).
		Set("updated_at", sq.Expr("CURRENT_TIMESTAMP")).
		Where(sq.Eq{"id": feedback.ID}).
		Suffix("RETURNING " + strings.Join(feedbackColumns, ", ")).
		PlaceholderFormat(sq.Dollar).
		ToSql()
}
