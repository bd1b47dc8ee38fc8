package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/mlevkin/feedboard/internal/logger"
	"github.com/mlevkin/feedboard/models"
)

// feedbackRepository is the SQL-backed implementation of [FeedbackRepository].
// It executes all feedback CRUD operations against the "feedback" table.
//
// Every public method obtains a context-scoped logger via [logger.FromContext]
// so that all database interactions are traced with structured fields.
type feedbackRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewFeedbackRepository constructs a [FeedbackRepository] backed by the
// provided database connection and logger.
func NewFeedbackRepository(db *DB, logger *logger.Logger) FeedbackRepository {
	logger.Debug().Msg("creating feedback repository")
	return &feedbackRepository{
		db:     db,
		logger: logger,
	}
}

// CreateFeedback persists a new item and returns it with the server-assigned
// ID and timestamps populated from the RETURNING clause.
func (r *feedbackRepository) CreateFeedback(ctx context.Context, feedback models.Feedback) (models.Feedback, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createFeedback,
		feedback.Title, feedback.Content, feedback.Username)

	var created models.Feedback
	if err := scanFeedback(row, &created); err != nil {
		log.Err(err).Str("func", "*feedbackRepository.CreateFeedback").
			Str("username", feedback.Username).Msg("error creating feedback")
		return models.Feedback{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return created, nil
}

// GetFeedback retrieves a single item by its surrogate ID.
//
// Returns [ErrFeedbackNotFound] when the ID does not exist.
func (r *feedbackRepository) GetFeedback(ctx context.Context, id int64) (models.Feedback, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, findFeedbackByID, id)

	var found models.Feedback
	if err := scanFeedback(row, &found); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Feedback{}, ErrFeedbackNotFound
		}

		log.Err(err).Str("func", "*feedbackRepository.GetFeedback").
			Int64("id", id).Msg("error: feedback lookup failed")
		return models.Feedback{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return found, nil
}

// ListFeedbackByOwner returns every item owned by username, newest first.
func (r *feedbackRepository) ListFeedbackByOwner(ctx context.Context, username string) ([]models.Feedback, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListFeedbackByOwnerQuery(username)
	if err != nil {
		log.Err(err).Str("func", "*feedbackRepository.ListFeedbackByOwner").
			Str("username", username).Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*feedbackRepository.ListFeedbackByOwner").
			Str("username", username).Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	results := make([]models.Feedback, 0, 16)
	for rows.Next() {
		var item models.Feedback
		if scanErr := rows.Scan(&item.ID, &item.Title, &item.Content,
			&item.Username, &item.CreatedAt, &item.UpdatedAt); scanErr != nil {
			log.Err(scanErr).Str("func", "*feedbackRepository.ListFeedbackByOwner").
				Str("username", username).Msg("failed to scan feedback row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		results = append(results, item)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "*feedbackRepository.ListFeedbackByOwner").
			Str("username", username).Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return results, nil
}

// UpdateFeedback persists new title/content for an existing item and returns
// the updated row. The owning username is deliberately not part of the
// update; ownership of an item never changes.
//
// Returns [ErrFeedbackNotFound] when the ID does not exist.
func (r *feedbackRepository) UpdateFeedback(ctx context.Context, feedback models.Feedback) (models.Feedback, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateFeedbackQuery(feedback)
	if err != nil {
		log.Err(err).Str("func", "*feedbackRepository.UpdateFeedback").
			Int64("id", feedback.ID).Msg("failed to build query")
		return models.Feedback{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	row := r.db.QueryRowContext(ctx, query, args...)

	var updated models.Feedback
	if err = scanFeedback(row, &updated); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Feedback{}, ErrFeedbackNotFound
		}

		log.Err(err).Str("func", "*feedbackRepository.UpdateFeedback").
			Int64("id", feedback.ID).Msg("error updating feedback")
		return models.Feedback{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return updated, nil
}

// DeleteFeedback removes a single item by ID.
//
// Returns [ErrFeedbackNotFound] when no row was deleted.
func (r *feedbackRepository) DeleteFeedback(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteFeedbackByID, id)
	if err != nil {
		log.Err(err).Str("func", "*feedbackRepository.DeleteFeedback").
			Int64("id", id).Msg("error deleting feedback")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return ErrFeedbackNotFound
	}

	return nil
}

// scanFeedback scans the canonical feedback column set from a single row.
func scanFeedback(row *sql.Row, dst *models.Feedback) error {
	return row.Scan(&dst.ID, &dst.Title, &dst.Content,
		&dst.Username, &dst.CreatedAt, &dst.UpdatedAt)
}
