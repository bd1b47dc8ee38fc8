package service

import (
	"context"

	"github.com/mlevkin/feedboard/internal/logger"
	"github.com/mlevkin/feedboard/internal/store"
	"github.com/mlevkin/feedboard/models"
)

// feedbackService is the concrete implementation of [FeedbackService].
// Authorization is not decided here — that is the Guard's job — but the
// service does enforce that the owner of a new item is the identity the
// handler resolved from the session, nothing else.
type feedbackService struct {
	feedbackRepository store.FeedbackRepository

	logger *logger.Logger
}

// NewFeedbackService constructs a [FeedbackService] on top of the given
// repository.
func NewFeedbackService(feedbackRepository store.FeedbackRepository, logger *logger.Logger) FeedbackService {
	return &feedbackService{
		feedbackRepository: feedbackRepository,
		logger:             logger,
	}
}

// Add creates a new feedback item owned by owner.
func (f *feedbackService) Add(ctx context.Context, owner string, form models.FeedbackForm) (models.Feedback, error) {
	if owner == "" {
		return models.Feedback{}, ErrInvalidDataProvided
	}

	feedback := models.Feedback{
		Title:    form.Title,
		Content:  form.Content,
		Username: owner,
	}

	return f.feedbackRepository.CreateFeedback(ctx, feedback)
}

// Get fetches a single item by ID.
func (f *feedbackService) Get(ctx context.Context, id int64) (models.Feedback, error) {
	return f.feedbackRepository.GetFeedback(ctx, id)
}

// ListByOwner returns all items owned by username, newest first.
func (f *feedbackService) ListByOwner(ctx context.Context, username string) ([]models.Feedback, error) {
	if username == "" {
		return nil, ErrInvalidDataProvided
	}

	return f.feedbackRepository.ListFeedbackByOwner(ctx, username)
}

// Update persists new title/content for an existing item. The owning
// username is immutable and not part of the update.
func (f *feedbackService) Update(ctx context.Context, id int64, form models.FeedbackForm) (models.Feedback, error) {
	feedback := models.Feedback{
		ID:      id,
		Title:   form.Title,
		Content: form.Content,
	}

	return f.feedbackRepository.UpdateFeedback(ctx, feedback)
}

// Delete removes a single item by ID.
func (f *feedbackService) Delete(ctx context.Context, id int64) error {
	return f.feedbackRepository.DeleteFeedback(ctx, id)
}
