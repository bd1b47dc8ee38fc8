package http

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/mlevkin/feedboard/internal/logger"
	"github.com/mlevkin/feedboard/internal/service"
	"github.com/mlevkin/feedboard/internal/store"
	"github.com/mlevkin/feedboard/internal/utils"
	"github.com/mlevkin/feedboard/models"
)

// feedbackFormData is the view data of the shared add/edit feedback form.
type feedbackFormData struct {
	Heading string
	Action  string
}

// resolveFeedback fetches the feedback named by the {id} path parameter and
// asks the Guard. Ownership comes from the row itself, so a request cannot
// widen its reach by naming someone else's item.
func (h *Handler) resolveFeedback(r *http.Request) (models.Feedback, service.Decision, error) {
	sessionUser, _ := utils.GetUsernameFromContext(r.Context())

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		return models.Feedback{}, h.services.Guard.AuthorizeResource(sessionUser, "", false), nil
	}

	feedback, err := h.services.FeedbackService.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrFeedbackNotFound) {
			return models.Feedback{}, h.services.Guard.AuthorizeResource(sessionUser, "", false), nil
		}
		return models.Feedback{}, service.DecisionDeny, err
	}

	return feedback, h.services.Guard.AuthorizeResource(sessionUser, feedback.Username, true), nil
}

// addFeedbackForm shows an empty feedback form scoped to the profile owner.
func (h *Handler) addFeedbackForm(w http.ResponseWriter, r *http.Request) {
	user, decision, err := h.resolveUser(r)
	if err != nil {
		h.serverError(w, r, err)
		return
	}

	switch decision {
	case service.DecisionNotFound:
		h.notFound(w, r)
		return
	case service.DecisionDeny:
		h.deny(w, r)
		return
	}

	page := h.newPage(w, r, "Add feedback")
	page.Form = models.FeedbackForm{}
	page.Data = feedbackFormData{
		Heading: "Add feedback",
		Action:  fmt.Sprintf("/users/%s/feedback/add", user.Username),
	}
	h.renderer.Render(w, http.StatusOK, "feedback_form", page)
}

// addFeedback creates a feedback item. The owner of the new item is always
// the session identity, regardless of the path parameter.
func (h *Handler) addFeedback(w http.ResponseWriter, r *http.Request) {
	user, decision, err := h.resolveUser(r)
	if err != nil {
		h.serverError(w, r, err)
		return
	}

	switch decision {
	case service.DecisionNotFound:
		h.notFound(w, r)
		return
	case service.DecisionDeny:
		h.deny(w, r)
		return
	}

	form, err := parseFeedbackForm(r)
	if err != nil {
		h.serverError(w, r, err)
		return
	}

	fieldErrors, err := h.validator.Validate(form)
	if err != nil {
		h.serverError(w, r, err)
		return
	}
	if !fieldErrors.Empty() {
		page := h.newPage(w, r, "Add feedback")
		page.Form = form
		page.Errors = fieldErrors
		page.Data = feedbackFormData{
			Heading: "Add feedback",
			Action:  fmt.Sprintf("/users/%s/feedback/add", user.Username),
		}
		h.renderer.Render(w, http.StatusUnprocessableEntity, "feedback_form", page)
		return
	}

	sessionUser, _ := utils.GetUsernameFromContext(r.Context())
	feedback, err := h.services.FeedbackService.Add(r.Context(), sessionUser, form)
	if err != nil {
		h.serverError(w, r, err)
		return
	}

	logger.FromRequest(r).Info().Int64("feedback_id", feedback.ID).Msg("feedback added")

	h.setFlash(w, models.FlashInfo, "Feedback added.")
	http.Redirect(w, r, "/users/"+sessionUser, http.StatusSeeOther)
}

// updateFeedbackForm shows the edit form pre-filled with the stored item.
func (h *Handler) updateFeedbackForm(w http.ResponseWriter, r *http.Request) {
	feedback, decision, err := h.resolveFeedback(r)
	if err != nil {
		h.serverError(w, r, err)
		return
	}

	switch decision {
	case service.DecisionNotFound:
		h.notFound(w, r)
		return
	case service.DecisionDeny:
		h.deny(w, r)
		return
	}

	page := h.newPage(w, r, "Edit feedback")
	page.Form = models.FeedbackForm{Title: feedback.Title, Content: feedback.Content}
	page.Data = feedbackFormData{
		Heading: "Edit feedback",
		Action:  fmt.Sprintf("/feedback/%d/update", feedback.ID),
	}
	h.renderer.Render(w, http.StatusOK, "feedback_form", page)
}

// updateFeedback persists new title/content for an owned item.
func (h *Handler) updateFeedback(w http.ResponseWriter, r *http.Request) {
	feedback, decision, err := h.resolveFeedback(r)
	if err != nil {
		h.serverError(w, r, err)
		return
	}

	switch decision {
	case service.DecisionNotFound:
		h.notFound(w, r)
		return
	case service.DecisionDeny:
		h.deny(w, r)
		return
	}

	form, err := parseFeedbackForm(r)
	if err != nil {
		h.serverError(w, r, err)
		return
	}

	fieldErrors, err := h.validator.Validate(form)
	if err != nil {
		h.serverError(w, r, err)
		return
	}
	if !fieldErrors.Empty() {
		page := h.newPage(w, r, "Edit feedback")
		page.Form = form
		page.Errors = fieldErrors
		page.Data = feedbackFormData{
			Heading: "Edit feedback",
			Action:  fmt.Sprintf("/feedback/%d/update", feedback.ID),
		}
		h.renderer.Render(w, http.StatusUnprocessableEntity, "feedback_form", page)
		return
	}

	if _, err := h.services.FeedbackService.Update(r.Context(), feedback.ID, form); err != nil {
		h.serverError(w, r, err)
		return
	}

	logger.FromRequest(r).Info().Int64("feedback_id", feedback.ID).Msg("feedback updated")

	h.setFlash(w, models.FlashInfo, "Feedback updated.")
	http.Redirect(w, r, "/users/"+feedback.Username, http.StatusSeeOther)
}

// deleteFeedback removes a single owned item.
func (h *Handler) deleteFeedback(w http.ResponseWriter, r *http.Request) {
	feedback, decision, err := h.resolveFeedback(r)
	if err != nil {
		h.serverError(w, r, err)
		return
	}

	switch decision {
	case service.DecisionNotFound:
		h.notFound(w, r)
		return
	case service.DecisionDeny:
		h.deny(w, r)
		return
	}

	if err := h.services.FeedbackService.Delete(r.Context(), feedback.ID); err != nil {
		h.serverError(w, r, err)
		return
	}

	logger.FromRequest(r).Info().Int64("feedback_id", feedback.ID).Msg("feedback deleted")

	h.setFlash(w, models.FlashInfo, "Feedback deleted.")
	http.Redirect(w, r, "/users/"+feedback.Username, http.StatusSeeOther)
}
