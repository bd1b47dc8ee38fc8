package http

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mlevkin/feedboard/internal/logger"
	"github.com/mlevkin/feedboard/internal/service"
	"github.com/mlevkin/feedboard/internal/store"
	"github.com/mlevkin/feedboard/internal/utils"
	"github.com/mlevkin/feedboard/models"
)

// profileData is the view data of the profile page.
type profileData struct {
	User     models.User
	Feedback []models.Feedback
}

// resolveUser fetches the user named in the path and asks the Guard whether
// the session identity may act on it. A nil error with DecisionAllow is the
// only combination under which the returned user is usable.
func (h *Handler) resolveUser(r *http.Request) (models.User, service.Decision, error) {
	username := chi.URLParam(r, "username")
	sessionUser, _ := utils.GetUsernameFromContext(r.Context())

	user, err := h.services.UserService.Get(r.Context(), username)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return models.User{}, h.services.Guard.AuthorizeResource(sessionUser, "", false), nil
		}
		return models.User{}, service.DecisionDeny, err
	}

	return user, h.services.Guard.AuthorizeResource(sessionUser, user.Username, true), nil
}

// userProfile renders the owner's profile with all their feedback.
func (h *Handler) userProfile(w http.ResponseWriter, r *http.Request) {
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

	feedback, err := h.services.FeedbackService.ListByOwner(r.Context(), user.Username)
	if err != nil {
		h.serverError(w, r, err)
		return
	}

	page := h.newPage(w, r, user.FullName())
	page.Data = profileData{User: user, Feedback: feedback}
	h.renderer.Render(w, http.StatusOK, "profile", page)
}

// deleteUser removes the account, its feedback and its sessions, then sends
// the now-anonymous browser back to the login page.
func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
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

	if err := h.services.UserService.Delete(r.Context(), user.Username); err != nil {
		h.serverError(w, r, err)
		return
	}

	logger.FromRequest(r).Info().Str("username", user.Username).Msg("account deleted")

	h.clearSessionCookie(w)
	h.setFlash(w, models.FlashInfo, "Your account and all your feedback have been deleted.")
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}
