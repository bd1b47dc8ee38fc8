package http

import (
	"net/http"

	"github.com/mlevkin/feedboard/internal/logger"
	"github.com/mlevkin/feedboard/internal/render"
	"github.com/mlevkin/feedboard/internal/service"
	"github.com/mlevkin/feedboard/internal/utils"
	"github.com/mlevkin/feedboard/models"
)

// newPage builds the base page context for the current request: session
// identity for the navigation block plus any queued flash messages. Popping
// flashes here means every rendered page consumes them.
func (h *Handler) newPage(w http.ResponseWriter, r *http.Request, title string) render.Page {
	sessionUser, _ := utils.GetUsernameFromContext(r.Context())

	return render.Page{
		Title:       title,
		SessionUser: sessionUser,
		Flashes:     h.popFlashes(w, r),
	}
}

// deny applies the single unauthorized policy: a warning flash and a redirect
// to the login page. Every Guard deny goes through here so anonymous and
// wrong-owner requests are indistinguishable to the caller.
func (h *Handler) deny(w http.ResponseWriter, r *http.Request) {
	logger.FromRequest(r).Warn().
		Str("decision", service.DecisionDeny.String()).
		Str("uri", r.RequestURI).
		Msg("unauthorized request")

	h.setFlash(w, models.FlashWarning, "You are not authorized to perform that action! Please login as the correct user.")
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

// notFound renders the 404 page. Also installed as the router's fallback.
func (h *Handler) notFound(w http.ResponseWriter, r *http.Request) {
	page := h.newPage(w, r, "Not found")
	h.renderer.Render(w, http.StatusNotFound, "not_found", page)
}

// serverError renders the 500 page after logging the cause.
func (h *Handler) serverError(w http.ResponseWriter, r *http.Request, err error) {
	logger.FromRequest(r).Err(err).Msg("request failed")

	page := h.newPage(w, r, "Something went wrong")
	h.renderer.Render(w, http.StatusInternalServerError, "server_error", page)
}
