package http

import (
	"encoding/base64"
	"encoding/json"
	"net/http"

	"github.com/mlevkin/feedboard/internal/logger"
	"github.com/mlevkin/feedboard/models"
)

// flashCookieName carries one-shot notices across a redirect. Flashes ride a
// cookie rather than the session store so that anonymous visitors (for whom
// no session exists yet) still see them.
const flashCookieName = "flash"

// setFlash queues a notice for the next rendered page.
func (h *Handler) setFlash(w http.ResponseWriter, level, message string) {
	payload, err := json.Marshal([]models.Flash{{Level: level, Message: message}})
	if err != nil {
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     flashCookieName,
		Value:    base64.RawURLEncoding.EncodeToString(payload),
		Path:     "/",
		HttpOnly: true,
		Secure:   h.secureCookies,
		SameSite: http.SameSiteLaxMode,
	})
}

// popFlashes consumes and clears any queued notices. A malformed cookie is
// discarded silently.
func (h *Handler) popFlashes(w http.ResponseWriter, r *http.Request) []models.Flash {
	cookie, err := r.Cookie(flashCookieName)
	if err != nil || cookie.Value == "" {
		return nil
	}

	http.SetCookie(w, &http.Cookie{
		Name:     flashCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.secureCookies,
		SameSite: http.SameSiteLaxMode,
	})

	payload, err := base64.RawURLEncoding.DecodeString(cookie.Value)
	if err != nil {
		logger.FromRequest(r).Debug().Msg("undecodable flash cookie dropped")
		return nil
	}

	var flashes []models.Flash
	if err := json.Unmarshal(payload, &flashes); err != nil {
		logger.FromRequest(r).Debug().Msg("malformed flash cookie dropped")
		return nil
	}

	return flashes
}
