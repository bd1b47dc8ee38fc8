package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/mlevkin/feedboard/internal/logger"
	"github.com/mlevkin/feedboard/internal/store"
	"github.com/mlevkin/feedboard/internal/utils"
)

// sessionCookieName is the cookie carrying the opaque session token.
const sessionCookieName = "session"

// withSession resolves the session cookie into a session identity.
//
// The middleware never rejects a request: anonymous requests pass through
// unchanged, and protected handlers decide via the Guard. On a valid session
// the authenticated username and the raw token are stored in the request
// context under [utils.UsernameCtxKey] and [utils.SessionTokenCtxKey], and
// the request-scoped logger is enriched with the username.
//
// A cookie pointing at an unknown or expired session is cleared so that the
// browser stops resending a dead token.
func (h *Handler) withSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		cookie, err := r.Cookie(sessionCookieName)
		if err != nil || cookie.Value == "" {
			next.ServeHTTP(w, r)
			return
		}

		session, err := h.sessions.Get(r.Context(), cookie.Value)
		if err != nil {
			if errors.Is(err, store.ErrSessionNotFound) {
				log.Debug().Msg("stale session cookie dropped")
				h.clearSessionCookie(w)
				next.ServeHTTP(w, r)
				return
			}

			log.Err(err).Msg("session lookup failed")
			next.ServeHTTP(w, r)
			return
		}

		ctx := context.WithValue(r.Context(), utils.UsernameCtxKey, session.Username)
		ctx = context.WithValue(ctx, utils.SessionTokenCtxKey, session.Token)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// setSessionCookie installs the session token in the browser.
func (h *Handler) setSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   h.secureCookies,
		SameSite: http.SameSiteLaxMode,
	})
}

// clearSessionCookie removes the session token from the browser.
func (h *Handler) clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.secureCookies,
		SameSite: http.SameSiteLaxMode,
	})
}
