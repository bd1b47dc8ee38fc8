package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/mlevkin/feedboard/internal/logger"
	"github.com/mlevkin/feedboard/internal/service"
	"github.com/mlevkin/feedboard/internal/store"
	"github.com/mlevkin/feedboard/internal/utils"
	"github.com/mlevkin/feedboard/models"
)

// home sends visitors to the registration page.
func (h *Handler) home(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/register", http.StatusSeeOther)
}

// registerForm shows an empty registration form.
func (h *Handler) registerForm(w http.ResponseWriter, r *http.Request) {
	page := h.newPage(w, r, "Register")
	page.Form = models.RegisterForm{}
	h.renderer.Render(w, http.StatusOK, "register", page)
}

// register creates a new account and logs it in.
//
// Validation failures and uniqueness conflicts re-render the form with the
// submitted input intact and a 422 status; nothing is persisted in either
// case. On success a session is issued immediately so registration doubles
// as login.
func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	form, err := parseRegisterForm(r)
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
		page := h.newPage(w, r, "Register")
		page.Form = form
		page.Errors = fieldErrors
		h.renderer.Render(w, http.StatusUnprocessableEntity, "register", page)
		return
	}

	user, err := h.services.AuthService.Register(r.Context(), form)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrUsernameTaken):
			page := h.newPage(w, r, "Register")
			page.Form = form
			page.FormError = "That username is already taken."
			h.renderer.Render(w, http.StatusUnprocessableEntity, "register", page)
		case errors.Is(err, store.ErrEmailTaken):
			page := h.newPage(w, r, "Register")
			page.Form = form
			page.FormError = "That email address is already registered."
			h.renderer.Render(w, http.StatusUnprocessableEntity, "register", page)
		default:
			h.serverError(w, r, err)
		}
		return
	}

	session, err := h.sessions.Create(r.Context(), user.Username)
	if err != nil {
		h.serverError(w, r, err)
		return
	}

	log.Info().Str("username", user.Username).Msg("account registered")

	h.setSessionCookie(w, session.Token)
	h.setFlash(w, models.FlashInfo, fmt.Sprintf("Account created. Welcome, %s!", user.FirstName))
	http.Redirect(w, r, "/users/"+user.Username, http.StatusSeeOther)
}

// loginForm shows an empty login form.
func (h *Handler) loginForm(w http.ResponseWriter, r *http.Request) {
	page := h.newPage(w, r, "Log in")
	page.Form = models.LoginForm{}
	h.renderer.Render(w, http.StatusOK, "login", page)
}

// login verifies credentials and issues a session.
//
// An unknown username and a wrong password produce the same re-rendered
// form with a 401 status, so the response does not reveal which half of the
// credential pair was wrong.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	form, err := parseLoginForm(r)
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
		page := h.newPage(w, r, "Log in")
		page.Form = form
		page.Errors = fieldErrors
		h.renderer.Render(w, http.StatusUnprocessableEntity, "login", page)
		return
	}

	user, err := h.services.AuthService.Authenticate(r.Context(), form.Username, form.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			log.Info().Str("username", form.Username).Msg("failed login attempt")

			page := h.newPage(w, r, "Log in")
			page.Form = form
			page.FormError = "Invalid username or password."
			h.renderer.Render(w, http.StatusUnauthorized, "login", page)
			return
		}

		h.serverError(w, r, err)
		return
	}

	session, err := h.sessions.Create(r.Context(), user.Username)
	if err != nil {
		h.serverError(w, r, err)
		return
	}

	log.Info().Str("username", user.Username).Msg("logged in")

	h.setSessionCookie(w, session.Token)
	h.setFlash(w, models.FlashPrimary, fmt.Sprintf("Welcome back, %s!", user.FirstName))
	http.Redirect(w, r, "/users/"+user.Username, http.StatusSeeOther)
}

// logout drops the current session and clears the cookie. Safe to call
// anonymously: logging out twice is a no-op, not an error.
func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	if token, ok := utils.GetSessionTokenFromContext(r.Context()); ok {
		if err := h.sessions.Delete(r.Context(), token); err != nil {
			logger.FromRequest(r).Err(err).Msg("session delete failed")
		}
	}

	h.clearSessionCookie(w)
	h.setFlash(w, models.FlashInfo, "Goodbye!")
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}
