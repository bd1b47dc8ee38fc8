package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Init wires all routes and middleware into a chi router.
//
// Middleware order matters: the trace ID and logging wrappers run first so
// every request is traceable, then the session middleware resolves the
// cookie into a session identity before any handler executes. Authorization
// itself is not middleware — each protected handler resolves its target
// resource and asks the Guard.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(withGZip)
	router.Use(h.withSession)

	router.Get("/", h.home)

	router.Get("/register", h.registerForm)
	router.Post("/register", h.register)
	router.Get("/login", h.loginForm)
	router.Post("/login", h.login)
	router.Get("/logout", h.logout)
	router.Post("/logout", h.logout)

	router.Get("/users/{username}", h.userProfile)
	router.Post("/users/{username}/delete", h.deleteUser)
	router.Get("/users/{username}/feedback/add", h.addFeedbackForm)
	router.Post("/users/{username}/feedback/add", h.addFeedback)

	router.Get("/feedback/{id}/update", h.updateFeedbackForm)
	router.Post("/feedback/{id}/update", h.updateFeedback)
	router.Post("/feedback/{id}/delete", h.deleteFeedback)

	router.Get("/api/version", h.getServerVersion)

	router.NotFound(h.notFound)

	return router
}
