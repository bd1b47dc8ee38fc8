package http

import (
	"github.com/mlevkin/feedboard/internal/config"
	"github.com/mlevkin/feedboard/internal/logger"
	"github.com/mlevkin/feedboard/internal/render"
	"github.com/mlevkin/feedboard/internal/service"
	"github.com/mlevkin/feedboard/internal/store"
	"github.com/mlevkin/feedboard/internal/validators"
)

// Handler holds every collaborator the resource handlers need: the service
// layer, the session store, the HTML renderer, and the form validator.
type Handler struct {
	services  *service.Services
	sessions  store.SessionStore
	renderer  *render.Renderer
	validator *validators.FormValidator

	secureCookies bool

	logger *logger.Logger
}

// NewHandler constructs the HTTP handler set.
func NewHandler(services *service.Services, sessions store.SessionStore, renderer *render.Renderer, cfg config.App, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:      services,
		sessions:      sessions,
		renderer:      renderer,
		validator:     validators.NewFormValidator(),
		secureCookies: cfg.SecureCookies,
		logger:        logger,
	}
}
