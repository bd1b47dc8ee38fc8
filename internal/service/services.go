package service

import (
	"github.com/mlevkin/feedboard/internal/config"
	"github.com/mlevkin/feedboard/internal/logger"
	"github.com/mlevkin/feedboard/internal/store"
)

// Services bundles every service handed to the transport layer.
type Services struct {
	AuthService     AuthService
	UserService     UserService
	FeedbackService FeedbackService
	AppInfoService  AppInfoService
	Guard           Guard
}

// NewServices wires all services on top of the repositories.
func NewServices(repos *store.Repositories, cfg config.App, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		AuthService:     NewAuthService(repos.UserRepository, cfg, logger),
		UserService:     NewUserService(repos.UserRepository, repos.Sessions, logger),
		FeedbackService: NewFeedbackService(repos.FeedbackRepository, logger),
		AppInfoService:  appInfo,
		Guard:           NewGuard(),
	}, nil
}
