package store

import (
	"github.com/mlevkin/feedboard/internal/config"
	"github.com/mlevkin/feedboard/internal/logger"
)

// Repositories bundles every persistence-layer dependency handed to the
// service layer.
type Repositories struct {
	UserRepository     UserRepository
	FeedbackRepository FeedbackRepository
	Sessions           SessionStore
}

// NewRepositories wires all repositories and the session store on top of an
// established database connection.
func NewRepositories(db *DB, cfg config.App, logger *logger.Logger) *Repositories {
	return &Repositories{
		UserRepository:     NewUserRepository(db, logger),
		FeedbackRepository: NewFeedbackRepository(db, logger),
		Sessions:           NewMemorySessionStore(cfg.SessionTTL, logger),
	}
}
