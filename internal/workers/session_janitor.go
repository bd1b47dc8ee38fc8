package workers

import (
	"context"
	"time"

	"github.com/mlevkin/feedboard/internal/logger"
	"github.com/mlevkin/feedboard/internal/store"
)

// SessionJanitor periodically removes expired sessions from the session
// store. Expired sessions are already rejected on lookup; the janitor keeps
// the store from accumulating tokens nobody will ever present again.
type SessionJanitor struct {
	sessions store.SessionStore
	interval time.Duration

	stop chan struct{}

	logger *logger.Logger
}

// NewSessionJanitor constructs a janitor sweeping on the given interval.
func NewSessionJanitor(sessions store.SessionStore, interval time.Duration, logger *logger.Logger) *SessionJanitor {
	return &SessionJanitor{
		sessions: sessions,
		interval: interval,
		stop:     make(chan struct{}),
		logger:   logger,
	}
}

// Run starts the sweep loop in its own goroutine and returns immediately.
func (j *SessionJanitor) Run() {
	j.logger.Info().Dur("interval", j.interval).Msg("session janitor started")

	go func() {
		ticker := time.NewTicker(j.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				j.sweep()
			case <-j.stop:
				j.logger.Info().Msg("session janitor stopped")
				return
			}
		}
	}()
}

// Stop terminates the sweep loop. Safe to call once.
func (j *SessionJanitor) Stop() {
	close(j.stop)
}

func (j *SessionJanitor) sweep() {
	if purged := j.sessions.PurgeExpired(context.Background()); purged > 0 {
		j.logger.Debug().Int("purged", purged).Msg("expired sessions purged")
	}
}
