package workers

import (
	"github.com/mlevkin/feedboard/internal/config"
	"github.com/mlevkin/feedboard/internal/logger"
	"github.com/mlevkin/feedboard/internal/store"
)

type Workers struct {
	workers []Worker
}

// NewWorkers assembles every background worker the application runs. Today
// that is the session janitor alone.
func NewWorkers(sessions store.SessionStore, cfg config.Workers, logger *logger.Logger) *Workers {
	return &Workers{
		workers: []Worker{
			NewSessionJanitor(sessions, cfg.SessionPurgeInterval, logger),
		},
	}
}

func (w *Workers) Run() {
	for _, worker := range w.workers {
		worker.Run()
	}
}
