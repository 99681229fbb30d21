package workers

import (
	"github.com/MKhiriev/go-cbt-forms/internal/config"
	"github.com/MKhiriev/go-cbt-forms/internal/logger"
	"github.com/MKhiriev/go-cbt-forms/internal/store"
)

// Workers aggregates the application's background workers.
type Workers struct {
	workers []Worker
}

// NewWorkers builds every background worker the application runs.
// Currently that is the token blacklist janitor.
func NewWorkers(repositories *store.Repositories, cfg config.Workers, logger *logger.Logger) *Workers {
	return &Workers{
		workers: []Worker{
			newBlacklistJanitor(repositories.TokenBlacklistRepository, cfg.BlacklistPurgeInterval, logger),
		},
	}
}

// Run starts all workers. Each worker manages its own goroutines.
func (w *Workers) Run() {
	for _, worker := range w.workers {
		worker.Run()
	}
}

// Stop terminates all workers in reverse start order.
func (w *Workers) Stop() {
	for i := len(w.workers) - 1; i >= 0; i-- {
		w.workers[i].Stop()
	}
}
