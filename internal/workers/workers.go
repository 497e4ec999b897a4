package workers

import (
	"github.com/freightex/freightex/internal/logger"
	"github.com/freightex/freightex/internal/store"
)

// Workers aggregates the background workers of the application so that main
// can start all of them with a single Run call.
type Workers struct {
	workers []Worker
}

// NewWorkers constructs the application's background workers on top of the
// shared repositories. Currently the only worker is the quotation expiry
// sweeper.
func NewWorkers(repositories *store.Repositories, logger *logger.Logger) *Workers {
	return &Workers{
		workers: []Worker{
			newQuotationExpiryWorker(repositories.QuotationRepository, defaultSweepInterval, logger),
		},
	}
}

func (w *Workers) Run() {
	for _, worker := range w.workers {
		worker.Run()
	}
}
