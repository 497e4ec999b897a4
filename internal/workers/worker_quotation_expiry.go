package workers

import (
	"context"
	"time"

	"github.com/freightex/freightex/internal/logger"
)

// defaultSweepInterval is how often the expiry sweeper scans for pending
// quotations whose validity window has closed.
const defaultSweepInterval = 10 * time.Minute

// quotationExpirer is the slice of the quotation repository the sweeper
// needs.
type quotationExpirer interface {
	ExpireStaleQuotations(ctx context.Context) (int64, error)
}

// quotationExpiryWorker periodically moves pending quotations whose
// valid_until timestamp has passed to the expired status, so stale offers can
// no longer be selected.
type quotationExpiryWorker struct {
	quotations quotationExpirer
	interval   time.Duration
	logger     *logger.Logger
}

func newQuotationExpiryWorker(quotations quotationExpirer, interval time.Duration, logger *logger.Logger) *quotationExpiryWorker {
	return &quotationExpiryWorker{
		quotations: quotations,
		interval:   interval,
		logger:     logger,
	}
}

// Run starts the sweep loop in its own goroutine and returns immediately.
// The loop runs for the lifetime of the process.
func (w *quotationExpiryWorker) Run() {
	go func() {
		ticker := time.NewTicker(w.interval)
		defer ticker.Stop()

		for range ticker.C {
			w.sweep(w.logger.WithContext(context.Background()))
		}
	}()
}

func (w *quotationExpiryWorker) sweep(ctx context.Context) {
	expired, err := w.quotations.ExpireStaleQuotations(ctx)
	if err != nil {
		w.logger.Err(err).Str("func", "*quotationExpiryWorker.sweep").Msg("failed to expire stale quotations")
		return
	}

	if expired > 0 {
		w.logger.Info().
			Str("func", "*quotationExpiryWorker.sweep").
			Int64("expired", expired).
			Msg("stale quotations expired")
	}
}
