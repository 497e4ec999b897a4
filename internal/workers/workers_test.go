package workers

import (
	"context"
	"errors"
	"testing"

	"github.com/freightex/freightex/internal/logger"
)

// mockWorker is a test implementation of the Worker interface
// that tracks how many times Run was called.
type mockWorker struct {
	runCount int
}

func (m *mockWorker) Run() {
	m.runCount++
}

func TestWorkers_Run_AllWorkersAreCalled(t *testing.T) {
	w1 := &mockWorker{}
	w2 := &mockWorker{}
	w3 := &mockWorker{}

	ws := &Workers{workers: []Worker{w1, w2, w3}}
	ws.Run()

	for i, w := range []*mockWorker{w1, w2, w3} {
		if w.runCount != 1 {
			t.Errorf("worker[%d]: expected runCount=1, got %d", i, w.runCount)
		}
	}
}

func TestWorkers_Run_Empty(t *testing.T) {
	ws := &Workers{workers: []Worker{}}

	// Should not panic on empty workers list
	ws.Run()
}

func TestWorkers_Run_Nil(t *testing.T) {
	ws := &Workers{}

	// Should not panic when workers field is nil
	ws.Run()
}

// mockExpirer is a function-field mock of the quotationExpirer dependency.
type mockExpirer struct {
	expireStaleQuotationsFunc func(ctx context.Context) (int64, error)
	calls                     int
}

func (m *mockExpirer) ExpireStaleQuotations(ctx context.Context) (int64, error) {
	m.calls++
	return m.expireStaleQuotationsFunc(ctx)
}

func TestQuotationExpiryWorker_Sweep(t *testing.T) {
	expirer := &mockExpirer{
		expireStaleQuotationsFunc: func(ctx context.Context) (int64, error) {
			return 3, nil
		},
	}

	w := newQuotationExpiryWorker(expirer, defaultSweepInterval, logger.Nop())
	w.sweep(context.Background())

	if expirer.calls != 1 {
		t.Errorf("expected 1 repository call, got %d", expirer.calls)
	}
}

func TestQuotationExpiryWorker_Sweep_RepositoryError(t *testing.T) {
	expirer := &mockExpirer{
		expireStaleQuotationsFunc: func(ctx context.Context) (int64, error) {
			return 0, errors.New("connection refused")
		},
	}

	w := newQuotationExpiryWorker(expirer, defaultSweepInterval, logger.Nop())

	// The sweep must swallow repository errors: the next tick retries.
	w.sweep(context.Background())

	if expirer.calls != 1 {
		t.Errorf("expected 1 repository call, got %d", expirer.calls)
	}
}
