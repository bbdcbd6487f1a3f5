package workers

import (
	"context"
	"fmt"
)

// Workers starts and stops a fixed set of [Worker] values as one unit.
type Workers struct {
	workers []Worker
	started int
}

// NewWorkers creates a Workers that manages workers in the given order. The
// workers are idle until Start is called.
func NewWorkers(workers ...Worker) *Workers {
	return &Workers{workers: workers}
}

// Start starts workers in order. If one fails, the ones already started are
// stopped again and the error is returned.
func (w *Workers) Start(ctx context.Context) error {
	for i, worker := range w.workers {
		if err := worker.Start(ctx); err != nil {
			w.started = i
			w.Stop()
			return fmt.Errorf("start worker %d: %w", i, err)
		}
	}
	w.started = len(w.workers)
	return nil
}

// Stop stops started workers in reverse order.
func (w *Workers) Stop() {
	for i := w.started - 1; i >= 0; i-- {
		w.workers[i].Stop()
	}
	w.started = 0
}
