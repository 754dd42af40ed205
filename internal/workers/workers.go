package workers

import "fmt"

type Workers struct {
	workers []Worker
}

func NewWorkers(workers ...Worker) *Workers {
	return &Workers{workers: workers}
}

// Run starts the workers in order. On failure the already started ones are
// stopped again.
func (w *Workers) Run() error {
	for i, worker := range w.workers {
		if err := worker.Run(); err != nil {
			for _, started := range w.workers[:i] {
				started.Stop()
			}
			return fmt.Errorf("error starting worker %d: %w", i, err)
		}
	}

	return nil
}

// Stop stops the workers in reverse start order.
func (w *Workers) Stop() {
	for i := len(w.workers) - 1; i >= 0; i-- {
		w.workers[i].Stop()
	}
}
