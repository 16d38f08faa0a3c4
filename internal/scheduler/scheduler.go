package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/osse101/CookieClicker_Go/internal/worker"
)

// Scheduler runs jobs at fixed intervals on a worker pool
type Scheduler struct {
	workerPool *worker.Pool
	quit       chan struct{}
	wg         sync.WaitGroup
	once       sync.Once
}

// New creates a new scheduler
func New(pool *worker.Pool) *Scheduler {
	return &Scheduler{
		workerPool: pool,
		quit:       make(chan struct{}),
	}
}

// Schedule registers a job to run at a fixed interval. A run is skipped
// when the pool queue is still full from earlier runs.
func (s *Scheduler) Schedule(interval time.Duration, job worker.Job) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				s.workerPool.TryEnqueue(job)
			case <-s.quit:
				return
			}
		}
	}()
}

// Every schedules fn at a fixed interval
func (s *Scheduler) Every(interval time.Duration, fn func(ctx context.Context) error) {
	s.Schedule(interval, worker.JobFunc(fn))
}

// Stop stops all scheduled jobs. Jobs already handed to the pool still run.
func (s *Scheduler) Stop() {
	s.once.Do(func() {
		close(s.quit)
	})
	s.wg.Wait()
}
