// Package scheduler runs jobs at fixed intervals on a worker pool.
package scheduler

import (
	"sync"
	"time"

	"github.com/quinfall/companion/internal/logger"
	"github.com/quinfall/companion/internal/worker"
)

// Log messages
const (
	LogMsgJobScheduled = "Job scheduled"
	LogMsgRunSkipped   = "Scheduled run skipped, worker queue full"
)

// Scheduler owns one ticker goroutine per scheduled job and hands the
// actual work to the pool, so a slow job delays itself, never the
// other schedules.
type Scheduler struct {
	pool *worker.Pool
	quit chan struct{}
	wg   sync.WaitGroup
}

// New creates a scheduler dispatching to pool.
func New(pool *worker.Pool) *Scheduler {
	return &Scheduler{
		pool: pool,
		quit: make(chan struct{}),
	}
}

// Schedule registers a job to run at a fixed interval. The first run
// happens one interval from now. A full worker queue skips the run
// rather than blocking the ticker.
func (s *Scheduler) Schedule(interval time.Duration, job worker.Job) {
	logger.Debug(LogMsgJobScheduled, "job", job.Name(), "interval", interval.String())

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				if !s.pool.TryEnqueue(job) {
					logger.Warn(LogMsgRunSkipped, "job", job.Name())
				}
			case <-s.quit:
				return
			}
		}
	}()
}

// Stop stops all tickers. Jobs already handed to the pool still run.
func (s *Scheduler) Stop() {
	close(s.quit)
	s.wg.Wait()
}
