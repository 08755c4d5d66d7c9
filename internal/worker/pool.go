// Package worker provides a bounded worker pool for background jobs.
package worker

import (
	"context"
	"sync"

	"github.com/quinfall/companion/internal/logger"
)

// Job is a unit of background work. Name identifies the job in logs.
type Job interface {
	Name() string
	Process(ctx context.Context) error
}

// Pool runs jobs on a fixed set of worker goroutines. Producers on a
// schedule use TryEnqueue so a stalled job skips runs instead of
// backing the daemon up.
type Pool struct {
	workers  int
	jobQueue chan Job
	wg       sync.WaitGroup
	quit     chan struct{}
}

// NewPool creates a pool with the given worker count and queue size.
func NewPool(workers, queueSize int) *Pool {
	return &Pool{
		workers:  workers,
		jobQueue: make(chan Job, queueSize),
		quit:     make(chan struct{}),
	}
}

// Start launches the worker goroutines.
func (p *Pool) Start() {
	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
	logger.Debug(LogMsgPoolStarted, "workers", p.workers, "queue_size", cap(p.jobQueue))
}

func (p *Pool) worker() {
	defer p.wg.Done()
	for {
		select {
		case job := <-p.jobQueue:
			p.run(job)
		case <-p.quit:
			return
		}
	}
}

// run executes one job. Failures are logged and panics recovered, so a
// broken job can neither kill its worker nor starve the pool.
func (p *Pool) run(job Job) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error(LogMsgJobPanicked, "job", job.Name(), "panic", r)
		}
	}()

	ctx := context.Background()
	if err := job.Process(ctx); err != nil {
		logger.FromContext(ctx).Error(LogMsgJobFailed, "job", job.Name(), "error", err)
	}
}

// Enqueue adds a job to the queue, blocking while the queue is full.
func (p *Pool) Enqueue(job Job) {
	p.jobQueue <- job
}

// TryEnqueue adds a job to the queue without blocking. It reports
// whether the job was accepted.
func (p *Pool) TryEnqueue(job Job) bool {
	select {
	case p.jobQueue <- job:
		return true
	default:
		return false
	}
}

// Stop stops the workers and waits for them to finish their current
// jobs. Queued jobs no worker has picked up yet are dropped.
func (p *Pool) Stop() {
	close(p.quit)
	p.wg.Wait()
	logger.Debug(LogMsgPoolStopped)
}
