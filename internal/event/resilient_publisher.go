package event

import (
	"context"
	"sync"
	"time"

	"github.com/quinfall/companion/internal/logger"
)

// retryEntry tracks an event waiting for another publish attempt
type retryEntry struct {
	event    Event
	attempts int
	lastErr  error
	nextTry  time.Time
}

// ResilientPublisher wraps a Bus with background retries and a dead-letter
// file. Callers never block on a failing subscriber: the first publish
// attempt runs inline, failures are queued and retried with exponential
// backoff, and exhausted events land in the dead-letter file for manual
// replay.
type ResilientPublisher struct {
	bus        Bus
	retryQueue chan retryEntry
	maxRetries int
	retryDelay time.Duration
	deadLetter *DeadLetterWriter
	shutdown   chan struct{}
	closeOnce  sync.Once
	wg         sync.WaitGroup
}

// NewResilientPublisher creates a ResilientPublisher and starts its retry
// worker. Call Shutdown to drain and stop it.
func NewResilientPublisher(bus Bus, maxRetries int, retryDelay time.Duration, deadLetterPath string) (*ResilientPublisher, error) {
	dl, err := NewDeadLetterWriter(deadLetterPath)
	if err != nil {
		return nil, err
	}

	p := &ResilientPublisher{
		bus:        bus,
		retryQueue: make(chan retryEntry, retryQueueCapacity),
		maxRetries: maxRetries,
		retryDelay: retryDelay,
		deadLetter: dl,
		shutdown:   make(chan struct{}),
	}

	p.wg.Add(1)
	go p.retryWorker()

	return p, nil
}

// PublishWithRetry attempts to publish an event. On failure the event is
// queued for background retry and the caller sees success; delivery
// problems surface in logs and the dead-letter file instead of failing
// the originating operation.
func (p *ResilientPublisher) PublishWithRetry(ctx context.Context, event Event) {
	err := p.bus.Publish(ctx, event)
	if err == nil {
		return
	}

	logger.Warn(LogMsgDeliveryFailed,
		"event_type", event.Type,
		"error", err,
		"max_retries", p.maxRetries)

	p.enqueue(retryEntry{
		event:    event,
		attempts: 1,
		lastErr:  err,
		nextTry:  time.Now().Add(p.backoffFor(1)),
	})
}

// Publish satisfies Bus. Delivery failures are absorbed by the retry
// queue, so the returned error is always nil.
func (p *ResilientPublisher) Publish(ctx context.Context, event Event) error {
	p.PublishWithRetry(ctx, event)
	return nil
}

// Subscribe delegates to the inner bus
func (p *ResilientPublisher) Subscribe(eventType Type, handler Handler) {
	p.bus.Subscribe(eventType, handler)
}

// backoffFor returns the exponential delay before retry number attempt:
// base, 2x base, 4x base and so on.
func (p *ResilientPublisher) backoffFor(attempt int) time.Duration {
	return p.retryDelay * time.Duration(1<<(attempt-1))
}

func (p *ResilientPublisher) enqueue(entry retryEntry) {
	select {
	case p.retryQueue <- entry:
	default:
		logger.Warn(LogMsgRetryQueueFull, "event_type", entry.event.Type)
		if err := p.deadLetter.Write(entry.event, entry.attempts, entry.lastErr); err != nil {
			logger.Error(LogMsgDeadLetterFailed, "error", err)
		}
	}
}

// retryWorker drains the retry queue until shutdown.
func (p *ResilientPublisher) retryWorker() {
	defer p.wg.Done()

	for {
		select {
		case entry := <-p.retryQueue:
			p.processEntry(entry)
		case <-p.shutdown:
			p.drainQueue()
			return
		}
	}
}

func (p *ResilientPublisher) processEntry(entry retryEntry) {
	// Honor the backoff deadline, but stay responsive to shutdown.
	if wait := time.Until(entry.nextTry); wait > 0 {
		select {
		case <-time.After(wait):
		case <-p.shutdown:
			p.retryOnce(entry)
			return
		}
	}

	p.retryOnce(entry)
}

// retryOnce performs a single publish attempt and either finishes,
// requeues, or dead-letters the entry.
func (p *ResilientPublisher) retryOnce(entry retryEntry) {
	ctx := context.Background()

	err := p.bus.Publish(ctx, entry.event)
	if err == nil {
		logger.Info(LogMsgRetryDelivered,
			"event_type", entry.event.Type,
			"attempt", entry.attempts)
		return
	}

	if entry.attempts >= p.maxRetries {
		logger.Warn(LogMsgRetriesExhausted,
			"event_type", entry.event.Type,
			"attempts", entry.attempts)
		if dlErr := p.deadLetter.Write(entry.event, entry.attempts, err); dlErr != nil {
			logger.Error(LogMsgDeadLetterFailed, "error", dlErr)
		}
		return
	}

	entry.attempts++
	entry.lastErr = err
	entry.nextTry = time.Now().Add(p.backoffFor(entry.attempts))

	logger.Warn(LogMsgRetryBackoff,
		"event_type", entry.event.Type,
		"attempt", entry.attempts,
		"error", err)

	p.enqueue(entry)
}

// drainQueue gives every queued event one final attempt before the
// worker exits, dead-lettering stragglers.
func (p *ResilientPublisher) drainQueue() {
	drained := 0
	for {
		select {
		case entry := <-p.retryQueue:
			drained++
			if err := p.bus.Publish(context.Background(), entry.event); err != nil {
				if dlErr := p.deadLetter.Write(entry.event, entry.attempts, err); dlErr != nil {
					logger.Error(LogMsgDeadLetterFailed, "error", dlErr)
				}
			}
		default:
			if drained > 0 {
				logger.Info(LogMsgRetryQueueFlushed, "count", drained)
			}
			return
		}
	}
}

// Shutdown stops the retry worker, drains pending retries and closes the
// dead-letter file. The context bounds how long the drain may take.
func (p *ResilientPublisher) Shutdown(ctx context.Context) error {
	p.closeOnce.Do(func() {
		close(p.shutdown)
	})

	done := make(chan struct{})
	go func() {
		p.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-ctx.Done():
		logger.Warn(LogMsgWorkerStopTimeout)
		return ctx.Err()
	}

	return p.deadLetter.Close()
}
