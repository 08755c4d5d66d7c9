package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/quinfall/companion/internal/config"
	"github.com/quinfall/companion/internal/event"
	"github.com/quinfall/companion/internal/logger"
	"github.com/quinfall/companion/internal/metrics"
)

// InitializeEventSystem creates and configures the event bus and resilient
// publisher. Retry tuning is fixed at the package defaults; the dead-letter
// file lives under the data directory so it survives next to the saves it
// describes.
// Returns the event bus, resilient publisher, and any error encountered.
func InitializeEventSystem(cfg *config.Config) (event.Bus, *event.ResilientPublisher, error) {
	// Initialize Event Bus, counting handler failures per event type
	eventBus := meteredBus{inner: event.NewMemoryBus()}

	deadLetterPath := filepath.Join(cfg.DataDir, EventDeadLetterFile)

	// Ensure dead-letter directory exists
	if err := os.MkdirAll(filepath.Dir(deadLetterPath), DirPermission); err != nil {
		return nil, nil, fmt.Errorf("%s: %w", LogMsgFailedCreateDeadLetterDir, err)
	}

	// Initialize Resilient Publisher with retry logic
	resilientPublisher, err := event.NewResilientPublisher(eventBus, EventDefaultMaxRetries, EventDefaultRetryDelay, deadLetterPath)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", LogMsgFailedCreateResilientPublisher, err)
	}

	logger.Info(LogMsgEventSystemInitialized,
		"max_retries", EventDefaultMaxRetries,
		"retry_delay", EventDefaultRetryDelay,
		"deadletter_path", deadLetterPath)

	return eventBus, resilientPublisher, nil
}

// meteredBus wraps a bus so every handler error increments the per-type
// failure counter. The event package cannot import metrics, so the
// counting lives here at the composition layer.
type meteredBus struct {
	inner event.Bus
}

func (b meteredBus) Publish(ctx context.Context, evt event.Event) error {
	return b.inner.Publish(ctx, evt)
}

func (b meteredBus) Subscribe(eventType event.Type, handler event.Handler) {
	b.inner.Subscribe(eventType, func(ctx context.Context, evt event.Event) error {
		err := handler(ctx, evt)
		if err != nil {
			metrics.EventHandlerErrors.WithLabelValues(string(evt.Type)).Inc()
		}
		return err
	})
}
