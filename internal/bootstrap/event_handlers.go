package bootstrap

import (
	"fmt"

	"github.com/quinfall/companion/internal/config"
	"github.com/quinfall/companion/internal/event"
	"github.com/quinfall/companion/internal/ledger"
	"github.com/quinfall/companion/internal/logger"
	"github.com/quinfall/companion/internal/metrics"
	"github.com/quinfall/companion/internal/notify"
)

// EventHandlerDependencies holds the dependencies needed for event handler registration.
type EventHandlerDependencies struct {
	EventBus    event.Bus
	LedgerStore *ledger.Store
	Config      *config.Config
}

// RegisterEventHandlers sets up all event handlers and subscribers.
// This includes:
// - Ledger recorder (journals committed operations to SQLite)
// - Metrics collector (for event-based metrics)
// - Discord notifier (webhook summaries, inert without credentials)
func RegisterEventHandlers(deps EventHandlerDependencies) error {
	// Subscribe Ledger Recorder
	recorder := ledger.NewRecorder(deps.LedgerStore)
	recorder.Subscribe(deps.EventBus)
	logger.Info(LogMsgLedgerRecorderRegistered)

	// Register Metrics Collector
	metricsCollector := metrics.NewEventMetricsCollector()
	if err := metricsCollector.Register(deps.EventBus); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedRegisterMetrics, err)
	}
	logger.Info(LogMsgMetricsCollectorRegistered)

	// Initialize and subscribe Discord Notifier
	notifier, err := notify.New(deps.Config.DiscordWebhookID, deps.Config.DiscordWebhookToken)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedCreateNotifier, err)
	}
	notifier.Subscribe(deps.EventBus)
	logger.Info(LogMsgNotifierInitialized, "enabled", notifier.Enabled())

	return nil
}
