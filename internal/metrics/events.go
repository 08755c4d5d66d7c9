package metrics

import (
	"context"

	"github.com/quinfall/companion/internal/domain"
	"github.com/quinfall/companion/internal/event"
	"github.com/quinfall/companion/internal/logger"
)

// EventMetricsCollector subscribes to events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to all events
func (e *EventMetricsCollector) Register(bus event.Bus) error {
	eventTypes := []event.Type{
		event.ItemCrafted,
		event.StorageMoved,
		event.StorageReset,
		event.SyncCompleted,
		event.RecipeUpdated,
		event.PricesRefreshed,
	}

	for _, eventType := range eventTypes {
		bus.Subscribe(eventType, e.HandleEvent)
	}

	return nil
}

// HandleEvent processes events and updates metrics. Committed crafts
// and moves count as successes here; the failure side of those
// counters is incremented where the operation is rejected.
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	// Always increment the per-type event counter
	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	switch evt.Type {
	case event.ItemCrafted:
		Crafts.WithLabelValues(OutcomeSuccess).Inc()

	case event.StorageMoved:
		StorageMoves.WithLabelValues(OutcomeSuccess).Inc()

	case event.SyncCompleted:
		payload, err := event.DecodePayload[domain.SyncCompletedPayload](evt.Payload)
		if err != nil {
			log.Debug(LogMsgBadEventPayload, "type", evt.Type, "error", err)
			return nil
		}
		SyncRuns.WithLabelValues(payload.Trigger, OutcomeSuccess).Inc()
		SyncItemsUpdated.Add(float64(payload.Report.ItemsUpdated))
		if elapsed := payload.Report.FinishedAt - payload.Report.StartedAt; elapsed >= 0 {
			SyncDuration.Observe(float64(elapsed))
		}

	}

	log.Debug(LogMsgMetricsRecorded, "type", evt.Type)
	return nil
}
