package ledger

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/quinfall/companion/internal/domain"
	"github.com/quinfall/companion/internal/event"
	"github.com/quinfall/companion/internal/logger"
	"github.com/quinfall/companion/internal/metrics"
)

// Recorder turns domain events into journal rows. It is the only writer
// of the ledger; services publish events and stay ignorant of it.
type Recorder struct {
	store *Store
}

// NewRecorder creates a Recorder writing to the given store.
func NewRecorder(store *Store) *Recorder {
	return &Recorder{store: store}
}

// Subscribe registers the recorder's handlers on the event bus.
func (r *Recorder) Subscribe(bus event.Bus) {
	bus.Subscribe(event.ItemCrafted, r.handleItemCrafted)
	bus.Subscribe(event.StorageMoved, r.handleStorageMoved)
	bus.Subscribe(event.StorageReset, r.handleStorageReset)
	bus.Subscribe(event.SyncCompleted, r.handleSyncCompleted)
	bus.Subscribe(event.PricesRefreshed, r.handlePricesRefreshed)
	logger.Info(LogMsgSubscribed)
}

func (r *Recorder) handleItemCrafted(ctx context.Context, evt event.Event) error {
	payload, err := event.DecodePayload[domain.ItemCraftedPayload](evt.Payload)
	if err != nil {
		logger.FromContext(ctx).Warn(LogMsgBadEventPayload, "type", evt.Type, "error", err)
		return nil
	}

	detail, _ := json.Marshal(payload.Consumed)
	return r.record(ctx, Operation{
		OccurredAt: payload.Timestamp,
		Kind:       KindCraft,
		PlayerID:   payload.PlayerID,
		Material:   payload.RecipeName,
		Quantity:   payload.Quantity,
		ToLocation: string(domain.LocPlayerInventory),
		Detail:     string(detail),
	})
}

func (r *Recorder) handleStorageMoved(ctx context.Context, evt event.Event) error {
	payload, err := event.DecodePayload[domain.StorageMovedPayload](evt.Payload)
	if err != nil {
		logger.FromContext(ctx).Warn(LogMsgBadEventPayload, "type", evt.Type, "error", err)
		return nil
	}

	return r.record(ctx, Operation{
		OccurredAt:   payload.Timestamp,
		Kind:         KindMove,
		PlayerID:     payload.PlayerID,
		Material:     payload.Material,
		Quantity:     payload.Quantity,
		FromLocation: string(payload.From),
		ToLocation:   string(payload.To),
	})
}

func (r *Recorder) handleStorageReset(ctx context.Context, evt event.Event) error {
	payload, err := event.DecodePayload[domain.StorageResetPayload](evt.Payload)
	if err != nil {
		logger.FromContext(ctx).Warn(LogMsgBadEventPayload, "type", evt.Type, "error", err)
		return nil
	}

	return r.record(ctx, Operation{
		OccurredAt: payload.Timestamp,
		Kind:       KindReset,
		PlayerID:   payload.PlayerID,
		Detail:     fmt.Sprintf("inventory_value=%d storage_value=%d", payload.InventoryValue, payload.StorageValue),
	})
}

func (r *Recorder) handleSyncCompleted(ctx context.Context, evt event.Event) error {
	payload, err := event.DecodePayload[domain.SyncCompletedPayload](evt.Payload)
	if err != nil {
		logger.FromContext(ctx).Warn(LogMsgBadEventPayload, "type", evt.Type, "error", err)
		return nil
	}

	report := payload.Report
	return r.record(ctx, Operation{
		OccurredAt: report.FinishedAt,
		Kind:       KindSync,
		PlayerID:   report.PlayerID,
		Quantity:   report.ItemsUpdated,
		Detail: fmt.Sprintf("trigger=%s conflicts_resolved=%d skipped=%d",
			payload.Trigger, report.ConflictsResolved, len(report.SkippedLocations)),
	})
}

func (r *Recorder) handlePricesRefreshed(ctx context.Context, evt event.Event) error {
	payload, err := event.DecodePayload[domain.PricesRefreshedPayload](evt.Payload)
	if err != nil {
		logger.FromContext(ctx).Warn(LogMsgBadEventPayload, "type", evt.Type, "error", err)
		return nil
	}

	recordedAt := time.Unix(payload.Timestamp, 0)
	if err := r.store.RecordPricePoints(ctx, recordedAt, payload.Source, payload.Prices); err != nil {
		metrics.LedgerWriteFailures.Inc()
		logger.FromContext(ctx).Error(LogMsgRecordFailed, "kind", "price_history", "error", err)
		return err
	}
	return nil
}

func (r *Recorder) record(ctx context.Context, op Operation) error {
	if err := r.store.RecordOperation(ctx, op); err != nil {
		metrics.LedgerWriteFailures.Inc()
		logger.FromContext(ctx).Error(LogMsgRecordFailed, "kind", op.Kind, "error", err)
		return err
	}
	return nil
}
