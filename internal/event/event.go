// Package event carries the companion's internal publish/subscribe
// fabric. Services publish a domain event after every completed
// mutation; the ledger, metrics and notifier packages subscribe.
package event

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/quinfall/companion/internal/domain"
)

// Type identifies the kind of event inside an envelope.
type Type string

// Event types published by the companion. The string values live in the
// domain package so subscribers (ledger, metrics, notifier) can match on
// them without importing this package.
const (
	ItemCrafted     Type = domain.EventTypeItemCrafted
	StorageMoved    Type = domain.EventTypeStorageMoved
	StorageReset    Type = domain.EventTypeStorageReset
	SyncCompleted   Type = domain.EventTypeSyncCompleted
	RecipeUpdated   Type = domain.EventTypeRecipeUpdated
	PricesRefreshed Type = domain.EventTypePricesRefreshed
)

// Event is the envelope every publication travels in. PlayerID is
// lifted out of the payload so routing and the dead-letter log never
// have to decode payloads; global events (recipe diffs, price
// refreshes) leave it empty.
type Event struct {
	Version  string      `json:"version"`
	Type     Type        `json:"type"`
	PlayerID string      `json:"player_id,omitempty"`
	Payload  interface{} `json:"payload"`
}

// Handler consumes one event. A returned error marks the delivery
// failed for that subscriber only.
type Handler func(ctx context.Context, event Event) error

// Bus is the publishing side services depend on.
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus delivers events synchronously to in-process subscribers.
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a MemoryBus with no subscriptions.
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Subscribe registers a handler for an event type. Registration is
// expected at startup; handlers cannot be removed.
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}

// Publish publishes an event to all subscribers. Handlers run
// synchronously in subscription order; a failing or panicking handler
// does not stop the remaining handlers.
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers, ok := b.handlers[event.Type]
	b.mu.RUnlock()

	if !ok {
		return nil
	}

	var errs []error
	for _, handler := range handlers {
		if err := dispatch(ctx, handler, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(handlerErrsFormat, event.Type, len(errs), errs)
	}

	return nil
}

// dispatch runs one handler, converting a panic into an error so a
// misbehaving subscriber cannot take down the publisher.
func dispatch(ctx context.Context, handler Handler, event Event) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf(handlerPanicFormat, event.Type, r)
		}
	}()
	return handler(ctx, event)
}

// Type-safe event constructors

// NewItemCraftedEvent creates a new item crafted event. A zero payload
// timestamp is stamped with the current time.
func NewItemCraftedEvent(payload domain.ItemCraftedPayload) Event {
	if payload.Timestamp == 0 {
		payload.Timestamp = time.Now().Unix()
	}
	return Event{
		Version:  EventSchemaVersion,
		Type:     ItemCrafted,
		PlayerID: payload.PlayerID,
		Payload:  payload,
	}
}

// NewStorageMovedEvent creates a new storage moved event
func NewStorageMovedEvent(payload domain.StorageMovedPayload) Event {
	if payload.Timestamp == 0 {
		payload.Timestamp = time.Now().Unix()
	}
	return Event{
		Version:  EventSchemaVersion,
		Type:     StorageMoved,
		PlayerID: payload.PlayerID,
		Payload:  payload,
	}
}

// NewStorageResetEvent creates a new storage reset event
func NewStorageResetEvent(payload domain.StorageResetPayload) Event {
	if payload.Timestamp == 0 {
		payload.Timestamp = time.Now().Unix()
	}
	return Event{
		Version:  EventSchemaVersion,
		Type:     StorageReset,
		PlayerID: payload.PlayerID,
		Payload:  payload,
	}
}

// NewSyncCompletedEvent creates a new sync completed event
func NewSyncCompletedEvent(report domain.SyncReport, trigger string) Event {
	return Event{
		Version:  EventSchemaVersion,
		Type:     SyncCompleted,
		PlayerID: report.PlayerID,
		Payload: domain.SyncCompletedPayload{
			Report:    report,
			Trigger:   trigger,
			Timestamp: time.Now().Unix(),
		},
	}
}

// NewRecipeUpdatedEvent creates a new recipe updated event
func NewRecipeUpdatedEvent(diffs []domain.RecipeDiff) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    RecipeUpdated,
		Payload: domain.RecipeUpdatedPayload{
			Diffs:     diffs,
			Timestamp: time.Now().Unix(),
		},
	}
}

// NewPricesRefreshedEvent creates a new prices refreshed event
func NewPricesRefreshedEvent(prices []domain.MaterialPrice, source string) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    PricesRefreshed,
		Payload: domain.PricesRefreshedPayload{
			Prices:    prices,
			Source:    source,
			Timestamp: time.Now().Unix(),
		},
	}
}
