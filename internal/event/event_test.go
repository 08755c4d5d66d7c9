package event

import (
	"context"
	"errors"
	"testing"

	"github.com/quinfall/companion/internal/domain"
)

func TestMemoryBus_PublishSubscribe(t *testing.T) {
	bus := NewMemoryBus()
	handled := false

	bus.Subscribe(StorageMoved, func(ctx context.Context, event Event) error {
		if event.Type != StorageMoved {
			t.Errorf("Expected event type %s, got %s", StorageMoved, event.Type)
		}
		payload, ok := event.Payload.(domain.StorageMovedPayload)
		if !ok {
			t.Fatalf("Expected StorageMovedPayload, got %T", event.Payload)
		}
		if payload.Material != "iron_ore" {
			t.Errorf("Expected material iron_ore, got %s", payload.Material)
		}
		handled = true
		return nil
	})

	err := bus.Publish(context.Background(), NewStorageMovedEvent(domain.StorageMovedPayload{
		PlayerID: "default",
		Material: "iron_ore",
		Quantity: 5,
		From:     domain.LocPlayerInventory,
		To:       domain.LocMeadowBank,
	}))

	if err != nil {
		t.Errorf("Publish returned error: %v", err)
	}

	if !handled {
		t.Error("Handler was not called")
	}
}

func TestMemoryBus_PublishMultipleHandlers(t *testing.T) {
	bus := NewMemoryBus()
	count := 0

	handler := func(ctx context.Context, event Event) error {
		count++
		return nil
	}

	bus.Subscribe(ItemCrafted, handler)
	bus.Subscribe(ItemCrafted, handler)

	err := bus.Publish(context.Background(), Event{Version: EventSchemaVersion, Type: ItemCrafted})
	if err != nil {
		t.Errorf("Publish returned error: %v", err)
	}

	if count != 2 {
		t.Errorf("Expected 2 handlers to be called, got %d", count)
	}
}

func TestMemoryBus_PublishError(t *testing.T) {
	bus := NewMemoryBus()

	bus.Subscribe(SyncCompleted, func(ctx context.Context, event Event) error {
		return errors.New("handler error")
	})

	err := bus.Publish(context.Background(), Event{Version: EventSchemaVersion, Type: SyncCompleted})
	if err == nil {
		t.Error("Expected error from Publish, got nil")
	}
}

func TestMemoryBus_PanickingHandlerDoesNotStopOthers(t *testing.T) {
	bus := NewMemoryBus()
	secondCalled := false

	bus.Subscribe(RecipeUpdated, func(ctx context.Context, event Event) error {
		panic("subscriber bug")
	})
	bus.Subscribe(RecipeUpdated, func(ctx context.Context, event Event) error {
		secondCalled = true
		return nil
	})

	err := bus.Publish(context.Background(), Event{Version: EventSchemaVersion, Type: RecipeUpdated})
	if err == nil {
		t.Error("Expected panic to surface as error")
	}

	if !secondCalled {
		t.Error("Second handler should run despite earlier panic")
	}
}

func TestMemoryBus_NoSubscribers(t *testing.T) {
	bus := NewMemoryBus()

	err := bus.Publish(context.Background(), Event{Version: EventSchemaVersion, Type: PricesRefreshed})
	if err != nil {
		t.Errorf("Publish with no subscribers should succeed, got %v", err)
	}
}

func TestEvent_PlayerIDOnEnvelope(t *testing.T) {
	evt := NewItemCraftedEvent(domain.ItemCraftedPayload{
		PlayerID:   "default",
		RecipeName: "iron_ingot",
		Quantity:   1,
	})

	if evt.PlayerID != "default" {
		t.Errorf("Expected player_id 'default' on envelope, got %q", evt.PlayerID)
	}
	if evt.Version != EventSchemaVersion {
		t.Errorf("Expected schema version %s, got %s", EventSchemaVersion, evt.Version)
	}

	// Recipe diffs are global, not tied to a player.
	global := NewRecipeUpdatedEvent(nil)
	if global.PlayerID != "" {
		t.Errorf("Expected empty player_id on global event, got %q", global.PlayerID)
	}
}

func TestDecodePayload_DirectAssertion(t *testing.T) {
	evt := NewStorageMovedEvent(domain.StorageMovedPayload{
		PlayerID: "default",
		Material: "oak_log",
		Quantity: 3,
		From:     domain.LocMeadowStorage,
		To:       domain.LocPlayerInventory,
	})

	payload, err := DecodePayload[domain.StorageMovedPayload](evt.Payload)
	if err != nil {
		t.Fatalf("DecodePayload returned error: %v", err)
	}
	if payload.Material != "oak_log" || payload.Quantity != 3 {
		t.Errorf("Unexpected payload: %+v", payload)
	}
}

func TestDecodePayload_JSONFallback(t *testing.T) {
	// Serialized sources deliver payloads as generic maps.
	raw := map[string]interface{}{
		"player_id": "default",
		"material":  "stone",
		"quantity":  float64(7),
		"from":      "player_inventory",
		"to":        "meadow_bank",
	}

	payload, err := DecodePayload[domain.StorageMovedPayload](raw)
	if err != nil {
		t.Fatalf("DecodePayload returned error: %v", err)
	}
	if payload.Material != "stone" || payload.Quantity != 7 {
		t.Errorf("Unexpected payload: %+v", payload)
	}
	if payload.From != domain.LocPlayerInventory {
		t.Errorf("Expected from player_inventory, got %s", payload.From)
	}
}
