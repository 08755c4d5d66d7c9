package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quinfall/companion/internal/concurrency"
	"github.com/quinfall/companion/internal/domain"
	"github.com/quinfall/companion/internal/event"
)

func newServiceFixture(t *testing.T) (Service, *System, *event.MemoryBus) {
	t.Helper()
	system := NewSystem("default", testCatalog(t))
	bus := event.NewMemoryBus()
	svc := NewService(system, bus, concurrency.NewLockManager())
	return svc, system, bus
}

func captureEvents(bus *event.MemoryBus, eventType event.Type) *[]event.Event {
	captured := &[]event.Event{}
	bus.Subscribe(eventType, func(ctx context.Context, evt event.Event) error {
		*captured = append(*captured, evt)
		return nil
	})
	return captured
}

func TestServiceMove(t *testing.T) {
	t.Run("Best Case: Move Publishes Event", func(t *testing.T) {
		svc, system, bus := newServiceFixture(t)
		system.SetItemCount(domain.LocPlayerInventory, "iron_ore", 50)
		captured := captureEvents(bus, event.StorageMoved)

		err := svc.Move(context.Background(), "iron_ore", 20, domain.LocPlayerInventory, domain.LocMeadowBank)

		require.NoError(t, err)
		assert.Equal(t, 30, system.ItemCountAt(domain.LocPlayerInventory, "iron_ore"))
		assert.Equal(t, 20, system.ItemCountAt(domain.LocMeadowBank, "iron_ore"))

		require.Len(t, *captured, 1)
		payload, ok := (*captured)[0].Payload.(domain.StorageMovedPayload)
		require.True(t, ok)
		assert.Equal(t, "default", payload.PlayerID)
		assert.Equal(t, "iron_ore", payload.Material)
		assert.Equal(t, 20, payload.Quantity)
		assert.Equal(t, domain.LocPlayerInventory, payload.From)
		assert.Equal(t, domain.LocMeadowBank, payload.To)
		assert.NotZero(t, payload.Timestamp)
	})

	t.Run("Error Case: Unknown Material", func(t *testing.T) {
		svc, _, bus := newServiceFixture(t)
		captured := captureEvents(bus, event.StorageMoved)

		err := svc.Move(context.Background(), "mithril_ore", 1, domain.LocPlayerInventory, domain.LocMeadowBank)

		assert.ErrorIs(t, err, domain.ErrUnknownMaterial)
		assert.Empty(t, *captured)
	})

	t.Run("Error Case: Insufficient Items", func(t *testing.T) {
		svc, system, bus := newServiceFixture(t)
		system.SetItemCount(domain.LocPlayerInventory, "iron_ore", 5)
		captured := captureEvents(bus, event.StorageMoved)

		err := svc.Move(context.Background(), "iron_ore", 10, domain.LocPlayerInventory, domain.LocMeadowBank)

		assert.ErrorIs(t, err, domain.ErrInsufficientItems)
		assert.Equal(t, 5, system.ItemCountAt(domain.LocPlayerInventory, "iron_ore"))
		assert.Empty(t, *captured)
	})

	t.Run("Error Case: Same Location", func(t *testing.T) {
		svc, system, _ := newServiceFixture(t)
		system.SetItemCount(domain.LocPlayerInventory, "iron_ore", 5)

		err := svc.Move(context.Background(), "iron_ore", 5, domain.LocPlayerInventory, domain.LocPlayerInventory)

		assert.ErrorIs(t, err, domain.ErrSameLocation)
	})
}

func TestServiceUnlockSlots(t *testing.T) {
	t.Run("Best Case: Unlocks Additional Slots", func(t *testing.T) {
		svc, _, _ := newServiceFixture(t)

		info, err := svc.UnlockSlots(context.Background(), domain.LocMeadowBank, 100)

		require.NoError(t, err)
		assert.Equal(t, 300, info.Unlocked)
		assert.Equal(t, 1000, info.Max)
	})

	t.Run("Error Case: Non-Positive Count", func(t *testing.T) {
		svc, _, _ := newServiceFixture(t)

		_, err := svc.UnlockSlots(context.Background(), domain.LocMeadowBank, 0)

		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("Error Case: Exceeds Maximum", func(t *testing.T) {
		svc, system, _ := newServiceFixture(t)

		_, err := svc.UnlockSlots(context.Background(), domain.LocMeadowBank, 900)

		assert.ErrorIs(t, err, domain.ErrInvalidInput)
		c, ok := system.Container(domain.LocMeadowBank)
		require.True(t, ok)
		assert.Equal(t, 200, c.UnlockedSlots())
	})

	t.Run("Error Case: Unprovisioned Location", func(t *testing.T) {
		svc, _, _ := newServiceFixture(t)

		_, err := svc.UnlockSlots(context.Background(), domain.LocCaravanStorage, 10)

		assert.ErrorIs(t, err, domain.ErrUnknownLocation)
	})
}

func TestServiceReset(t *testing.T) {
	t.Run("Best Case: Seeds All Containers And Publishes Event", func(t *testing.T) {
		svc, system, bus := newServiceFixture(t)
		system.SetItemCount(domain.LocPlayerInventory, "iron_ore", 7)
		captured := captureEvents(bus, event.StorageReset)

		err := svc.Reset(context.Background(), 100, 1000)

		require.NoError(t, err)
		assert.Equal(t, 100, system.ItemCountAt(domain.LocPlayerInventory, "iron_ore"))
		assert.Equal(t, 1000, system.ItemCountAt(domain.LocMeadowBank, "iron_ingot"))

		require.Len(t, *captured, 1)
		payload, ok := (*captured)[0].Payload.(domain.StorageResetPayload)
		require.True(t, ok)
		assert.Equal(t, 100, payload.InventoryValue)
		assert.Equal(t, 1000, payload.StorageValue)
	})

	t.Run("Error Case: Negative Value", func(t *testing.T) {
		svc, _, bus := newServiceFixture(t)
		captured := captureEvents(bus, event.StorageReset)

		err := svc.Reset(context.Background(), -1, 1000)

		assert.ErrorIs(t, err, domain.ErrInvalidInput)
		assert.Empty(t, *captured)
	})
}

func TestServiceLocation(t *testing.T) {
	t.Run("Best Case: Returns Container Detail", func(t *testing.T) {
		svc, system, _ := newServiceFixture(t)
		system.SetItemCount(domain.LocMeadowBank, "iron_ore", 40)
		system.SetItemCount(domain.LocMeadowBank, "feather", 3)

		detail, err := svc.Location(context.Background(), domain.LocMeadowBank)

		require.NoError(t, err)
		assert.Equal(t, domain.LocMeadowBank, detail.Summary.Location)
		assert.Equal(t, 40, detail.Items["iron_ore"])
		assert.Equal(t, 3, detail.Items["feather"])
		assert.Equal(t, 2, detail.Slots.Used)
	})

	t.Run("Error Case: Unprovisioned Location", func(t *testing.T) {
		svc, _, _ := newServiceFixture(t)

		_, err := svc.Location(context.Background(), domain.LocCaravanStorage)

		assert.ErrorIs(t, err, domain.ErrUnknownLocation)
	})
}

func TestServiceFindMaterial(t *testing.T) {
	t.Run("Best Case: Lists Holding Locations", func(t *testing.T) {
		svc, system, _ := newServiceFixture(t)
		system.SetItemCount(domain.LocPlayerInventory, "iron_ore", 10)
		system.SetItemCount(domain.LocMreafallBank, "iron_ore", 25)

		locations, err := svc.FindMaterial(context.Background(), "iron_ore")

		require.NoError(t, err)
		require.Len(t, locations, 2)
		assert.Equal(t, domain.LocPlayerInventory, locations[0].Location)
		assert.Equal(t, 10, locations[0].Quantity)
		assert.Equal(t, domain.LocMreafallBank, locations[1].Location)
		assert.Equal(t, 25, locations[1].Quantity)
	})

	t.Run("Error Case: Unknown Material", func(t *testing.T) {
		svc, _, _ := newServiceFixture(t)

		_, err := svc.FindMaterial(context.Background(), "mithril_ore")

		assert.ErrorIs(t, err, domain.ErrUnknownMaterial)
	})
}

func TestServiceSummary(t *testing.T) {
	t.Run("Best Case: Covers Every Provisioned Container", func(t *testing.T) {
		svc, system, _ := newServiceFixture(t)

		summaries := svc.Summary(context.Background())

		assert.Len(t, summaries, len(system.Locations()))
		assert.Equal(t, domain.LocPlayerInventory, summaries[0].Location)
	})
}
