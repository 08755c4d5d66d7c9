package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quinfall/companion/internal/domain"
)

func TestSnapshotRoundtrip(t *testing.T) {
	t.Run("Best Case: Restore Recreates State", func(t *testing.T) {
		system := newTestSystem(t)
		system.SetItemCount(domain.LocPlayerInventory, "iron_ore", 42)
		system.SetItemCount(domain.LocMeadowBank, "feather", 7)
		c, _ := system.Container(domain.LocMeadowBank)
		require.True(t, c.UnlockSlots(50))

		snap := system.Snapshot()
		restored := newTestSystem(t)
		skipped, err := restored.RestoreSnapshot(snap)

		require.NoError(t, err)
		assert.Empty(t, skipped)
		assert.Equal(t, 42, restored.ItemCountAt(domain.LocPlayerInventory, "iron_ore"))
		assert.Equal(t, 7, restored.ItemCountAt(domain.LocMeadowBank, "feather"))
		rc, ok := restored.Container(domain.LocMeadowBank)
		require.True(t, ok)
		assert.Equal(t, 250, rc.UnlockedSlots())
	})

	t.Run("Best Case: Snapshot Carries Current Version", func(t *testing.T) {
		system := newTestSystem(t)

		snap := system.Snapshot()

		assert.Equal(t, CurrentSnapshotVersion, snap.Version)
		assert.Equal(t, "default", snap.PlayerID)
		assert.NotEmpty(t, snap.SavedAt)
		assert.Len(t, snap.Containers, len(system.Locations()))
	})

	t.Run("Best Case: Restore Adopts Snapshot Player ID", func(t *testing.T) {
		system := newTestSystem(t)
		snap := system.Snapshot()
		snap.PlayerID = "traveler"

		restored := newTestSystem(t)
		_, err := restored.RestoreSnapshot(snap)

		require.NoError(t, err)
		assert.Equal(t, "traveler", restored.PlayerID())
	})
}

func TestRestoreSnapshotSkips(t *testing.T) {
	t.Run("Error Case: Unknown Location Is Skipped", func(t *testing.T) {
		system := newTestSystem(t)
		before := system.ItemCountAt(domain.LocPlayerInventory, "iron_ore")

		skipped, err := system.RestoreSnapshot(Snapshot{
			Version: CurrentSnapshotVersion,
			Containers: map[string]ContainerSnapshot{
				"atlantis_vault": {StorageType: "bank", Items: map[string]int{"iron_ore": 5}},
			},
		})

		require.NoError(t, err)
		assert.Equal(t, []string{"atlantis_vault"}, skipped)
		assert.Equal(t, before, system.ItemCountAt(domain.LocPlayerInventory, "iron_ore"))
	})

	t.Run("Error Case: Unknown Storage Kind Is Skipped", func(t *testing.T) {
		system := newTestSystem(t)

		skipped, err := system.RestoreSnapshot(Snapshot{
			Version: CurrentSnapshotVersion,
			Containers: map[string]ContainerSnapshot{
				string(domain.LocMeadowBank): {StorageType: "vault", Items: map[string]int{"iron_ore": 5}},
			},
		})

		require.NoError(t, err)
		assert.Equal(t, []string{string(domain.LocMeadowBank)}, skipped)
	})

	t.Run("Best Case: Unprovisioned Location Gains A Container", func(t *testing.T) {
		system := newTestSystem(t)
		_, ok := system.Container(domain.LocCaravanStorage)
		require.False(t, ok)

		skipped, err := system.RestoreSnapshot(Snapshot{
			Version: CurrentSnapshotVersion,
			Containers: map[string]ContainerSnapshot{
				string(domain.LocCaravanStorage): {
					StorageType:   string(domain.KindTempStorage),
					Capacity:      50,
					MaxCapacity:   100,
					UnlockedSlots: 50,
					WeightLimit:   500,
					Items:         map[string]int{"iron_ore": 5},
				},
			},
		})

		require.NoError(t, err)
		assert.Empty(t, skipped)
		c, ok := system.Container(domain.LocCaravanStorage)
		require.True(t, ok)
		assert.Equal(t, 5, c.ItemCount("iron_ore"))
		assert.Contains(t, system.Locations(), domain.LocCaravanStorage)
	})

	t.Run("Best Case: Non-Positive Quantities Are Dropped", func(t *testing.T) {
		system := newTestSystem(t)

		_, err := system.RestoreSnapshot(Snapshot{
			Version: CurrentSnapshotVersion,
			Containers: map[string]ContainerSnapshot{
				string(domain.LocMeadowBank): {
					StorageType:   string(domain.KindBank),
					Capacity:      200,
					MaxCapacity:   1000,
					UnlockedSlots: 200,
					WeightLimit:   50000,
					Items:         map[string]int{"iron_ore": 5, "feather": 0, "iron_ingot": -3},
				},
			},
		})

		require.NoError(t, err)
		c, _ := system.Container(domain.LocMeadowBank)
		assert.Equal(t, 5, c.ItemCount("iron_ore"))
		assert.Equal(t, 1, c.UniqueMaterials())
	})
}

func TestSnapshotMigration(t *testing.T) {
	t.Run("Best Case: Version 1 Gains Slot Fields From Defaults", func(t *testing.T) {
		system := newTestSystem(t)

		// Version 1 files carried no max_capacity/unlocked_slots
		_, err := system.RestoreSnapshot(Snapshot{
			Version: 1,
			Containers: map[string]ContainerSnapshot{
				string(domain.LocMeadowBank): {
					StorageType: string(domain.KindBank),
					Capacity:    200,
					WeightLimit: 50000,
					Items:       map[string]int{"iron_ore": 5},
				},
			},
		})

		require.NoError(t, err)
		c, _ := system.Container(domain.LocMeadowBank)
		assert.Equal(t, 1000, c.MaxSlots())
		assert.Equal(t, 200, c.UnlockedSlots())
	})

	t.Run("Best Case: Missing Version Means Version 1", func(t *testing.T) {
		system := newTestSystem(t)

		_, err := system.RestoreSnapshot(Snapshot{
			Containers: map[string]ContainerSnapshot{
				string(domain.LocCaravanStorage): {
					StorageType: string(domain.KindTempStorage),
					Capacity:    50,
					WeightLimit: 500,
				},
			},
		})

		require.NoError(t, err)
		// Unprovisioned locations fall back to the legacy defaults
		c, ok := system.Container(domain.LocCaravanStorage)
		require.True(t, ok)
		assert.Equal(t, legacyMaxSlots, c.MaxSlots())
		assert.Equal(t, legacyUnlockedSlots, c.UnlockedSlots())
	})

	t.Run("Error Case: Future Version Is Rejected", func(t *testing.T) {
		system := newTestSystem(t)

		_, err := system.RestoreSnapshot(Snapshot{Version: CurrentSnapshotVersion + 1})

		assert.ErrorIs(t, err, domain.ErrUnsupportedVersion)
	})
}

func TestStore(t *testing.T) {
	t.Run("Best Case: Save Then Load Roundtrip", func(t *testing.T) {
		dir := t.TempDir()
		store := NewStore(dir)
		ctx := context.Background()

		system := newTestSystem(t)
		system.SetItemCount(domain.LocPlayerInventory, "iron_ore", 13)
		require.NoError(t, store.Save(ctx, system))

		loaded := newTestSystem(t)
		require.NoError(t, store.Load(ctx, loaded))

		assert.Equal(t, 13, loaded.ItemCountAt(domain.LocPlayerInventory, "iron_ore"))
	})

	t.Run("Best Case: Save Creates The Directory", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "nested", "saves")
		store := NewStore(dir)

		system := newTestSystem(t)
		require.NoError(t, store.Save(context.Background(), system))

		_, err := os.Stat(store.Path("default"))
		assert.NoError(t, err)
	})

	t.Run("Error Case: Missing Save File", func(t *testing.T) {
		store := NewStore(t.TempDir())

		err := store.Load(context.Background(), newTestSystem(t))

		assert.ErrorIs(t, err, domain.ErrSaveNotFound)
	})
}
