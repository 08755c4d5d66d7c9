package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/quinfall/companion/internal/domain"
	"github.com/quinfall/companion/internal/logger"
	"github.com/quinfall/companion/internal/utils"
)

// CurrentSnapshotVersion is the storage save format written by Save.
// Version 1 is the legacy format without max_capacity/unlocked_slots;
// loading migrates it forward through the migration table.
const CurrentSnapshotVersion = 2

// Legacy container defaults assumed by version 1 save files, which
// did not persist slot fields.
const (
	legacyMaxSlots      = 1000
	legacyUnlockedSlots = 200
)

// ContainerSnapshot is the serialized form of one container
type ContainerSnapshot struct {
	StorageType     string         `json:"storage_type"`
	Capacity        int            `json:"capacity"`
	MaxCapacity     int            `json:"max_capacity,omitempty"`
	UnlockedSlots   int            `json:"unlocked_slots,omitempty"`
	WeightLimit     float64        `json:"weight_limit"`
	Items           map[string]int `json:"items"`
	APIContainerID  string         `json:"api_container_id,omitempty"`
	GameContainerID string         `json:"game_container_id,omitempty"`
	LastSync        string         `json:"last_sync,omitempty"`
}

// Snapshot is the serialized form of a full storage system
type Snapshot struct {
	Version    int                          `json:"version"`
	PlayerID   string                       `json:"player_id"`
	SavedAt    string                       `json:"saved_at,omitempty"`
	Containers map[string]ContainerSnapshot `json:"containers"`
}

// Snapshot captures the full system state in the current save format.
func (s *System) Snapshot() Snapshot {
	snap := Snapshot{
		Version:    CurrentSnapshotVersion,
		PlayerID:   s.playerID,
		SavedAt:    time.Now().UTC().Format(time.RFC3339),
		Containers: make(map[string]ContainerSnapshot, len(s.containers)),
	}
	for loc, c := range s.containers {
		snap.Containers[string(loc)] = ContainerSnapshot{
			StorageType:     string(c.kind),
			Capacity:        c.capacity,
			MaxCapacity:     c.maxSlots,
			UnlockedSlots:   c.unlocked,
			WeightLimit:     c.weightLimit,
			Items:           c.Items(),
			APIContainerID:  c.apiContainerID,
			GameContainerID: c.gameContainerID,
			LastSync:        c.lastSync,
		}
	}
	return snap
}

// snapshotMigrations maps a save version to the function that lifts it
// one version forward. Loading applies the chain until the snapshot
// reaches CurrentSnapshotVersion.
var snapshotMigrations = map[int]func(*Snapshot){
	1: migrateSnapshotV1,
}

// migrateSnapshotV1 fills the slot fields version 1 files never
// persisted: provisioned locations take their defaults-table values,
// anything else the legacy dataclass defaults.
func migrateSnapshotV1(snap *Snapshot) {
	specs := defaultContainerSpecs()
	for key, cs := range snap.Containers {
		if cs.MaxCapacity == 0 || cs.UnlockedSlots == 0 {
			if loc, ok := domain.ParseLocation(key); ok {
				if spec, provisioned := specs[loc]; provisioned {
					if cs.MaxCapacity == 0 {
						cs.MaxCapacity = spec.maxSlots
					}
					if cs.UnlockedSlots == 0 {
						cs.UnlockedSlots = spec.unlocked
					}
					snap.Containers[key] = cs
					continue
				}
			}
			if cs.MaxCapacity == 0 {
				cs.MaxCapacity = legacyMaxSlots
			}
			if cs.UnlockedSlots == 0 {
				cs.UnlockedSlots = legacyUnlockedSlots
			}
			snap.Containers[key] = cs
		}
	}
}

// migrateSnapshot lifts a snapshot to the current version. A missing
// version field means version 1.
func migrateSnapshot(snap *Snapshot) error {
	if snap.Version == 0 {
		snap.Version = 1
	}
	if snap.Version > CurrentSnapshotVersion {
		return fmt.Errorf("%w: storage save version %d, supported up to %d",
			domain.ErrUnsupportedVersion, snap.Version, CurrentSnapshotVersion)
	}
	for snap.Version < CurrentSnapshotVersion {
		migrate, ok := snapshotMigrations[snap.Version]
		if !ok {
			return fmt.Errorf("%w: no migration from storage save version %d",
				domain.ErrUnsupportedVersion, snap.Version)
		}
		migrate(snap)
		snap.Version++
	}
	return nil
}

// RestoreSnapshot replaces system state with a snapshot's contents.
// Containers named in the snapshot are rebuilt wholesale, including
// locations the defaults table does not provision. Unknown locations
// and unknown storage kinds are skipped, never an error; the skipped
// keys are returned so callers can log them. Save files predating the
// current format are migrated first.
func (s *System) RestoreSnapshot(snap Snapshot) ([]string, error) {
	if err := migrateSnapshot(&snap); err != nil {
		return nil, err
	}
	if snap.PlayerID != "" {
		s.playerID = snap.PlayerID
	}

	var skipped []string
	for key, cs := range snap.Containers {
		loc, ok := domain.ParseLocation(key)
		if !ok {
			skipped = append(skipped, key)
			continue
		}
		kind, ok := domain.ParseStorageKind(cs.StorageType)
		if !ok {
			skipped = append(skipped, key)
			continue
		}

		c := NewContainer(loc, kind, cs.Capacity, cs.MaxCapacity, cs.UnlockedSlots, cs.WeightLimit, s.cat)
		for id, qty := range cs.Items {
			if qty > 0 {
				c.items[id] = qty
			}
		}
		c.apiContainerID = cs.APIContainerID
		c.gameContainerID = cs.GameContainerID
		c.lastSync = cs.LastSync

		if _, existed := s.containers[loc]; !existed {
			s.order = append(s.order, loc)
		}
		s.containers[loc] = c
	}
	return skipped, nil
}

// Store persists storage snapshots as JSON save files under a
// directory, one file per player.
type Store struct {
	dir string
}

// NewStore creates a store rooted at dir. The directory is created on
// first save.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// Path returns the save file path for a player
func (st *Store) Path(playerID string) string {
	return filepath.Join(st.dir, domain.StorageSaveFile(playerID))
}

// Save writes the system's snapshot to the player's save file.
func (st *Store) Save(ctx context.Context, s *System) error {
	if err := os.MkdirAll(st.dir, 0755); err != nil {
		return fmt.Errorf("failed to create save directory: %w", err)
	}
	snap := s.Snapshot()
	if err := utils.SaveJSON(st.Path(s.PlayerID()), snap); err != nil {
		return fmt.Errorf("failed to save storage: %w", err)
	}
	logger.FromContext(ctx).Info("Storage saved",
		"player_id", s.PlayerID(),
		"containers", len(snap.Containers))
	return nil
}

// Load reads the player's save file into the system. A missing file
// returns domain.ErrSaveNotFound so callers can fall back to a fresh
// state; skipped locations are logged and discarded.
func (st *Store) Load(ctx context.Context, s *System) error {
	log := logger.FromContext(ctx)
	path := st.Path(s.PlayerID())

	var snap Snapshot
	if err := utils.LoadJSON(path, &snap); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%w: %s", domain.ErrSaveNotFound, path)
		}
		return fmt.Errorf("failed to load storage: %w", err)
	}

	skipped, err := s.RestoreSnapshot(snap)
	if err != nil {
		return err
	}
	for _, key := range skipped {
		log.Warn("Skipping unknown storage location in save file", "location", key)
	}
	log.Info("Storage loaded",
		"player_id", s.PlayerID(),
		"containers", len(snap.Containers),
		"skipped", len(skipped))
	return nil
}
