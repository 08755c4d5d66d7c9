package storage

import (
	"fmt"
	"time"

	"github.com/quinfall/companion/internal/domain"
)

// APISnapshotVersion is the payload version the game API speaks
const APISnapshotVersion = "1.0"

// APIContainer mirrors one container in the game API's storage payload
type APIContainer struct {
	Location      string         `json:"location"`
	StorageType   string         `json:"storage_type"`
	Capacity      int            `json:"capacity"`
	MaxCapacity   int            `json:"max_capacity"`
	WeightLimit   float64        `json:"weight_limit"`
	UnlockedSlots int            `json:"unlocked_slots"`
	Items         map[string]int `json:"items"`
	LastSynced    string         `json:"last_synced,omitempty"`
	SyncHash      string         `json:"sync_hash,omitempty"`
}

// APISnapshot is the storage payload exchanged with the game API
type APISnapshot struct {
	PlayerID    string                  `json:"player_id"`
	Containers  map[string]APIContainer `json:"containers"`
	LastUpdated string                  `json:"last_updated"`
	Version     string                  `json:"version"`
}

// MergeResult reports what an API merge changed
type MergeResult struct {
	ItemsUpdated      int
	ConflictsResolved int
	Skipped           []string
	Locations         []domain.LocationSyncResult
}

// Summary renders the user-facing one-line merge summary.
func (r MergeResult) Summary() string {
	return fmt.Sprintf("Updated %d items, resolved %d conflicts", r.ItemsUpdated, r.ConflictsResolved)
}

// ToAPIFormat converts the system to the payload the game API accepts.
func (s *System) ToAPIFormat() APISnapshot {
	snap := APISnapshot{
		PlayerID:    s.playerID,
		Containers:  make(map[string]APIContainer, len(s.containers)),
		LastUpdated: time.Now().UTC().Format(time.RFC3339),
		Version:     APISnapshotVersion,
	}
	for loc, c := range s.containers {
		snap.Containers[string(loc)] = APIContainer{
			Location:      string(loc),
			StorageType:   string(c.kind),
			Capacity:      c.capacity,
			MaxCapacity:   c.maxSlots,
			WeightLimit:   c.weightLimit,
			UnlockedSlots: c.unlocked,
			Items:         c.Items(),
			LastSynced:    c.lastAPISync,
			SyncHash:      c.syncHash,
		}
	}
	return snap
}

// MergeAPIItems merges API item quantities into local containers.
// The API wins every per-material conflict; materials the API payload
// does not mention keep their local quantities. Unknown locations are
// skipped and reported. This is the sync-path merge; ApplyAPISnapshot
// is the wholesale restore.
func (s *System) MergeAPIItems(snap APISnapshot) MergeResult {
	var result MergeResult
	for key, apiContainer := range snap.Containers {
		loc, ok := domain.ParseLocation(key)
		if !ok {
			result.Skipped = append(result.Skipped, key)
			continue
		}
		c, ok := s.containers[loc]
		if !ok {
			result.Skipped = append(result.Skipped, key)
			continue
		}

		locResult := domain.LocationSyncResult{Location: loc}
		for materialID, apiQty := range apiContainer.Items {
			localQty := c.ItemCount(materialID)
			if localQty == apiQty {
				continue
			}
			c.SetItemCount(materialID, apiQty)
			locResult.ConflictsResolved++
			locResult.ItemsUpdated++
		}
		if locResult.ItemsUpdated > 0 {
			result.Locations = append(result.Locations, locResult)
			result.ItemsUpdated += locResult.ItemsUpdated
			result.ConflictsResolved += locResult.ConflictsResolved
		}
	}
	return result
}

// ApplyAPISnapshot overwrites local containers with the API's view:
// capacity fields update where the payload provides them, item maps
// are replaced wholesale, and sync metadata refreshes. Unknown
// locations are skipped and reported. The result counts quantities
// that changed and, as resolved conflicts, materials the container
// held at a different quantity, including ones the replacement
// discards.
func (s *System) ApplyAPISnapshot(snap APISnapshot) MergeResult {
	var result MergeResult
	for key, apiContainer := range snap.Containers {
		loc, ok := domain.ParseLocation(key)
		if !ok {
			result.Skipped = append(result.Skipped, key)
			continue
		}
		c, ok := s.containers[loc]
		if !ok {
			result.Skipped = append(result.Skipped, key)
			continue
		}

		if apiContainer.Capacity > 0 {
			c.capacity = apiContainer.Capacity
		}
		if apiContainer.MaxCapacity > 0 {
			c.maxSlots = apiContainer.MaxCapacity
		}
		if apiContainer.WeightLimit > 0 {
			c.weightLimit = apiContainer.WeightLimit
		}
		if apiContainer.UnlockedSlots > 0 {
			c.unlocked = apiContainer.UnlockedSlots
		}

		locResult := domain.LocationSyncResult{Location: loc}
		before := c.items
		c.items = make(map[string]int, len(apiContainer.Items))
		for materialID, qty := range apiContainer.Items {
			if qty <= 0 {
				continue
			}
			c.items[materialID] = qty
			if before[materialID] != qty {
				locResult.ItemsUpdated++
				if before[materialID] > 0 {
					locResult.ConflictsResolved++
				}
			}
		}
		// Local-only materials the replacement discards are conflicts
		// the API resolved by omission.
		for materialID, qty := range before {
			if qty > 0 && apiContainer.Items[materialID] <= 0 {
				locResult.ConflictsResolved++
			}
		}
		c.lastAPISync = apiContainer.LastSynced
		c.syncHash = apiContainer.SyncHash

		result.Locations = append(result.Locations, locResult)
		result.ItemsUpdated += locResult.ItemsUpdated
		result.ConflictsResolved += locResult.ConflictsResolved
	}
	return result
}
