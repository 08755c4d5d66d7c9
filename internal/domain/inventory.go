package domain

// SlotInfo describes the slot state of one container
type SlotInfo struct {
	Unlocked   int `json:"unlocked"`
	Max        int `json:"max"`
	Used       int `json:"used"`
	Free       int `json:"free"`
	Unlockable int `json:"unlockable"`
}

// LocationSummary is the per-container view returned by storage summaries
type LocationSummary struct {
	Location        Location    `json:"location"`
	Kind            StorageKind `json:"storage_type"`
	TotalItems      int         `json:"total_items"`
	Capacity        int         `json:"capacity"`
	TotalWeight     float64     `json:"total_weight"`
	WeightLimit     float64     `json:"weight_limit"`
	FreeSpace       int         `json:"free_space"`
	UniqueMaterials int         `json:"unique_materials"`
}

// LocationDetail is the full view of one container: its summary, slot
// state, and item contents.
type LocationDetail struct {
	Summary  LocationSummary `json:"summary"`
	Slots    SlotInfo        `json:"slots"`
	Items    map[string]int  `json:"items"`
	LastSync string          `json:"last_sync,omitempty"`
}

// MaterialLocation records where a material was found and how much is there
type MaterialLocation struct {
	Location Location `json:"location"`
	Quantity int      `json:"quantity"`
}

// ItemSource selects which containers a count query spans: the player
// inventory, the crafting storage locations, or every container.
type ItemSource string

const (
	SourceInventory ItemSource = "inventory"
	SourceStorage   ItemSource = "storage"
	SourceBoth      ItemSource = "both"
)

// IsValid reports whether the source is a known item source
func (s ItemSource) IsValid() bool {
	switch s {
	case SourceInventory, SourceStorage, SourceBoth:
		return true
	}
	return false
}
