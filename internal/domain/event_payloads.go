package domain

// ConsumedMaterial records one deduction applied by a craft transaction
type ConsumedMaterial struct {
	Material string   `json:"material"`
	Location Location `json:"location"`
	Quantity int      `json:"quantity"`
}

// ItemCraftedPayload is the event payload for item.crafted events
type ItemCraftedPayload struct {
	PlayerID   string             `json:"player_id"`
	RecipeName string             `json:"recipe_name"`
	Profession Profession         `json:"profession"`
	Quantity   int                `json:"quantity"`
	Consumed   []ConsumedMaterial `json:"consumed"`
	Timestamp  int64              `json:"timestamp"`
}

// StorageMovedPayload is the event payload for storage.moved events
type StorageMovedPayload struct {
	PlayerID  string   `json:"player_id"`
	Material  string   `json:"material"`
	Quantity  int      `json:"quantity"`
	From      Location `json:"from"`
	To        Location `json:"to"`
	Timestamp int64    `json:"timestamp"`
}

// StorageResetPayload is the event payload for storage.reset events
type StorageResetPayload struct {
	PlayerID       string `json:"player_id"`
	InventoryValue int    `json:"inventory_value"`
	StorageValue   int    `json:"storage_value"`
	Timestamp      int64  `json:"timestamp"`
}

// LocationSyncResult holds per-location counters from an API merge
type LocationSyncResult struct {
	Location          Location `json:"location"`
	ItemsUpdated      int      `json:"items_updated"`
	ConflictsResolved int      `json:"conflicts_resolved"`
}

// SyncReport summarizes one completed storage sync with the game API.
type SyncReport struct {
	PlayerID          string               `json:"player_id"`
	ItemsUpdated      int                  `json:"items_updated"`
	ConflictsResolved int                  `json:"conflicts_resolved"`
	SkippedLocations  []string             `json:"skipped_locations,omitempty"`
	Locations         []LocationSyncResult `json:"locations,omitempty"`
	StartedAt         int64                `json:"started_at"`
	FinishedAt        int64                `json:"finished_at"`
}

// SyncCompletedPayload is the event payload for sync.completed events
type SyncCompletedPayload struct {
	Report    SyncReport `json:"report"`
	Trigger   string     `json:"trigger"` // "manual", "startup", "shutdown" or "scheduled"
	Timestamp int64      `json:"timestamp"`
}

// RecipeUpdatedPayload is the event payload for recipe.updated events
type RecipeUpdatedPayload struct {
	Diffs     []RecipeDiff `json:"diffs"`
	Timestamp int64        `json:"timestamp"`
}

// MaterialPrice is one market price point for a material
type MaterialPrice struct {
	Material string  `json:"material"`
	Price    float64 `json:"price"`
}

// PricePoint is one recorded market price observation, as read back
// from the activity ledger.
type PricePoint struct {
	Material   string  `json:"material"`
	Price      float64 `json:"price"`
	Source     string  `json:"source"`
	RecordedAt int64   `json:"recorded_at"`
}

// PricesRefreshedPayload is the event payload for prices.refreshed events
type PricesRefreshedPayload struct {
	Prices    []MaterialPrice `json:"prices"`
	Source    string          `json:"source"`
	Timestamp int64           `json:"timestamp"`
}
