package domain

// Event type constants used across the application for event bus subscriptions
// and metrics tracking. These represent domain events that can be published
// and consumed by multiple modules.
//
// Event types follow the pattern: <entity>.<action> (e.g., "item.crafted")
const (
	// EventTypeItemCrafted is published when a craft transaction commits
	EventTypeItemCrafted = "item.crafted"

	// EventTypeStorageMoved is published when a cross-location move commits
	EventTypeStorageMoved = "storage.moved"

	// EventTypeStorageReset is published when storage contents are reset
	EventTypeStorageReset = "storage.reset"

	// EventTypeSyncCompleted is published after a game API sync finishes
	EventTypeSyncCompleted = "sync.completed"

	// EventTypeRecipeUpdated is published when loaded recipes differ from
	// a previously seen version of the recipe resources
	EventTypeRecipeUpdated = "recipe.updated"

	// EventTypePricesRefreshed is published when market prices are fetched
	// from the game API (not on cache hits)
	EventTypePricesRefreshed = "prices.refreshed"
)
