package crafting

// ==================== Validation ====================

// Error format strings for craft validation failures. Each wraps the
// matching domain sentinel so callers can branch with errors.Is.
const (
	ErrFmtUnknownRecipe    = "%w: %s"
	ErrFmtBadQuantity      = "%w: craft quantity must be positive, got %d"
	ErrFmtSkillTooLow      = "%w: %s requires %s level %d, player has %d"
	ErrFmtToolTooLow       = "%w: %s requires a level %d %s, player has level %d"
	ErrFmtMissingMaterial  = "%w: %s (need %d, have %d)"
	ErrFmtUncoveredDeficit = "%w: %s short by %d after allocation"
)

// ==================== Log Messages ====================

const (
	LogMsgCanCraftCalled     = "CanCraft called"
	LogMsgCraftCalled        = "Craft called"
	LogMsgCraftCommitted     = "Craft committed"
	LogMsgCraftRejected      = "Craft rejected"
	LogMsgEventPublishFailed = "Failed to publish item crafted event"
)
