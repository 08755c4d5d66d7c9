package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	// HTTP status messages
	ErrMsgMethodNotAllowed      = "Method not allowed"
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"

	// Path and query parameter error messages
	ErrMsgMissingQueryParam = "Missing %s query parameter"
	ErrMsgInvalidLimit      = "Invalid limit parameter"
	ErrMsgInvalidOffset     = "Invalid offset parameter"
	ErrMsgInvalidSince      = "Invalid since parameter, expected unix seconds or RFC3339"
	ErrMsgInvalidLocation   = "Unknown storage location '%s'"
	ErrMsgInvalidProfession = "Unknown profession '%s'"
	ErrMsgInvalidTool       = "Unknown tool '%s'"
	ErrMsgInvalidCategory   = "Unknown material category '%s'"
	ErrMsgInvalidRarity     = "Unknown material rarity '%s'"
	ErrMsgInvalidSkill      = "Invalid skill parameter"
	ErrMsgInvalidToolLevel  = "Invalid tool_level parameter"

	// Storage operation error messages
	ErrMsgGetStorageFailed   = "Failed to get storage summary"
	ErrMsgMoveItemFailed     = "Failed to move material"
	ErrMsgUnlockSlotsFailed  = "Failed to unlock slots"
	ErrMsgResetStorageFailed = "Failed to reset storage"

	// Player operation error messages
	ErrMsgUpdateSkillFailed = "Failed to update skill level"
	ErrMsgUpdateToolFailed  = "Failed to update tool"

	// Crafting error messages
	ErrMsgCraftFailed      = "Failed to craft item"
	ErrMsgCraftCheckFailed = "Failed to check craftability"

	// Market error messages
	ErrMsgGetPricesFailed  = "Failed to get market prices"
	ErrMsgGetHistoryFailed = "Failed to get price history"

	// Sync error messages
	ErrMsgSyncFailed = "Failed to sync with game API"

	// Persistence error messages
	ErrMsgSaveFailed = "Failed to save"
	ErrMsgLoadFailed = "Failed to load saves"

	// Ledger error messages
	ErrMsgGetOperationsFailed = "Failed to get ledger operations"
)

// Success messages for API responses
const (
	MsgMoveSuccess   = "Material moved successfully"
	MsgResetSuccess  = "Storage reset successfully"
	MsgCraftPossible = "Craft is possible"
	MsgSaveSuccess   = "State saved successfully"
	MsgLoadSuccess   = "State reloaded from disk"
)
