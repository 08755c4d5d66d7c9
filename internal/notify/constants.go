package notify

// ==================== Message Formats ====================

const (
	MsgFmtSyncCompleted  = "Storage sync finished: %d items updated, %d conflicts resolved (trigger: %s)"
	MsgFmtSyncSkipped    = ", %d locations skipped"
	MsgFmtRecipesChanged = "Recipe data changed: %d recipe(s) affected: %s"
	MoreRecipesSuffix    = " +%d more"
)

// MaxListedRecipes caps how many recipe names one webhook message lists.
const MaxListedRecipes = 10

// ==================== Error Messages ====================

const (
	ErrFmtSessionFailed = "failed to create webhook session: %w"
)

// ==================== Log Messages ====================

const (
	LogMsgDisabled   = "Webhook notifications disabled (no webhook configured)"
	LogMsgSubscribed = "Webhook notifier subscribed to event bus"
	LogMsgSent       = "Webhook notification sent"
	LogMsgSendFailed = "Failed to send webhook notification"
	LogMsgBadPayload = "Ignoring event with unexpected payload"
)
