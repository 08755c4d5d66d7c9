package ledger

// ==================== Operation Kinds ====================

// Operation kinds recorded in the journal
const (
	KindCraft = "craft"
	KindMove  = "move"
	KindReset = "reset"
	KindSync  = "sync"
)

// ==================== Error Messages ====================

const (
	ErrMsgEmptyPath     = "ledger path is required"
	ErrFmtOpenFailed    = "failed to open ledger database: %w"
	ErrFmtPingFailed    = "failed to ping ledger database: %w"
	ErrFmtMigrateFailed = "failed to apply ledger migrations: %w"
	ErrFmtInsertFailed  = "failed to insert %s row: %w"
	ErrFmtQueryFailed   = "failed to query %s: %w"
	ErrFmtScanFailed    = "failed to scan %s row: %w"
	ErrFmtBadLimit      = "%w: limit must be positive, got %d"
)

// ==================== Log Messages ====================

const (
	LogMsgOpened          = "Ledger opened"
	LogMsgClosed          = "Ledger closed"
	LogMsgSubscribed      = "Ledger subscribed to event bus"
	LogMsgRecordFailed    = "Failed to record ledger entry"
	LogMsgBadEventPayload = "Ignoring event with unexpected payload"
)
