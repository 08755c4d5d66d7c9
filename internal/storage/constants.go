package storage

// ==================== Validation ====================

// Error format strings for storage operations. Each wraps the matching
// domain sentinel so callers can branch with errors.Is.
const (
	ErrFmtUnknownMaterial = "%w: %s"
	ErrFmtUnknownLocation = "%w: %s"
	ErrFmtBadSlotCount    = "%w: slot count must be positive, got %d"
	ErrFmtSlotsExceeded   = "%w: cannot unlock %d slots at %s (%d of %d unlocked)"
	ErrFmtBadResetValue   = "%w: reset value must be non-negative, got %d"
)

// ==================== Log Messages ====================

const (
	LogMsgMoveCalled         = "Move called"
	LogMsgMoveCommitted      = "Move committed"
	LogMsgMoveRejected       = "Move rejected"
	LogMsgUnlockCalled       = "Unlock slots called"
	LogMsgUnlockCommitted    = "Slots unlocked"
	LogMsgResetCalled        = "Storage reset called"
	LogMsgResetDone          = "Storage reset"
	LogMsgEventPublishFailed = "Failed to publish storage event"
)
