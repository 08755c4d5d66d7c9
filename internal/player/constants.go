package player

// ==================== Validation ====================

const (
	ErrFmtBadLevel  = "%w: level must be positive, got %d"
	ErrFmtEmptyTier = "%w: tool tier must not be empty"
)

// ==================== Log Messages ====================

const (
	LogMsgSkillUpdated    = "Skill level updated"
	LogMsgToolUpdated     = "Tool level updated"
	LogMsgToolTierUpdated = "Tool tier updated"
	LogMsgProfToolUpdated = "Profession tool level updated"
	LogMsgSaveCalled      = "Save called"
	LogMsgSaved           = "State saved"
	LogMsgReloadCalled    = "Reload called"
	LogMsgReloaded        = "State reloaded"
)
