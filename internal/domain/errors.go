package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Storage errors
	ErrMsgUnknownLocation   = "unknown storage location"
	ErrMsgUnknownMaterial   = "unknown material"
	ErrMsgInsufficientItems = "insufficient items"
	ErrMsgInsufficientSpace = "insufficient storage space"
	ErrMsgWeightExceeded    = "weight limit exceeded"
	ErrMsgSameLocation      = "source and destination are the same"

	// Crafting errors
	ErrMsgUnknownRecipe = "unknown recipe"
	ErrMsgSkillTooLow   = "skill level too low"
	ErrMsgToolTooLow    = "tool level too low"

	// Persistence errors
	ErrMsgSaveNotFound       = "save file not found"
	ErrMsgUnsupportedVersion = "unsupported save version"

	// Sync errors
	ErrMsgSyncUnavailable = "game api unavailable"
	ErrMsgNotConfigured   = "not configured"
	ErrMsgNotAuthorized   = "not authorized"

	// Validation errors (used for partial matches)
	ErrMsgInvalidQuantity = "quantity" // Used in contains checks for various quantity errors
	ErrMsgInvalidInput    = "invalid input"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// Storage errors
	ErrUnknownLocation   = errors.New(ErrMsgUnknownLocation)
	ErrUnknownMaterial   = errors.New(ErrMsgUnknownMaterial)
	ErrInsufficientItems = errors.New(ErrMsgInsufficientItems)
	ErrInsufficientSpace = errors.New(ErrMsgInsufficientSpace)
	ErrWeightExceeded    = errors.New(ErrMsgWeightExceeded)
	ErrSameLocation      = errors.New(ErrMsgSameLocation)

	// Crafting errors
	ErrUnknownRecipe = errors.New(ErrMsgUnknownRecipe)
	ErrSkillTooLow   = errors.New(ErrMsgSkillTooLow)
	ErrToolTooLow    = errors.New(ErrMsgToolTooLow)

	// Persistence errors
	ErrSaveNotFound       = errors.New(ErrMsgSaveNotFound)
	ErrUnsupportedVersion = errors.New(ErrMsgUnsupportedVersion)

	// Sync errors
	ErrSyncUnavailable = errors.New(ErrMsgSyncUnavailable)
	ErrNotConfigured   = errors.New(ErrMsgNotConfigured)
	ErrNotAuthorized   = errors.New(ErrMsgNotAuthorized)

	// Validation errors
	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)
