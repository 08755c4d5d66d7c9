package gamesync

// ==================== API Endpoints ====================

// Game API endpoint paths, relative to the configured base URL.
const (
	EndpointLogin         = "/auth/login"
	EndpointRefreshToken  = "/auth/refresh"
	EndpointLogout        = "/auth/logout"
	EndpointPlayerStorage = "/player/storage"
	EndpointStorageSync   = "/storage/sync"
	EndpointMarketPrices  = "/market/prices"
)

// ==================== Request Headers ====================

const (
	UserAgent        = "QuinfallCompanion/1.0"
	HeaderAPIKey     = "X-API-Key"
	QueryParamPlayer = "player_id"
	QueryParamItems  = "materials"
)

// ==================== Sync Triggers ====================

// Trigger labels recorded on sync.completed events
const (
	TriggerManual    = "manual"
	TriggerStartup   = "startup"
	TriggerShutdown  = "shutdown"
	TriggerScheduled = "scheduled"
)

// ==================== Error Messages ====================

const (
	ErrFmtRequestFailed  = "%w: %s %s: %v"
	ErrFmtBadStatus      = "%w: %s returned status %d"
	ErrFmtDecodeFailed   = "failed to decode %s response: %w"
	ErrMsgNoRefreshToken = "no refresh token"
	ErrMsgNoCredentials  = "no credentials"
	ErrFmtFetchFailed    = "failed to fetch storage from game api: %w"
	ErrFmtPushFailed     = "failed to push storage to game api: %w"
	ErrFmtSaveAfterSync  = "failed to save storage after sync: %w"
)

// ==================== Log Messages ====================

const (
	LogMsgSyncStarted        = "Storage sync started"
	LogMsgSyncCompleted      = "Storage sync completed"
	LogMsgSyncFailed         = "Storage sync failed"
	LogMsgCredentialsLoaded  = "Loaded saved API credentials"
	LogMsgCredentialsSaved   = "Saved API credentials"
	LogMsgCredentialsCleared = "Cleared API credentials"
	LogMsgLogoutFailed       = "Logout request failed"
	LogMsgEventPublishFailed = "Failed to publish sync completed event"
)
