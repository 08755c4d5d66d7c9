package market

// PriceSourceGameAPI labels price points fetched from the game API
const PriceSourceGameAPI = "game_api"

// ==================== Error Messages ====================

const (
	ErrMsgEmptyMaterial = "material is required"
	ErrFmtFetchFailed   = "failed to fetch market prices: %w"
)

// ==================== Log Messages ====================

const (
	LogMsgPricesCalled       = "Prices called"
	LogMsgPricesFetched      = "Fetched market prices"
	LogMsgHistoryCalled      = "History called"
	LogMsgEventPublishFailed = "Failed to publish prices refreshed event"
)
