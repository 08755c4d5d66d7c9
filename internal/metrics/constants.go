package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Event metric names
const (
	MetricNameEventsPublished    = "events_published_total"
	MetricNameEventHandlerErrors = "event_handler_errors_total"
)

// Companion metric names
const (
	MetricNameStorageMoves        = "storage_moves_total"
	MetricNameCrafts              = "crafts_total"
	MetricNameSyncRuns            = "sync_runs_total"
	MetricNameSyncDuration        = "sync_duration_seconds"
	MetricNameSyncItemsUpdated    = "sync_items_updated_total"
	MetricNameMarketCacheHits     = "market_price_cache_hits_total"
	MetricNameMarketCacheMisses   = "market_price_cache_misses_total"
	MetricNameLedgerWriteFailures = "ledger_write_failures_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Event metric help text
const (
	HelpTextEventsPublished    = "Total number of events published"
	HelpTextEventHandlerErrors = "Total number of event handler errors"
)

// Companion metric help text
const (
	HelpTextStorageMoves        = "Total number of cross-location storage moves"
	HelpTextCrafts              = "Total number of craft attempts"
	HelpTextSyncRuns            = "Total number of game API sync runs"
	HelpTextSyncDuration        = "Game API sync run duration in seconds"
	HelpTextSyncItemsUpdated    = "Total number of items updated by game API syncs"
	HelpTextMarketCacheHits     = "Total number of market price cache hits"
	HelpTextMarketCacheMisses   = "Total number of market price cache misses"
	HelpTextLedgerWriteFailures = "Total number of failed ledger journal writes"
)

// ============================================================================
// Metric Label Names
// ============================================================================

const (
	LabelMethod  = "method"
	LabelPath    = "path"
	LabelStatus  = "status"
	LabelType    = "type"
	LabelOutcome = "outcome"
	LabelTrigger = "trigger"
)

// Outcome label values
const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds. These buckets range from 1ms to 10s to capture various latency
// patterns: fast (1-10ms), normal (10-100ms), slow (100ms-1s), very slow (1-10s)
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// SyncDurationBuckets covers sync runs from sub-second to minutes.
var SyncDurationBuckets = []float64{.1, .25, .5, 1, 2.5, 5, 10, 30, 60, 120}

// ============================================================================
// Log Messages
// ============================================================================

// Debug log messages
const (
	LogMsgBadEventPayload = "Event payload did not decode for metrics"
	LogMsgMetricsRecorded = "Metrics recorded for event"
)
