package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Event Metrics
var (
	EventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventsPublished,
			Help: HelpTextEventsPublished,
		},
		[]string{LabelType},
	)

	EventHandlerErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventHandlerErrors,
			Help: HelpTextEventHandlerErrors,
		},
		[]string{LabelType},
	)
)

// Companion Metrics
var (
	StorageMoves = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameStorageMoves,
			Help: HelpTextStorageMoves,
		},
		[]string{LabelOutcome},
	)

	Crafts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCrafts,
			Help: HelpTextCrafts,
		},
		[]string{LabelOutcome},
	)

	SyncRuns = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameSyncRuns,
			Help: HelpTextSyncRuns,
		},
		[]string{LabelTrigger, LabelOutcome},
	)

	SyncDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    MetricNameSyncDuration,
			Help:    HelpTextSyncDuration,
			Buckets: SyncDurationBuckets,
		},
	)

	SyncItemsUpdated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameSyncItemsUpdated,
			Help: HelpTextSyncItemsUpdated,
		},
	)

	MarketCacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameMarketCacheHits,
			Help: HelpTextMarketCacheHits,
		},
	)

	MarketCacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameMarketCacheMisses,
			Help: HelpTextMarketCacheMisses,
		},
	)

	LedgerWriteFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameLedgerWriteFailures,
			Help: HelpTextLedgerWriteFailures,
		},
	)
)
