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

// Business Metrics
var (
	LinesIngested = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameLinesIngested,
			Help: HelpTextLinesIngested,
		},
	)

	LinesClassified = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameLinesClassified,
			Help: HelpTextLinesClassified,
		},
		[]string{LabelShape},
	)

	LootEventsAccepted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameLootEventsAccepted,
			Help: HelpTextLootEventsAccepted,
		},
		[]string{LabelSource},
	)

	LootEventsSuppressed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameLootEventsSuppressed,
			Help: HelpTextLootEventsSuppressed,
		},
	)

	UnresolvedLookups = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameUnresolvedLookups,
			Help: HelpTextUnresolvedLookups,
		},
	)

	ResolveCacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameResolveCacheHits,
			Help: HelpTextResolveCacheHits,
		},
	)

	ResolveCacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameResolveCacheMisses,
			Help: HelpTextResolveCacheMisses,
		},
	)

	RollsRecorded = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameRollsRecorded,
			Help: HelpTextRollsRecorded,
		},
		[]string{LabelKind},
	)

	RollWinnersMatched = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameRollWinnersMatched,
			Help: HelpTextRollWinnersMatched,
		},
	)
)
