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

// Business metric names
const (
	MetricNameLinesIngested        = "lines_ingested_total"
	MetricNameLinesClassified      = "lines_classified_total"
	MetricNameLootEventsAccepted   = "loot_events_accepted_total"
	MetricNameLootEventsSuppressed = "loot_events_suppressed_total"
	MetricNameUnresolvedLookups    = "catalog_lookups_unresolved_total"
	MetricNameResolveCacheHits     = "catalog_resolve_cache_hits_total"
	MetricNameResolveCacheMisses   = "catalog_resolve_cache_misses_total"
	MetricNameRollsRecorded        = "rolls_recorded_total"
	MetricNameRollWinnersMatched   = "roll_winners_matched_total"
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

// Business metric help text
const (
	HelpTextLinesIngested        = "Total number of raw lines delivered for classification"
	HelpTextLinesClassified      = "Total number of lines matched by a message shape"
	HelpTextLootEventsAccepted   = "Total number of loot events accepted past deduplication"
	HelpTextLootEventsSuppressed = "Total number of loot events suppressed as duplicates"
	HelpTextUnresolvedLookups    = "Total number of catalog lookups that exhausted every fallback stage"
	HelpTextResolveCacheHits     = "Total number of name resolutions served from the cache"
	HelpTextResolveCacheMisses   = "Total number of name resolutions that ran the fallback chain"
	HelpTextRollsRecorded        = "Total number of need/greed rolls recorded"
	HelpTextRollWinnersMatched   = "Total number of roll sessions that gained a winner"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod = "method"
	LabelPath   = "path"
	LabelStatus = "status"
	LabelType   = "type"
	LabelShape  = "shape"
	LabelSource = "source"
	LabelKind   = "kind"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds. These buckets range from 1ms to 10s to capture various latency
// patterns: fast (1-10ms), normal (10-100ms), slow (100ms-1s), very slow (1-10s)
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}
