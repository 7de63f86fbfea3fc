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

// Business metric names
const (
	MetricNameEncountersTotal      = "scavenger_encounters_total"
	MetricNameVerdictsTotal        = "scavenger_verdicts_total"
	MetricNameReplayLinesTotal     = "scavenger_replay_lines_total"
	MetricNameScavengersRegistered = "scavenger_registered_total"
	MetricNameCacheLookupsTotal    = "scavenger_cache_lookups_total"
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

// Business metric help text
const (
	HelpTextEncountersTotal      = "Total number of resolved encounters by type and outcome"
	HelpTextVerdictsTotal        = "Total number of verdicts reached by policy"
	HelpTextReplayLinesTotal     = "Total number of replayed log lines by status"
	HelpTextScavengersRegistered = "Total number of scavengers registered"
	HelpTextCacheLookupsTotal    = "Total number of scavenger cache lookups by result"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod    = "method"
	LabelPath      = "path"
	LabelStatus    = "status"
	LabelEncounter = "encounter"
	LabelOutcome   = "outcome"
	LabelPolicy    = "policy"
	LabelVerdict   = "verdict"
	LabelResult    = "result"
)

// Label values
const (
	StatusOK        = "ok"
	StatusMalformed = "malformed"
	ResultHit       = "hit"
	ResultMiss      = "miss"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds, from 1ms to 10s
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}
