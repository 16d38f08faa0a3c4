package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
	MetricNameStreamClients        = "stream_clients"
)

// Event metric names
const (
	MetricNameEventsTracked      = "events_tracked_total"
	MetricNameEventsDropped      = "events_dropped_total"
	MetricNameEventHandlerErrors = "event_handler_errors_total"
)

// Game metric names
const (
	MetricNameClicks            = "game_clicks_total"
	MetricNameProducersBought   = "game_producers_bought_total"
	MetricNameClickUpgrades     = "game_click_upgrades_total"
	MetricNamePurchasesRejected = "game_purchases_rejected_total"
	MetricNameTicks             = "game_ticks_total"
	MetricNameCurrency          = "game_currency"
	MetricNameProductionRate    = "game_production_rate"
)

// Persistence metric names
const (
	MetricNameSaves        = "savegame_saves_total"
	MetricNameSaveFailures = "savegame_save_failures_total"
	MetricNameSaveDuration = "savegame_save_duration_seconds"
	MetricNameLoads        = "savegame_loads_total"
	MetricNameFieldErrors  = "savegame_field_errors_total"
	MetricNameCacheHits    = "storage_cache_hits_total"
	MetricNameCacheMisses  = "storage_cache_misses_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
	HelpTextStreamClients        = "Current number of connected state stream clients"
)

// Event metric help text
const (
	HelpTextEventsTracked      = "Total number of analytics events tracked"
	HelpTextEventsDropped      = "Total number of analytics events dropped because the queue was full"
	HelpTextEventHandlerErrors = "Total number of event handler errors"
)

// Game metric help text
const (
	HelpTextClicks            = "Total number of clicks recorded"
	HelpTextProducersBought   = "Total number of producers bought"
	HelpTextClickUpgrades     = "Total number of click upgrades bought"
	HelpTextPurchasesRejected = "Total number of rejected purchases"
	HelpTextTicks             = "Total number of production ticks applied"
	HelpTextCurrency          = "Current currency balance"
	HelpTextProductionRate    = "Current passive production per second"
)

// Persistence metric help text
const (
	HelpTextSaves        = "Total number of successful saves"
	HelpTextSaveFailures = "Total number of failed saves"
	HelpTextSaveDuration = "Save latency in seconds"
	HelpTextLoads        = "Total number of loads"
	HelpTextFieldErrors  = "Total number of malformed save fields replaced by defaults"
	HelpTextCacheHits    = "Total number of storage cache hits"
	HelpTextCacheMisses  = "Total number of storage cache misses"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod   = "method"
	LabelPath     = "path"
	LabelStatus   = "status"
	LabelType     = "type"
	LabelProducer = "producer"
	LabelReason   = "reason"
	LabelMode     = "mode"
	LabelOutcome  = "outcome"
	LabelField    = "field"
)

// Load outcomes
const (
	OutcomeLoaded   = "loaded"
	OutcomeDefaults = "defaults"
	OutcomeFailed   = "failed"
)

// Purchase rejection reasons
const (
	ReasonInsufficientFunds = "insufficient_funds"
	ReasonUnknownProducer   = "unknown_producer"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds, from 1ms to 10s
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// StorageLatencyBuckets defines the histogram buckets for save duration
var StorageLatencyBuckets = []float64{.0005, .001, .005, .01, .025, .05, .1, .25, .5, 1}

// ============================================================================
// Log Messages
// ============================================================================

// Debug log messages
const (
	LogMsgMetricsRecorded = "Metrics recorded for event"
)
