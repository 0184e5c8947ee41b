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
	MetricNameEventsPublished   = "events_published_total"
	MetricNameEventDecodeErrors = "event_decode_errors_total"
)

// Game metric names
const (
	MetricNameItemsSold           = "textmaple_items_sold_total"
	MetricNameItemsBought         = "textmaple_items_bought_total"
	MetricNameItemsDropped        = "textmaple_items_dropped_total"
	MetricNameEnhancementAttempts = "textmaple_enhancement_attempts_total"
	MetricNameEncountersFinished  = "textmaple_encounters_finished_total"
	MetricNameLevelUps            = "textmaple_level_ups_total"
	MetricNameCharacterLevel      = "textmaple_character_level"
	MetricNameMesoEarned          = "textmaple_meso_earned_total"
	MetricNameMesoSpent           = "textmaple_meso_spent_total"
	MetricNameSavesTotal          = "textmaple_saves_total"
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
	HelpTextEventsPublished   = "Total number of events published"
	HelpTextEventDecodeErrors = "Total number of event payloads that could not be decoded"
)

// Game metric help text
const (
	HelpTextItemsSold           = "Total number of items sold to the shop"
	HelpTextItemsBought         = "Total number of shop listings bought"
	HelpTextItemsDropped        = "Total number of loot drops"
	HelpTextEnhancementAttempts = "Total number of paid enhancement attempts by outcome"
	HelpTextEncountersFinished  = "Total number of finished encounters by zone and result"
	HelpTextLevelUps            = "Total number of levels gained"
	HelpTextCharacterLevel      = "Current character level"
	HelpTextMesoEarned          = "Total meso earned by source"
	HelpTextMesoSpent           = "Total meso spent by sink"
	HelpTextSavesTotal          = "Total number of save attempts by result"
)

// ============================================================================
// Metric Label Names and Values
// ============================================================================

const (
	LabelMethod  = "method"
	LabelPath    = "path"
	LabelStatus  = "status"
	LabelType    = "type"
	LabelItem    = "item"
	LabelOutcome = "outcome"
	LabelZone    = "zone"
	LabelResult  = "result"
	LabelSource  = "source"
)

const (
	ResultVictory = "victory"
	ResultDefeat  = "defeat"
	ResultFled    = "fled"
	ResultSuccess = "success"
	ResultFailure = "failure"

	SourceSale        = "sale"
	SourceCombat      = "combat"
	SourcePurchase    = "purchase"
	SourceEnhancement = "enhancement"
	SourceRest        = "rest"

	// UnmatchedRoute labels requests no route matched
	UnmatchedRoute = "unmatched"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds, from 1ms to 10s.
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// ============================================================================
// Log Messages
// ============================================================================

const (
	LogMsgEventPayloadDecodeFailed = "Event payload could not be decoded"
	LogMsgMetricsRecorded          = "Metrics recorded for event"
)
