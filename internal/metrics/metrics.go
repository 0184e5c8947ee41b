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

	EventDecodeErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventDecodeErrors,
			Help: HelpTextEventDecodeErrors,
		},
		[]string{LabelType},
	)
)

// Game Metrics
var (
	ItemsSold = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameItemsSold,
			Help: HelpTextItemsSold,
		},
		[]string{LabelItem},
	)

	ItemsBought = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameItemsBought,
			Help: HelpTextItemsBought,
		},
		[]string{LabelItem},
	)

	ItemsDropped = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameItemsDropped,
			Help: HelpTextItemsDropped,
		},
		[]string{LabelItem},
	)

	EnhancementAttempts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEnhancementAttempts,
			Help: HelpTextEnhancementAttempts,
		},
		[]string{LabelOutcome},
	)

	EncountersFinished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEncountersFinished,
			Help: HelpTextEncountersFinished,
		},
		[]string{LabelZone, LabelResult},
	)

	LevelUps = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameLevelUps,
			Help: HelpTextLevelUps,
		},
	)

	CharacterLevel = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameCharacterLevel,
			Help: HelpTextCharacterLevel,
		},
	)

	MesoEarned = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameMesoEarned,
			Help: HelpTextMesoEarned,
		},
		[]string{LabelSource},
	)

	MesoSpent = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameMesoSpent,
			Help: HelpTextMesoSpent,
		},
		[]string{LabelSource},
	)

	SavesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameSavesTotal,
			Help: HelpTextSavesTotal,
		},
		[]string{LabelResult},
	)
)
