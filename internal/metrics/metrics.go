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

	StreamClients = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameStreamClients,
			Help: HelpTextStreamClients,
		},
	)
)

// Event Metrics
var (
	EventsTracked = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventsTracked,
			Help: HelpTextEventsTracked,
		},
		[]string{LabelType},
	)

	EventsDropped = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventsDropped,
			Help: HelpTextEventsDropped,
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

// Game Metrics
var (
	Clicks = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameClicks,
			Help: HelpTextClicks,
		},
	)

	ProducersBought = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameProducersBought,
			Help: HelpTextProducersBought,
		},
		[]string{LabelProducer},
	)

	ClickUpgrades = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameClickUpgrades,
			Help: HelpTextClickUpgrades,
		},
	)

	PurchasesRejected = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNamePurchasesRejected,
			Help: HelpTextPurchasesRejected,
		},
		[]string{LabelReason},
	)

	Ticks = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameTicks,
			Help: HelpTextTicks,
		},
	)

	Currency = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameCurrency,
			Help: HelpTextCurrency,
		},
	)

	ProductionRate = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameProductionRate,
			Help: HelpTextProductionRate,
		},
	)
)

// Persistence Metrics
var (
	Saves = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameSaves,
			Help: HelpTextSaves,
		},
		[]string{LabelMode},
	)

	SaveFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameSaveFailures,
			Help: HelpTextSaveFailures,
		},
		[]string{LabelMode},
	)

	SaveDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    MetricNameSaveDuration,
			Help:    HelpTextSaveDuration,
			Buckets: StorageLatencyBuckets,
		},
	)

	Loads = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameLoads,
			Help: HelpTextLoads,
		},
		[]string{LabelOutcome},
	)

	FieldErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameFieldErrors,
			Help: HelpTextFieldErrors,
		},
		[]string{LabelField},
	)

	CacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameCacheHits,
			Help: HelpTextCacheHits,
		},
	)

	CacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameCacheMisses,
			Help: HelpTextCacheMisses,
		},
	)
)
