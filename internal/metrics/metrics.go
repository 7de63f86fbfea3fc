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

// Business Metrics
var (
	EncountersTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEncountersTotal,
			Help: HelpTextEncountersTotal,
		},
		[]string{LabelEncounter, LabelOutcome},
	)

	VerdictsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameVerdictsTotal,
			Help: HelpTextVerdictsTotal,
		},
		[]string{LabelPolicy, LabelVerdict},
	)

	ReplayLinesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameReplayLinesTotal,
			Help: HelpTextReplayLinesTotal,
		},
		[]string{LabelStatus},
	)

	ScavengersRegistered = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameScavengersRegistered,
			Help: HelpTextScavengersRegistered,
		},
	)

	CacheLookupsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCacheLookupsTotal,
			Help: HelpTextCacheLookupsTotal,
		},
		[]string{LabelResult},
	)
)
