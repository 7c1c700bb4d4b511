package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// QueryAttemptsTotal tracks query executions by outcome
	QueryAttemptsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "riskcalc_query_attempts_total",
			Help: "Total number of query attempts against the backing store",
		},
		[]string{"outcome"},
	)

	// QueryRetriesTotal tracks retries scheduled after transient faults
	QueryRetriesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "riskcalc_query_retries_total",
			Help: "Total number of query retries after transient faults",
		},
	)

	// RetriesExhaustedTotal tracks requests that ran out of attempt budget
	RetriesExhaustedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "riskcalc_retries_exhausted_total",
			Help: "Total number of requests that exhausted their retry budget",
		},
	)

	// ReconnectsTotal tracks connection replacements by result
	ReconnectsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "riskcalc_reconnects_total",
			Help: "Total number of reconnection attempts",
		},
		[]string{"result"},
	)

	// QueryDuration tracks wall-clock time per resilient query call
	QueryDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "riskcalc_query_duration_seconds",
			Help:    "Resilient query duration in seconds, including retries",
			Buckets: prometheus.DefBuckets,
		},
	)

	// ReportDuration tracks report generation time
	ReportDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "riskcalc_report_duration_seconds",
			Help:    "Risk report generation duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)

	// ReportsGeneratedTotal tracks report runs by status
	ReportsGeneratedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "riskcalc_reports_generated_total",
			Help: "Total number of risk report runs",
		},
		[]string{"status"},
	)

	// RowsClassifiedTotal tracks classified rows by resulting risk level
	RowsClassifiedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "riskcalc_rows_classified_total",
			Help: "Total number of classification rows processed",
		},
		[]string{"risk_level"},
	)

	// CacheLookupsTotal tracks reference cache hits and misses
	CacheLookupsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "riskcalc_cache_lookups_total",
			Help: "Total number of reference cache lookups",
		},
		[]string{"result"},
	)
)
