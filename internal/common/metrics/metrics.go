// internal/common/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	WorkerJobsCompleted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "worker_jobs_completed_total",
			Help: "Total number of jobs completed by worker",
		},
		[]string{"task_type"},
	)

	WorkerJobsFailed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "worker_jobs_failed_total",
			Help: "Total number of jobs failed by worker",
		},
		[]string{"task_type", "error_code"},
	)

	WorkerJobDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "worker_job_duration_seconds",
			Help: "Duration of job processing in seconds",
		},
		[]string{"task_type"},
	)

	WorkerJobsActive = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "worker_jobs_active",
			Help: "Number of active jobs per worker",
		},
		[]string{"task_type"},
	)

	DirectoryResults = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "directory_filter_results",
			Help:    "Vendors returned per directory filter",
			Buckets: prometheus.LinearBuckets(0, 2, 10),
		},
	)

	MatchmakerMatches = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "matchmaker_matches",
			Help:    "Vendors kept per matchmaker scoring run",
			Buckets: prometheus.LinearBuckets(0, 2, 10),
		},
	)

	CardsRendered = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "savethedate_cards_rendered_total",
			Help: "Save-the-date cards rasterized, by template and status",
		},
		[]string{"template", "status"},
	)

	SharesSent = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "savethedate_shares_total",
			Help: "Share attempts, by channel and status",
		},
		[]string{"channel", "status"},
	)

	SessionsActive = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "sessions_active",
			Help: "Ephemeral sessions opened and not yet discarded, by kind",
		},
		[]string{"kind"},
	)
)
