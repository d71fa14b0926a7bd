// internal/common/metrics/metrics.go

// Package metrics holds the process-wide Prometheus collectors.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "ideamatch"

var (
	WorkerJobsCompleted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "worker_jobs_completed_total",
			Help:      "Jobs completed, by task type",
		},
		[]string{"task_type"},
	)

	WorkerJobsFailed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "worker_jobs_failed_total",
			Help:      "Jobs failed, by task type and error code",
		},
		[]string{"task_type", "error_code"},
	)

	// Scoring is in-process, so most jobs finish well under 100ms.
	WorkerJobDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "worker_job_duration_seconds",
			Help:      "Job handling time in seconds",
			Buckets:   prometheus.ExponentialBuckets(0.001, 2.5, 10),
		},
		[]string{"task_type"},
	)

	WorkerJobsActive = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "worker_jobs_active",
			Help:      "Jobs currently being handled",
		},
		[]string{"task_type"},
	)

	IdeaMatchScore = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "idea_match_score",
			Help:    "Match score of the idea picked for a founder",
			Buckets: prometheus.LinearBuckets(0, 10, 11),
		},
		[]string{"idea_id"},
	)

	IdeaCatalogExhausted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "idea_catalog_exhausted_total",
			Help: "Times a founder had dismissed every catalog idea",
		},
	)

	ProfileCacheRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "profile_cache_requests_total",
			Help: "Profile cache lookups by result",
		},
		[]string{"result"},
	)
)

// TrackJob marks a job active and returns the func that clears it.
func TrackJob(taskType string) func() {
	g := WorkerJobsActive.WithLabelValues(taskType)
	g.Inc()
	return g.Dec
}

// ObserveJob records the outcome of one job. An empty errorCode means success.
func ObserveJob(taskType, errorCode string, elapsed time.Duration) {
	if errorCode == "" {
		WorkerJobsCompleted.WithLabelValues(taskType).Inc()
	} else {
		WorkerJobsFailed.WithLabelValues(taskType, errorCode).Inc()
	}
	WorkerJobDuration.WithLabelValues(taskType).Observe(elapsed.Seconds())
}
