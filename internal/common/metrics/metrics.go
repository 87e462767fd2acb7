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

	AssessmentsGenerated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "esg_assessments_generated_total",
			Help: "Total number of ESG assessments generated, by sector and validity",
		},
		[]string{"sector", "valid"},
	)

	AssessmentDataQuality = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "esg_assessment_quality_score",
			Help:    "Distribution of assessment data quality scores",
			Buckets: prometheus.LinearBuckets(0, 10, 11),
		},
		[]string{"sector"},
	)
)
