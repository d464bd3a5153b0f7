package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder instruments a generation run with Prometheus collectors.
type Recorder struct {
	seriesGenerated *prometheus.CounterVec
	pointsGenerated prometheus.Counter
	runErrors       *prometheus.CounterVec
	duration        prometheus.Histogram
}

// New creates a Prometheus metrics recorder.
func New() *Recorder {
	return &Recorder{
		seriesGenerated: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tsforge_series_generated_total",
				Help: "Total number of series generated",
			},
			[]string{"data_type"},
		),
		pointsGenerated: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "tsforge_points_generated_total",
				Help: "Total number of data points generated",
			},
		),
		runErrors: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tsforge_run_errors_total",
				Help: "Total number of run-aborting errors",
			},
			[]string{"stage"},
		),
		duration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "tsforge_series_generation_duration_seconds",
				Help:    "Duration of one series generation in seconds",
				Buckets: prometheus.DefBuckets,
			},
		),
	}
}

// RecordSeries records one generated series and its point count.
func (r *Recorder) RecordSeries(dataType string, points int, took time.Duration) {
	r.seriesGenerated.WithLabelValues(dataType).Inc()
	r.pointsGenerated.Add(float64(points))
	r.duration.Observe(took.Seconds())
}

// RecordError records a run-aborting error for a stage.
func (r *Recorder) RecordError(stage string) {
	r.runErrors.WithLabelValues(stage).Inc()
}
