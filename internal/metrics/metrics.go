// Package metrics exposes Prometheus instrumentation for organize runs.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// FilesProcessed counts files handled per operation and outcome.
	// operation: "organize", "undo"
	// status: "moved", "previewed", "skipped", "missing"
	FilesProcessed = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "organize_files_processed_total",
		Help: "Total number of files processed, by operation and status.",
	}, []string{"operation", "status"})

	// RunsTotal counts completed engine invocations.
	// mode: "live", "dry-run"
	RunsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "organize_runs_total",
		Help: "Total number of organize/undo invocations, by operation and mode.",
	}, []string{"operation", "mode"})

	// RunDuration tracks how long organize and undo operations take.
	RunDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "organize_run_duration_seconds",
		Help:    "Duration of organize and undo operations in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"operation"})

	// CollisionRenames counts destinations that needed a numeric suffix.
	CollisionRenames = promauto.NewCounter(prometheus.CounterOpts{
		Name: "organize_collision_renames_total",
		Help: "Total number of destinations renamed to avoid an existing file.",
	})
)

// RecordRunDuration records the time taken for one engine operation.
func RecordRunDuration(operation string, start time.Time) {
	RunDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
}

// RecordRun increments the run counter for the given operation and mode.
func RecordRun(operation string, dryRun bool) {
	mode := "live"
	if dryRun {
		mode = "dry-run"
	}
	RunsTotal.WithLabelValues(operation, mode).Inc()
}
