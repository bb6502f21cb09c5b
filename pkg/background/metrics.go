package background

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	outcomeOK    = "ok"
	outcomeError = "error"
	outcomePanic = "panic"
)

var (
	TaskRunsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "dispatch",
			Subsystem: "background",
			Name:      "task_runs_total",
			Help:      "Number of background task runs by outcome",
		},
		[]string{"task", "outcome"},
	)

	TaskDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "dispatch",
			Subsystem: "background",
			Name:      "task_duration_seconds",
			Help:      "Background task run duration",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"task"},
	)
)
