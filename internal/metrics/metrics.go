package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RequestsTotal counts HTTP requests by method, path, and status code.
	RequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "textfork_requests_total",
		Help: "Total HTTP requests processed.",
	}, []string{"method", "path", "status"})

	// DispatchDuration tracks end-to-end latency of a dual-task dispatch,
	// which is bounded by the slower of the two provider calls.
	DispatchDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "textfork_dispatch_duration_seconds",
		Help:    "Time spent on a full dual-task dispatch.",
		Buckets: []float64{0.5, 1, 2, 5, 10, 20, 30, 60, 120},
	})

	// TaskFailures counts normalized task failures per slot.
	TaskFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "textfork_task_failures_total",
		Help: "Chat-completion tasks that returned a normalized error.",
	}, []string{"task"})

	// InputChars tracks the distribution of article lengths.
	InputChars = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "textfork_input_chars",
		Help:    "Number of characters in submitted articles.",
		Buckets: []float64{50, 100, 250, 500, 1000, 2500, 5000, 10000},
	})

	// ModelFallbacks counts model directory lookups that fell back to the
	// static default list.
	ModelFallbacks = promauto.NewCounter(prometheus.CounterOpts{
		Name: "textfork_model_fallback_total",
		Help: "Model directory lookups served from the static fallback list.",
	})
)
