package assistant

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	dispatchTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "assistant",
		Name:      "dispatch_total",
		Help:      "Dispatched utterances by outcome type and language.",
	}, []string{"outcome", "language"})

	dispatchDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "assistant",
		Name:      "dispatch_duration_seconds",
		Help:      "Time spent classifying one utterance, fallback included.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"outcome"})

	fallbackErrors = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "assistant",
		Name:      "fallback_errors_total",
		Help:      "Generative fallback calls that returned an error.",
	})
)
