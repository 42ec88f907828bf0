package patrol

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// runSteps records ticks per completed run.
	// Labels: "exited", "looped"
	runSteps = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "patrol_run_steps",
		Help:    "Ticks taken by a patrol run until its verdict",
		Buckets: prometheus.ExponentialBuckets(16, 4, 8),
	}, []string{"verdict"})

	// candidateRuns counts obstruction candidates by verdict.
	candidateRuns = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "patrol_search_candidates_total",
		Help: "Obstruction candidates evaluated by verdict",
	}, []string{"verdict"})

	searchDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "patrol_search_duration_seconds",
		Help:    "Obstruction search duration",
		Buckets: []float64{0.001, 0.01, 0.1, 0.5, 1, 5, 30},
	})
)
