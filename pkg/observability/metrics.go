package observability

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/aretw0/bough"
)

// Metrics bundles the prometheus collectors fed by traversal hooks.
type Metrics struct {
	NodeVisits        *prometheus.CounterVec
	TraversalDuration prometheus.Histogram
	TraversalDepth    prometheus.Histogram
}

// New creates the collectors and registers them on reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		NodeVisits: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "bough_node_visits_total",
				Help: "Total number of node visits, by node description.",
			},
			[]string{"description"},
		),
		TraversalDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "bough_traversal_duration_seconds",
				Help:    "Duration of full traversals.",
				Buckets: prometheus.ExponentialBuckets(1e-6, 10, 8),
			},
		),
		TraversalDepth: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "bough_traversal_depth",
				Help:    "Depth reached by traversals.",
				Buckets: prometheus.LinearBuckets(0, 1, 16),
			},
		),
	}
	reg.MustRegister(m.NodeVisits, m.TraversalDuration, m.TraversalDepth)
	return m
}

// Hooks returns lifecycle hooks that feed the collectors. Pass them to the
// tree via bough.WithLifecycleHooks; they compose with logging hooks by
// chaining in the caller.
func (m *Metrics) Hooks() bough.LifecycleHooks {
	return bough.LifecycleHooks{
		OnNodeEnter: func(_ context.Context, e *bough.NodeEvent) {
			label := e.Description
			if label == "" {
				label = "(unlabeled)"
			}
			m.NodeVisits.WithLabelValues(label).Inc()
		},
		OnNodeLeave: func(_ context.Context, e *bough.NodeEvent) {
			if !e.Terminal {
				return
			}
			m.TraversalDuration.Observe(e.Elapsed.Seconds())
			m.TraversalDepth.Observe(float64(e.Depth))
		},
	}
}
