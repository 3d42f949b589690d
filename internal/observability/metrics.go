package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters, histograms, and gauges for the
// aggregation pipeline.
type Metrics struct {
	EventsFetched  *prometheus.CounterVec // labels: source
	SourceFailures *prometheus.CounterVec // labels: source
	DedupRemoved   prometheus.Counter
	FallbackServed prometheus.Counter

	FetchCycleDuration prometheus.Histogram
	BatchSize          prometheus.Gauge

	// Geocoding metrics.
	GeocodeRequests *prometheus.CounterVec // labels: outcome={resolved,miss,error}
}

// NewMetrics creates and registers all pipeline metrics with the default
// Prometheus registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		EventsFetched: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "crisis_events",
			Name:      "events_fetched_total",
			Help:      "Total events produced per source connector.",
		}, []string{"source"}),
		SourceFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "crisis_events",
			Name:      "source_failures_total",
			Help:      "Total fetch failures per source connector.",
		}, []string{"source"}),
		DedupRemoved: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "crisis_events",
			Name:      "dedup_removed_total",
			Help:      "Total events removed as duplicates.",
		}),
		FallbackServed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "crisis_events",
			Name:      "fallback_served_total",
			Help:      "Times a cycle produced no live events and served demo data.",
		}),
		FetchCycleDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "crisis_events",
			Name:      "fetch_cycle_duration_seconds",
			Help:      "Duration of a complete fetch-deduplicate cycle.",
			Buckets:   []float64{0.1, 0.5, 1, 2.5, 5, 10, 20, 30},
		}),
		BatchSize: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "crisis_events",
			Name:      "batch_size",
			Help:      "Number of events in the most recent batch.",
		}),
		GeocodeRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "crisis_events",
			Name:      "geocode_requests_total",
			Help:      "Geocode API requests by outcome.",
		}, []string{"outcome"}),
	}

	prometheus.MustRegister(
		m.EventsFetched,
		m.SourceFailures,
		m.DedupRemoved,
		m.FallbackServed,
		m.FetchCycleDuration,
		m.BatchSize,
		m.GeocodeRequests,
	)

	return m
}

// NewMetricsForTesting creates Metrics without registering them, avoiding
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return &Metrics{
		EventsFetched:      prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "crisis_events", Name: "events_fetched_total"}, []string{"source"}),
		SourceFailures:     prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "crisis_events", Name: "source_failures_total"}, []string{"source"}),
		DedupRemoved:       prometheus.NewCounter(prometheus.CounterOpts{Namespace: "crisis_events", Name: "dedup_removed_total"}),
		FallbackServed:     prometheus.NewCounter(prometheus.CounterOpts{Namespace: "crisis_events", Name: "fallback_served_total"}),
		FetchCycleDuration: prometheus.NewHistogram(prometheus.HistogramOpts{Namespace: "crisis_events", Name: "fetch_cycle_duration_seconds"}),
		BatchSize:          prometheus.NewGauge(prometheus.GaugeOpts{Namespace: "crisis_events", Name: "batch_size"}),
		GeocodeRequests:    prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "crisis_events", Name: "geocode_requests_total"}, []string{"outcome"}),
	}
}
