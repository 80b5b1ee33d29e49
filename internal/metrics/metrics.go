package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Recommendation Metrics
	RecommendationsServedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "app_recommendations_served_total",
		Help: "Total number of recommendation results served.",
	}, []string{"strategy"})
	PersonalizationFallbackTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "app_personalization_fallback_total",
		Help: "Total number of personalized requests answered from trending.",
	}, []string{"reason"}) // reason: "no_history" or "history_error"

	// Catalog Metrics
	CatalogSnapshotItems = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "app_catalog_snapshot_items",
		Help: "Number of items in the most recently loaded catalog snapshot.",
	})
	CatalogSnapshotLoadSeconds = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "app_catalog_snapshot_load_seconds",
		Help:    "Time taken to load a catalog snapshot.",
		Buckets: prometheus.DefBuckets,
	})
	StatsSinkWritesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "app_stats_sink_writes_total",
		Help: "Total number of catalog stats writes to the sink.",
	}, []string{"status"})
)
