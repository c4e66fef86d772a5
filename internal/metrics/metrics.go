package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Cache metrics
var (
	CacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "slideshow_builder_cache_hits_total",
			Help: "Total number of metadata cache hits",
		},
	)

	CacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "slideshow_builder_cache_misses_total",
			Help: "Total number of metadata cache misses",
		},
	)

	CacheWrites = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "slideshow_builder_cache_writes_total",
			Help: "Total number of metadata cache entries written",
		},
	)

	CacheCorruptEntries = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "slideshow_builder_cache_corrupt_entries_total",
			Help: "Total number of unreadable or malformed cache entries treated as misses",
		},
	)
)

// Resolver metrics
var (
	ResolutionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "slideshow_builder_resolutions_total",
			Help: "Total number of metadata resolutions",
		},
		[]string{"status"},
	)

	ResolveDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "slideshow_builder_resolve_duration_seconds",
			Help:    "Metadata resolution duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)

	DecodeDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "slideshow_builder_decode_duration_seconds",
			Help:    "Image decode duration in seconds",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
	)
)

// Walker metrics
var (
	FilesWalked = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "slideshow_builder_files_walked_total",
			Help: "Total number of image files yielded by the directory walker",
		},
	)

	DirectoriesWalked = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "slideshow_builder_directories_walked_total",
			Help: "Total number of directories expanded by the directory walker",
		},
	)
)

// Pipeline metrics
var (
	ResolutionsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "slideshow_builder_resolutions_in_flight",
			Help: "Number of metadata resolutions currently running",
		},
	)

	PipelineWorkers = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "slideshow_builder_pipeline_workers",
			Help: "Configured resolution pipeline worker count",
		},
	)
)

// InitializeMetrics pre-populates label combinations so that every
// metric is exported from the first Prometheus scrape.
func InitializeMetrics() {
	for _, status := range []string{"success", "error", "cached"} {
		ResolutionsTotal.WithLabelValues(status)
	}
}
