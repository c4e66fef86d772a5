// Package metrics provides Prometheus instrumentation for the slideshow builder.
//
// All metrics are prefixed with "slideshow_builder_" to avoid naming
// collisions with other applications.
//
// # Metric Categories
//
// ## Cache Metrics
//
// Track the on-disk metadata cache:
//   - CacheHits: Counter of cache hits
//   - CacheMisses: Counter of cache misses
//   - CacheWrites: Counter of entries written
//   - CacheCorruptEntries: Counter of unreadable or malformed entries
//
// ## Resolver Metrics
//
// Track metadata resolution:
//   - ResolutionsTotal: Counter of resolutions by status
//   - ResolveDuration: Histogram of full resolution duration
//   - DecodeDuration: Histogram of image decode duration
//
// ## Walker Metrics
//
//   - FilesWalked: Counter of image files yielded
//   - DirectoriesWalked: Counter of directories expanded
//
// ## Pipeline Metrics
//
//   - ResolutionsInFlight: Gauge of concurrently running resolutions
//   - PipelineWorkers: Gauge of the configured worker count
//
// Metrics are exposed on a dedicated listener only when METRICS_PORT is
// set; the tool is a batch process and serves nothing by default.
package metrics
