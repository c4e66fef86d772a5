// Package cache persists resolved image metadata across runs.
//
// Each record is one JSON file under the platform cache directory,
// named by an md5 hash of the image's path string. There is no
// eviction, TTL, or invalidation: an entry is written once on first
// resolution and served unconditionally afterwards, even if the file
// on disk has since changed. That staleness is a deliberate trade for
// never re-decoding an image twice.
package cache
