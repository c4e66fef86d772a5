// Package pipeline drives image paths through the metadata resolver
// with bounded parallelism.
//
// Results arrive in completion order, not submission order; callers
// must not assume any relationship between the two. Backpressure is
// structural: no new path is pulled from the source until a worker
// slot frees, so peak in-flight work is O(concurrency) regardless of
// tree size.
package pipeline
