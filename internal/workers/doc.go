// Package workers calculates worker pool sizes from the available
// CPU count, with environment-variable overrides.
package workers
