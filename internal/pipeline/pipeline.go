package pipeline

import (
	"context"
	"sync"

	"slideshow-builder/internal/metadata"
	"slideshow-builder/internal/metrics"
)

// Source yields the paths to resolve. Implemented by walker.Walker.
type Source interface {
	Next() bool
	Path() string
	Err() error
}

// Resolver turns one path into a metadata record. Implemented by
// metadata.Resolver.
type Resolver interface {
	Resolve(ctx context.Context, path string) (*metadata.ImageMetadata, error)
}

// Result is one pipeline output item: a record or the error that
// prevented it. A Source error ends the stream as a final Result item.
type Result struct {
	Meta *metadata.ImageMetadata
	Err  error
}

// Stream is the pull side of a running pipeline.
//
// A Stream may be abandoned at any point, but Close must be called;
// it cancels outstanding work and joins every worker, so a partial
// consumption leaks no goroutines and leaves no resolution racing
// process exit.
type Stream struct {
	results   chan Result
	cancel    context.CancelFunc
	closeOnce sync.Once
}

// Run starts concurrency workers resolving paths from src and returns
// the result stream.
//
// The jobs and results channels are unbuffered: a path leaves src only
// when a worker is free to take it, and a finished worker does not
// start new work until the consumer has accepted its result.
func Run(ctx context.Context, src Source, resolver Resolver, concurrency int) *Stream {
	if concurrency < 1 {
		concurrency = 1
	}
	metrics.PipelineWorkers.Set(float64(concurrency))

	ctx, cancel := context.WithCancel(ctx)
	jobs := make(chan string)
	results := make(chan Result)

	var wg sync.WaitGroup

	for i := 0; i < concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			worker(ctx, jobs, results, resolver)
		}()
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		defer close(jobs)
		for src.Next() {
			select {
			case jobs <- src.Path():
			case <-ctx.Done():
				return
			}
		}
		if err := src.Err(); err != nil {
			select {
			case results <- Result{Err: err}:
			case <-ctx.Done():
			}
		}
	}()

	go func() {
		wg.Wait()
		close(results)
	}()

	return &Stream{results: results, cancel: cancel}
}

// worker resolves paths until jobs closes or the context is cancelled.
// The context check before each job keeps a doomed run from starting
// new resolutions; work already begun runs to completion, including
// its cache write.
func worker(ctx context.Context, jobs <-chan string, results chan<- Result, resolver Resolver) {
	for path := range jobs {
		select {
		case <-ctx.Done():
			return
		default:
		}

		metrics.ResolutionsInFlight.Inc()
		meta, err := resolver.Resolve(ctx, path)
		metrics.ResolutionsInFlight.Dec()

		select {
		case results <- Result{Meta: meta, Err: err}:
		case <-ctx.Done():
			return
		}
	}
}

// Next returns the next completed result. ok is false once the stream
// is exhausted (or closed) and fully drained.
func (s *Stream) Next() (result Result, ok bool) {
	result, ok = <-s.results
	return result, ok
}

// Close cancels outstanding work and blocks until every worker has
// exited. Safe to call more than once, and after natural exhaustion.
func (s *Stream) Close() {
	s.closeOnce.Do(func() {
		s.cancel()
		for range s.results {
			// drain until the workers close the channel
		}
	})
}
