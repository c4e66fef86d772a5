package pipeline

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"slideshow-builder/internal/metadata"
)

// sliceSource yields a fixed list of paths and counts how many were
// pulled.
type sliceSource struct {
	paths  []string
	next   int
	pulled atomic.Int64
	err    error
}

func (s *sliceSource) Next() bool {
	if s.next >= len(s.paths) {
		return false
	}
	s.next++
	s.pulled.Add(1)
	return true
}

func (s *sliceSource) Path() string { return s.paths[s.next-1] }
func (s *sliceSource) Err() error   { return s.err }

// funcResolver adapts a func to the Resolver interface.
type funcResolver func(ctx context.Context, path string) (*metadata.ImageMetadata, error)

func (f funcResolver) Resolve(ctx context.Context, path string) (*metadata.ImageMetadata, error) {
	return f(ctx, path)
}

func pathList(n int) []string {
	paths := make([]string, n)
	for i := range paths {
		paths[i] = fmt.Sprintf("/photos/%04d.jpg", i)
	}
	return paths
}

func metaFor(path string) *metadata.ImageMetadata {
	return &metadata.ImageMetadata{
		Path:         path,
		Width:        800,
		Height:       600,
		CreationTime: metadata.NewLocalTime(time.Date(2020, 1, 1, 0, 0, 0, 0, time.Local)),
	}
}

func TestRunYieldsAllResults(t *testing.T) {
	paths := pathList(50)
	src := &sliceSource{paths: paths}
	resolver := funcResolver(func(_ context.Context, path string) (*metadata.ImageMetadata, error) {
		return metaFor(path), nil
	})

	stream := Run(context.Background(), src, resolver, 4)
	defer stream.Close()

	seen := make(map[string]bool)
	for {
		result, ok := stream.Next()
		if !ok {
			break
		}
		if result.Err != nil {
			t.Fatalf("unexpected error result: %v", result.Err)
		}
		if seen[result.Meta.Path] {
			t.Fatalf("path %s yielded twice", result.Meta.Path)
		}
		seen[result.Meta.Path] = true
	}

	if len(seen) != len(paths) {
		t.Errorf("yielded %d results, want %d", len(seen), len(paths))
	}
}

func TestBoundedConcurrency(t *testing.T) {
	const k = 3
	var inFlight, peak atomic.Int64

	resolver := funcResolver(func(_ context.Context, path string) (*metadata.ImageMetadata, error) {
		current := inFlight.Add(1)
		defer inFlight.Add(-1)
		for {
			old := peak.Load()
			if current <= old || peak.CompareAndSwap(old, current) {
				break
			}
		}
		time.Sleep(2 * time.Millisecond)
		return metaFor(path), nil
	})

	src := &sliceSource{paths: pathList(40)}
	stream := Run(context.Background(), src, resolver, k)
	defer stream.Close()

	count := 0
	for {
		if _, ok := stream.Next(); !ok {
			break
		}
		count++
	}

	if count != 40 {
		t.Fatalf("yielded %d results, want 40", count)
	}
	if got := peak.Load(); got > k {
		t.Errorf("peak concurrency = %d, want <= %d", got, k)
	}
	if got := peak.Load(); got < 2 {
		t.Errorf("peak concurrency = %d, expected some parallelism", got)
	}
}

func TestCompletionOrderNotSubmissionOrder(t *testing.T) {
	// The first submitted path resolves slowly; with two workers the
	// fast ones must overtake it.
	resolver := funcResolver(func(_ context.Context, path string) (*metadata.ImageMetadata, error) {
		if path == "/slow.jpg" {
			time.Sleep(150 * time.Millisecond)
		}
		return metaFor(path), nil
	})

	src := &sliceSource{paths: []string{"/slow.jpg", "/a.jpg", "/b.jpg", "/c.jpg"}}
	stream := Run(context.Background(), src, resolver, 2)
	defer stream.Close()

	first, ok := stream.Next()
	if !ok || first.Err != nil {
		t.Fatalf("first Next() = %+v, %v", first, ok)
	}
	if first.Meta.Path == "/slow.jpg" {
		t.Error("slowest resolution arrived first; results are not in completion order")
	}

	count := 1
	for {
		if _, ok := stream.Next(); !ok {
			break
		}
		count++
	}
	if count != 4 {
		t.Errorf("yielded %d results, want 4", count)
	}
}

func TestSourceErrorSurfacesAsResult(t *testing.T) {
	walkErr := errors.New("permission denied")
	src := &sliceSource{paths: pathList(3), err: walkErr}
	resolver := funcResolver(func(_ context.Context, path string) (*metadata.ImageMetadata, error) {
		return metaFor(path), nil
	})

	stream := Run(context.Background(), src, resolver, 2)
	defer stream.Close()

	var sawErr bool
	for {
		result, ok := stream.Next()
		if !ok {
			break
		}
		if result.Err != nil {
			if !errors.Is(result.Err, walkErr) {
				t.Errorf("error result = %v, want %v", result.Err, walkErr)
			}
			sawErr = true
		}
	}
	if !sawErr {
		t.Error("source error never surfaced in the result stream")
	}
}

func TestResolverErrorSurfacesAsItem(t *testing.T) {
	resolveErr := errors.New("no creation date")
	resolver := funcResolver(func(_ context.Context, path string) (*metadata.ImageMetadata, error) {
		if path == "/photos/0001.jpg" {
			return nil, resolveErr
		}
		return metaFor(path), nil
	})

	src := &sliceSource{paths: pathList(5)}
	stream := Run(context.Background(), src, resolver, 2)
	defer stream.Close()

	var errCount, okCount int
	for {
		result, ok := stream.Next()
		if !ok {
			break
		}
		if result.Err != nil {
			errCount++
		} else {
			okCount++
		}
	}
	if errCount != 1 || okCount != 4 {
		t.Errorf("got %d errors and %d successes, want 1 and 4", errCount, okCount)
	}
}

func TestCloseStopsPullingFromSource(t *testing.T) {
	const n = 1000
	resolver := funcResolver(func(_ context.Context, path string) (*metadata.ImageMetadata, error) {
		return metaFor(path), nil
	})

	src := &sliceSource{paths: pathList(n)}
	stream := Run(context.Background(), src, resolver, 2)

	if _, ok := stream.Next(); !ok {
		t.Fatal("Next() = false before any results")
	}
	stream.Close()

	// Backpressure bounds how far the feeder can have run ahead:
	// unbuffered channels mean O(concurrency) items beyond what the
	// consumer accepted.
	if pulled := src.pulled.Load(); pulled >= n/2 {
		t.Errorf("source pulled %d paths after early Close, want far fewer than %d", pulled, n)
	}
}

func TestCloseIsIdempotentAndJoins(t *testing.T) {
	var active atomic.Int64
	resolver := funcResolver(func(_ context.Context, path string) (*metadata.ImageMetadata, error) {
		active.Add(1)
		defer active.Add(-1)
		time.Sleep(5 * time.Millisecond)
		return metaFor(path), nil
	})

	src := &sliceSource{paths: pathList(100)}
	stream := Run(context.Background(), src, resolver, 4)

	if _, ok := stream.Next(); !ok {
		t.Fatal("Next() = false before any results")
	}

	stream.Close()
	if got := active.Load(); got != 0 {
		t.Errorf("%d resolutions still active after Close returned", got)
	}
	stream.Close() // must not panic or hang

	// After Close the stream reads as exhausted.
	if _, ok := stream.Next(); ok {
		t.Error("Next() = true after Close")
	}
}

func TestCloseWithoutConsumption(t *testing.T) {
	src := &sliceSource{paths: pathList(20)}
	resolver := funcResolver(func(_ context.Context, path string) (*metadata.ImageMetadata, error) {
		return metaFor(path), nil
	})

	stream := Run(context.Background(), src, resolver, 2)
	stream.Close() // abandon immediately; must not deadlock
}

func TestRunHonorsParentContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	started := make(chan struct{}, 1)
	var once sync.Once
	resolver := funcResolver(func(ctx context.Context, path string) (*metadata.ImageMetadata, error) {
		once.Do(func() { started <- struct{}{} })
		<-ctx.Done()
		return nil, ctx.Err()
	})

	src := &sliceSource{paths: pathList(10)}
	stream := Run(ctx, src, resolver, 2)
	defer stream.Close()

	<-started
	cancel()
	// The stream must wind down rather than hang.
	for {
		if _, ok := stream.Next(); !ok {
			break
		}
	}
}

func TestMinimumConcurrency(t *testing.T) {
	src := &sliceSource{paths: pathList(3)}
	resolver := funcResolver(func(_ context.Context, path string) (*metadata.ImageMetadata, error) {
		return metaFor(path), nil
	})

	// Zero workers would deadlock; Run must clamp to 1.
	stream := Run(context.Background(), src, resolver, 0)
	defer stream.Close()

	count := 0
	for {
		if _, ok := stream.Next(); !ok {
			break
		}
		count++
	}
	if count != 3 {
		t.Errorf("yielded %d results, want 3", count)
	}
}
