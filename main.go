package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"slideshow-builder/internal/cache"
	"slideshow-builder/internal/config"
	"slideshow-builder/internal/logging"
	"slideshow-builder/internal/metadata"
	"slideshow-builder/internal/metrics"
	"slideshow-builder/internal/pipeline"
	"slideshow-builder/internal/slideshow"
	"slideshow-builder/internal/walker"
	"slideshow-builder/internal/workers"
)

func main() {
	start := time.Now()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	configPath, err := config.Path()
	if err != nil {
		logging.Fatal("Configuration error: %v", err)
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		logging.Fatal("Configuration error: %v", err)
	}

	if port := os.Getenv("METRICS_PORT"); port != "" {
		go metrics.Serve(port)
	}

	cacheDir, err := cache.DefaultDir(config.AppName)
	if err != nil {
		logging.Fatal("Cache error: %v", err)
	}
	store, err := cache.New(cacheDir)
	if err != nil {
		logging.Fatal("Cache error: %v", err)
	}
	logging.Info("Metadata cache at %s", store.Dir())

	resolver := metadata.NewResolver(store, workers.ForCPU(0))
	concurrency := workers.Default()
	logging.Info("Resolving with %d workers", concurrency)

	for i := range cfg.Slideshows {
		show := &cfg.Slideshows[i]
		if err := build(ctx, show, resolver, concurrency); err != nil {
			logging.Fatal("Failed to build %s: %v", show.Path, err)
		}
	}

	logging.Info("Built %d slideshow(s) in %v", len(cfg.Slideshows), time.Since(start).Round(time.Millisecond))
}

// build scans one slideshow's image dirs and writes its playlist. The
// first resolution error aborts the build; in-flight work is cancelled
// and joined before returning.
func build(ctx context.Context, show *slideshow.Spec, resolver *metadata.Resolver, concurrency int) error {
	writer, err := slideshow.NewWriter(show.Path)
	if err != nil {
		return err
	}
	defer writer.Close()

	if err := writer.WriteHeader(show.Width, show.Height); err != nil {
		return err
	}

	stream := pipeline.Run(ctx, walker.New(show.ImageDirs), resolver, concurrency)
	defer stream.Close()

	matched := 0
	for {
		result, ok := stream.Next()
		if !ok {
			break
		}
		if result.Err != nil {
			return result.Err
		}
		if !show.Matches(result.Meta) {
			continue
		}
		if err := writer.WriteImagePath(result.Meta.Path); err != nil {
			return err
		}
		matched++
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	logging.Info("Slideshow %s: %d image(s)", show.Path, matched)
	return writer.Close()
}
