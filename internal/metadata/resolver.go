package metadata

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"slideshow-builder/internal/logging"
	"slideshow-builder/internal/metrics"

	// Image format decoders
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/disintegration/imaging"
	"github.com/djherbis/times"
	"github.com/rwcarlsen/goexif/exif"
	_ "golang.org/x/image/webp" // WebP format support
)

// exifTimeLayout is the date-time format mandated by the EXIF standard.
const exifTimeLayout = "2006:01:02 15:04:05"

// dateFields are the EXIF tags consulted for creation-time candidates.
var dateFields = []exif.FieldName{
	exif.DateTimeOriginal,
	exif.DateTimeDigitized,
	exif.DateTime,
}

// Cache is the store consulted before, and written after, a full
// resolution. Implemented by the cache package.
type Cache interface {
	// Get returns the cached record for path, or false on a miss.
	Get(path string) (*ImageMetadata, bool)
	// Put persists the record under path's key.
	Put(path string, meta *ImageMetadata) error
}

// Resolver resolves image paths to ImageMetadata records.
//
// Resolutions are independent and the Resolver is safe for concurrent
// use. Full image decodes are CPU-bound, so they pass through a
// semaphore sized separately from the caller's I/O concurrency; a herd
// of large decodes must not starve cache reads and stats of slots.
type Resolver struct {
	cache     Cache
	decodeSem chan struct{}
}

// NewResolver returns a Resolver backed by cache. decodeWorkers bounds
// concurrent image decodes; values below 1 are raised to 1.
func NewResolver(cache Cache, decodeWorkers int) *Resolver {
	if decodeWorkers < 1 {
		decodeWorkers = 1
	}
	return &Resolver{
		cache:     cache,
		decodeSem: make(chan struct{}, decodeWorkers),
	}
}

// Resolve produces the metadata record for path.
//
// A cache hit returns immediately with no filesystem access. On a miss
// the record is computed and written to the cache before returning,
// even if the caller has already stopped consuming results: the write
// is idempotent and correct, and a later run gets the hit for free.
func (r *Resolver) Resolve(ctx context.Context, path string) (*ImageMetadata, error) {
	if meta, ok := r.cache.Get(path); ok {
		metrics.ResolutionsTotal.WithLabelValues("cached").Inc()
		return meta, nil
	}

	start := time.Now()
	meta, err := r.resolve(ctx, path)
	metrics.ResolveDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.ResolutionsTotal.WithLabelValues("error").Inc()
		return nil, err
	}
	metrics.ResolutionsTotal.WithLabelValues("success").Inc()

	if err := r.cache.Put(path, meta); err != nil {
		return nil, fmt.Errorf("failed to cache metadata for %s: %w", path, err)
	}
	return meta, nil
}

func (r *Resolver) resolve(ctx context.Context, path string) (*ImageMetadata, error) {
	candidates, err := creationCandidates(path)
	if err != nil {
		return nil, err
	}
	creation, err := pickCreationTime(path, candidates)
	if err != nil {
		return nil, err
	}

	width, height, err := r.decodeDimensions(ctx, path)
	if err != nil {
		return nil, err
	}

	return &ImageMetadata{
		Path:         path,
		Width:        width,
		Height:       height,
		CreationTime: creation,
	}, nil
}

// creationCandidates gathers every available creation-time candidate
// for path: filesystem birth time (where the platform records one),
// modification time, and any EXIF date tags.
func creationCandidates(path string) ([]LocalTime, error) {
	ts, err := times.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat %s: %w", path, err)
	}

	var candidates []LocalTime

	if ts.HasBirthTime() {
		birth, err := toLocal(path, ts.BirthTime())
		if err != nil {
			return nil, err
		}
		candidates = append(candidates, birth)
	}

	mod, err := toLocal(path, ts.ModTime())
	if err != nil {
		return nil, err
	}
	candidates = append(candidates, mod)

	exifTimes, err := exifCandidates(path)
	if err != nil {
		return nil, err
	}
	return append(candidates, exifTimes...), nil
}

// exifCandidates extracts the EXIF date tags from path.
//
// A file whose EXIF structure cannot be decoded at all (corrupt or
// absent) is not an error: the warning is logged and resolution falls
// back to filesystem times. A date tag that is present but unreadable
// or unparseable is fatal for this path.
func exifCandidates(path string) ([]LocalTime, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer func() {
		if err := f.Close(); err != nil {
			logging.Warn("failed to close %s: %v", path, err)
		}
	}()

	x, err := exif.Decode(f)
	if err != nil {
		logging.Warn("Failed to parse exif, ignoring exif info: %s: %v", path, err)
		return nil, nil
	}

	var candidates []LocalTime
	for _, field := range dateFields {
		tag, err := x.Get(field)
		if err != nil {
			// tag absent
			continue
		}
		raw, err := tag.StringVal()
		if err != nil {
			return nil, &ExifValueError{Path: path, Tag: string(field)}
		}
		value := strings.TrimRight(strings.TrimSpace(raw), "\x00")
		parsed, err := time.ParseInLocation(exifTimeLayout, value, time.Local)
		if err != nil {
			return nil, &ExifTimeError{Path: path, Tag: string(field), Value: raw}
		}
		candidates = append(candidates, NewLocalTime(parsed))
	}
	return candidates, nil
}

// pickCreationTime returns the earliest candidate. Filesystem times
// normally guarantee at least one, but the empty case is checked
// explicitly rather than assumed away.
func pickCreationTime(path string, candidates []LocalTime) (LocalTime, error) {
	if len(candidates) == 0 {
		return LocalTime{}, &NoCreationDateError{Path: path}
	}
	creation := candidates[0]
	for _, c := range candidates[1:] {
		if c.Before(creation.Time) {
			creation = c
		}
	}
	return creation, nil
}

// toLocal converts a filesystem timestamp to local civil time.
func toLocal(path string, t time.Time) (LocalTime, error) {
	if t.IsZero() {
		return LocalTime{}, &TimeConversionError{Path: path}
	}
	return NewLocalTime(t), nil
}

// decodeDimensions fully decodes the image to obtain its pixel
// dimensions, honoring any EXIF orientation.
func (r *Resolver) decodeDimensions(ctx context.Context, path string) (int, int, error) {
	select {
	case r.decodeSem <- struct{}{}:
	case <-ctx.Done():
		return 0, 0, ctx.Err()
	}
	defer func() { <-r.decodeSem }()

	start := time.Now()
	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	metrics.DecodeDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		return 0, 0, fmt.Errorf("failed to decode %s: %w", path, err)
	}

	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	if width <= 0 || height <= 0 {
		return 0, 0, fmt.Errorf("decoded empty image: %s", path)
	}
	return width, height, nil
}
