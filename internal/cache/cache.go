package cache

import (
	"crypto/md5" //nolint:gosec // md5 keys cache entries, not security
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"slideshow-builder/internal/logging"
	"slideshow-builder/internal/metadata"
	"slideshow-builder/internal/metrics"
)

// entryExt is the extension of every cache entry file.
const entryExt = ".json"

// CacheDirError reports that the cache directory could not be
// determined or created. Fatal to the whole run: without the cache the
// tool would re-decode every image on every start.
type CacheDirError struct {
	Err error
}

func (e *CacheDirError) Error() string {
	return fmt.Sprintf("failed to get cache dir: %v", e.Err)
}

func (e *CacheDirError) Unwrap() error {
	return e.Err
}

// Store is a file-per-key metadata cache rooted at a single directory.
//
// The key is a pure function of the path string: renaming a file
// orphans its entry, and editing a file in place serves stale metadata
// forever. Concurrent writers to the same key are not guarded against;
// the pipeline guarantees each path is resolved at most once per run.
type Store struct {
	dir string
}

// DefaultDir resolves the platform cache directory for appName,
// e.g. ~/.cache/slideshow-builder on Linux.
func DefaultDir(appName string) (string, error) {
	base, err := os.UserCacheDir()
	if err != nil {
		return "", &CacheDirError{Err: err}
	}
	return filepath.Join(base, appName), nil
}

// New creates the cache directory if needed and returns a Store
// rooted there.
func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, &CacheDirError{Err: err}
	}
	return &Store{dir: dir}, nil
}

// Dir returns the directory the store writes entries under.
func (s *Store) Dir() string {
	return s.dir
}

// entryPath returns the file an entry for path lives at.
func (s *Store) entryPath(path string) string {
	sum := md5.Sum([]byte(path)) //nolint:gosec // md5 keys cache entries, not security
	return filepath.Join(s.dir, fmt.Sprintf("%x", sum)+entryExt)
}

// Get returns the cached record for path. Any unreadable or malformed
// entry is a logged miss; resolution falls through to recomputation.
func (s *Store) Get(path string) (*metadata.ImageMetadata, bool) {
	data, err := os.ReadFile(s.entryPath(path))
	if err != nil {
		if !os.IsNotExist(err) {
			logging.Warn("Failed to read cache entry for %s: %v", path, err)
			metrics.CacheCorruptEntries.Inc()
		}
		metrics.CacheMisses.Inc()
		return nil, false
	}

	var meta metadata.ImageMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		logging.Warn("Failed to parse cache entry for %s: %v", path, err)
		metrics.CacheCorruptEntries.Inc()
		metrics.CacheMisses.Inc()
		return nil, false
	}
	if !meta.Valid() {
		logging.Warn("Discarding invalid cache entry for %s", path)
		metrics.CacheCorruptEntries.Inc()
		metrics.CacheMisses.Inc()
		return nil, false
	}

	metrics.CacheHits.Inc()
	return &meta, true
}

// Put persists meta under path's key, overwriting any existing entry.
func (s *Store) Put(path string, meta *metadata.ImageMetadata) error {
	data, err := json.Marshal(meta)
	if err != nil {
		return fmt.Errorf("failed to serialize cache entry for %s: %w", path, err)
	}
	if err := os.WriteFile(s.entryPath(path), data, 0o644); err != nil {
		return fmt.Errorf("failed to write cache entry for %s: %w", path, err)
	}
	metrics.CacheWrites.Inc()
	return nil
}
