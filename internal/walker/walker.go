package walker

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"slideshow-builder/internal/mediatypes"
	"slideshow-builder/internal/metrics"
)

// Walker is a pull-based iterator over the image files beneath a set
// of roots. Junk files and anything whose guessed MIME type is not an
// image are skipped. An unreadable directory ends the walk with an
// error; this tool never silently drops a subtree.
//
// Usage mirrors bufio.Scanner:
//
//	w := walker.New(dirs)
//	for w.Next() {
//		handle(w.Path())
//	}
//	if err := w.Err(); err != nil { ... }
//
// Abandoning a Walker mid-iteration is safe; it holds no resources
// between calls.
type Walker struct {
	pending []string // directories not yet expanded
	entries []fs.DirEntry
	dir     string // directory entries belong to
	next    int    // index into entries
	path    string
	err     error
	done    bool
}

// New returns a Walker over roots. The roots are expanded in
// reverse-discovery order; nothing is read until the first Next call.
func New(roots []string) *Walker {
	return &Walker{pending: append([]string(nil), roots...)}
}

// Next advances to the next image file. It returns false when the walk
// is exhausted or has failed; Err distinguishes the two.
func (w *Walker) Next() bool {
	if w.done {
		return false
	}
	for {
		for w.next < len(w.entries) {
			entry := w.entries[w.next]
			w.next++

			if mediatypes.IsJunk(entry.Name()) {
				continue
			}
			full := filepath.Join(w.dir, entry.Name())
			if entry.IsDir() {
				w.pending = append(w.pending, full)
				continue
			}
			if !mediatypes.IsImage(entry.Name()) {
				continue
			}
			w.path = full
			metrics.FilesWalked.Inc()
			return true
		}

		if len(w.pending) == 0 {
			w.done = true
			return false
		}

		dir := w.pending[len(w.pending)-1]
		w.pending = w.pending[:len(w.pending)-1]

		entries, err := os.ReadDir(dir)
		if err != nil {
			w.err = fmt.Errorf("failed to read directory %s: %w", dir, err)
			w.done = true
			return false
		}
		w.dir = dir
		w.entries = entries
		w.next = 0
		metrics.DirectoriesWalked.Inc()
	}
}

// Path returns the file the last successful Next call advanced to.
func (w *Walker) Path() string {
	return w.path
}

// Err returns the error that ended the walk, if any.
func (w *Walker) Err() error {
	return w.err
}
