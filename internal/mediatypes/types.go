package mediatypes

import (
	"path/filepath"
	"strings"
)

// MimeTypes maps file extensions to their MIME types.
var MimeTypes = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".jpe":  "image/jpeg",
	".png":  "image/png",
	".gif":  "image/gif",
	".bmp":  "image/bmp",
	".webp": "image/webp",
	".svg":  "image/svg+xml",
	".ico":  "image/x-icon",
	".tiff": "image/tiff",
	".tif":  "image/tiff",
	".heic": "image/heic",
	".heif": "image/heif",
	".avif": "image/avif",

	".mp4":  "video/mp4",
	".mkv":  "video/x-matroska",
	".avi":  "video/x-msvideo",
	".mov":  "video/quicktime",
	".webm": "video/webm",

	".mp3":  "audio/mpeg",
	".flac": "audio/flac",
	".wav":  "audio/wav",

	".txt":  "text/plain",
	".html": "text/html",
	".json": "application/json",
	".pdf":  "application/pdf",
}

// junkNames are exact file names (case-insensitive) produced by
// operating systems and tools rather than users.
var junkNames = map[string]bool{
	".ds_store":                 true,
	".appledouble":              true,
	".apdisk":                   true,
	".localized":                true,
	"__macosx":                  true,
	".spotlight-v100":           true,
	".trashes":                  true,
	".fseventsd":                true,
	".temporaryitems":           true,
	"thumbs.db":                 true,
	"ehthumbs.db":               true,
	"desktop.ini":               true,
	"$recycle.bin":              true,
	"system volume information": true,
	".directory":                true,
	".trash-1000":               true,
}

// junkPrefixes mark AppleDouble resource forks, office lock files and
// editor temporaries.
var junkPrefixes = []string{"._", "~$", ".~lock."}

// GuessMime returns the MIME type guessed from the path's extension,
// or "" if the extension is unknown.
func GuessMime(path string) string {
	return MimeTypes[strings.ToLower(filepath.Ext(path))]
}

// IsImage reports whether the path's guessed MIME type has the
// top-level "image" category.
func IsImage(path string) bool {
	return strings.HasPrefix(GuessMime(path), "image/")
}

// IsJunk reports whether the base name is an OS or tool artifact.
func IsJunk(name string) bool {
	lower := strings.ToLower(name)
	if junkNames[lower] {
		return true
	}
	for _, prefix := range junkPrefixes {
		if strings.HasPrefix(lower, prefix) {
			return true
		}
	}
	// Editor backup files
	return strings.HasSuffix(lower, ".swp") || strings.HasSuffix(lower, "~")
}
