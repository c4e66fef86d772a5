// Package mediatypes classifies files found during directory traversal.
//
// It guesses MIME types from file extensions and recognizes junk files:
// OS and tool artifacts (Finder metadata, thumbnail caches, editor
// backups) that should never appear in a slideshow.
package mediatypes
