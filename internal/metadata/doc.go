// Package metadata resolves image files to their pixel dimensions and a
// best-guess creation timestamp.
//
// The resolver consults an on-disk cache first. On a miss it gathers
// creation-time candidates from the filesystem (birth and modification
// times) and from EXIF date tags, keeps the earliest, decodes the image
// for its dimensions, and writes the assembled record back to the cache.
//
// The earliest candidate wins because any single source lies in a
// predictable direction: EXIF dates are often missing, and filesystem
// times get reset forward by copies, never backward.
package metadata
