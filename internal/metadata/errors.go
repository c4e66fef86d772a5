package metadata

import "fmt"

// ExifValueError reports an EXIF date tag that was present but yielded
// no readable value. Fatal to the resolution of that path.
type ExifValueError struct {
	Path string
	Tag  string
}

func (e *ExifValueError) Error() string {
	return fmt.Sprintf("failed to get exif value: %s %s", e.Path, e.Tag)
}

// ExifTimeError reports an EXIF date tag whose value could not be
// parsed as a timestamp. Fatal to the resolution of that path.
type ExifTimeError struct {
	Path  string
	Tag   string
	Value string
}

func (e *ExifTimeError) Error() string {
	return fmt.Sprintf("failed to get exif time: %s %s %q", e.Path, e.Tag, e.Value)
}

// NoCreationDateError reports that no timestamp candidate at all could
// be produced for a path. Filesystem times normally guarantee at least
// one candidate, so this indicates something deeply wrong with the file.
type NoCreationDateError struct {
	Path string
}

func (e *NoCreationDateError) Error() string {
	return fmt.Sprintf("no creation date found: %s", e.Path)
}

// TimeConversionError reports a filesystem timestamp that could not be
// converted to a local civil time. The representable case in Go is a
// zero timestamp, which some filesystems report for files with no
// stored time.
type TimeConversionError struct {
	Path string
}

func (e *TimeConversionError) Error() string {
	return fmt.Sprintf("failed to convert system time to local time: %s", e.Path)
}
