package metadata

import (
	"fmt"
	"time"
)

// localTimeLayout is a civil date-time with no zone designator. Cache
// entries written in one timezone stay meaningful in another: the
// slideshow filters compare wall-clock dates, not instants.
const localTimeLayout = "2006-01-02T15:04:05"

// LocalTime is a local civil date-time. It serializes without a zone
// offset and always parses back in the process's local zone.
type LocalTime struct {
	time.Time
}

// NewLocalTime converts t to the local zone and truncates sub-second
// precision, which the serialized form cannot carry.
func NewLocalTime(t time.Time) LocalTime {
	return LocalTime{t.In(time.Local).Truncate(time.Second)}
}

// MarshalJSON implements json.Marshaler.
func (t LocalTime) MarshalJSON() ([]byte, error) {
	return []byte(`"` + t.Format(localTimeLayout) + `"`), nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (t *LocalTime) UnmarshalJSON(data []byte) error {
	s := string(data)
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return fmt.Errorf("invalid local time %s", s)
	}
	parsed, err := time.ParseInLocation(localTimeLayout, s[1:len(s)-1], time.Local)
	if err != nil {
		return err
	}
	t.Time = parsed
	return nil
}

// ImageMetadata is the resolved record for one image file and the
// payload stored in the cache. Records are immutable once constructed.
type ImageMetadata struct {
	Path         string    `json:"path"`
	Width        int       `json:"width"`
	Height       int       `json:"height"`
	CreationTime LocalTime `json:"creationDateTime"`
}

// Valid reports whether the record satisfies its invariants. Cache
// entries failing this are treated as malformed.
func (m *ImageMetadata) Valid() bool {
	return m.Path != "" && m.Width > 0 && m.Height > 0 && !m.CreationTime.IsZero()
}

// AspectRatio returns width divided by height.
func (m *ImageMetadata) AspectRatio() float64 {
	return float64(m.Width) / float64(m.Height)
}
