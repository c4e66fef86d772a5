package slideshow

import (
	"fmt"
	"time"

	"slideshow-builder/internal/metadata"

	"gopkg.in/yaml.v3"
)

// dateLayout is the civil date format used in configuration files.
const dateLayout = "2006-01-02"

// Date is a civil date, parsed from YAML as "YYYY-MM-DD".
type Date struct {
	time.Time
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Date) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := time.ParseInLocation(dateLayout, s, time.Local)
	if err != nil {
		return fmt.Errorf("invalid date %q (want YYYY-MM-DD): %w", s, err)
	}
	d.Time = parsed
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (d Date) MarshalYAML() (interface{}, error) {
	return d.Format(dateLayout), nil
}

// Spec describes one slideshow to build.
type Spec struct {
	// Path is the playlist file to write.
	Path string `yaml:"path"`
	// Width and Height size the slideshow window.
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	// MinAspectRatio and MaxAspectRatio bound width/height, inclusive.
	MinAspectRatio float64 `yaml:"min_aspect_ratio"`
	MaxAspectRatio float64 `yaml:"max_aspect_ratio"`
	// MinCreationDate and MaxCreationDate bound the resolved creation
	// date, inclusive.
	MinCreationDate Date `yaml:"min_creation_date"`
	MaxCreationDate Date `yaml:"max_creation_date"`
	// ImageDirs are the roots scanned for images.
	ImageDirs []string `yaml:"image_dirs"`
}

// Validate reports the first problem with the spec, or nil.
func (s *Spec) Validate() error {
	if s.Path == "" {
		return fmt.Errorf("slideshow needs a playlist path")
	}
	if len(s.ImageDirs) == 0 {
		return fmt.Errorf("slideshow %s needs at least one image dir", s.Path)
	}
	if s.MinAspectRatio > s.MaxAspectRatio {
		return fmt.Errorf("slideshow %s: min_aspect_ratio %v exceeds max_aspect_ratio %v",
			s.Path, s.MinAspectRatio, s.MaxAspectRatio)
	}
	if s.MinCreationDate.After(s.MaxCreationDate.Time) {
		return fmt.Errorf("slideshow %s: min_creation_date is after max_creation_date", s.Path)
	}
	return nil
}

// Matches reports whether the image qualifies for this slideshow:
// creation date inside the date range and aspect ratio inside the
// ratio range, both inclusive.
func (s *Spec) Matches(meta *metadata.ImageMetadata) bool {
	created := dateOf(meta.CreationTime.Time)
	if created.Before(s.MinCreationDate.Time) || created.After(s.MaxCreationDate.Time) {
		return false
	}
	ratio := meta.AspectRatio()
	return ratio >= s.MinAspectRatio && ratio <= s.MaxAspectRatio
}

// dateOf truncates a local date-time to its civil date.
func dateOf(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.Local)
}
