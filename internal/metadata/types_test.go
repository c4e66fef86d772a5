package metadata

import (
	"encoding/json"
	"testing"
	"time"
)

func TestLocalTimeRoundTrip(t *testing.T) {
	orig := NewLocalTime(time.Date(2021, 3, 1, 18, 45, 9, 0, time.Local))

	data, err := json.Marshal(orig)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if string(data) != `"2021-03-01T18:45:09"` {
		t.Errorf("Marshal = %s, want %q", data, "2021-03-01T18:45:09")
	}

	var got LocalTime
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if !got.Equal(orig.Time) {
		t.Errorf("round trip = %v, want %v", got, orig)
	}
}

func TestLocalTimeTruncatesSubseconds(t *testing.T) {
	lt := NewLocalTime(time.Date(2021, 3, 1, 18, 45, 9, 999_000_000, time.Local))
	if lt.Nanosecond() != 0 {
		t.Errorf("Nanosecond = %d, want 0", lt.Nanosecond())
	}
}

func TestLocalTimeUnmarshalRejectsGarbage(t *testing.T) {
	for _, raw := range []string{`"yesterday"`, `42`, `"2021-03-01"`} {
		var lt LocalTime
		if err := json.Unmarshal([]byte(raw), &lt); err == nil {
			t.Errorf("Unmarshal(%s) succeeded, want error", raw)
		}
	}
}

func TestImageMetadataRoundTrip(t *testing.T) {
	orig := ImageMetadata{
		Path:         "/photos/a.jpg",
		Width:        800,
		Height:       600,
		CreationTime: NewLocalTime(time.Date(2020, 1, 1, 0, 0, 0, 0, time.Local)),
	}

	data, err := json.Marshal(&orig)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	var got ImageMetadata
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if got.Path != orig.Path || got.Width != orig.Width || got.Height != orig.Height ||
		!got.CreationTime.Equal(orig.CreationTime.Time) {
		t.Errorf("round trip = %+v, want %+v", got, orig)
	}
}

func TestValid(t *testing.T) {
	now := NewLocalTime(time.Now())
	tests := []struct {
		name string
		meta ImageMetadata
		want bool
	}{
		{"ok", ImageMetadata{Path: "/a.jpg", Width: 1, Height: 1, CreationTime: now}, true},
		{"zero width", ImageMetadata{Path: "/a.jpg", Width: 0, Height: 1, CreationTime: now}, false},
		{"negative height", ImageMetadata{Path: "/a.jpg", Width: 1, Height: -1, CreationTime: now}, false},
		{"empty path", ImageMetadata{Path: "", Width: 1, Height: 1, CreationTime: now}, false},
		{"zero time", ImageMetadata{Path: "/a.jpg", Width: 1, Height: 1}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.meta.Valid(); got != tt.want {
				t.Errorf("Valid() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAspectRatio(t *testing.T) {
	m := ImageMetadata{Width: 1920, Height: 1080}
	want := 1920.0 / 1080.0
	if got := m.AspectRatio(); got != want {
		t.Errorf("AspectRatio() = %v, want %v", got, want)
	}
}
