package slideshow

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// header is the fixed preamble of the "Slide Show Sequence v2" format;
// only the window dimensions vary.
const header = `# Slide Show Sequence v2
UseTimer = 1
Timer = 2
Loop = 1
FullScreen = 0
WinWidth = %d
WinHeight = %d
Stretch = 1
RandomOrder = 1
ShowInfo = 1
Info = {Filename}
TitleBar = 1
OnTop = 1
CursorAutoHide = 0
BackgroundColor = 0 0 0 255
TextColor = 255 255 255 255
UseTextBackColor = 0
TextPosition = 0
TextBackColor = 128 128 128 255
Opacity = 100
Font = Sans Serif,9,-1,5,50,0,0,0,0,0
EffectDuration = 1000
`

// Writer writes one slideshow playlist file.
type Writer struct {
	file *os.File
	buf  *bufio.Writer
}

// NewWriter truncate-creates the playlist at path.
func NewWriter(path string) (*Writer, error) {
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to create playlist %s: %w", path, err)
	}
	return &Writer{file: file, buf: bufio.NewWriter(file)}, nil
}

// WriteHeader writes the playlist preamble for a window of the given
// dimensions. Call once, before any image paths.
func (w *Writer) WriteHeader(width, height int) error {
	_, err := fmt.Fprintf(w.buf, header, width, height)
	return err
}

// WriteImagePath appends one image to the playlist. Backslashes and
// double quotes are escaped, and the path is quoted, as the format
// requires.
func (w *Writer) WriteImagePath(path string) error {
	escaped := strings.ReplaceAll(path, `\`, `\\`)
	escaped = strings.ReplaceAll(escaped, `"`, `\"`)
	_, err := fmt.Fprintf(w.buf, "\"%s\"\n", escaped)
	return err
}

// Close flushes and closes the playlist file.
func (w *Writer) Close() error {
	if err := w.buf.Flush(); err != nil {
		w.file.Close()
		return err
	}
	return w.file.Close()
}
