package sink

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// FilenameLayout is the time layout of saved screenshot names.
const FilenameLayout = "2006-01-02_15-04-05"

// Filename returns the screenshot file name for t.
func Filename(t time.Time) string {
	return "screenshot-" + t.Format(FilenameLayout) + ".png"
}

// FileSink writes screenshots into a directory.
type FileSink struct {
	Dir string
}

// Save writes data to Dir, creating it if absent, and returns the full path.
func (s FileSink) Save(data []byte, now time.Time) (string, error) {
	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create save directory: %w", err)
	}
	path := filepath.Join(s.Dir, Filename(now))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write screenshot: %w", err)
	}
	return path, nil
}

// Opener shows a saved file to the user.
type Opener interface {
	Open(path string) error
}

// XDGOpen opens files with xdg-open. It does not wait for the viewer.
type XDGOpen struct {
	Start func(ctx context.Context, name string, args ...string) error
}

// NewXDGOpen returns an opener that starts xdg-open detached.
func NewXDGOpen() *XDGOpen {
	return &XDGOpen{Start: startDetached}
}

// Open implements Opener.
func (o *XDGOpen) Open(path string) error {
	if err := o.Start(context.Background(), "xdg-open", path); err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	return nil
}
