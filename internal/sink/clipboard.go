package sink

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"sync"

	"golang.design/x/clipboard"
)

// Clipboard accepts PNG image data.
type Clipboard interface {
	WriteImage(data []byte) error
}

// SystemClipboard writes through golang.design/x/clipboard.
type SystemClipboard struct {
	once    sync.Once
	initErr error
	mu      sync.Mutex
}

// WriteImage implements Clipboard.
func (c *SystemClipboard) WriteImage(data []byte) error {
	c.once.Do(func() {
		c.initErr = clipboard.Init()
	})
	if c.initErr != nil {
		return fmt.Errorf("clipboard unavailable: %w", c.initErr)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	clipboard.Write(clipboard.FmtImage, data)
	return nil
}

// StdinRunner runs a program with data on its stdin.
type StdinRunner interface {
	RunWithInput(ctx context.Context, input []byte, name string, args ...string) error
}

// ExecStdinRunner implements StdinRunner with os/exec.
type ExecStdinRunner struct{}

// RunWithInput implements StdinRunner.
func (ExecStdinRunner) RunWithInput(ctx context.Context, input []byte, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdin = bytes.NewReader(input)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return fmt.Errorf("%s: %w: %s", name, err, msg)
		}
		return fmt.Errorf("%s: %w", name, err)
	}
	return nil
}

// WlCopy pipes images into wl-copy.
type WlCopy struct {
	Runner StdinRunner
}

// NewWlCopy returns a WlCopy sink using os/exec.
func NewWlCopy() *WlCopy {
	return &WlCopy{Runner: ExecStdinRunner{}}
}

// WriteImage implements Clipboard.
func (w *WlCopy) WriteImage(data []byte) error {
	if err := w.Runner.RunWithInput(context.Background(), data, "wl-copy", "--type", "image/png"); err != nil {
		return fmt.Errorf("wl-copy failed: %w", err)
	}
	return nil
}

// FallbackClipboard tries each clipboard in order until one succeeds.
type FallbackClipboard []Clipboard

// WriteImage implements Clipboard. When every clipboard fails the errors are
// joined.
func (f FallbackClipboard) WriteImage(data []byte) error {
	if len(f) == 0 {
		return errors.New("no clipboard configured")
	}
	var errs []error
	for _, c := range f {
		err := c.WriteImage(data)
		if err == nil {
			return nil
		}
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}
