package capture

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

var (
	// ErrNoActiveMonitor is returned when no output can be identified.
	ErrNoActiveMonitor = errors.New("no active monitor")
	// ErrCaptureFailed wraps every failure of a capture backend.
	ErrCaptureFailed = errors.New("screen capture failed")
)

// Capturer grabs one monitor as encoded image bytes.
type Capturer interface {
	Capture(ctx context.Context, monitor string) ([]byte, error)
}

// MonitorLocator identifies the monitor to capture.
type MonitorLocator interface {
	ActiveMonitor(ctx context.Context) (string, error)
}

// Lister enumerates monitors.
type Lister interface {
	Monitors(ctx context.Context) ([]Monitor, error)
}

// Monitor describes one output in compositor coordinates.
type Monitor struct {
	Name    string  `json:"name"`
	X       int     `json:"x"`
	Y       int     `json:"y"`
	Width   int     `json:"width"`
	Height  int     `json:"height"`
	Scale   float64 `json:"scale"`
	Focused bool    `json:"focused"`
}

// Runner executes an external program and returns its stdout.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) ([]byte, error)
}

// ExecRunner runs programs with os/exec.
type ExecRunner struct{}

// Run implements Runner. A non-zero exit includes the program's stderr in
// the returned error.
func (ExecRunner) Run(ctx context.Context, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	out, err := cmd.Output()
	if err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return nil, fmt.Errorf("%s: %w: %s", name, err, msg)
		}
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return out, nil
}

// Static always reports the same monitor.
type Static struct {
	Monitor string
}

// ActiveMonitor implements MonitorLocator.
func (s Static) ActiveMonitor(context.Context) (string, error) {
	if s.Monitor == "" {
		return "", ErrNoActiveMonitor
	}
	return s.Monitor, nil
}
