package session

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/ironsheep/screen-short/internal/capture"
	"github.com/ironsheep/screen-short/internal/config"
	"github.com/ironsheep/screen-short/internal/editor"
	"github.com/ironsheep/screen-short/internal/imaging"
	"github.com/ironsheep/screen-short/internal/render"
	"github.com/ironsheep/screen-short/internal/sink"
)

// DefaultCaptureTimeout bounds monitor lookup and capture.
const DefaultCaptureTimeout = 5 * time.Second

// Frontend drives an Overlay with user input until it reaches an outcome.
type Frontend interface {
	Run(ctx context.Context, overlay *Overlay) (editor.Outcome, error)
}

// Saver persists the final PNG.
type Saver interface {
	Save(data []byte, now time.Time) (string, error)
}

// Deps are the external collaborators of a session. Nil sinks are skipped.
type Deps struct {
	Locator   capture.MonitorLocator
	Capturer  capture.Capturer
	Clipboard sink.Clipboard
	Saver     Saver
	Opener    sink.Opener
	Frontend  Frontend
	Logger    *log.Logger
	Now       func() time.Time

	CaptureTimeout time.Duration
}

// Options select what a session does.
type Options struct {
	Render            render.Config
	InitialFullscreen bool
	CopyToClipboard   bool
	SaveToFile        bool
	OpenAfterSave     bool
	AskBeforeSave     bool
}

// OptionsFromConfig derives session options from the loaded config.
func OptionsFromConfig(cfg config.Config) Options {
	return Options{
		Render:            cfg.RenderConfig(),
		InitialFullscreen: cfg.InitialSelectionFullscreen(),
		CopyToClipboard:   cfg.Behavior.CopyToClipboard,
		SaveToFile:        true,
		OpenAfterSave:     cfg.Behavior.OpenAfterSave,
		AskBeforeSave:     cfg.Paths.AskBeforeSave,
	}
}

// Sink names used in Report errors.
const (
	SinkClipboard = "clipboard"
	SinkFile      = "file"
	SinkOpener    = "opener"
	SinkRender    = "render"
)

// SinkError records a recoverable failure of one sink.
type SinkError struct {
	Sink string
	Err  error
}

func (e SinkError) Error() string {
	return e.Sink + ": " + e.Err.Error()
}

func (e SinkError) Unwrap() error {
	return e.Err
}

// Report describes a finished session.
type Report struct {
	Outcome editor.Outcome
	Monitor string
	Copied  bool
	Path    string
	Opened  bool
	Errors  []SinkError
}

// Err joins every recorded sink error, or returns nil.
func (r Report) Err() error {
	errs := make([]error, len(r.Errors))
	for i, e := range r.Errors {
		errs[i] = e
	}
	return errors.Join(errs...)
}

// Run executes one capture-annotate-save session.
//
// Parameters:
//   - ctx: Bounds the whole session. Monitor lookup and capture are further
//     limited by deps.CaptureTimeout.
//   - opts: What to render and which sinks to use.
//   - deps: External collaborators. Locator, Capturer and Frontend are
//     required; a nil Clipboard, Saver or Opener is skipped.
//
// Returns:
//   - Report: The outcome, the captured monitor and what each sink did.
//   - error: Non-nil only for fatal failures: no active monitor, a failed or
//     undecodable capture, or a frontend error. No window is shown when the
//     capture fails.
//
// # Error Handling
//
// Failures after confirm (clipboard, file, opener) are logged and recorded
// in Report.Errors; they never stop the remaining sinks. A cancelled
// session performs no I/O after the capture.
func Run(ctx context.Context, opts Options, deps Deps) (Report, error) {
	logger := deps.Logger
	if logger == nil {
		logger = log.Default()
	}
	now := deps.Now
	if now == nil {
		now = time.Now
	}
	if deps.Locator == nil || deps.Capturer == nil || deps.Frontend == nil {
		return Report{}, errors.New("session requires a locator, a capturer and a frontend")
	}

	report := Report{Outcome: editor.Pending}

	overlay, monitor, err := acquire(ctx, opts, deps)
	report.Monitor = monitor
	if err != nil {
		return report, err
	}

	outcome, err := deps.Frontend.Run(ctx, overlay)
	if err != nil {
		return report, fmt.Errorf("overlay failed: %w", err)
	}
	report.Outcome = outcome
	if outcome != editor.Confirmed {
		return report, nil
	}

	data, err := overlay.FinalOutput()
	if err != nil {
		report.Errors = append(report.Errors, SinkError{Sink: SinkRender, Err: err})
		logger.Printf("Failed to render screenshot: %v", err)
		return report, nil
	}
	dispatch(&report, data, opts, deps, logger, now())
	return report, nil
}

func acquire(ctx context.Context, opts Options, deps Deps) (*Overlay, string, error) {
	timeout := deps.CaptureTimeout
	if timeout <= 0 {
		timeout = DefaultCaptureTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	monitor, err := deps.Locator.ActiveMonitor(ctx)
	if err != nil {
		return nil, "", fmt.Errorf("failed to find active monitor: %w", err)
	}
	data, err := deps.Capturer.Capture(ctx, monitor)
	if err != nil {
		return nil, monitor, fmt.Errorf("failed to capture monitor %s: %w", monitor, err)
	}
	img, err := imaging.Decode(data)
	if err != nil {
		return nil, monitor, fmt.Errorf("%w: %v", capture.ErrCaptureFailed, err)
	}
	return NewOverlay(img, opts.Render, opts.InitialFullscreen), monitor, nil
}

func dispatch(report *Report, data []byte, opts Options, deps Deps, logger *log.Logger, now time.Time) {
	if opts.CopyToClipboard && deps.Clipboard != nil {
		if err := deps.Clipboard.WriteImage(data); err != nil {
			report.Errors = append(report.Errors, SinkError{Sink: SinkClipboard, Err: err})
			logger.Printf("Failed to copy screenshot to clipboard: %v", err)
		} else {
			report.Copied = true
		}
	}

	if !opts.SaveToFile || deps.Saver == nil {
		return
	}
	if opts.AskBeforeSave {
		logger.Printf("Warning: paths.ask_before_save is not supported, saving without asking")
	}
	path, err := deps.Saver.Save(data, now)
	if err != nil {
		report.Errors = append(report.Errors, SinkError{Sink: SinkFile, Err: err})
		logger.Printf("Failed to save screenshot: %v", err)
		return
	}
	report.Path = path
	logger.Printf("Screenshot saved to %s", path)

	if opts.OpenAfterSave && deps.Opener != nil {
		if err := deps.Opener.Open(path); err != nil {
			report.Errors = append(report.Errors, SinkError{Sink: SinkOpener, Err: err})
			logger.Printf("Failed to open screenshot: %v", err)
		} else {
			report.Opened = true
		}
	}
}
