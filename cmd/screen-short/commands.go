package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/ironsheep/screen-short/internal/capture"
	"github.com/ironsheep/screen-short/internal/config"
	"github.com/ironsheep/screen-short/internal/session"
	"github.com/ironsheep/screen-short/internal/sink"
	"github.com/ironsheep/screen-short/internal/window"
)

// Capture backends.
const (
	backendGrim   = "grim"
	backendNative = "native"
)

type rootFlags struct {
	configPath  string
	monitor     string
	backend     string
	dir         string
	noClipboard bool
	noFile      bool
	timeout     time.Duration
	debug       bool
}

func newRootCmd() *cobra.Command {
	f := &rootFlags{}
	cmd := &cobra.Command{
		Use:   "screen-short",
		Short: "Capture, annotate and save a screenshot",
		Long: `Capture the active monitor and open an overlay to select a region.

Drag to select, drag the corners to resize, drag inside to move.
Pick a tool from the toolbar (or press r, a, c) to draw a rectangle,
arrow or circle. Enter confirms, Escape cancels.

Environment variables:
  SCREEN_SHORT_LOG_LEVEL=debug    Enable debug logging

Examples:
  screen-short                      # Active monitor, save file + clipboard
  screen-short -m DP-1              # Specific monitor
  screen-short --backend native     # Use the X11/macOS/Windows capture API
  screen-short --no-clipboard       # Save file only
  screen-short -d /tmp              # Save into /tmp`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCapture(cmd.Context(), f)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&f.configPath, "config", config.DefaultPath(), "Config file")
	flags.StringVarP(&f.monitor, "monitor", "m", "", "Monitor to capture (default: active monitor)")
	flags.StringVar(&f.backend, "backend", defaultBackend(), "Capture backend (grim, native)")
	flags.StringVarP(&f.dir, "dir", "d", "", "Output directory (overrides paths.save_dir)")
	flags.BoolVar(&f.noClipboard, "no-clipboard", false, "Don't copy to clipboard")
	flags.BoolVar(&f.noFile, "no-file", false, "Don't save to file")
	flags.DurationVar(&f.timeout, "timeout", session.DefaultCaptureTimeout, "Capture timeout")
	flags.BoolVar(&f.debug, "debug", false, "Enable debug logging")

	cmd.AddCommand(newVersionCmd(), newListCmd(f))
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "screen-short %s\n", Version)
			fmt.Fprintf(out, "  Build time: %s\n", BuildTime)
			fmt.Fprintf(out, "  Git commit: %s\n", GitCommit)
		},
	}
}

func newListCmd(f *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List available monitors",
		RunE: func(cmd *cobra.Command, args []string) error {
			lister, err := newLister(f.backend)
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), f.timeout)
			defer cancel()

			monitors, err := lister.Monitors(ctx)
			if err != nil {
				return fmt.Errorf("failed to list monitors: %w", err)
			}
			printMonitors(cmd.OutOrStdout(), monitors)
			return nil
		},
	}
}

func printMonitors(w io.Writer, monitors []capture.Monitor) {
	for _, m := range monitors {
		mark := " "
		if m.Focused {
			mark = "*"
		}
		fmt.Fprintf(w, "%s %s: %dx%d+%d+%d scale %.2f\n", mark, m.Name, m.Width, m.Height, m.X, m.Y, m.Scale)
	}
}

func runCapture(ctx context.Context, f *rootFlags) error {
	if ctx == nil {
		ctx = context.Background()
	}
	debug := f.debug || os.Getenv("SCREEN_SHORT_LOG_LEVEL") == "debug"
	logger := log.Default()
	if debug {
		logger.Printf("screen-short v%s (built %s, commit %s)", Version, BuildTime, GitCommit)
	}

	cfg := config.Load(f.configPath, logger)
	if f.dir != "" {
		cfg.Paths.SaveDir = f.dir
	}

	deps, err := buildDeps(f, cfg, logger, debug)
	if err != nil {
		return err
	}
	opts := session.OptionsFromConfig(cfg)
	if f.noClipboard {
		opts.CopyToClipboard = false
	}
	if f.noFile {
		opts.SaveToFile = false
	}

	report, err := session.Run(ctx, opts, deps)
	if err != nil {
		logger.Printf("Error: %v", err)
		return err
	}
	if debug {
		logger.Printf("Session %v on %s", report.Outcome, report.Monitor)
	}
	return nil
}

func buildDeps(f *rootFlags, cfg config.Config, logger *log.Logger, debug bool) (session.Deps, error) {
	locator, capturer, err := newBackend(f.backend, f.monitor)
	if err != nil {
		return session.Deps{}, err
	}
	return session.Deps{
		Locator:        locator,
		Capturer:       capturer,
		Clipboard:      sink.FallbackClipboard{&sink.SystemClipboard{}, sink.NewWlCopy()},
		Saver:          sink.FileSink{Dir: cfg.SaveDir()},
		Opener:         sink.NewXDGOpen(),
		Frontend:       &window.Frontend{Logger: logger, Debug: debug},
		Logger:         logger,
		CaptureTimeout: f.timeout,
	}, nil
}

func defaultBackend() string {
	if os.Getenv("WAYLAND_DISPLAY") != "" {
		return backendGrim
	}
	return backendNative
}

func newBackend(name, monitor string) (capture.MonitorLocator, capture.Capturer, error) {
	var locator capture.MonitorLocator
	var capturer capture.Capturer
	switch name {
	case backendGrim:
		locator, capturer = capture.NewHyprland(), capture.NewGrim()
	case backendNative:
		d := capture.NewDisplay()
		locator, capturer = d, d
	default:
		return nil, nil, fmt.Errorf("unknown backend %q (want %s or %s)", name, backendGrim, backendNative)
	}
	if monitor != "" {
		locator = capture.Static{Monitor: monitor}
	}
	return locator, capturer, nil
}

func newLister(name string) (capture.Lister, error) {
	switch name {
	case backendGrim:
		return capture.NewHyprland(), nil
	case backendNative:
		return capture.NewDisplay(), nil
	}
	return nil, fmt.Errorf("unknown backend %q (want %s or %s)", name, backendGrim, backendNative)
}
