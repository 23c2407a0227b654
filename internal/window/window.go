package window

import (
	"context"
	"fmt"
	"image"
	"log"

	"golang.org/x/exp/shiny/driver"
	"golang.org/x/exp/shiny/screen"
	"golang.org/x/mobile/event/key"
	"golang.org/x/mobile/event/lifecycle"
	"golang.org/x/mobile/event/mouse"
	"golang.org/x/mobile/event/paint"
	"golang.org/x/mobile/event/size"

	"github.com/ironsheep/screen-short/internal/editor"
	"github.com/ironsheep/screen-short/internal/session"
)

// DefaultTitle is the window title.
const DefaultTitle = "screen-short"

// Frontend is a session.Frontend backed by a shiny window.
type Frontend struct {
	Title  string
	Logger *log.Logger
	// Debug traces cursor hint changes.
	Debug bool
}

// stopEvent asks the event loop to cancel the session.
type stopEvent struct{}

// Run implements session.Frontend. It blocks until the overlay reaches an
// outcome, the window is closed, or ctx is done.
func (f *Frontend) Run(ctx context.Context, o *session.Overlay) (editor.Outcome, error) {
	title := f.Title
	if title == "" {
		title = DefaultTitle
	}
	logger := f.Logger
	if logger == nil {
		logger = log.Default()
	}

	var (
		outcome = editor.Pending
		runErr  error
	)
	driver.Main(func(s screen.Screen) {
		outcome, runErr = f.loop(ctx, s, o, title, logger)
	})
	return outcome, runErr
}

func (f *Frontend) loop(ctx context.Context, s screen.Screen, o *session.Overlay, title string, logger *log.Logger) (editor.Outcome, error) {
	sz := o.Size()
	w, err := s.NewWindow(&screen.NewWindowOptions{Width: sz.X, Height: sz.Y, Title: title})
	if err != nil {
		return editor.Pending, fmt.Errorf("failed to create window: %w", err)
	}
	defer w.Release()

	b, err := s.NewBuffer(sz)
	if err != nil {
		return editor.Pending, fmt.Errorf("failed to create buffer: %w", err)
	}
	defer b.Release()

	stop := watchContext(ctx, func() { w.Send(stopEvent{}) })
	defer stop()

	w.Send(paint.Event{})

	var cursor editor.Cursor
	for {
		var res editor.Result
		switch e := w.NextEvent().(type) {
		case lifecycle.Event:
			if e.To == lifecycle.StageDead {
				return o.Cancel().Outcome, nil
			}
		case stopEvent:
			return o.Cancel().Outcome, nil
		case size.Event:
			res.Repaint = true
		case paint.Event:
			o.PreviewInto(b.RGBA())
			w.Upload(image.Point{}, b, b.Bounds())
			w.Publish()
		case mouse.Event:
			if ev, ok := pointerEvent(e); ok {
				res = o.ProcessPointerEvent(ev)
			}
			// shiny has no cursor API; the hint is only traced.
			if c := o.Cursor(); f.Debug && c != cursor {
				cursor = c
				logger.Printf("cursor: %v", c)
			}
		case key.Event:
			if ev, ok := keyEvent(e); ok {
				res = o.ProcessKeyEvent(ev)
			}
		case error:
			logger.Printf("Window error: %v", e)
		}

		if res.Done() {
			return res.Outcome, nil
		}
		if res.Repaint {
			w.Send(paint.Event{})
		}
	}
}

// watchContext calls cancel once if ctx ends before the returned stop
// function is called. Once stop returns, cancel is never called again, so
// the caller may release whatever cancel touches.
func watchContext(ctx context.Context, cancel func()) (stop func()) {
	done, stopped := make(chan struct{}), make(chan struct{})
	go func() {
		defer close(stopped)
		select {
		case <-ctx.Done():
			cancel()
		case <-done:
		}
	}()
	return func() {
		close(done)
		<-stopped
	}
}
