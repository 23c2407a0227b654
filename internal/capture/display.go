package capture

import (
	"context"
	"fmt"
	"image"
	"strconv"

	"github.com/kbinani/screenshot"

	"github.com/ironsheep/screen-short/internal/imaging"
)

// screens is the subset of github.com/kbinani/screenshot used by Display.
type screens interface {
	NumActiveDisplays() int
	GetDisplayBounds(index int) image.Rectangle
	CaptureRect(r image.Rectangle) (*image.RGBA, error)
}

type systemScreens struct{}

func (systemScreens) NumActiveDisplays() int                 { return screenshot.NumActiveDisplays() }
func (systemScreens) GetDisplayBounds(i int) image.Rectangle { return screenshot.GetDisplayBounds(i) }
func (systemScreens) CaptureRect(r image.Rectangle) (*image.RGBA, error) {
	return screenshot.CaptureRect(r)
}

// Display captures X11, macOS and Windows displays. Monitor names are
// display indexes.
type Display struct {
	screens screens
}

// NewDisplay returns a Display backed by the platform screenshot API.
func NewDisplay() *Display {
	return &Display{screens: systemScreens{}}
}

// Capture implements Capturer. An empty monitor captures display 0.
func (d *Display) Capture(ctx context.Context, monitor string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCaptureFailed, err)
	}
	bounds, err := d.bounds(monitor)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCaptureFailed, err)
	}
	img, err := d.screens.CaptureRect(bounds)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCaptureFailed, err)
	}
	data, err := imaging.EncodePNG(img)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCaptureFailed, err)
	}
	return data, nil
}

// ActiveMonitor implements MonitorLocator: the display containing the
// virtual-screen origin, or display 0.
func (d *Display) ActiveMonitor(context.Context) (string, error) {
	n := d.screens.NumActiveDisplays()
	if n == 0 {
		return "", ErrNoActiveMonitor
	}
	for i := 0; i < n; i++ {
		if image.Pt(0, 0).In(d.screens.GetDisplayBounds(i)) {
			return strconv.Itoa(i), nil
		}
	}
	return "0", nil
}

// Monitors implements Lister.
func (d *Display) Monitors(context.Context) ([]Monitor, error) {
	n := d.screens.NumActiveDisplays()
	monitors := make([]Monitor, 0, n)
	for i := 0; i < n; i++ {
		b := d.screens.GetDisplayBounds(i)
		monitors = append(monitors, Monitor{
			Name:    strconv.Itoa(i),
			X:       b.Min.X,
			Y:       b.Min.Y,
			Width:   b.Dx(),
			Height:  b.Dy(),
			Scale:   1,
			Focused: image.Pt(0, 0).In(b),
		})
	}
	return monitors, nil
}

func (d *Display) bounds(monitor string) (image.Rectangle, error) {
	n := d.screens.NumActiveDisplays()
	if n == 0 {
		return image.Rectangle{}, fmt.Errorf("no active displays found")
	}
	index := 0
	if monitor != "" {
		i, err := strconv.Atoi(monitor)
		if err != nil {
			return image.Rectangle{}, fmt.Errorf("invalid display index %q", monitor)
		}
		index = i
	}
	if index < 0 || index >= n {
		return image.Rectangle{}, fmt.Errorf("display %d out of range (0-%d)", index, n-1)
	}
	return d.screens.GetDisplayBounds(index), nil
}
