package session

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"log"
	"strings"
	"testing"
	"time"

	"github.com/ironsheep/screen-short/internal/capture"
	"github.com/ironsheep/screen-short/internal/config"
	"github.com/ironsheep/screen-short/internal/editor"
	"github.com/ironsheep/screen-short/internal/geometry"
	"github.com/ironsheep/screen-short/internal/render"
	"github.com/ironsheep/screen-short/internal/shape"
)

// encodeTestPNG creates a solid-color PNG of the given size.
func encodeTestPNG(t *testing.T, width, height int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i], img.Pix[i+1], img.Pix[i+2], img.Pix[i+3] = 200, 100, 50, 255
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("failed to encode PNG: %v", err)
	}
	return buf.Bytes()
}

type fakeLocator struct {
	monitor string
	err     error
}

func (f fakeLocator) ActiveMonitor(context.Context) (string, error) { return f.monitor, f.err }

type fakeCapturer struct {
	data    []byte
	err     error
	monitor string
}

func (f *fakeCapturer) Capture(_ context.Context, monitor string) ([]byte, error) {
	f.monitor = monitor
	return f.data, f.err
}

type fakeClipboard struct {
	data []byte
	err  error
}

func (f *fakeClipboard) WriteImage(data []byte) error {
	f.data = data
	return f.err
}

type fakeSaver struct {
	data []byte
	at   time.Time
	err  error
}

func (f *fakeSaver) Save(data []byte, now time.Time) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.data, f.at = data, now
	return "/shots/screenshot.png", nil
}

type fakeOpener struct {
	path string
	err  error
}

func (f *fakeOpener) Open(path string) error {
	f.path = path
	return f.err
}

// scriptedFrontend replays pointer and key events, then reports the
// overlay's outcome. Running off the end of the script is a window close.
type scriptedFrontend struct {
	script []any
	err    error
	ran    bool
	size   image.Point
}

func (f *scriptedFrontend) Run(_ context.Context, o *Overlay) (editor.Outcome, error) {
	f.ran = true
	f.size = o.Size()
	if f.err != nil {
		return editor.Pending, f.err
	}
	for _, ev := range f.script {
		var res editor.Result
		switch ev := ev.(type) {
		case editor.PointerEvent:
			res = o.ProcessPointerEvent(ev)
		case editor.KeyEvent:
			res = o.ProcessKeyEvent(ev)
		case shape.Kind:
			res = o.ActivateTool(ev)
		}
		if res.Done() {
			return res.Outcome, nil
		}
	}
	return o.Cancel().Outcome, nil
}

var confirmKey = editor.KeyEvent{Key: editor.KeyEnter}

type fixture struct {
	capturer  *fakeCapturer
	clipboard *fakeClipboard
	saver     *fakeSaver
	opener    *fakeOpener
	frontend  *scriptedFrontend
	logs      *bytes.Buffer
	deps      Deps
}

func newFixture(t *testing.T, script ...any) *fixture {
	f := &fixture{
		capturer:  &fakeCapturer{data: encodeTestPNG(t, 400, 300)},
		clipboard: &fakeClipboard{},
		saver:     &fakeSaver{},
		opener:    &fakeOpener{},
		frontend:  &scriptedFrontend{script: script},
		logs:      &bytes.Buffer{},
	}
	f.deps = Deps{
		Locator:   fakeLocator{monitor: "DP-1"},
		Capturer:  f.capturer,
		Clipboard: f.clipboard,
		Saver:     f.saver,
		Opener:    f.opener,
		Frontend:  f.frontend,
		Logger:    log.New(f.logs, "", 0),
		Now:       func() time.Time { return time.Date(2024, 5, 6, 7, 8, 9, 0, time.UTC) },
	}
	return f
}

func testOptions() Options {
	return Options{
		Render:          render.DefaultConfig(),
		CopyToClipboard: true,
		SaveToFile:      true,
	}
}

func decodeSize(t *testing.T, data []byte) image.Point {
	t.Helper()
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("output is not a PNG: %v", err)
	}
	return img.Bounds().Size()
}

func TestRun_ConfirmSavesAndCopies(t *testing.T) {
	f := newFixture(t,
		editor.Press(100, 100), editor.Move(300, 250), editor.Release(300, 250),
		confirmKey,
	)

	report, err := Run(context.Background(), testOptions(), f.deps)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if report.Outcome != editor.Confirmed {
		t.Fatalf("Outcome: got %v, want confirmed", report.Outcome)
	}
	if f.capturer.monitor != "DP-1" || report.Monitor != "DP-1" {
		t.Errorf("monitor: captured %q, reported %q", f.capturer.monitor, report.Monitor)
	}
	if f.frontend.size != image.Pt(400, 300) {
		t.Errorf("overlay size: got %v, want 400x300", f.frontend.size)
	}
	if !report.Copied || report.Path != "/shots/screenshot.png" {
		t.Errorf("report: %+v", report)
	}
	if got := decodeSize(t, f.clipboard.data); got != image.Pt(200, 150) {
		t.Errorf("clipboard image size: got %v, want 200x150", got)
	}
	if !bytes.Equal(f.clipboard.data, f.saver.data) {
		t.Error("clipboard and file received different images")
	}
	if !f.saver.at.Equal(f.deps.Now()) {
		t.Errorf("save time: got %v", f.saver.at)
	}
	if f.opener.path != "" {
		t.Error("opener ran without open_after_save")
	}
	if report.Err() != nil {
		t.Errorf("unexpected errors: %v", report.Err())
	}
}

func TestRun_CancelHasNoSideEffects(t *testing.T) {
	f := newFixture(t,
		editor.Press(100, 100), editor.Move(300, 250), editor.Release(300, 250),
		editor.KeyEvent{Key: editor.KeyEscape},
	)

	report, err := Run(context.Background(), testOptions(), f.deps)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if report.Outcome != editor.Cancelled {
		t.Errorf("Outcome: got %v, want cancelled", report.Outcome)
	}
	if f.clipboard.data != nil || f.saver.data != nil {
		t.Error("cancelled session wrote output")
	}
}

func TestRun_WindowClosedCancels(t *testing.T) {
	f := newFixture(t, editor.Press(10, 10))

	report, err := Run(context.Background(), testOptions(), f.deps)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if report.Outcome != editor.Cancelled || f.saver.data != nil {
		t.Errorf("closing the window should cancel: %+v", report)
	}
}

func TestRun_ConfirmWithoutSelectionIsIgnored(t *testing.T) {
	// No initial selection: Enter is refused and the session continues
	// until the window closes.
	f := newFixture(t, confirmKey)

	report, err := Run(context.Background(), testOptions(), f.deps)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if report.Outcome != editor.Cancelled {
		t.Errorf("Outcome: got %v, want cancelled", report.Outcome)
	}
}

func TestRun_InitialFullscreen(t *testing.T) {
	f := newFixture(t, confirmKey)
	opts := testOptions()
	opts.InitialFullscreen = true

	report, err := Run(context.Background(), opts, f.deps)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if report.Outcome != editor.Confirmed {
		t.Fatalf("Outcome: got %v, want confirmed", report.Outcome)
	}
	if got := decodeSize(t, f.saver.data); got != image.Pt(400, 300) {
		t.Errorf("fullscreen output size: got %v, want 400x300", got)
	}
}

func TestRun_AnnotationsBurnedIn(t *testing.T) {
	f := newFixture(t,
		editor.Press(100, 100), editor.Move(300, 250), editor.Release(300, 250),
		shape.Rectangle,
		editor.Press(150, 150), editor.Move(180, 170), editor.Release(180, 170),
		confirmKey,
	)
	opts := testOptions()
	opts.Render.ShapeColor = color.RGBA{0, 255, 0, 255}

	if _, err := Run(context.Background(), opts, f.deps); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	img, err := png.Decode(bytes.NewReader(f.saver.data))
	if err != nil {
		t.Fatalf("output is not a PNG: %v", err)
	}
	// Left edge of the rectangle, translated by (-100,-100).
	_, g, _, _ := img.At(50, 60).RGBA()
	if g>>8 < 200 {
		t.Errorf("expected green stroke at (50,60), got %v", img.At(50, 60))
	}
}

func TestRun_OpenAfterSave(t *testing.T) {
	f := newFixture(t, confirmKey)
	opts := testOptions()
	opts.InitialFullscreen = true
	opts.OpenAfterSave = true

	report, err := Run(context.Background(), opts, f.deps)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if !report.Opened || f.opener.path != "/shots/screenshot.png" {
		t.Errorf("opener: report %+v, path %q", report, f.opener.path)
	}
}

func TestRun_DisabledSinks(t *testing.T) {
	f := newFixture(t, confirmKey)
	opts := testOptions()
	opts.InitialFullscreen = true
	opts.CopyToClipboard = false
	opts.SaveToFile = false

	report, err := Run(context.Background(), opts, f.deps)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if f.clipboard.data != nil || f.saver.data != nil {
		t.Error("disabled sinks were written")
	}
	if report.Copied || report.Path != "" {
		t.Errorf("report: %+v", report)
	}
}

func TestRun_SaveErrorsAreRecoverable(t *testing.T) {
	f := newFixture(t, confirmKey)
	clipErr, saveErr := errors.New("no display"), errors.New("disk full")
	f.clipboard.err = clipErr
	f.saver.err = saveErr
	opts := testOptions()
	opts.InitialFullscreen = true
	opts.OpenAfterSave = true

	report, err := Run(context.Background(), opts, f.deps)
	if err != nil {
		t.Fatalf("save errors must not be fatal: %v", err)
	}
	if report.Outcome != editor.Confirmed {
		t.Errorf("Outcome: got %v", report.Outcome)
	}
	if len(report.Errors) != 2 {
		t.Fatalf("errors: got %v, want clipboard and file", report.Errors)
	}
	if report.Errors[0].Sink != SinkClipboard || report.Errors[1].Sink != SinkFile {
		t.Errorf("sinks: got %v", report.Errors)
	}
	if !errors.Is(report.Err(), clipErr) || !errors.Is(report.Err(), saveErr) {
		t.Errorf("Err() should wrap both: %v", report.Err())
	}
	if f.opener.path != "" {
		t.Error("opener ran after failed save")
	}
	if !strings.Contains(f.logs.String(), "disk full") {
		t.Errorf("save failure not logged:\n%s", f.logs.String())
	}
}

func TestRun_AskBeforeSaveWarns(t *testing.T) {
	f := newFixture(t, confirmKey)
	opts := testOptions()
	opts.InitialFullscreen = true
	opts.AskBeforeSave = true

	if _, err := Run(context.Background(), opts, f.deps); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if f.saver.data == nil {
		t.Error("file should still be saved")
	}
	if !strings.Contains(f.logs.String(), "ask_before_save") {
		t.Errorf("expected warning, got:\n%s", f.logs.String())
	}
}

func TestRun_FatalErrors(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(f *fixture)
		wantErr error
	}{
		{"no monitor", func(f *fixture) {
			f.deps.Locator = fakeLocator{err: capture.ErrNoActiveMonitor}
		}, capture.ErrNoActiveMonitor},
		{"capture fails", func(f *fixture) {
			f.capturer.err = capture.ErrCaptureFailed
		}, capture.ErrCaptureFailed},
		{"undecodable capture", func(f *fixture) {
			f.capturer.data = []byte("not an image")
		}, capture.ErrCaptureFailed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, confirmKey)
			tt.mutate(f)

			_, err := Run(context.Background(), testOptions(), f.deps)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("got %v, want %v", err, tt.wantErr)
			}
			if f.frontend.ran {
				t.Error("frontend must not start after a fatal capture error")
			}
		})
	}
}

func TestRun_FrontendError(t *testing.T) {
	f := newFixture(t)
	f.frontend.err = errors.New("no display server")

	if _, err := Run(context.Background(), testOptions(), f.deps); err == nil {
		t.Error("frontend failure should be returned")
	}
	if f.saver.data != nil {
		t.Error("nothing should be saved")
	}
}

func TestRun_MissingDeps(t *testing.T) {
	if _, err := Run(context.Background(), testOptions(), Deps{}); err == nil {
		t.Error("Run without collaborators should fail")
	}
}

func TestOverlay_PreviewAndFinal(t *testing.T) {
	bg := image.NewRGBA(image.Rect(0, 0, 120, 80))
	o := NewOverlay(bg, render.DefaultConfig(), false)

	if o.IsConfirmable() {
		t.Error("fresh overlay without initial selection should not be confirmable")
	}
	if _, err := o.FinalImage(); !errors.Is(err, render.ErrInvalidSelection) {
		t.Errorf("FinalImage without selection: got %v", err)
	}

	o.ProcessPointerEvent(editor.Press(10, 10))
	o.ProcessPointerEvent(editor.Move(60, 40))
	o.ProcessPointerEvent(editor.Release(60, 40))
	if !o.IsConfirmable() {
		t.Fatal("overlay should be confirmable after selecting")
	}

	if got := o.PreviewFrame().Bounds(); got != bg.Bounds() {
		t.Errorf("preview bounds: got %v", got)
	}
	final, err := o.FinalImage()
	if err != nil {
		t.Fatalf("FinalImage failed: %v", err)
	}
	if final.Bounds().Size() != image.Pt(50, 30) {
		t.Errorf("final size: got %v, want 50x30", final.Bounds().Size())
	}
}

func TestOverlay_DefaultConfigStartsNewSelection(t *testing.T) {
	opts := OptionsFromConfig(config.Default())
	o := NewOverlay(image.NewRGBA(image.Rect(0, 0, 800, 600)), opts.Render, opts.InitialFullscreen)

	o.ProcessPointerEvent(editor.Press(100, 100))
	if got := o.edit.State(); got != editor.StateSelecting {
		t.Fatalf("state after press: got %v, want selecting", got)
	}
	o.ProcessPointerEvent(editor.Move(300, 250))
	o.ProcessPointerEvent(editor.Release(300, 250))

	snap := o.Snapshot()
	if !snap.ValidSelection() || snap.Selection != geometry.R(100, 100, 300, 250) {
		t.Errorf("selection: got %+v, want (100,100)-(300,250)", snap.Selection)
	}
}
