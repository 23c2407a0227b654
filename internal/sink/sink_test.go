package sink

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

type fakeClipboard struct {
	err  error
	data []byte
}

func (f *fakeClipboard) WriteImage(data []byte) error {
	if f.err != nil {
		return f.err
	}
	f.data = data
	return nil
}

type fakeStdinRunner struct {
	err   error
	input []byte
	line  string
}

func (f *fakeStdinRunner) RunWithInput(_ context.Context, input []byte, name string, args ...string) error {
	f.input = input
	f.line = strings.Join(append([]string{name}, args...), " ")
	return f.err
}

func TestFilename(t *testing.T) {
	ts := time.Date(2024, 3, 9, 14, 5, 7, 0, time.Local)
	if got := Filename(ts); got != "screenshot-2024-03-09_14-05-07.png" {
		t.Errorf("Filename = %q", got)
	}
}

func TestFileSink_Save(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "Pictures", "Screenshots")
	s := FileSink{Dir: dir}
	ts := time.Date(2024, 1, 2, 3, 4, 5, 0, time.Local)

	path, err := s.Save([]byte("png"), ts)
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if want := filepath.Join(dir, "screenshot-2024-01-02_03-04-05.png"); path != want {
		t.Errorf("path: got %q, want %q", path, want)
	}
	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read saved file: %v", err)
	}
	if string(got) != "png" {
		t.Errorf("content: got %q", got)
	}
}

func TestFileSink_SaveFailure(t *testing.T) {
	// A regular file where the directory should be.
	blocker := filepath.Join(t.TempDir(), "file")
	if err := os.WriteFile(blocker, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := FileSink{Dir: filepath.Join(blocker, "sub")}.Save([]byte("x"), time.Now())
	if err == nil {
		t.Error("Save into a file path should fail")
	}
}

func TestWlCopy(t *testing.T) {
	r := &fakeStdinRunner{}
	if err := (&WlCopy{Runner: r}).WriteImage([]byte("img")); err != nil {
		t.Fatalf("WriteImage failed: %v", err)
	}
	if r.line != "wl-copy --type image/png" {
		t.Errorf("command: got %q", r.line)
	}
	if string(r.input) != "img" {
		t.Errorf("stdin: got %q", r.input)
	}

	r.err = errors.New("exit status 1")
	if err := (&WlCopy{Runner: r}).WriteImage([]byte("img")); err == nil {
		t.Error("expected error from failing wl-copy")
	}
}

func TestFallbackClipboard(t *testing.T) {
	errA, errB := errors.New("a down"), errors.New("b down")

	t.Run("first succeeds", func(t *testing.T) {
		a, b := &fakeClipboard{}, &fakeClipboard{}
		if err := (FallbackClipboard{a, b}).WriteImage([]byte("x")); err != nil {
			t.Fatalf("WriteImage failed: %v", err)
		}
		if a.data == nil || b.data != nil {
			t.Error("only the first clipboard should be written")
		}
	})

	t.Run("falls back", func(t *testing.T) {
		a, b := &fakeClipboard{err: errA}, &fakeClipboard{}
		if err := (FallbackClipboard{a, b}).WriteImage([]byte("x")); err != nil {
			t.Fatalf("WriteImage failed: %v", err)
		}
		if b.data == nil {
			t.Error("second clipboard should be written")
		}
	})

	t.Run("all fail", func(t *testing.T) {
		err := (FallbackClipboard{&fakeClipboard{err: errA}, &fakeClipboard{err: errB}}).WriteImage([]byte("x"))
		if !errors.Is(err, errA) || !errors.Is(err, errB) {
			t.Errorf("expected both errors joined, got %v", err)
		}
	})

	t.Run("empty", func(t *testing.T) {
		if err := (FallbackClipboard{}).WriteImage([]byte("x")); err == nil {
			t.Error("empty fallback should fail")
		}
	})
}

func TestXDGOpen(t *testing.T) {
	var got string
	o := &XDGOpen{Start: func(_ context.Context, name string, args ...string) error {
		got = name + " " + strings.Join(args, " ")
		return nil
	}}
	if err := o.Open("/tmp/a.png"); err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if got != "xdg-open /tmp/a.png" {
		t.Errorf("command: got %q", got)
	}

	o.Start = func(context.Context, string, ...string) error { return errors.New("not found") }
	if err := o.Open("/tmp/a.png"); err == nil {
		t.Error("expected error when xdg-open cannot start")
	}
}
