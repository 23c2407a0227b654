package capture

import (
	"context"
	"fmt"
)

// Grim captures Wayland outputs with the grim utility.
type Grim struct {
	Runner Runner
}

// NewGrim returns a Grim backend using os/exec.
func NewGrim() *Grim {
	return &Grim{Runner: ExecRunner{}}
}

// Capture runs `grim -o <monitor> -` and returns the PNG it writes to stdout.
// An empty monitor captures every output.
func (g *Grim) Capture(ctx context.Context, monitor string) ([]byte, error) {
	args := []string{"-"}
	if monitor != "" {
		args = []string{"-o", monitor, "-"}
	}
	out, err := g.Runner.Run(ctx, "grim", args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCaptureFailed, err)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%w: grim produced no output", ErrCaptureFailed)
	}
	return out, nil
}
