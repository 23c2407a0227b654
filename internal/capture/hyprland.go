package capture

import (
	"context"
	"encoding/json"
	"fmt"
)

// Hyprland locates monitors through hyprctl.
type Hyprland struct {
	Runner Runner
}

// NewHyprland returns a Hyprland locator using os/exec.
func NewHyprland() *Hyprland {
	return &Hyprland{Runner: ExecRunner{}}
}

type hyprlandWorkspace struct {
	Monitor string `json:"monitor"`
}

// ActiveMonitor returns the monitor of the active workspace, falling back to
// the focused monitor.
func (h *Hyprland) ActiveMonitor(ctx context.Context) (string, error) {
	out, err := h.Runner.Run(ctx, "hyprctl", "activeworkspace", "-j")
	if err == nil {
		var ws hyprlandWorkspace
		if json.Unmarshal(out, &ws) == nil && ws.Monitor != "" {
			return ws.Monitor, nil
		}
	}

	monitors, err := h.Monitors(ctx)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrNoActiveMonitor, err)
	}
	for _, m := range monitors {
		if m.Focused {
			return m.Name, nil
		}
	}
	return "", ErrNoActiveMonitor
}

// Monitors returns every monitor hyprctl knows about.
func (h *Hyprland) Monitors(ctx context.Context) ([]Monitor, error) {
	out, err := h.Runner.Run(ctx, "hyprctl", "monitors", "-j")
	if err != nil {
		return nil, fmt.Errorf("hyprctl monitors: %w", err)
	}
	var monitors []Monitor
	if err := json.Unmarshal(out, &monitors); err != nil {
		return nil, fmt.Errorf("parse monitors: %w", err)
	}
	return monitors, nil
}
