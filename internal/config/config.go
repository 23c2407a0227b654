package config

import (
	"image/color"
	"os"
	"path/filepath"
	"strings"

	"github.com/ironsheep/screen-short/internal/imaging"
	"github.com/ironsheep/screen-short/internal/render"
	"github.com/ironsheep/screen-short/internal/shape"
)

// Initial selection modes.
const (
	InitialFullscreen = "fullscreen"
	InitialNone       = "none"
)

// Config is the typed form of config.toml.
type Config struct {
	Paths      Paths      `toml:"paths"`
	Appearance Appearance `toml:"appearance"`
	Behavior   Behavior   `toml:"behavior"`
	Editing    Editing    `toml:"editing"`
}

// Paths controls where screenshots are written.
type Paths struct {
	SaveDir       string `toml:"save_dir"`
	AskBeforeSave bool   `toml:"ask_before_save"`
}

// Appearance controls the overlay's look.
type Appearance struct {
	SelectionBorderWidth int    `toml:"selection_border_width"`
	SelectionBorderColor string `toml:"selection_border_color"`
	TooltipBgColor       string `toml:"tooltip_bg_color"`
	TooltipFontColor     string `toml:"tooltip_font_color"`
	InitialSelection     string `toml:"initial_selection"`
}

// Behavior controls what happens after confirm.
type Behavior struct {
	CopyToClipboard bool `toml:"copy_to_clipboard"`
	OpenAfterSave   bool `toml:"open_after_save"`
}

// Editing controls the annotation tools.
type Editing struct {
	ShapeBorderColor string `toml:"shape_border_color"`
	ShapeBorderWidth int    `toml:"shape_border_width"`
	ShapeRect        bool   `toml:"shape_rect"`
	ShapeArrow       bool   `toml:"shape_arrow"`
	ShapeCircle      bool   `toml:"shape_circle"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Paths: Paths{
			SaveDir: "~/Pictures/Screenshots",
		},
		Appearance: Appearance{
			SelectionBorderWidth: 2,
			SelectionBorderColor: "#1E90FF",
			TooltipBgColor:       "#282828",
			TooltipFontColor:     "#EBDBB2",
			InitialSelection:     InitialNone,
		},
		Behavior: Behavior{
			CopyToClipboard: true,
		},
		Editing: Editing{
			ShapeBorderColor: "#1E90FF",
			ShapeBorderWidth: 2,
			ShapeRect:        true,
			ShapeArrow:       true,
			ShapeCircle:      true,
		},
	}
}

// DefaultPath returns the default config file location.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = filepath.Join(homeDir(), ".config")
	}
	return filepath.Join(dir, "screen-short", "config.toml")
}

// SaveDir returns the save directory with a leading ~ expanded. Relative
// paths are resolved against the home directory.
func (c Config) SaveDir() string {
	return ExpandPath(c.Paths.SaveDir)
}

// ExpandPath expands a leading ~ and anchors relative paths at the home
// directory.
func ExpandPath(p string) string {
	home := homeDir()
	switch {
	case p == "~":
		return home
	case strings.HasPrefix(p, "~/"):
		return filepath.Join(home, p[2:])
	case filepath.IsAbs(p):
		return filepath.Clean(p)
	default:
		return filepath.Join(home, p)
	}
}

// Tools returns the enabled annotation tools in toolbar order.
func (c Config) Tools() []shape.Kind {
	var tools []shape.Kind
	for _, k := range shape.Kinds {
		if c.toolEnabled(k) {
			tools = append(tools, k)
		}
	}
	return tools
}

func (c Config) toolEnabled(k shape.Kind) bool {
	switch k {
	case shape.Rectangle:
		return c.Editing.ShapeRect
	case shape.Arrow:
		return c.Editing.ShapeArrow
	case shape.Circle:
		return c.Editing.ShapeCircle
	}
	return false
}

// InitialSelectionFullscreen reports whether the overlay starts with the
// whole screen selected. Only an explicit "fullscreen" seeds a selection.
func (c Config) InitialSelectionFullscreen() bool {
	return c.Appearance.InitialSelection == InitialFullscreen
}

// RenderConfig derives the immutable render settings.
func (c Config) RenderConfig() render.Config {
	def := Default()
	return render.Config{
		SelectionColor:    colorOr(c.Appearance.SelectionBorderColor, def.Appearance.SelectionBorderColor),
		SelectionWidth:    float64(c.Appearance.SelectionBorderWidth),
		ShapeColor:        colorOr(c.Editing.ShapeBorderColor, def.Editing.ShapeBorderColor),
		ShapeWidth:        float64(c.Editing.ShapeBorderWidth),
		ToolbarBackground: colorOr(c.Appearance.TooltipBgColor, def.Appearance.TooltipBgColor),
		ToolbarForeground: colorOr(c.Appearance.TooltipFontColor, def.Appearance.TooltipFontColor),
		Tools:             c.Tools(),
	}
}

func colorOr(s, fallback string) color.Color {
	if c, err := imaging.ParseHexColor(s); err == nil {
		return c
	}
	c, _ := imaging.ParseHexColor(fallback)
	return c
}

func homeDir() string {
	if home, err := os.UserHomeDir(); err == nil {
		return home
	}
	return "."
}
