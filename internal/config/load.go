package config

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/ironsheep/screen-short/internal/imaging"
)

// fields lists every recognised key per section, in file order.
var fields = []struct {
	section string
	keys    []string
}{
	{"paths", []string{"save_dir", "ask_before_save"}},
	{"appearance", []string{"selection_border_width", "selection_border_color", "tooltip_bg_color", "tooltip_font_color", "initial_selection"}},
	{"behavior", []string{"copy_to_clipboard", "open_after_save"}},
	{"editing", []string{"shape_border_color", "shape_border_width", "shape_rect", "shape_arrow", "shape_circle"}},
}

// Load reads the config file at path. It never fails; problems are logged
// to logger and the affected values keep their defaults.
func Load(path string, logger *log.Logger) Config {
	if logger == nil {
		logger = log.Default()
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := WriteDefault(path); err != nil {
			logger.Printf("Failed to write default config: %v", err)
		} else {
			logger.Printf("Created default config at %s", path)
		}
		return Default()
	}

	cfg := Default()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		logger.Printf("Error: failed to parse config %s, using defaults: %v", path, err)
		return Default()
	}

	for _, f := range fields {
		if !md.IsDefined(f.section) {
			logger.Printf("Warning: config section [%s] missing, using defaults", f.section)
			continue
		}
		for _, k := range f.keys {
			if !md.IsDefined(f.section, k) {
				logger.Printf("Warning: config field %s.%s missing, using default", f.section, k)
			}
		}
	}
	for _, key := range md.Undecoded() {
		logger.Printf("Error: unknown config key %q ignored", key.String())
	}

	cfg.validate(logger)
	return cfg
}

// WriteDefault writes the default configuration to path, creating parent
// directories as needed.
func WriteDefault(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(Default()); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	return nil
}

// validate replaces unusable values with their defaults.
func (c *Config) validate(logger *log.Logger) {
	def := Default()

	checkColor := func(name string, v *string, fallback string) {
		if _, err := imaging.ParseHexColor(*v); err != nil {
			logger.Printf("Warning: invalid color %s = %q, using %s", name, *v, fallback)
			*v = fallback
		}
	}
	checkWidth := func(name string, v *int, fallback int) {
		if *v <= 0 {
			logger.Printf("Warning: invalid width %s = %d, using %d", name, *v, fallback)
			*v = fallback
		}
	}

	checkColor("appearance.selection_border_color", &c.Appearance.SelectionBorderColor, def.Appearance.SelectionBorderColor)
	checkColor("appearance.tooltip_bg_color", &c.Appearance.TooltipBgColor, def.Appearance.TooltipBgColor)
	checkColor("appearance.tooltip_font_color", &c.Appearance.TooltipFontColor, def.Appearance.TooltipFontColor)
	checkColor("editing.shape_border_color", &c.Editing.ShapeBorderColor, def.Editing.ShapeBorderColor)
	checkWidth("appearance.selection_border_width", &c.Appearance.SelectionBorderWidth, def.Appearance.SelectionBorderWidth)
	checkWidth("editing.shape_border_width", &c.Editing.ShapeBorderWidth, def.Editing.ShapeBorderWidth)

	switch c.Appearance.InitialSelection {
	case InitialFullscreen, InitialNone:
	default:
		logger.Printf("Warning: invalid appearance.initial_selection %q, using %s",
			c.Appearance.InitialSelection, def.Appearance.InitialSelection)
		c.Appearance.InitialSelection = def.Appearance.InitialSelection
	}

	if c.Paths.SaveDir == "" {
		logger.Printf("Warning: empty paths.save_dir, using %s", def.Paths.SaveDir)
		c.Paths.SaveDir = def.Paths.SaveDir
	}
}
