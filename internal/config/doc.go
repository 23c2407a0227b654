// Package config loads the user's screen-short settings.
//
// Settings live in a TOML file, by default
// $XDG_CONFIG_HOME/screen-short/config.toml. Loading never fails: a missing
// file is created with the defaults, a corrupt file is reported and ignored,
// and individual missing or invalid values fall back to their defaults with a
// logged warning.
//
// Example file:
//
//	[paths]
//	save_dir = "~/Pictures/Screenshots"
//	ask_before_save = false
//
//	[appearance]
//	selection_border_width = 2
//	selection_border_color = "#1E90FF"
//	tooltip_bg_color = "#282828"
//	tooltip_font_color = "#EBDBB2"
//	initial_selection = "none"
//
//	[behavior]
//	copy_to_clipboard = true
//	open_after_save = false
//
//	[editing]
//	shape_border_color = "#1E90FF"
//	shape_border_width = 2
//	shape_rect = true
//	shape_arrow = true
//	shape_circle = true
package config
