// Package capture grabs the background image for an overlay session.
//
// Two concerns are kept apart: a MonitorLocator decides which output to
// capture, and a Capturer returns the PNG bytes of that output. Wayland
// sessions use Hyprland + Grim (both external programs run through a
// Runner); other platforms use Display, which wraps
// github.com/kbinani/screenshot.
package capture
