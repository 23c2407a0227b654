// Package window shows an overlay in a native window using
// golang.org/x/exp/shiny.
//
// Frontend.Run must be called from the main goroutine: shiny's drivers
// require it on several platforms.
package window
