// Package sink delivers a finished screenshot: to the clipboard, to a file
// on disk, and optionally to the desktop's default viewer.
package sink
