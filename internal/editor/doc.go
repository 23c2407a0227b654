// Package editor implements the interactive selection and annotation state
// machine of the screenshot overlay.
//
// An EditState is created once per capture session and owned by a single
// goroutine: the one delivering input events. Every input is a plain value
// (PointerEvent, KeyEvent) or a command (ActivateTool, Confirm, Cancel), and
// every call returns a Result telling the caller whether to repaint and
// whether the session has ended. Nothing in this package blocks, draws or
// performs I/O; rendering reads an immutable Snapshot.
//
// # States
//
//	Idle --press--> Selecting --release(valid)--> Selected
//	Selected --press on corner--> ResizingTopLeft / ResizingBottomRight
//	Selected --press inside--> Moving
//	Selected --press inside, tool active--> Drawing
//	Selected --press elsewhere--> Selecting
//
// Releasing a Selecting drag with zero area discards the selection and
// returns to Idle. Every other release returns to Selected. Drawing tools are
// single-shot: committing a shape deactivates the tool.
//
// Starting a new selection keeps the shapes already committed.
package editor
