// Package session runs one capture-annotate-save cycle.
//
// A session has four phases:
//
//  1. Acquire: locate the active monitor and capture it. Failure here is
//     fatal and happens before any window is shown.
//  2. Edit: build an Overlay over the captured image and hand it to a
//     Frontend, which feeds it input until the user confirms or cancels.
//  3. Produce: on confirm, render the cropped and annotated PNG.
//  4. Dispatch: copy it to the clipboard, save it to disk and optionally open
//     it. Failures in this phase are collected into the Report and logged;
//     they never abort the remaining sinks.
//
// A cancelled session performs no I/O after the capture.
package session
