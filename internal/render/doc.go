// Package render turns editor state into pixels.
//
// A Compositor owns the captured background and an immutable Config. It
// produces two kinds of frames from the same shape-rendering routine:
//
//   - Preview: the live overlay frame. The background is dimmed everywhere,
//     the selection is spotlit with the original pixels and outlined, then the
//     committed shapes, the in-progress shape and the toolbar are drawn on top.
//   - Final: the background cropped to the selection with every committed
//     shape translated into crop-local coordinates and burned in. The dim,
//     spotlight, selection border and toolbar never appear in final output.
//
// Shapes are stroked with github.com/fogleman/gg, so the preview and the
// final image rasterise each shape identically: for any pixel strictly inside
// the selection border, Final(s) equals Preview(s) at the same window position.
package render
