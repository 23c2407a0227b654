// Package imaging provides the raster operations behind the screenshot
// overlay: decoding captured screen images, cropping a selection, dimming and
// spotlighting for the live preview, parsing configured colours, and PNG
// encoding of the final result.
//
// # Coordinate System
//
// All pixel coordinates in this package are 0-based with (0,0) at the top-left
// corner, X increasing rightward and Y increasing downward. Regions are
// image.Rectangle values: Min is inclusive, Max is exclusive.
//
// # Cropping Outside the Image
//
// A selection can be dragged partly off the captured image. Crop always
// returns an image exactly the size of the requested rectangle; the part that
// falls outside the source is left fully transparent.
//
// # Color Representation
//
// Colors are accepted as hex strings:
//   - "#RGB" and "#RRGGBB" (parsed with go-colorful)
//   - "#RRGGBBAA" with an explicit alpha byte
//
// The leading '#' is optional.
//
// # Error Handling
//
// Functions return errors for:
//   - Undecodable capture data
//   - Empty crop rectangles
//   - Malformed colour strings
//   - Encoding errors during image output
package imaging
