// Package geometry provides the rectangle and point helpers used by the
// selection editor.
//
// # Coordinate System
//
// All coordinates are integer window-local pixels with (0,0) at the top-left
// corner, X increasing rightward and Y increasing downward.
//
// A Rect is described by two corners (X1,Y1) and (X2,Y2). The corners may be
// given in any order; Normalize swaps them so that X1 <= X2 and Y1 <= Y2.
// Width and height of a normalized rect are X2-X1 and Y2-Y1, so a rect whose
// two corners coincide has zero area and is not valid.
//
// Containment and clamping are inclusive on both edges: a point lying exactly
// on X2 or Y2 is inside. This keeps Clamp and Contains consistent: every point
// returned by Clamp is contained in the bounds it was clamped to.
//
// # Totality
//
// Every function in this package is total. No input produces a panic or an
// error; degenerate rects simply report themselves as invalid.
package geometry
