package shape

import "math"

const (
	// ArrowHeadLength is the length of each arrowhead segment in pixels.
	ArrowHeadLength = 15.0
	// ArrowHeadAngle is the angle between each arrowhead segment and the shaft.
	ArrowHeadAngle = math.Pi / 6
)

// Vec is a point in floating-point pixel coordinates.
type Vec struct {
	X float64
	Y float64
}

// Segment is a straight line between two points.
type Segment struct {
	From Vec
	To   Vec
}

// Length returns the Euclidean length of the segment.
func (s Segment) Length() float64 {
	return math.Hypot(s.To.X-s.From.X, s.To.Y-s.From.Y)
}

// ArrowHead returns the two arrowhead tip points for an arrow from start to
// end. The angle is measured from end back towards start, so both points sit
// behind the end point on either side of the shaft.
//
// A degenerate arrow (start == end) has angle 0 and still gets a head.
func (s Shape) ArrowHead() (Vec, Vec) {
	end := vec(s.End.X, s.End.Y)
	angle := math.Atan2(float64(s.Start.Y-s.End.Y), float64(s.Start.X-s.End.X))
	p1 := Vec{
		X: end.X + ArrowHeadLength*math.Cos(angle+ArrowHeadAngle),
		Y: end.Y + ArrowHeadLength*math.Sin(angle+ArrowHeadAngle),
	}
	p2 := Vec{
		X: end.X + ArrowHeadLength*math.Cos(angle-ArrowHeadAngle),
		Y: end.Y + ArrowHeadLength*math.Sin(angle-ArrowHeadAngle),
	}
	return p1, p2
}

// Segments returns the line segments that make up an arrow: the shaft
// followed by the two head segments. Other kinds return nil.
func (s Shape) Segments() []Segment {
	if s.Kind != Arrow {
		return nil
	}
	start := vec(s.Start.X, s.Start.Y)
	end := vec(s.End.X, s.End.Y)
	p1, p2 := s.ArrowHead()
	return []Segment{
		{From: start, To: end},
		{From: end, To: p1},
		{From: end, To: p2},
	}
}

func vec(x, y int) Vec {
	return Vec{X: float64(x), Y: float64(y)}
}
