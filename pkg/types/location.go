package types

import "fmt"

// Point is a zero-based column/row position in a grid.
type Point struct {
	X int
	Y int
}

// Span is an inclusive box [StartX, EndX] x [StartY, EndY] of grid positions.
// Cells produced by the row scanner always have StartY == EndY.
type Span struct {
	StartX int
	EndX   int
	StartY int
	EndY   int
}

// PointSpan returns the 1x1 span covering p.
func PointSpan(p Point) Span {
	return Span{StartX: p.X, EndX: p.X, StartY: p.Y, EndY: p.Y}
}

// Width is the number of columns covered.
func (s Span) Width() int {
	return s.EndX - s.StartX + 1
}

// Height is the number of rows covered.
func (s Span) Height() int {
	return s.EndY - s.StartY + 1
}

// Valid reports whether the span is well formed.
func (s Span) Valid() bool {
	return s.StartX <= s.EndX && s.StartY <= s.EndY
}

// Overlaps reports whether the two spans share at least one position.
func (s Span) Overlaps(other Span) bool {
	return s.StartX <= other.EndX && other.StartX <= s.EndX &&
		s.StartY <= other.EndY && other.StartY <= s.EndY
}

// Grow returns the span extended by n positions on every side.
// The result may have negative coordinates.
func (s Span) Grow(n int) Span {
	return Span{
		StartX: s.StartX - n,
		EndX:   s.EndX + n,
		StartY: s.StartY - n,
		EndY:   s.EndY + n,
	}
}

// Adjacent reports whether the spans touch horizontally, vertically, or
// diagonally without overlapping. For integer boxes this is the same as some
// position of s being one of the eight neighbours of some position of other,
// and it is symmetric.
func (s Span) Adjacent(other Span) bool {
	if s.Overlaps(other) {
		return false
	}
	return s.Grow(1).Overlaps(other)
}

// Points returns every position covered by the span in row-major order.
func (s Span) Points() []Point {
	if !s.Valid() {
		return nil
	}
	points := make([]Point, 0, s.Width()*s.Height())
	for y := s.StartY; y <= s.EndY; y++ {
		for x := s.StartX; x <= s.EndX; x++ {
			points = append(points, Point{X: x, Y: y})
		}
	}
	return points
}

// Source converts the span to 1-based line:column positions.
func (s Span) Source() SourceSpan {
	return SourceSpan{
		Start: SourcePoint{Line: s.StartY + 1, Column: s.StartX + 1},
		End:   SourcePoint{Line: s.EndY + 1, Column: s.EndX + 1},
	}
}

func (s Span) String() string {
	return fmt.Sprintf("[%d..%d]x[%d..%d]", s.StartX, s.EndX, s.StartY, s.EndY)
}

// SourcePoint is line:column position (1-based).
type SourcePoint struct {
	Line   int
	Column int
}

// SourceSpan is start-end line:column range.
type SourceSpan struct {
	Start SourcePoint
	End   SourcePoint
}
