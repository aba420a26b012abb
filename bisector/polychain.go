package bisector

import (
	"fmt"
	"strings"

	"github.com/osuushi/sdglinf/geom"
)

// Polychain is the shape of a bisector: an ordered run of break points plus,
// for the unbounded variants, the directions of the rays at the open ends.
// It is one of Line, Ray or Segment.
type Polychain interface {
	// Points returns a copy of the break points in traversal order.
	Points() []geom.Point
	// Pieces returns the bounded pieces between consecutive break points.
	Pieces() []Piece
	String() string
	isPolychain()
}

// Piece is a bounded straight piece of a polychain.
type Piece struct {
	From, To geom.Point
}

// Direction of travel along the piece.
func (p Piece) Vector() geom.Point {
	return p.To.Sub(p.From)
}

// Line is a bi-infinite polychain. In is the direction of the ray that starts
// at the first break point and runs off to the beginning of the chain; Out is
// the direction of the ray that starts at the last break point and runs off
// to the end. Walking the chain, then, means arriving along -In and leaving
// along Out.
type Line struct {
	points  []geom.Point
	In, Out geom.Direction
}

// Ray starts at its anchor, the first break point, and leaves the last break
// point along Out.
type Ray struct {
	points []geom.Point
	Out    geom.Direction
}

// Segment runs from its first anchor to its second; both are break points.
// A collapsed segment has two equal anchors.
type Segment struct {
	points []geom.Point
}

func (Line) isPolychain()    {}
func (Ray) isPolychain()     {}
func (Segment) isPolychain() {}

func (l Line) Points() []geom.Point    { return copyPoints(l.points) }
func (r Ray) Points() []geom.Point     { return copyPoints(r.points) }
func (s Segment) Points() []geom.Point { return copyPoints(s.points) }

func (l Line) Pieces() []Piece    { return pieces(l.points) }
func (r Ray) Pieces() []Piece     { return pieces(r.points) }
func (s Segment) Pieces() []Piece { return pieces(s.points) }

// Anchor is the vertex the ray starts from.
func (r Ray) Anchor() geom.Point {
	return r.points[0]
}

// Anchors returns the two vertices bounding the segment.
func (s Segment) Anchors() (geom.Point, geom.Point) {
	return s.points[0], s.points[len(s.points)-1]
}

// IsCollapsed reports whether both anchors are the same point.
func (s Segment) IsCollapsed() bool {
	first, last := s.Anchors()
	return first.Equal(last)
}

func (l Line) String() string {
	return fmt.Sprintf("Line{%v <- %s -> %v}", l.In, joinPoints(l.points), l.Out)
}

func (r Ray) String() string {
	return fmt.Sprintf("Ray{%s -> %v}", joinPoints(r.points), r.Out)
}

func (s Segment) String() string {
	return fmt.Sprintf("Segment{%s}", joinPoints(s.points))
}

func copyPoints(points []geom.Point) []geom.Point {
	result := make([]geom.Point, len(points))
	copy(result, points)
	return result
}

func pieces(points []geom.Point) []Piece {
	var result []Piece
	for i := 1; i < len(points); i++ {
		result = append(result, Piece{points[i-1], points[i]})
	}
	return result
}

func joinPoints(points []geom.Point) string {
	parts := make([]string, len(points))
	for i, p := range points {
		parts[i] = p.String()
	}
	return strings.Join(parts, " ")
}
