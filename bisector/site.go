package bisector

import (
	"fmt"

	"github.com/osuushi/sdglinf/geom"
)

// Site is a feature of the diagram: either a PointSite or a SegmentSite. The
// interface is sealed, so a type switch over the two variants is exhaustive.
type Site interface {
	IsPoint() bool
	IsSegment() bool
	String() string
	isSite()
}

type PointSite struct {
	P geom.Point
}

// SegmentSite is a closed straight segment with distinct endpoints.
type SegmentSite struct {
	Source, Target geom.Point
}

// NewPoint returns a point site with integer coordinates.
func NewPoint(x, y int64) PointSite {
	return PointSite{geom.Pt(x, y)}
}

// NewSegment returns the segment from source to target. A segment whose
// endpoints coincide is a precondition violation.
func NewSegment(source, target geom.Point) SegmentSite {
	if source.Equal(target) {
		fatalf("degenerate segment at %v", source)
	}
	return SegmentSite{source, target}
}

// Seg is NewSegment with integer coordinates.
func Seg(x1, y1, x2, y2 int64) SegmentSite {
	return NewSegment(geom.Pt(x1, y1), geom.Pt(x2, y2))
}

func (PointSite) IsPoint() bool   { return true }
func (PointSite) IsSegment() bool { return false }
func (PointSite) isSite()         {}

func (s PointSite) String() string {
	return s.P.String()
}

func (SegmentSite) IsPoint() bool   { return false }
func (SegmentSite) IsSegment() bool { return true }
func (SegmentSite) isSite()         {}

func (s SegmentSite) String() string {
	return fmt.Sprintf("[%v, %v]", s.Source, s.Target)
}

func (s SegmentSite) SourceSite() PointSite {
	return PointSite{s.Source}
}

func (s SegmentSite) TargetSite() PointSite {
	return PointSite{s.Target}
}

func (s SegmentSite) IsHorizontal() bool {
	return geom.CompareY(s.Source, s.Target) == geom.Equal
}

func (s SegmentSite) IsVertical() bool {
	return geom.CompareX(s.Source, s.Target) == geom.Equal
}

// IsAxisAligned reports whether the segment is horizontal or vertical.
func (s SegmentSite) IsAxisAligned() bool {
	return s.IsHorizontal() || s.IsVertical()
}

// SupportingLine is directed from source to target.
func (s SegmentSite) SupportingLine() geom.Line {
	return geom.LineThrough(s.Source, s.Target)
}

// HasEndpoint reports whether p is the source or the target.
func (s SegmentSite) HasEndpoint(p geom.Point) bool {
	return s.Source.Equal(p) || s.Target.Equal(p)
}

// Other returns the endpoint that is not p. p must be an endpoint.
func (s SegmentSite) Other(p geom.Point) geom.Point {
	if s.Source.Equal(p) {
		return s.Target
	}
	if !s.Target.Equal(p) {
		fatalf("%v is not an endpoint of %v", p, s)
	}
	return s.Source
}

// Equal is exact identity of the defining coordinates. A point site never
// equals a segment site, and a segment only equals a segment with the same
// source and the same target.
func Equal(a, b Site) bool {
	switch a := a.(type) {
	case PointSite:
		b, ok := b.(PointSite)
		return ok && a.P.Equal(b.P)
	case SegmentSite:
		b, ok := b.(SegmentSite)
		return ok && a.Source.Equal(b.Source) && a.Target.Equal(b.Target)
	}
	return false
}

// Distance is the L∞ distance from p to a point site, or to the supporting
// line of a segment site, which is the quantity every bisector in this
// package equalizes.
func Distance(p geom.Point, s Site) geom.Num {
	switch s := s.(type) {
	case PointSite:
		return geom.LinfDist(p, s.P)
	case SegmentSite:
		return s.SupportingLine().LinfDist(p)
	}
	fatalf("unknown site %v", s)
	return geom.Num{}
}

// splitPointSegment orders a mixed pair as (point, segment). pointFirst is
// true when the point was the first argument.
func splitPointSegment(p, q Site) (pnt PointSite, seg SegmentSite, pointFirst bool) {
	if pp, ok := p.(PointSite); ok {
		return pp, q.(SegmentSite), true
	}
	return q.(PointSite), p.(SegmentSite), false
}
