// Exact L∞ bisectors for segment Delaunay graphs.
//
// This package computes the locus of points at equal Chebyshev distance from
// two sites, where a site is a point or a straight segment. Bisectors come
// back as polychains of exact rational break points: a full Line, a Ray from
// a known diagram vertex, or a Segment between two vertices.
//
// The constructions themselves live in the bisector package and panic on bad
// input. The functions here recover those panics into errors.
package sdglinf

import (
	"github.com/osuushi/sdglinf/bisector"
	"github.com/osuushi/sdglinf/geom"
)

type Site = bisector.Site
type PointSite = bisector.PointSite
type SegmentSite = bisector.SegmentSite
type Point = geom.Point
type Line = bisector.Line
type Ray = bisector.Ray
type Segment = bisector.Segment
type VertexConstructor = bisector.VertexConstructor

// Try runs fn and returns the fatal assertion it raised, if any. Panics that
// are not bisector assertions are passed through.
func Try(fn func()) (err error) {
	defer func() {
		recoveredErr := bisector.HandleBisectorPanicRecover(recover())
		if recoveredErr != nil {
			err = recoveredErr
		}
	}()
	fn()
	return nil
}

// BisectorLine is the bisector of p and q, walked with p on the right.
func BisectorLine(p, q Site) (result Line, err error) {
	err = Try(func() { result = bisector.LineOf(p, q) })
	return
}

// BisectorRay is the bisector of p and q starting at the vertex vc gives for
// p, q, r.
func BisectorRay(vc VertexConstructor, p, q, r Site) (result Ray, err error) {
	err = Try(func() { result = bisector.RayOf(vc, p, q, r) })
	return
}

// BisectorSegment is the bisector of p and q between the vertices vc gives
// for p, q, r and for q, p, s.
func BisectorSegment(vc VertexConstructor, p, q, r, s Site) (result Segment, err error) {
	err = Try(func() { result = bisector.SegmentOf(vc, p, q, r, s) })
	return
}
