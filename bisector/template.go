package bisector

import (
	"github.com/osuushi/sdglinf/geom"
)

// Regime names the geometric case a construction was dispatched to.
type Regime string

const (
	RegimePoints         Regime = "point-point"
	RegimeHourglass      Regime = "point-point-hourglass"
	RegimeEndpoint       Regime = "point-endpoint"
	RegimeAxisSegment    Regime = "point-axis-segment"
	RegimeSlopedSegment  Regime = "point-sloped-segment"
	RegimeSegments       Regime = "segment-segment"
	RegimeCollapsed      Regime = "collapsed"
	RegimeEndpointRegion Regime = "point-axis-segment-endpoint-region"
)

// A template is the complete bisector of two sites, oriented so that the
// first site is on the right. Lines are templates as they are; rays and
// segments are cut out of one at their anchors.
type template struct {
	regime  Regime
	points  []geom.Point
	in, out geom.Direction
	// pivot is set when the chain winds around a point site instead of
	// advancing along a fixed axis (the general-slope segment case).
	pivot *geom.Point
}

// newTemplate dispatches on the site variants. Two segments have no template.
func newTemplate(p, q Site) template {
	switch p := p.(type) {
	case PointSite:
		switch q := q.(type) {
		case PointSite:
			return pointPointTemplate(p, q)
		case SegmentSite:
			return pointSegmentTemplate(p, q, true)
		}
	case SegmentSite:
		switch q := q.(type) {
		case PointSite:
			return pointSegmentTemplate(q, p, false)
		case SegmentSite:
			fatalf("no line bisector between segments %v and %v", p, q)
		}
	}
	fatalf("unsupported sites %v and %v", p, q)
	return template{}
}

func pointSegmentTemplate(pnt PointSite, seg SegmentSite, pointFirst bool) template {
	switch {
	case seg.HasEndpoint(pnt.P):
		return endpointTemplate(pnt, seg, pointFirst)
	case seg.IsAxisAligned():
		return axisTemplate(pnt, seg, pointFirst)
	default:
		return slopedTemplate(pnt, seg, pointFirst)
	}
}

// reversed walks the same locus the other way, which swaps the sides the two
// sites are on.
func (t template) reversed() template {
	points := make([]geom.Point, len(t.points))
	for i, p := range t.points {
		points[len(points)-1-i] = p
	}
	t.points = points
	t.in, t.out = t.out, t.in
	return t
}

func (t template) line() Line {
	return Line{points: copyPoints(t.points), In: t.in, Out: t.out}
}

// rayFrom keeps the part of the template ahead of v.
func (t template) rayFrom(v geom.Point) Ray {
	from := t.locator().behind(v, true)
	points := append([]geom.Point{v}, t.points[from:]...)
	return Ray{points: points, Out: t.out}
}

// segmentBetween keeps the part of the template between v1 and v2. v1 must
// come strictly before v2; anything else means the anchors are not the ends
// of one bisector piece.
func (t template) segmentBetween(v1, v2 geom.Point) Segment {
	loc := t.locator()
	if loc.order(v1, v2) <= 0 {
		brokenf("anchor %v does not precede anchor %v along %v", v1, v2, t.line())
	}
	from := loc.behind(v1, true)
	to := loc.behind(v2, false)
	if from > to {
		brokenf("anchors %v and %v overlap along %v", v1, v2, t.line())
	}
	points := append([]geom.Point{v1}, t.points[from:to]...)
	points = append(points, v2)
	return Segment{points: points}
}

func (t template) locator() locator {
	if t.pivot != nil {
		return newSectorLocator(*t.pivot, t.points, t.in, t.out)
	}
	return newAxisLocator(t.points, t.in, t.out)
}

// locator places anchor vertices relative to a template's break points.
type locator interface {
	// behind counts the break points lying behind v, plus the one at v when
	// inclusive is set. They always form a prefix of the template.
	behind(v geom.Point, inclusive bool) int
	// order is +1 when w lies ahead of v along the template, -1 when it lies
	// behind, and 0 when neither.
	order(v, w geom.Point) int
}

// axisLocator serves templates that advance strictly along one axis u: every
// piece and both rays have a positive component along u, so a perpendicular
// half-plane test through a break point tells which side of it v is on.
type axisLocator struct {
	points []geom.Point
	u      geom.Point
}

func newAxisLocator(points []geom.Point, in, out geom.Direction) axisLocator {
	var u geom.Point
	if len(points) > 1 {
		u = points[len(points)-1].Sub(points[0])
	} else {
		u = out.Vector().Sub(in.Vector())
	}
	if u.IsZero() {
		brokenf("template %v has no axis", points)
	}
	return axisLocator{points, u}
}

func (l axisLocator) behind(v geom.Point, inclusive bool) int {
	n := 0
	for _, b := range l.points {
		s := b.Sub(v).Dot(l.u).Sign()
		if s < 0 || (inclusive && s == 0) {
			n++
		}
	}
	return n
}

func (l axisLocator) order(v, w geom.Point) int {
	return w.Sub(v).Dot(l.u).Sign()
}
