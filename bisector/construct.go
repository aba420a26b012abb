package bisector

import (
	"context"

	"github.com/osuushi/sdglinf/geom"
)

// Constructor builds bisectors, asking Vertices for the anchors of rays and
// segments. The zero value builds lines only. A Constructor is safe for
// concurrent use whenever its VertexConstructor is.
type Constructor struct {
	Vertices VertexConstructor
}

// LineOf is the bisector of p and q, traversed with p on the right.
func LineOf(p, q Site) Line {
	return Constructor{}.Line(context.Background(), p, q)
}

// RayOf is the part of the bisector of p and q that starts at the vertex of
// p, q, r and leaves it towards the part of the diagram r does not claim.
func RayOf(vc VertexConstructor, p, q, r Site) Ray {
	return Constructor{vc}.Ray(context.Background(), p, q, r)
}

// SegmentOf is the part of the bisector of p and q between the vertices of
// p, q, r and of q, p, s.
func SegmentOf(vc VertexConstructor, p, q, r, s Site) Segment {
	return Constructor{vc}.Segment(context.Background(), p, q, r, s)
}

func (c Constructor) Line(ctx context.Context, p, q Site) Line {
	defer guardGeom()
	requireWellFormed(p, q)
	requireDistinct(p, q)
	t := newTemplate(p, q)
	result := t.line()
	emit(ctx, TraceEvent{Op: OpLine, Regime: t.regime, Sites: []Site{p, q}, Result: result})
	return result
}

func (c Constructor) Ray(ctx context.Context, p, q, r Site) Ray {
	defer guardGeom()
	requireWellFormed(p, q, r)
	requireDistinct(p, q)
	v := c.vertex(p, q, r)

	var result Ray
	var regime Regime
	if pnt, seg, pointFirst, ok := endpointRegion(p, q, r); ok {
		result = axisEndpointRay(pnt, seg, pointFirst, v)
		regime = RegimeEndpointRegion
	} else {
		t := newTemplate(p, q)
		result = t.rayFrom(v)
		regime = t.regime
	}
	emit(ctx, TraceEvent{Op: OpRay, Regime: regime, Sites: []Site{p, q, r}, Anchors: []geom.Point{v}, Result: result})
	return result
}

func (c Constructor) Segment(ctx context.Context, p, q, r, s Site) Segment {
	defer guardGeom()
	requireWellFormed(p, q, r, s)
	v1 := c.vertex(p, q, r)
	v2 := c.vertex(q, p, s)

	var result Segment
	var regime Regime
	switch {
	case v1.Equal(v2):
		result = Segment{points: []geom.Point{v1, v2}}
		regime = RegimeCollapsed
	case p.IsSegment() && q.IsSegment():
		requireDistinct(p, q)
		result = Segment{points: []geom.Point{v1, v2}}
		regime = RegimeSegments
	default:
		requireDistinct(p, q)
		t := newTemplate(p, q)
		result = t.segmentBetween(v1, v2)
		regime = t.regime
	}
	emit(ctx, TraceEvent{Op: OpSegment, Regime: regime, Sites: []Site{p, q, r, s}, Anchors: []geom.Point{v1, v2}, Result: result})
	return result
}

func (c Constructor) vertex(a, b, d Site) geom.Point {
	if c.Vertices == nil {
		fatalf("no vertex constructor for %v, %v, %v", a, b, d)
	}
	return c.Vertices.Vertex(a, b, d)
}

// SegmentSite literals bypass NewSegment, so zero-length segments are caught
// here as well.
func requireWellFormed(sites ...Site) {
	for _, site := range sites {
		switch site := site.(type) {
		case nil:
			fatalf("nil site")
		case SegmentSite:
			if site.Source.Equal(site.Target) {
				fatalf("degenerate segment at %v", site.Source)
			}
		}
	}
}

func requireDistinct(p, q Site) {
	if Equal(p, q) {
		fatalf("identical sites %v", p)
	}
}

// endpointRegion reports whether p, q is a point and an axis-aligned segment
// with r one of that segment's endpoints, the point not being one itself.
func endpointRegion(p, q, r Site) (pnt PointSite, seg SegmentSite, pointFirst, ok bool) {
	rp, isPoint := r.(PointSite)
	if !isPoint || p.IsPoint() == q.IsPoint() {
		return
	}
	pnt, seg, pointFirst = splitPointSegment(p, q)
	ok = seg.IsAxisAligned() && seg.HasEndpoint(rp.P) && !seg.HasEndpoint(pnt.P)
	return
}
