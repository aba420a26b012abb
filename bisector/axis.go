package bisector

import (
	"github.com/osuushi/sdglinf/geom"
)

// frame maps a point and an axis-aligned segment onto the canonical layout,
// where the segment is horizontal and the point lies strictly above its
// supporting line. Both maps are reflections, so they are their own inverse
// up to the order they are applied in.
type frame struct {
	transpose bool
	flip      bool
}

// frameFor reports collinear when the point is on the segment's supporting
// line, in which case no flip is decided.
func frameFor(pnt geom.Point, seg SegmentSite) (f frame, collinear bool) {
	f.transpose = seg.IsVertical()
	p := f.toCanon(pnt)
	s := f.toCanon(seg.Source)
	switch geom.CompareY(p, s) {
	case geom.Equal:
		collinear = true
	case geom.Smaller:
		f.flip = true
	}
	return f, collinear
}

func (f frame) toCanon(p geom.Point) geom.Point {
	if f.transpose {
		p = geom.Point{X: p.Y, Y: p.X}
	}
	if f.flip {
		p.Y = p.Y.Neg()
	}
	return p
}

func (f frame) fromCanon(p geom.Point) geom.Point {
	if f.flip {
		p.Y = p.Y.Neg()
	}
	if f.transpose {
		p = geom.Point{X: p.Y, Y: p.X}
	}
	return p
}

func (f frame) dirFromCanon(d geom.Direction) geom.Direction {
	if f.flip {
		d = d.FlipY()
	}
	if f.transpose {
		d = d.Transpose()
	}
	return d
}

// mirrored is true when the frame reverses orientation.
func (f frame) mirrored() bool {
	return f.transpose != f.flip
}

// canonical returns the segment's endpoints in the canonical frame, ordered
// by x.
func (f frame) canonical(seg SegmentSite) (lo, hi geom.Point) {
	lo, hi = f.toCanon(seg.Source), f.toCanon(seg.Target)
	if lo.X.Cmp(hi.X) > 0 {
		lo, hi = hi, lo
	}
	return lo, hi
}

// axisTemplate is the bisector of a point and an axis-aligned segment it is
// not on. In the canonical frame it drops diagonally towards the segment,
// runs parallel to it halfway between, and climbs diagonally away.
func axisTemplate(pnt PointSite, seg SegmentSite, pointFirst bool) template {
	f, collinear := frameFor(pnt.P, seg)
	if collinear {
		fatalf("point %v lies on the supporting line of %v", pnt, seg)
	}
	p := f.toCanon(pnt.P)
	gap := p.Y.Sub(f.toCanon(seg.Source).Y).Half()
	right := geom.Point{X: p.X.Add(gap), Y: p.Y.Sub(gap)}
	left := geom.Point{X: p.X.Sub(gap), Y: p.Y.Sub(gap)}

	t := template{
		regime: RegimeAxisSegment,
		points: []geom.Point{f.fromCanon(right), f.fromCanon(left)},
		in:     f.dirFromCanon(geom.Dir(1, 1)),
		out:    f.dirFromCanon(geom.Dir(-1, 1)),
	}
	if f.mirrored() == pointFirst {
		t = t.reversed()
	}
	return t
}

// axisEndpointRay is the ray starting at the vertex v of a point, an
// axis-aligned segment and one of that segment's own endpoints. The ray
// leaves v towards the point's side; which way it heads, and whether it keeps
// a parallel piece first, depends on where the point is relative to the
// segment's x extent in the canonical frame.
func axisEndpointRay(pnt PointSite, seg SegmentSite, pointFirst bool, v geom.Point) Ray {
	f, collinear := frameFor(pnt.P, seg)
	lo, hi := f.canonical(seg)
	p := f.toCanon(pnt.P)

	if collinear {
		if p.X.Cmp(lo.X) >= 0 && p.X.Cmp(hi.X) <= 0 {
			fatalf("point %v lies on segment %v", pnt, seg)
		}
		d := geom.DirectionOf(pnt.P.Sub(seg.Source).RotateCCW())
		if !pointFirst {
			d = d.Neg()
		}
		return Ray{points: []geom.Point{v}, Out: d}
	}

	gap := p.Y.Sub(lo.Y)
	if p.X.Cmp(lo.X) < 0 && lo.X.Sub(p.X).Cmp(gap) >= 0 {
		return Ray{points: []geom.Point{v}, Out: f.dirFromCanon(geom.Dir(1, 1))}
	}
	if p.X.Cmp(hi.X) > 0 && p.X.Sub(hi.X).Cmp(gap) >= 0 {
		return Ray{points: []geom.Point{v}, Out: f.dirFromCanon(geom.Dir(-1, 1))}
	}

	half := gap.Half()
	var end geom.Point
	var out geom.Direction
	heading := 1
	if p.X.Cmp(lo.X) <= 0 {
		end = geom.Point{X: p.X.Add(half), Y: p.Y.Sub(half)}
		out = geom.Dir(1, 1)
	} else {
		end = geom.Point{X: p.X.Sub(half), Y: p.Y.Sub(half)}
		out = geom.Dir(-1, 1)
		heading = -1
	}
	points := []geom.Point{v}
	if end.X.Sub(f.toCanon(v).X).Sign() == heading {
		points = append(points, f.fromCanon(end))
	}
	return Ray{points: points, Out: f.dirFromCanon(out)}
}
