package bisector

import (
	"github.com/osuushi/sdglinf/geom"
)

// slopedTemplate is the bisector of a point and a segment that is neither
// horizontal nor vertical. It wraps around the point: two parallel rays in
// the direction d, joined through a break point on the perpendicular from
// the point to the segment's line.
func slopedTemplate(pnt PointSite, seg SegmentSite, pointFirst bool) template {
	lseg := seg.SupportingLine()
	side := lseg.Side(pnt.P)
	if side == 0 {
		fatalf("point %v lies on the supporting line of %v", pnt, seg)
	}
	cmpx := geom.CompareX(seg.Source, seg.Target)
	positive := cmpx == geom.CompareY(seg.Source, seg.Target)

	phor := geom.Point{X: lseg.XAtY(pnt.P.Y), Y: pnt.P.Y}
	pver := geom.Point{X: pnt.P.X, Y: lseg.YAtX(pnt.P.X)}
	pfirst, plast := pver, phor
	if positive {
		pfirst, plast = phor, pver
	}
	hf := hourglassHalf(pnt.P, pfirst)
	hl := hourglassHalf(pnt.P, plast)
	mf := geom.Midpoint(pnt.P, pfirst)
	ml := geom.Midpoint(pnt.P, plast)

	above := (cmpx == geom.Smaller && side > 0) || (cmpx == geom.Larger && side < 0)
	var first, last geom.Point
	switch {
	case positive && above:
		first = geom.Point{X: mf.X, Y: mf.Y.Add(hf)}
		last = geom.Point{X: ml.X.Sub(hl), Y: ml.Y}
	case positive:
		first = geom.Point{X: mf.X, Y: mf.Y.Sub(hf)}
		last = geom.Point{X: ml.X.Add(hl), Y: ml.Y}
	case above:
		first = geom.Point{X: mf.X.Add(hf), Y: mf.Y}
		last = geom.Point{X: ml.X, Y: ml.Y.Add(hl)}
	default:
		first = geom.Point{X: mf.X.Sub(hf), Y: mf.Y}
		last = geom.Point{X: ml.X, Y: ml.Y.Sub(hl)}
	}

	rot := first.Sub(pnt.P).RotateCCW()
	foot, ok := lseg.Intersect(geom.LineAlong(pnt.P, rot))
	if !ok {
		brokenf("no perpendicular from %v onto %v", pnt, lseg)
	}
	pivot := pnt.P
	t := template{
		regime: RegimeSlopedSegment,
		points: []geom.Point{first, geom.Midpoint(foot, pnt.P), last},
		in:     geom.DirectionOf(rot),
		out:    geom.DirectionOf(rot),
		pivot:  &pivot,
	}
	if !pointFirst {
		t = t.reversed()
	}
	return t
}

// hourglassHalf is half the length of the axis-parallel middle piece of the
// bisector of a and b.
func hourglassHalf(a, b geom.Point) geom.Num {
	d := a.Sub(b)
	return d.X.Abs().Sub(d.Y.Abs()).Abs().Half()
}

// sectorLocator serves the wrap-around template. The template's rays are
// parallel, so no single axis orders it; instead the plane around the pivot
// is cut by the rays from the pivot through each break point, and a point is
// ranked by the sector it falls in:
//
//	0: before b0, 1: on b0's ray, 2: between b0 and b1, 3: on b1's ray,
//	4: between b1 and b2, 5: on b2's ray, 6: past b2
//
// Break point i has rank 2i+1.
type sectorLocator struct {
	pivot   geom.Point
	points  []geom.Point
	in, out geom.Direction
	a       geom.Point
	turn    int
}

func newSectorLocator(pivot geom.Point, points []geom.Point, in, out geom.Direction) sectorLocator {
	if len(points) != 3 {
		brokenf("wrap-around template %v needs three break points", points)
	}
	a := points[0].Sub(pivot)
	turn := a.Cross(points[1].Sub(pivot)).Sign()
	if turn == 0 {
		brokenf("wrap-around template %v does not turn around %v", points, pivot)
	}
	return sectorLocator{pivot, points, in, out, a, turn}
}

func (l sectorLocator) rank(v geom.Point) int {
	w := v.Sub(l.pivot)
	if w.IsZero() {
		fatalf("anchor %v coincides with the point site", v)
	}
	t := l.a.Cross(w).Sign() * l.turn
	switch e := l.a.Dot(w).Sign(); {
	case e > 0:
		return 1 + t
	case e < 0:
		return 5 - t
	case t > 0:
		return 3
	}
	fatalf("anchor %v lies in the unbounded direction of the bisector around %v", v, l.pivot)
	return 0
}

func (l sectorLocator) behind(v geom.Point, inclusive bool) int {
	r := l.rank(v)
	n := 0
	for i := range l.points {
		if b := 2*i + 1; b < r || (inclusive && b == r) {
			n++
		}
	}
	return n
}

func (l sectorLocator) order(v, w geom.Point) int {
	rv, rw := l.rank(v), l.rank(w)
	switch {
	case rv < rw:
		return 1
	case rv > rw:
		return -1
	case rv%2 == 1:
		return 0
	}
	var travel geom.Point
	switch rv / 2 {
	case 0:
		travel = l.in.Neg().Vector()
	case 3:
		travel = l.out.Vector()
	default:
		k := rv / 2
		travel = l.points[k].Sub(l.points[k-1])
	}
	return w.Sub(v).Dot(travel).Sign()
}
