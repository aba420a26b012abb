package bisector

import (
	"github.com/osuushi/sdglinf/geom"
)

// pointPointTemplate is the bisector of two distinct points. When they differ
// in only one coordinate, or by the same amount in both, it has one break
// point at the midpoint. Otherwise it is the hourglass shape: two diagonal
// rays joined by an axis-parallel piece through the midpoint.
func pointPointTemplate(p, q PointSite) template {
	if p.P.Equal(q.P) {
		fatalf("identical point sites %v", p)
	}
	cmpx := geom.CompareX(p.P, q.P)
	cmpy := geom.CompareY(p.P, q.P)
	dx := p.P.X.Sub(q.P.X)
	dy := p.P.Y.Sub(q.P.Y)
	cmpabs := geom.CompareAbs(dx, dy)

	// p stays on the right of d, so d is the right turn of q - p.
	d := geom.Dir(-int(cmpy), int(cmpx))
	m := geom.Midpoint(p.P, q.P)

	if cmpx == geom.Equal || cmpy == geom.Equal || cmpabs == geom.Equal {
		return template{
			regime: RegimePoints,
			points: []geom.Point{m},
			in:     d.Neg(),
			out:    d,
		}
	}

	half := dx.Abs().Sub(dy.Abs()).Abs().Half()
	var p1, p2 geom.Point
	if cmpabs == geom.Smaller {
		p1 = geom.Point{X: m.X.Sub(half), Y: m.Y}
		p2 = geom.Point{X: m.X.Add(half), Y: m.Y}
	} else {
		p1 = geom.Point{X: m.X, Y: m.Y.Sub(half)}
		p2 = geom.Point{X: m.X, Y: m.Y.Add(half)}
	}
	swap := cmpy
	if cmpabs != geom.Smaller {
		swap = cmpx.Neg()
	}
	if swap == geom.Larger {
		p1, p2 = p2, p1
	}
	return template{
		regime: RegimeHourglass,
		points: []geom.Point{p1, p2},
		in:     d.Neg(),
		out:    d,
	}
}
