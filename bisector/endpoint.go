package bisector

import (
	"github.com/osuushi/sdglinf/geom"
)

// endpointTemplate is the bisector of a segment and one of its own endpoints:
// two rays leaving the endpoint on either side of the segment.
func endpointTemplate(pnt PointSite, seg SegmentSite, pointFirst bool) template {
	other := seg.Other(pnt.P)
	in, out := endpointRays(geom.CompareX(pnt.P, other), geom.CompareY(pnt.P, other))
	t := template{
		regime: RegimeEndpoint,
		points: []geom.Point{pnt.P},
		in:     in,
		out:    out,
	}
	if !pointFirst {
		t = t.reversed()
	}
	return t
}

// endpointRays picks the two rays by where the endpoint sits relative to the
// far end of its segment, with the endpoint on the right of the traversal.
func endpointRays(cmpx, cmpy geom.Comparison) (in, out geom.Direction) {
	switch {
	case cmpy == geom.Equal:
		if cmpx == geom.Smaller {
			return geom.Dir(-1, 1), geom.Dir(-1, -1)
		}
		return geom.Dir(1, -1), geom.Dir(1, 1)
	case cmpx == geom.Equal:
		if cmpy == geom.Smaller {
			return geom.Dir(-1, -1), geom.Dir(1, -1)
		}
		return geom.Dir(1, 1), geom.Dir(-1, 1)
	case cmpx == cmpy:
		if cmpx == geom.Smaller {
			return geom.Dir(-1, 1), geom.Dir(1, -1)
		}
		return geom.Dir(1, -1), geom.Dir(-1, 1)
	case cmpx == geom.Smaller:
		return geom.Dir(1, 1), geom.Dir(-1, -1)
	default:
		return geom.Dir(-1, -1), geom.Dir(1, 1)
	}
}
