// Package sdgio reads bisector queries: sites written on a command line, YAML
// query documents and SVG drawings of sites. Coordinates stay exact from the
// text onwards, so "0.1" is one tenth, not the nearest float.
package sdgio

import (
	"strings"

	"github.com/osuushi/sdglinf/bisector"
	"github.com/osuushi/sdglinf/geom"
	"github.com/pkg/errors"
)

// ParsePoint reads "x,y". Each coordinate is an integer, a decimal or a
// fraction such as "3/4".
func ParsePoint(s string) (geom.Point, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return geom.Point{}, errors.Errorf("point %q is not of the form x,y", s)
	}
	x, err := geom.ParseNum(strings.TrimSpace(parts[0]))
	if err != nil {
		return geom.Point{}, errors.Wrapf(err, "point %q", s)
	}
	y, err := geom.ParseNum(strings.TrimSpace(parts[1]))
	if err != nil {
		return geom.Point{}, errors.Wrapf(err, "point %q", s)
	}
	return geom.Point{X: x, Y: y}, nil
}

// ParseSite reads a point site "x,y" or a segment site "x,y:x,y".
func ParseSite(s string) (bisector.Site, error) {
	ends := strings.Split(s, ":")
	switch len(ends) {
	case 1:
		p, err := ParsePoint(ends[0])
		if err != nil {
			return nil, err
		}
		return bisector.PointSite{P: p}, nil
	case 2:
		source, err := ParsePoint(ends[0])
		if err != nil {
			return nil, errors.Wrapf(err, "segment %q", s)
		}
		target, err := ParsePoint(ends[1])
		if err != nil {
			return nil, errors.Wrapf(err, "segment %q", s)
		}
		if source.Equal(target) {
			return nil, errors.Errorf("segment %q has identical endpoints", s)
		}
		return bisector.SegmentSite{Source: source, Target: target}, nil
	}
	return nil, errors.Errorf("site %q is neither x,y nor x,y:x,y", s)
}

// FormatSite is the inverse of ParseSite.
func FormatSite(site bisector.Site) string {
	switch s := site.(type) {
	case bisector.PointSite:
		return formatPoint(s.P)
	case bisector.SegmentSite:
		return formatPoint(s.Source) + ":" + formatPoint(s.Target)
	}
	return ""
}

func formatPoint(p geom.Point) string {
	return p.X.String() + "," + p.Y.String()
}
