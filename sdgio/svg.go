package sdgio

import (
	"io"
	"os"

	"github.com/JoshVarga/svgparser"
	"github.com/osuushi/sdglinf/bisector"
	"github.com/osuushi/sdglinf/geom"
	"github.com/pkg/errors"
)

// ReadSVG collects the sites drawn in an SVG document: each <circle> is a
// point site at its center and each <line> a segment site, in document order.
// Other elements are ignored, and so are transforms.
func ReadSVG(r io.Reader) ([]bisector.Site, error) {
	root, err := svgparser.Parse(r, false)
	if err != nil {
		return nil, errors.Wrap(err, "parsing svg")
	}

	var sites []bisector.Site
	var walk func(el *svgparser.Element) error
	walk = func(el *svgparser.Element) error {
		switch el.Name {
		case "circle":
			p, err := attrPoint(el, "cx", "cy")
			if err != nil {
				return err
			}
			sites = append(sites, bisector.PointSite{P: p})
		case "line":
			source, err := attrPoint(el, "x1", "y1")
			if err != nil {
				return err
			}
			target, err := attrPoint(el, "x2", "y2")
			if err != nil {
				return err
			}
			if source.Equal(target) {
				return errors.Errorf("<line> at %v has zero length", source)
			}
			sites = append(sites, bisector.SegmentSite{Source: source, Target: target})
		}
		for _, child := range el.Children {
			if err := walk(child); err != nil {
				return err
			}
		}
		return nil
	}
	if err := walk(root); err != nil {
		return nil, err
	}
	return sites, nil
}

// LoadSVG reads the sites of the SVG file at path.
func LoadSVG(path string) ([]bisector.Site, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening %s", path)
	}
	defer f.Close()
	sites, err := ReadSVG(f)
	return sites, errors.Wrapf(err, "reading %s", path)
}

// Missing coordinates default to 0, as in SVG itself.
func attrPoint(el *svgparser.Element, xAttr, yAttr string) (geom.Point, error) {
	var p geom.Point
	for _, c := range []struct {
		attr string
		dst  *geom.Num
	}{{xAttr, &p.X}, {yAttr, &p.Y}} {
		s, ok := el.Attributes[c.attr]
		if !ok {
			continue
		}
		n, err := geom.ParseNum(s)
		if err != nil {
			return geom.Point{}, errors.Wrapf(err, "<%s %s>", el.Name, c.attr)
		}
		*c.dst = n
	}
	return p, nil
}
