package bisector

import (
	"math"
	"os"

	"github.com/fogleman/gg"
	"github.com/golang/geo/r2"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/osuushi/sdglinf/geom"
	"github.com/pkg/errors"
)

const drawPadding = 20

// Render draws the sites in white and the bisector in cyan into a PNG at
// path. Unbounded rays are extended past the drawing's edge. Coordinates are
// converted to floats here and nowhere else.
func Render(path string, sites []Site, chain Polychain, scale float64) error {
	bounds := r2.EmptyRect()
	grow := func(p geom.Point) {
		bounds = bounds.AddPoint(floatPoint(p))
	}
	for _, s := range sites {
		switch s := s.(type) {
		case PointSite:
			grow(s.P)
		case SegmentSite:
			grow(s.Source)
			grow(s.Target)
		}
	}
	points := chain.Points()
	for _, p := range points {
		grow(p)
	}
	if bounds.IsEmpty() {
		return errors.New("nothing to draw")
	}
	// Leave room for the rays, and keep degenerate extents drawable.
	size := bounds.Size()
	bounds = bounds.ExpandedByMargin(math.Max(math.Max(size.X, size.Y)/4, 1))
	size = bounds.Size()
	lo := bounds.Lo()

	width := int(scale*size.X) + drawPadding*2
	height := int(scale*size.Y) + drawPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)
	c.Translate(drawPadding, drawPadding)
	c.Scale(scale, scale)
	c.Translate(-lo.X, -lo.Y)

	c.SetLineWidth(2)
	c.SetRGB(1, 1, 1)
	for _, s := range sites {
		switch s := s.(type) {
		case PointSite:
			p := floatPoint(s.P)
			c.DrawCircle(p.X, p.Y, 3/scale)
			c.Fill()
		case SegmentSite:
			a, b := floatPoint(s.Source), floatPoint(s.Target)
			c.DrawLine(a.X, a.Y, b.X, b.Y)
			c.Stroke()
		}
	}

	// Long enough to leave the canvas from anywhere on it.
	reach := 2 * (size.X + size.Y)
	ray := func(from geom.Point, d geom.Direction) {
		p := floatPoint(from)
		c.MoveTo(p.X, p.Y)
		c.LineTo(p.X+reach*float64(d.DX), p.Y+reach*float64(d.DY))
	}

	c.SetRGB(0, 1, 1)
	switch chain := chain.(type) {
	case Line:
		ray(points[0], chain.In)
		drawPath(c, points)
		ray(points[len(points)-1], chain.Out)
	case Ray:
		drawPath(c, points)
		ray(points[len(points)-1], chain.Out)
	case Segment:
		drawPath(c, points)
	}
	c.Stroke()

	c.SetRGB(1, 0.5, 0)
	for _, p := range points {
		fp := floatPoint(p)
		c.DrawCircle(fp.X, fp.Y, 2/scale)
		c.Fill()
	}

	return errors.Wrapf(c.SavePNG(path), "saving %s", path)
}

func drawPath(c *gg.Context, points []geom.Point) {
	start := floatPoint(points[0])
	c.MoveTo(start.X, start.Y)
	for _, p := range points[1:] {
		fp := floatPoint(p)
		c.LineTo(fp.X, fp.Y)
	}
}

func floatPoint(p geom.Point) r2.Point {
	return r2.Point{X: p.X.Float64(), Y: p.Y.Float64()}
}

// Show prints a rendered PNG to an iTerm-compatible terminal.
func Show(path string) error {
	return errors.Wrapf(imgcat.CatFile(path, os.Stdout), "displaying %s", path)
}
