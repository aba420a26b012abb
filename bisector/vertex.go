package bisector

import (
	"fmt"
	"strings"
	"sync"

	"github.com/osuushi/sdglinf/geom"
)

// VertexConstructor supplies the Voronoi vertex of three sites: the center
// of the L∞ circle tangent to a, b and c, oriented so that a, b, c appear
// counterclockwise on it. Ray and segment constructions anchor on these.
type VertexConstructor interface {
	Vertex(a, b, c Site) geom.Point
}

// VertexFunc adapts a plain function to VertexConstructor.
type VertexFunc func(a, b, c Site) geom.Point

func (f VertexFunc) Vertex(a, b, c Site) geom.Point {
	return f(a, b, c)
}

// VertexTable answers from vertices registered ahead of time, which is how
// the diagram hands over vertices it has already computed. A triple is
// registered under all three of its rotations, since those describe the same
// oriented circle. Asking for an unregistered triple is a precondition
// violation.
type VertexTable struct {
	mu       sync.RWMutex
	vertices map[string]geom.Point
}

func NewVertexTable() *VertexTable {
	return &VertexTable{vertices: make(map[string]geom.Point)}
}

// Add registers v as the vertex of a, b, c and returns the table.
func (t *VertexTable) Add(a, b, c Site, v geom.Point) *VertexTable {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.vertices[tripleKey(a, b, c)] = v
	t.vertices[tripleKey(b, c, a)] = v
	t.vertices[tripleKey(c, a, b)] = v
	return t
}

func (t *VertexTable) Vertex(a, b, c Site) geom.Point {
	t.mu.RLock()
	v, ok := t.vertices[tripleKey(a, b, c)]
	t.mu.RUnlock()
	if !ok {
		fatalf("no vertex registered for %v, %v, %v", a, b, c)
	}
	return v
}

func (t *VertexTable) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.vertices) / 3
}

func tripleKey(a, b, c Site) string {
	return strings.Join([]string{a.String(), b.String(), c.String()}, " ")
}

// PointVertices computes vertices directly when all three sites are points.
var PointVertices VertexConstructor = VertexFunc(func(a, b, c Site) geom.Point {
	pa, okA := a.(PointSite)
	pb, okB := b.(PointSite)
	pc, okC := c.(PointSite)
	if !okA || !okB || !okC {
		fatalf("point vertex of %v, %v, %v needs three point sites", a, b, c)
	}
	center, _ := Circle(pa.P, pb.P, pc.P)
	return center
})

// Square is an L∞ circle.
type Square struct {
	Center geom.Point
	Radius geom.Num
}

func (s Square) String() string {
	return fmt.Sprintf("square(%v, %v)", s.Center, s.Radius)
}

// Contains reports whether p is inside or on the square.
func (s Square) Contains(p geom.Point) bool {
	return geom.LinfDist(s.Center, p).Cmp(s.Radius) <= 0
}

// Circle returns the center and radius of the unique L∞ circle through three
// points. The points must be in general position for the L∞ metric: the
// circle exists and is unique only when they span a wider box in one axis
// than the other with the middle point extreme in the other axis, or when
// all three lie on the boundary of their square bounding box.
func Circle(a, b, c geom.Point) (geom.Point, geom.Num) {
	pts := [3]geom.Point{a, b, c}
	if a.Equal(b) || b.Equal(c) || c.Equal(a) {
		fatalf("coincident points in %v", pts)
	}
	minX, maxX, minY, maxY := bounds(pts)
	w := maxX.Sub(minX)
	h := maxY.Sub(minY)
	switch w.Cmp(h) {
	case 0:
		for _, p := range pts {
			if !p.X.Equal(minX) && !p.X.Equal(maxX) && !p.Y.Equal(minY) && !p.Y.Equal(maxY) {
				fatalf("points %v have no unique L∞ circle", pts)
			}
		}
		center := geom.Point{X: minX.Add(maxX).Half(), Y: minY.Add(maxY).Half()}
		return center, w.Half()
	case -1:
		var t [3]geom.Point
		for i, p := range pts {
			t[i] = transposed(p)
		}
		center, r := wideCircle(t)
		return transposed(center), r
	}
	return wideCircle(pts)
}

// wideCircle handles three points whose x extent exceeds their y extent. The
// circle's width is then pinned by the two outer points, and the point
// strictly between them fixes the vertical position by touching the top or
// bottom side.
func wideCircle(pts [3]geom.Point) (geom.Point, geom.Num) {
	minX, maxX, _, _ := bounds(pts)
	r := maxX.Sub(minX).Half()
	cx := minX.Add(maxX).Half()

	inner := -1
	for i, p := range pts {
		if p.X.Cmp(minX) > 0 && p.X.Cmp(maxX) < 0 {
			inner = i
		}
	}
	if inner < 0 {
		fatalf("points %v have no unique L∞ circle", pts)
	}
	ip := pts[inner]
	above, below := 0, 0
	for i, p := range pts {
		if i == inner {
			continue
		}
		switch ip.Y.Cmp(p.Y) {
		case 1:
			above++
		case -1:
			below++
		}
	}
	switch {
	case above == 2:
		return geom.Point{X: cx, Y: ip.Y.Sub(r)}, r
	case below == 2:
		return geom.Point{X: cx, Y: ip.Y.Add(r)}, r
	}
	fatalf("points %v have no unique L∞ circle", pts)
	return geom.Point{}, geom.Num{}
}

func bounds(pts [3]geom.Point) (minX, maxX, minY, maxY geom.Num) {
	minX, maxX = pts[0].X, pts[0].X
	minY, maxY = pts[0].Y, pts[0].Y
	for _, p := range pts[1:] {
		minX, maxX = geom.Min(minX, p.X), geom.Max(maxX, p.X)
		minY, maxY = geom.Min(minY, p.Y), geom.Max(maxY, p.Y)
	}
	return
}

func transposed(p geom.Point) geom.Point {
	return geom.Point{X: p.Y, Y: p.X}
}
