package geom

import "fmt"

// Line is the oriented line A*x + B*y + C = 0. A line built from two points
// is directed from the first to the second, and its positive side is on the
// left of that direction.
type Line struct {
	A, B, C Num
}

// LineThrough returns the line through s and t, directed from s to t. It
// panics if the points coincide.
func LineThrough(s, t Point) Line {
	if s.Equal(t) {
		degenerate("line through coincident points %v", s)
	}
	return Line{
		A: s.Y.Sub(t.Y),
		B: t.X.Sub(s.X),
		C: s.X.Mul(t.Y).Sub(t.X.Mul(s.Y)),
	}
}

// LineAlong returns the line through p with direction v.
func LineAlong(p, v Point) Line {
	return LineThrough(p, p.Add(v))
}

func (l Line) eval(p Point) Num {
	return l.A.Mul(p.X).Add(l.B.Mul(p.Y)).Add(l.C)
}

// Side is +1 if p is on the positive (left) side, -1 on the negative side and
// 0 on the line.
func (l Line) Side(p Point) int {
	return l.eval(p).Sign()
}

func (l Line) HasOnPositiveSide(p Point) bool {
	return l.Side(p) > 0
}

func (l Line) HasOnNegativeSide(p Point) bool {
	return l.Side(p) < 0
}

func (l Line) IsHorizontal() bool {
	return l.A.IsZero()
}

func (l Line) IsVertical() bool {
	return l.B.IsZero()
}

// Direction returns a vector along the line's orientation.
func (l Line) Direction() Point {
	return Point{l.B, l.A.Neg()}
}

// XAtY panics on horizontal lines.
func (l Line) XAtY(y Num) Num {
	if l.IsHorizontal() {
		degenerate("XAtY on a horizontal line")
	}
	return l.B.Mul(y).Add(l.C).Neg().Quo(l.A)
}

// YAtX panics on vertical lines.
func (l Line) YAtX(x Num) Num {
	if l.IsVertical() {
		degenerate("YAtX on a vertical line")
	}
	return l.A.Mul(x).Add(l.C).Neg().Quo(l.B)
}

// Intersect returns the crossing point of two lines. ok is false when the
// lines are parallel or identical.
func (l Line) Intersect(m Line) (p Point, ok bool) {
	det := l.A.Mul(m.B).Sub(m.A.Mul(l.B))
	if det.IsZero() {
		return Point{}, false
	}
	x := l.B.Mul(m.C).Sub(m.B.Mul(l.C)).Quo(det)
	y := m.A.Mul(l.C).Sub(l.A.Mul(m.C)).Quo(det)
	return Point{x, y}, true
}

// LinfDist is the Chebyshev distance from p to the line,
// |A*x + B*y + C| / (|A| + |B|).
func (l Line) LinfDist(p Point) Num {
	return l.eval(p).Abs().Quo(l.A.Abs().Add(l.B.Abs()))
}

func (l Line) String() string {
	return fmt.Sprintf("[%s*x + %s*y + %s = 0]", l.A, l.B, l.C)
}
