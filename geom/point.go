package geom

import "fmt"

// Point is an exact 2D coordinate pair. It doubles as a free vector where
// the arithmetic helpers below need one.
type Point struct {
	X, Y Num
}

// Pt builds a point from integer coordinates.
func Pt(x, y int64) Point {
	return Point{N(x), N(y)}
}

func (p Point) Add(q Point) Point {
	return Point{p.X.Add(q.X), p.Y.Add(q.Y)}
}

func (p Point) Sub(q Point) Point {
	return Point{p.X.Sub(q.X), p.Y.Sub(q.Y)}
}

func (p Point) Neg() Point {
	return Point{p.X.Neg(), p.Y.Neg()}
}

func (p Point) Scale(k Num) Point {
	return Point{p.X.Mul(k), p.Y.Mul(k)}
}

func (p Point) Dot(q Point) Num {
	return p.X.Mul(q.X).Add(p.Y.Mul(q.Y))
}

// Cross is the z component of the 3D cross product. It is positive when q is
// counterclockwise of p.
func (p Point) Cross(q Point) Num {
	return p.X.Mul(q.Y).Sub(p.Y.Mul(q.X))
}

// RotateCCW turns the vector a quarter turn counterclockwise.
func (p Point) RotateCCW() Point {
	return Point{p.Y.Neg(), p.X}
}

func (p Point) IsZero() bool {
	return p.X.IsZero() && p.Y.IsZero()
}

// Equal is exact coordinate equality.
func (p Point) Equal(q Point) bool {
	return p.X.Equal(q.X) && p.Y.Equal(q.Y)
}

func (p Point) String() string {
	return fmt.Sprintf("(%s, %s)", p.X, p.Y)
}

func Midpoint(p, q Point) Point {
	return Point{p.X.Add(q.X).Half(), p.Y.Add(q.Y).Half()}
}

// Orientation is the sign of the turn a -> b -> c: +1 for a left turn, -1 for
// a right turn and 0 when the three points are collinear.
func Orientation(a, b, c Point) int {
	return b.Sub(a).Cross(c.Sub(a)).Sign()
}

// LinfDist is the Chebyshev distance max(|dx|, |dy|).
func LinfDist(p, q Point) Num {
	d := p.Sub(q)
	return Max(d.X.Abs(), d.Y.Abs())
}
