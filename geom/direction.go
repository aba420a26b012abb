package geom

import "fmt"

// Direction is a vector kept only for its sign pattern. Both components are
// in {-1, 0, +1} and at least one is nonzero, so every Direction is either
// axis-parallel or diagonal.
type Direction struct {
	DX, DY int
}

// Dir panics unless dx and dy form a valid sign pattern.
func Dir(dx, dy int) Direction {
	if dx < -1 || dx > 1 || dy < -1 || dy > 1 || (dx == 0 && dy == 0) {
		degenerate("invalid direction (%d, %d)", dx, dy)
	}
	return Direction{dx, dy}
}

// DirectionOf keeps the signs of v. It panics on the zero vector and on
// vectors that are neither axis-parallel nor diagonal, since the pattern
// would not describe the vector's slope.
func DirectionOf(v Point) Direction {
	if v.X.Sign() != 0 && v.Y.Sign() != 0 && !v.X.Abs().Equal(v.Y.Abs()) {
		degenerate("%v is neither axis-parallel nor diagonal", v)
	}
	return Dir(v.X.Sign(), v.Y.Sign())
}

func (d Direction) Neg() Direction {
	return Direction{-d.DX, -d.DY}
}

// Vector returns the direction as an exact vector.
func (d Direction) Vector() Point {
	return Pt(int64(d.DX), int64(d.DY))
}

func (d Direction) IsAxis() bool {
	return d.DX == 0 || d.DY == 0
}

func (d Direction) IsDiagonal() bool {
	return d.DX != 0 && d.DY != 0
}

func (d Direction) IsZero() bool {
	return d.DX == 0 && d.DY == 0
}

// Transpose swaps the components.
func (d Direction) Transpose() Direction {
	return Direction{d.DY, d.DX}
}

// FlipY mirrors the direction in the x axis.
func (d Direction) FlipY() Direction {
	return Direction{d.DX, -d.DY}
}

func (d Direction) String() string {
	return fmt.Sprintf("<%+d, %+d>", d.DX, d.DY)
}
