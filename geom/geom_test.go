package geom

import (
	"fmt"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNumArithmeticIsExact(t *testing.T) {
	third := Frac(1, 3)
	sum := third.Add(third).Add(third)
	assert.True(t, sum.Equal(N(1)), "1/3 + 1/3 + 1/3 should be exactly 1, got %s", sum)

	assert.Equal(t, "-7/2", N(-7).Half().String())
	assert.Equal(t, "0", Num{}.String())
	assert.True(t, Num{}.Add(N(2)).Equal(N(2)))
	assert.Equal(t, 1, N(-3).Abs().Cmp(N(2)))
	assert.True(t, N(6).Quo(N(4)).Equal(Frac(3, 2)))
}

func TestNumDoesNotAlias(t *testing.T) {
	a := N(5)
	b := a.Add(N(1))
	c := a.Neg()
	assert.Equal(t, "5", a.String())
	assert.Equal(t, "6", b.String())
	assert.Equal(t, "-5", c.String())
}

func TestParseNum(t *testing.T) {
	cases := map[string]string{
		"3":     "3",
		"-1.5":  "-3/2",
		"7/14":  "1/2",
		"1e2":   "100",
		"0.125": "1/8",
	}
	for in, want := range cases {
		n, err := ParseNum(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, n.String(), in)
	}

	_, err := ParseNum("one")
	assert.Error(t, err)
	assert.Panics(t, func() { MustParseNum("x") })
}

func TestDivisionByZeroPanics(t *testing.T) {
	assert.Panics(t, func() { N(1).Quo(Num{}) })
	assert.Panics(t, func() { Frac(1, 0) })
}

func TestPanicsAreDegenerate(t *testing.T) {
	for name, fn := range map[string]func(){
		"quo":        func() { N(1).Quo(Num{}) },
		"frac":       func() { Frac(1, 0) },
		"dir":        func() { Dir(0, 0) },
		"sloped dir": func() { DirectionOf(Pt(1, 2)) },
		"line":       func() { LineThrough(Pt(1, 1), Pt(1, 1)) },
		"x at y":     func() { LineThrough(Pt(0, 1), Pt(5, 1)).XAtY(N(1)) },
		"y at x":     func() { LineThrough(Pt(1, 0), Pt(1, 5)).YAtX(N(1)) },
	} {
		t.Run(name, func(t *testing.T) {
			defer func() {
				err, ok := recover().(error)
				require.True(t, ok, "panic value is not an error")
				assert.True(t, errors.Is(err, ErrDegenerate), "%v", err)
				assert.Contains(t, err.Error(), "geom: ")
			}()
			fn()
		})
	}
}

func TestCompare(t *testing.T) {
	a, b := Pt(1, 5), Pt(3, 5)
	assert.Equal(t, Smaller, CompareX(a, b))
	assert.Equal(t, Larger, CompareX(b, a))
	assert.Equal(t, Equal, CompareY(a, b))
	assert.Equal(t, Larger, Smaller.Neg())
	assert.Equal(t, Equal, CompareAbs(N(-2), N(2)))
	assert.Equal(t, "SMALLER", Smaller.String())
}

func TestOrientation(t *testing.T) {
	assert.Equal(t, 1, Orientation(Pt(0, 0), Pt(1, 0), Pt(0, 1)))
	assert.Equal(t, -1, Orientation(Pt(0, 0), Pt(0, 1), Pt(1, 0)))
	assert.Equal(t, 0, Orientation(Pt(0, 0), Pt(1, 1), Pt(3, 3)))
}

func TestLinfDist(t *testing.T) {
	assert.Equal(t, "4", LinfDist(Pt(0, 0), Pt(4, -3)).String())
	assert.Equal(t, "0", LinfDist(Pt(2, 2), Pt(2, 2)).String())
}

func TestDirection(t *testing.T) {
	d := DirectionOf(Point{N(-3), N(3)})
	assert.Equal(t, Dir(-1, 1), d)
	assert.True(t, d.IsDiagonal())
	assert.False(t, d.IsAxis())
	assert.Equal(t, Dir(1, -1), d.Neg())
	assert.Equal(t, Dir(1, -1), d.Transpose())
	assert.Equal(t, Dir(-1, -1), d.FlipY())
	assert.True(t, DirectionOf(Pt(0, -2)).IsAxis())

	assert.Panics(t, func() { Dir(0, 0) })
	assert.Panics(t, func() { Dir(2, 0) })
	assert.Panics(t, func() { DirectionOf(Pt(1, 2)) })
}

func TestLineSides(t *testing.T) {
	l := LineThrough(Pt(0, 0), Pt(10, 20))
	assert.True(t, l.HasOnPositiveSide(Pt(0, 10)), "left of the direction is positive")
	assert.True(t, l.HasOnNegativeSide(Pt(10, 0)))
	assert.Equal(t, 0, l.Side(Pt(5, 10)))

	reversed := LineThrough(Pt(10, 20), Pt(0, 0))
	assert.True(t, reversed.HasOnNegativeSide(Pt(0, 10)))

	assert.True(t, l.Direction().Cross(Pt(10, 20)).IsZero())
	assert.Panics(t, func() { LineThrough(Pt(1, 1), Pt(1, 1)) })
}

func TestLineProjections(t *testing.T) {
	l := LineThrough(Pt(0, 0), Pt(10, 20))
	assert.Equal(t, "5", l.XAtY(N(10)).String())
	assert.Equal(t, "20", l.YAtX(N(10)).String())

	assert.Panics(t, func() { LineThrough(Pt(0, 1), Pt(5, 1)).XAtY(N(1)) })
	assert.Panics(t, func() { LineThrough(Pt(1, 0), Pt(1, 5)).YAtX(N(1)) })
}

func TestLineIntersect(t *testing.T) {
	l := LineThrough(Pt(0, 0), Pt(10, 20))
	m := LineAlong(Pt(0, 10), Pt(-1, 1))
	p, ok := l.Intersect(m)
	require.True(t, ok)
	assert.Equal(t, "(10/3, 20/3)", p.String())

	_, ok = l.Intersect(LineThrough(Pt(1, 0), Pt(2, 2)))
	assert.False(t, ok, "parallel lines do not intersect")
}

func TestLineLinfDist(t *testing.T) {
	l := LineThrough(Pt(0, 0), Pt(10, 20))
	for _, c := range []struct {
		p    Point
		want string
	}{
		{Point{MustParseNum("2.5"), MustParseNum("12.5")}, "5/2"},
		{Pt(0, 10), "10/3"},
		{Pt(5, 10), "0"},
	} {
		t.Run(fmt.Sprint(c.p), func(t *testing.T) {
			assert.Equal(t, c.want, l.LinfDist(c.p).String())
		})
	}
}

func TestMidpoint(t *testing.T) {
	assert.Equal(t, "(2, 3/2)", Midpoint(Pt(0, 0), Pt(4, 3)).String())
}
