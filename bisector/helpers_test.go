package bisector

import (
	"testing"

	"github.com/osuushi/sdglinf/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Exact point from literals such as "5/2".
func rp(x, y string) geom.Point {
	return geom.Point{X: geom.MustParseNum(x), Y: geom.MustParseNum(y)}
}

func pointStrings(points []geom.Point) []string {
	result := make([]string, len(points))
	for i, p := range points {
		result[i] = p.String()
	}
	return result
}

func assertPoints(t *testing.T, expected []string, chain Polychain) {
	t.Helper()
	assert.Equal(t, expected, pointStrings(chain.Points()))
}

// Fail unless fn panics with a bisector Error of the given kind.
func requireFatal(t *testing.T, kind Kind, fn func()) {
	t.Helper()
	err := func() (err error) {
		defer func() {
			err = HandleBisectorPanicRecover(recover())
		}()
		fn()
		return nil
	}()
	require.Error(t, err)
	var bisectorErr *Error
	require.ErrorAs(t, err, &bisectorErr)
	assert.Equal(t, kind, bisectorErr.Kind, "%v", err)
}

func assertEquidistant(t *testing.T, p, q Site, points []geom.Point) {
	t.Helper()
	for _, b := range points {
		dp, dq := Distance(b, p), Distance(b, q)
		assert.True(t, dp.Equal(dq), "%v is %v from %v but %v from %v", b, dp, p, dq, q)
	}
}

func isAxisOrDiagonal(v geom.Point) bool {
	return v.X.IsZero() || v.Y.IsZero() || v.X.Abs().Equal(v.Y.Abs())
}

func assertRestrictedSlopes(t *testing.T, chain Polychain) {
	t.Helper()
	for _, piece := range chain.Pieces() {
		assert.True(t, isAxisOrDiagonal(piece.Vector()), "piece %v", piece)
	}
}

// Walking the line must keep p strictly on the right of every piece and of
// the travel direction along both rays.
func assertPointOnRight(t *testing.T, p geom.Point, line Line) {
	t.Helper()
	points := line.Points()
	rightOf := func(travel, from geom.Point) bool {
		return travel.Cross(p.Sub(from)).Sign() < 0
	}
	assert.True(t, rightOf(line.In.Neg().Vector(), points[0]), "incoming ray of %v", line)
	for _, piece := range line.Pieces() {
		assert.True(t, rightOf(piece.Vector(), piece.From), "piece %v of %v", piece, line)
	}
	assert.True(t, rightOf(line.Out.Vector(), points[len(points)-1]), "outgoing ray of %v", line)
}

func reverseStrings(s []string) []string {
	result := make([]string, len(s))
	for i, v := range s {
		result[len(s)-1-i] = v
	}
	return result
}

// Walking chain must keep a point site p strictly on the right and a point
// site q strictly on the left. A point site that is an endpoint of the other
// site lies on the chain itself, so the far endpoint stands in for the
// segment there.
func assertSides(t *testing.T, p, q Site, chain Polychain) {
	t.Helper()
	type mark struct {
		at   geom.Point
		side int
	}
	var marks []mark
	add := func(s, other Site, side int) {
		pnt, ok := s.(PointSite)
		if !ok {
			return
		}
		if seg, ok := other.(SegmentSite); ok && seg.HasEndpoint(pnt.P) {
			marks = append(marks, mark{seg.Other(pnt.P), -side})
			return
		}
		marks = append(marks, mark{pnt.P, side})
	}
	add(p, q, -1)
	add(q, p, 1)

	check := func(travel, from geom.Point, what string) {
		for _, m := range marks {
			assert.Equal(t, m.side, travel.Cross(m.at.Sub(from)).Sign(), "%v against %s of %v", m.at, what, chain)
		}
	}
	for _, piece := range chain.Pieces() {
		if !piece.Vector().IsZero() {
			check(piece.Vector(), piece.From, "piece from "+piece.From.String())
		}
	}
	points := chain.Points()
	switch c := chain.(type) {
	case Line:
		check(c.In.Neg().Vector(), points[0], "incoming ray")
		check(c.Out.Vector(), points[len(points)-1], "outgoing ray")
	case Ray:
		check(c.Out.Vector(), points[len(points)-1], "outgoing ray")
	}
}
