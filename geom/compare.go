package geom

// Comparison is the three-valued result of every predicate in this module.
// There is no tolerance: two coordinates are Equal only if they are exactly
// the same rational.
type Comparison int

const (
	Smaller Comparison = -1
	Equal   Comparison = 0
	Larger  Comparison = 1
)

func (c Comparison) Neg() Comparison {
	return -c
}

func (c Comparison) String() string {
	switch c {
	case Smaller:
		return "SMALLER"
	case Equal:
		return "EQUAL"
	case Larger:
		return "LARGER"
	}
	return "INVALID"
}

func CompareX(a, b Point) Comparison {
	return a.X.Compare(b.X)
}

func CompareY(a, b Point) Comparison {
	return a.Y.Compare(b.Y)
}

// CompareAbs compares |a| and |b|.
func CompareAbs(a, b Num) Comparison {
	return a.Abs().Compare(b.Abs())
}
