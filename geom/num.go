package geom

import (
	"math/big"

	"github.com/pkg/errors"
)

// Num is an exact rational coordinate. The zero value is 0. A Num is never
// modified after it is created, so values can be copied and shared freely
// between goroutines.
type Num struct {
	r *big.Rat
}

// ErrDegenerate is the cause of every panic raised by this package. The
// panics mark inputs a caller should have ruled out (dividing by zero, a line
// through one point), so reaching one is a bug in that caller.
var ErrDegenerate = errors.New("degenerate geometry")

func degenerate(format string, args ...interface{}) {
	panic(errors.WithMessagef(ErrDegenerate, "geom: "+format, args...))
}

// N returns the integer i as a Num.
func N(i int64) Num {
	return Num{new(big.Rat).SetInt64(i)}
}

// Frac returns a/b. It panics if b is zero.
func Frac(a, b int64) Num {
	if b == 0 {
		degenerate("zero denominator")
	}
	return Num{big.NewRat(a, b)}
}

// FromRat copies r into a Num.
func FromRat(r *big.Rat) Num {
	return Num{new(big.Rat).Set(r)}
}

// ParseNum accepts anything big.Rat.SetString does: integers, decimals ("1.25"),
// fractions ("5/4") and exponents ("1e3").
func ParseNum(s string) (Num, error) {
	r, ok := new(big.Rat).SetString(s)
	if !ok {
		return Num{}, errors.Errorf("geom: invalid number %q", s)
	}
	return Num{r}, nil
}

// MustParseNum is ParseNum for literals known to be valid.
func MustParseNum(s string) Num {
	n, err := ParseNum(s)
	if err != nil {
		panic(err)
	}
	return n
}

func (a Num) rat() *big.Rat {
	if a.r == nil {
		return new(big.Rat)
	}
	return a.r
}

// Rat returns a copy of the underlying rational.
func (a Num) Rat() *big.Rat {
	return new(big.Rat).Set(a.rat())
}

func (a Num) Add(b Num) Num {
	return Num{new(big.Rat).Add(a.rat(), b.rat())}
}

func (a Num) Sub(b Num) Num {
	return Num{new(big.Rat).Sub(a.rat(), b.rat())}
}

func (a Num) Mul(b Num) Num {
	return Num{new(big.Rat).Mul(a.rat(), b.rat())}
}

// Quo returns a/b. Division by zero is a programming error and panics.
func (a Num) Quo(b Num) Num {
	if b.Sign() == 0 {
		degenerate("division by zero")
	}
	return Num{new(big.Rat).Quo(a.rat(), b.rat())}
}

func (a Num) Neg() Num {
	return Num{new(big.Rat).Neg(a.rat())}
}

func (a Num) Abs() Num {
	return Num{new(big.Rat).Abs(a.rat())}
}

// Half returns a/2.
func (a Num) Half() Num {
	return Num{new(big.Rat).Mul(a.rat(), big.NewRat(1, 2))}
}

// Cmp returns -1, 0 or +1 as a is less than, equal to or greater than b.
func (a Num) Cmp(b Num) int {
	return a.rat().Cmp(b.rat())
}

func (a Num) Sign() int {
	return a.rat().Sign()
}

func (a Num) IsZero() bool {
	return a.Sign() == 0
}

func (a Num) Equal(b Num) bool {
	return a.Cmp(b) == 0
}

// Compare is Cmp lifted into a Comparison.
func (a Num) Compare(b Num) Comparison {
	return Comparison(a.Cmp(b))
}

// String is the shortest exact form, "3" or "-7/2".
func (a Num) String() string {
	return a.rat().RatString()
}

// Float64 is the nearest float. It exists for drawing and must never feed
// back into a branch decision.
func (a Num) Float64() float64 {
	f, _ := a.rat().Float64()
	return f
}

func Max(a, b Num) Num {
	if a.Cmp(b) >= 0 {
		return a
	}
	return b
}

func Min(a, b Num) Num {
	if a.Cmp(b) <= 0 {
		return a
	}
	return b
}
