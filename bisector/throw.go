package bisector

import (
	"fmt"

	"github.com/osuushi/sdglinf/geom"
	"github.com/pkg/errors"
)

// Every bisector construction is a short, bounded case dispatch, and a wrong
// branch would silently corrupt the caller's diagram. Bad inputs and broken
// invariants therefore panic instead of returning an error. Callers that
// would rather get an error value (a CLI, a test harness) recover with
// HandleBisectorPanicRecover.

// Kind separates caller mistakes from internal failures.
type Kind int

const (
	// Precondition means the caller passed arguments the construction is not
	// defined for, such as two identical sites.
	Precondition Kind = iota
	// Invariant means an exact computation produced a state that the case
	// analysis rules out, such as a missing intersection.
	Invariant
)

func (k Kind) String() string {
	if k == Precondition {
		return "precondition violated"
	}
	return "invariant failed"
}

// Error is the panic value of every fatal assertion in this package.
type Error struct {
	Kind Kind
	err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("bisector: %s: %v", e.Kind, e.err)
}

func (e *Error) Unwrap() error {
	return e.err
}

// Cause lets errors.Cause reach the wrapped message.
func (e *Error) Cause() error {
	return e.err
}

// Format prints the stack trace captured at the panic site with %+v.
func (e *Error) Format(s fmt.State, verb rune) {
	if verb == 'v' && s.Flag('+') {
		fmt.Fprintf(s, "bisector: %s: %+v", e.Kind, e.err)
		return
	}
	fmt.Fprint(s, e.Error())
}

// Panic with a precondition Error.
func fatalf(format string, args ...interface{}) {
	panic(&Error{Kind: Precondition, err: errors.Errorf(format, args...)})
}

// Panic with an invariant Error.
func brokenf(format string, args ...interface{}) {
	panic(&Error{Kind: Invariant, err: errors.Errorf(format, args...)})
}

// guardGeom is deferred by every construction. The case analysis only hands
// geom inputs it has already checked, so a geom.ErrDegenerate panic means the
// analysis is wrong and is raised again as an Invariant Error.
func guardGeom() {
	r := recover()
	if r == nil {
		return
	}
	if err, ok := r.(error); ok && errors.Is(err, geom.ErrDegenerate) {
		panic(&Error{Kind: Invariant, err: err})
	}
	panic(r)
}

// HandleBisectorPanicRecover converts a recovered *Error into an error and
// re-panics with anything else. Use it as
//
//	defer func() { err = HandleBisectorPanicRecover(recover()) }()
func HandleBisectorPanicRecover(r interface{}) error {
	if r != nil {
		if bisectorError, ok := r.(*Error); ok {
			return bisectorError
		}
		panic(r)
	}
	return nil
}
