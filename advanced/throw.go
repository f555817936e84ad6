package advanced

import "github.com/pkg/errors"

// Threading errors through every geometric helper would bury the algorithm in
// plumbing for conditions that only fire on invariant violations or bad
// caller input. Instead, we panic, and the public API recovers to convert to
// an error.

type SymmetryError error

// Sentinel causes carried by thrown errors; match with errors.Is.
var (
	// ErrDegenerateInput: an internal geometric invariant was violated, e.g.
	// a perpendicular bisector of two tol-equal points, or a non-finite
	// coordinate. Correct pair generation never triggers it.
	ErrDegenerateInput = errors.New("symmetry: degenerate input")

	// ErrInvalidTolerance: the caller supplied a tolerance that is not a
	// positive finite number.
	ErrInvalidTolerance = errors.New("symmetry: tolerance must be positive")
)

// Panic with a SymmetryError wrapping the given sentinel.
func throwf(cause error, format string, args ...interface{}) {
	panic(SymmetryError(errors.Wrapf(cause, format, args...)))
}

func HandleSymmetryPanicRecover(r interface{}) error {
	if r != nil {
		if symmetryError, ok := r.(SymmetryError); ok {
			return symmetryError
		}
		panic(r)
	}
	return nil
}
