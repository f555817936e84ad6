package advanced

import "math/rand"

type Point struct {
	X float64
	Y float64
}

// A line in normal form: A*x + B*y + C = 0. Lines are always constructed
// through newLine, which scales (A, B) to unit length and fixes the sign, so
// that |A*x + B*y + C| is the distance from (x, y) to the line and two
// representations of the same line carry (almost) the same coefficients.
type Line struct {
	A, B, C float64
}

// An unordered pair of input points, held as indices into the deduplicated
// point slice with i < j. Using indices rather than coordinates means pair
// identity is exact even though point equality is tolerant.
type pair struct {
	i, j int
}

// Config tunes the search. The zero value is not valid; start from
// DefaultConfig.
type Config struct {
	// Tolerance is the ε used by every comparison in the search. Must be
	// positive; the search rejects anything else rather than clamping.
	Tolerance float64

	// HighDegreeExpected keeps the checker scanning after a candidate line
	// fails, so that point pairs already mirrored across the failed line can
	// still be pruned from the generator set. Worth it when the input has
	// many partial symmetries; pure optimization either way.
	HighDegreeExpected bool

	// Rand is the source for the random pair draw. Nil gets a time-seeded
	// source. The search path depends on it, the result set does not.
	Rand *rand.Rand
}

// DefaultConfig matches the reference behavior: tolerance 1e-6 and
// high-degree harvesting on.
func DefaultConfig() Config {
	return Config{
		Tolerance:          Tolerance,
		HighDegreeExpected: true,
	}
}

// Result is the outcome of a search. When Unbounded is true the input had
// fewer than two distinct points and every line through them is trivially a
// line of symmetry; Lines is empty in that case rather than an enumeration
// of infinity.
type Result struct {
	Lines     []Line
	Unbounded bool
}

// Contains reports whether some accumulated line equals l within eps.
func (r *Result) Contains(l Line, eps float64) bool {
	for _, have := range r.Lines {
		if have.Eq(l, eps) {
			return true
		}
	}
	return false
}
