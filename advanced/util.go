package advanced

import "math"

// Default tolerance for coordinate comparisons, exposed so callers building a
// Config by hand can reuse it. Appropriate for coordinates of magnitude
// around one; scale it with your data.
const Tolerance = 1e-6

// To compensate for imprecision in floats, equality is tolerance based:
// reflected coordinates go through enough arithmetic that exact comparison
// would miss almost every mirror point. Note this makes equality
// non-transitive across chains of nearby values; we accept that rather than
// trying to cluster.
func Equal(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}

// Eq reports whether both coordinates match within eps.
func (p Point) Eq(q Point, eps float64) bool {
	return Equal(p.X, q.X, eps) && Equal(p.Y, q.Y, eps)
}

// Below orders points by X then Y, treating tol-equal coordinates as ties.
// It gives unordered pairs a canonical orientation; it is not a total order
// (tolerant ties are not transitive) but pair construction only ever compares
// two distinct points, where that doesn't matter.
func (p Point) Below(q Point, eps float64) bool {
	if Equal(p.X, q.X, eps) {
		return p.Y < q.Y
	}
	return p.X < q.X
}

func (p Point) finite() bool {
	return !math.IsNaN(p.X) && !math.IsInf(p.X, 0) &&
		!math.IsNaN(p.Y) && !math.IsInf(p.Y, 0)
}
