package advanced

import (
	"math"
	"math/rand"
	"sort"
	"time"
)

// FindLinesOfSymmetry computes every line of symmetry of the given points:
// lines across which the point set maps onto itself, with all comparisons
// done within config.Tolerance.
//
// The search draws candidate pairs uniformly at random from the set of all
// distinct point pairs and tests each pair's perpendicular bisector. Any
// pair found mirrored across a tested candidate is pruned, since its
// bisector is that candidate. Once the pairs are exhausted, the one line no
// bisector can produce — the line through all points, when they are
// collinear — is checked separately. Randomness only changes the order of
// discovery; the returned set is the same for any seed and any permutation
// of the input.
//
// Inputs with fewer than two distinct points have every line (through the
// point, if any) as a trivial symmetry; that comes back as Unbounded rather
// than an enumeration.
//
// Invalid configuration or non-finite coordinates panic with a
// SymmetryError; use HandleSymmetryPanicRecover (or the root package
// wrapper) to convert to an error.
func FindLinesOfSymmetry(points []Point, config Config) *Result {
	eps := config.Tolerance
	if !(eps > 0) || math.IsInf(eps, 0) {
		throwf(ErrInvalidTolerance, "got %v", eps)
	}

	rng := config.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	pts := dedupPoints(points, eps)
	if len(pts) < 2 {
		return &Result{Unbounded: true}
	}

	result := &Result{}
	arena := generatePairs(len(pts))

	// Running: burn down the generator set.
	for arena.Len() > 0 {
		candidate := arena.PopRandom(rng)
		l := PerpendicularBisector(pts[candidate.i], pts[candidate.j], eps)

		verdict := checkSymmetry(l, pts, eps, config.HighDegreeExpected)
		for _, consumed := range verdict.consumed {
			arena.Remove(consumed)
		}

		if verdict.symmetric && !result.Contains(l, eps) {
			result.Lines = append(result.Lines, l)
		}
	}

	// Draining: a line through all the points is the only symmetry no
	// bisector generates. Bisectors are perpendicular to their segment, so
	// this can't duplicate an accepted line, but the insert stays guarded.
	if l, ok := LineThroughAll(pts, eps); ok && !result.Contains(l, eps) {
		result.Lines = append(result.Lines, l)
	}

	// Canonical order, so equal result sets also look equal.
	sort.Slice(result.Lines, func(i, j int) bool {
		a, b := result.Lines[i], result.Lines[j]
		if a.A != b.A {
			return a.A < b.A
		}
		if a.B != b.B {
			return a.B < b.B
		}
		return a.C < b.C
	})
	return result
}
