package advanced

// symmetryResult is the checker's verdict on one candidate line.
type symmetryResult struct {
	symmetric bool
	// Pairs of input points found to mirror each other across the candidate.
	// Each such pair's bisector is exactly the candidate line, so the driver
	// can prune them from the generator set whether or not the candidate
	// validated.
	consumed []pair
	// First point with no reflection in the input, when not symmetric.
	firstFailure *Point
}

// checkSymmetry verifies the symmetry property of line l over the
// deduplicated point slice. Every point must either sit on the line or have
// its mirror image present in the slice.
//
// When harvest is set, a failure doesn't stop the scan: the remaining points
// are still examined for mirrored pairs, purely to feed the driver's
// pruning. A failed line never turns symmetric, whatever is found afterward.
func checkSymmetry(l Line, points []Point, eps float64, harvest bool) symmetryResult {
	result := symmetryResult{symmetric: true}

	// Once a point has been matched into a mirrored pair there is nothing
	// left to check for it.
	matched := make([]bool, len(points))

	for i, p := range points {
		if matched[i] {
			continue
		}
		if l.Contains(p, eps) {
			// On the line: its own reflection.
			matched[i] = true
			continue
		}

		q := l.Reflect(p)
		j := findPoint(points, q, eps)
		if j == i {
			// Off the line by more than eps, yet tol-equal to its own
			// reflection. Borderline; treat like the on-line case.
			matched[i] = true
			continue
		}
		if j >= 0 {
			matched[i] = true
			matched[j] = true
			if i < j {
				result.consumed = append(result.consumed, pair{i, j})
			} else {
				result.consumed = append(result.consumed, pair{j, i})
			}
			continue
		}

		// No mirror image in the input.
		if result.symmetric {
			result.symmetric = false
			failed := p
			result.firstFailure = &failed
		}
		if !harvest {
			break
		}
	}
	return result
}

// findPoint returns the index of the first point tol-equal to q, or -1.
// Linear scan: the search is already quadratic in candidates, and point
// counts are moderate by contract.
func findPoint(points []Point, q Point, eps float64) int {
	for i, p := range points {
		if p.Eq(q, eps) {
			return i
		}
	}
	return -1
}
