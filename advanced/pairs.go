package advanced

import "math/rand"

// dedupPoints copies the input, dropping points tol-equal to an earlier one.
// Duplicate points never affect which lines are symmetric, and generating
// pairs over them would only produce zero-length bisector requests. First
// occurrence wins, so the candidate order is deterministic in the input
// order. Non-finite coordinates are rejected here, at the single entry point
// for caller data.
func dedupPoints(points []Point, eps float64) []Point {
	deduped := make([]Point, 0, len(points))
	for _, p := range points {
		if !p.finite() {
			throwf(ErrDegenerateInput, "non-finite point %v", p)
		}
		seen := false
		for _, q := range deduped {
			if p.Eq(q, eps) {
				seen = true
				break
			}
		}
		if !seen {
			deduped = append(deduped, p)
		}
	}
	return deduped
}

// pairArena is the mutable generator set: every unordered pair of distinct
// point indices, stored as a swap-remove slice with a position map. Removal
// and uniform random draw are both O(1), and pairs are only ever removed,
// never re-added.
type pairArena struct {
	live []pair
	pos  map[pair]int
}

// generatePairs builds the arena over all C(n,2) index pairs.
func generatePairs(n int) *pairArena {
	a := &pairArena{
		live: make([]pair, 0, n*(n-1)/2),
		pos:  make(map[pair]int, n*(n-1)/2),
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			p := pair{i, j}
			a.pos[p] = len(a.live)
			a.live = append(a.live, p)
		}
	}
	return a
}

func (a *pairArena) Len() int {
	return len(a.live)
}

// Remove deletes p from the arena if present. Idempotent: the checker
// re-reports the pair the driver already popped.
func (a *pairArena) Remove(p pair) {
	idx, ok := a.pos[p]
	if !ok {
		return
	}
	last := len(a.live) - 1
	moved := a.live[last]
	a.live[idx] = moved
	a.pos[moved] = idx
	a.live = a.live[:last]
	delete(a.pos, p)
}

// PopRandom removes and returns a uniformly random live pair.
func (a *pairArena) PopRandom(rng *rand.Rand) pair {
	p := a.live[rng.Intn(len(a.live))]
	a.Remove(p)
	return p
}
