package advanced

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPerpendicularBisector(t *testing.T) {
	eps := 1e-6

	// Horizontal segment: the bisector is the vertical x = 1
	l := PerpendicularBisector(Point{0, 0}, Point{2, 0}, eps)
	assert.True(t, l.Eq(Line{A: 1, B: 0, C: -1}, eps))

	// Building it from the swapped pair gives the same line
	swapped := PerpendicularBisector(Point{2, 0}, Point{0, 0}, eps)
	assert.True(t, l.Eq(swapped, eps))

	// Both endpoints are equidistant targets: the bisector reflects one
	// onto the other
	p1, p2 := Point{1, 3}, Point{4, -2}
	l = PerpendicularBisector(p1, p2, eps)
	assert.True(t, l.Reflect(p1).Eq(p2, eps))
	assert.True(t, l.Reflect(p2).Eq(p1, eps))
	// And passes through the midpoint
	assert.True(t, l.Contains(Point{(p1.X + p2.X) / 2, (p1.Y + p2.Y) / 2}, eps))
}

func TestPerpendicularBisectorDegenerate(t *testing.T) {
	err := func() (err error) {
		defer func() {
			err = HandleSymmetryPanicRecover(recover())
		}()
		PerpendicularBisector(Point{1, 1}, Point{1, 1 + 1e-9}, 1e-6)
		return nil
	}()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDegenerateInput)
}

func TestLineThrough(t *testing.T) {
	eps := 1e-6
	l := LineThrough(Point{0, 0}, Point{2, 0}, eps)
	assert.True(t, l.Eq(Line{A: 0, B: 1, C: 0}, eps))
	assert.True(t, l.Contains(Point{-7, 0}, eps))
	assert.False(t, l.Contains(Point{0, 1}, eps))
}

func TestReflect(t *testing.T) {
	eps := 1e-6

	xAxis := LineThrough(Point{0, 0}, Point{1, 0}, eps)
	assert.True(t, xAxis.Reflect(Point{3, 4}).Eq(Point{3, -4}, eps))

	diag := LineThrough(Point{0, 0}, Point{1, 1}, eps)
	assert.True(t, diag.Reflect(Point{2, 0}).Eq(Point{0, 2}, eps))

	// A point on the line is its own reflection
	assert.True(t, diag.Reflect(Point{5, 5}).Eq(Point{5, 5}, eps))

	// Reflecting twice is the identity
	p := Point{-1.5, 42}
	assert.True(t, diag.Reflect(diag.Reflect(p)).Eq(p, eps))
}

func TestLineEq(t *testing.T) {
	eps := 1e-6
	l := LineThrough(Point{0, 0}, Point{1, 1}, eps)

	assert.True(t, l.Eq(l, eps))
	// A jitter within tolerance is the same line
	assert.True(t, l.Eq(Line{A: l.A + eps/2, B: l.B, C: l.C}, eps))
	// The negated coefficients denote the same line
	assert.True(t, l.Eq(Line{A: -l.A, B: -l.B, C: -l.C}, eps))
	// A parallel line at a different offset is not
	assert.False(t, l.Eq(Line{A: l.A, B: l.B, C: l.C + 1}, eps))
}

func TestLineThroughAll(t *testing.T) {
	eps := 1e-6

	l, ok := LineThroughAll([]Point{{0, 0}, {1, 1}, {2, 2}, {-3, -3}}, eps)
	require.True(t, ok)
	diag := LineThrough(Point{0, 0}, Point{1, 1}, eps)
	assert.True(t, l.Eq(diag, eps))

	// A point slightly off the line within tolerance still counts
	_, ok = LineThroughAll([]Point{{0, 0}, {2, 0}, {1, eps / 2}}, eps)
	assert.True(t, ok)

	// Beyond tolerance it doesn't
	_, ok = LineThroughAll([]Point{{0, 0}, {2, 0}, {1, 2 * eps}}, eps)
	assert.False(t, ok)

	_, ok = LineThroughAll([]Point{{1, 1}}, eps)
	assert.False(t, ok)
}

func TestCanonicalForm(t *testing.T) {
	eps := 1e-6
	// However a line is built, its normal comes out unit length
	for _, l := range []Line{
		PerpendicularBisector(Point{0, 0}, Point{3, 7}, eps),
		LineThrough(Point{-2, 5}, Point{4, 5}, eps),
		LineThrough(Point{1, 1}, Point{1, 9}, eps),
	} {
		assert.InDelta(t, 1, math.Hypot(l.A, l.B), 1e-12)
		// Sign convention: first nonzero of (A, B) is positive
		if l.A != 0 {
			assert.Greater(t, l.A, 0.0)
		} else {
			assert.Greater(t, l.B, 0.0)
		}
	}
}
