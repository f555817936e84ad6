package advanced

import "math"

// newLine canonicalizes raw coefficients of A*x + B*y + C = 0: scale the
// normal (A, B) to unit length, then fix the sign so the first nonzero of
// (A, B) is positive. After this, |A*x + B*y + C| is the point-line distance,
// which lets Contains share the coordinate tolerance.
func newLine(a, b, c float64) Line {
	n := math.Hypot(a, b)
	if n == 0 {
		throwf(ErrDegenerateInput, "line with zero normal (c=%v)", c)
	}
	a, b, c = a/n, b/n, c/n
	if a < 0 || (a == 0 && b < 0) {
		a, b, c = -a, -b, -c
	}
	return Line{A: a, B: b, C: c}
}

// PerpendicularBisector builds the line equidistant from p1 and p2. The pair
// generator never produces tol-equal endpoints, but a bisector of coincident
// points is meaningless, so we check anyway.
func PerpendicularBisector(p1, p2 Point, eps float64) Line {
	if p1.Eq(p2, eps) {
		throwf(ErrDegenerateInput, "perpendicular bisector of coincident points (%v, %v)", p1, p2)
	}
	a := p2.X - p1.X
	b := p2.Y - p1.Y
	c := 0.5 * (p1.X*p1.X + p1.Y*p1.Y - p2.X*p2.X - p2.Y*p2.Y)
	return newLine(a, b, c)
}

// LineThrough builds the line passing through two distinct points.
func LineThrough(p1, p2 Point, eps float64) Line {
	if p1.Eq(p2, eps) {
		throwf(ErrDegenerateInput, "line through coincident points (%v, %v)", p1, p2)
	}
	a := p2.Y - p1.Y
	b := p1.X - p2.X
	c := -(a*p1.X + b*p1.Y)
	return newLine(a, b, c)
}

// Reflect returns the mirror image of p across the line. Plain arithmetic,
// no tolerance; the caller compares the result against real points
// tolerantly. The normal is unit length, so no division is needed.
func (l Line) Reflect(p Point) Point {
	factor := 2 * (l.A*p.X + l.B*p.Y + l.C)
	return Point{
		X: p.X - factor*l.A,
		Y: p.Y - factor*l.B,
	}
}

// Contains reports whether p lies on the line, i.e. its distance to the line
// is within eps.
func (l Line) Contains(p Point, eps float64) bool {
	return Equal(l.A*p.X+l.B*p.Y+l.C, 0, eps)
}

// Eq reports whether two lines coincide within eps. Canonicalization almost
// makes this plain coefficient comparison, but a nearly-vertical line can
// land on either side of the sign convention depending on rounding, so the
// negated orientation is checked too.
func (l Line) Eq(other Line, eps float64) bool {
	if Equal(l.A, other.A, eps) && Equal(l.B, other.B, eps) && Equal(l.C, other.C, eps) {
		return true
	}
	return Equal(l.A, -other.A, eps) && Equal(l.B, -other.B, eps) && Equal(l.C, -other.C, eps)
}

// LineThroughAll returns the line passing through every given point, if the
// points are collinear within eps. The points must already be deduplicated,
// so any two of them seed a candidate; the rest just need to sit on it.
func LineThroughAll(points []Point, eps float64) (Line, bool) {
	if len(points) < 2 {
		return Line{}, false
	}
	l := LineThrough(points[0], points[1], eps)
	for _, p := range points[2:] {
		if !l.Contains(p, eps) {
			return Line{}, false
		}
	}
	return l, true
}
