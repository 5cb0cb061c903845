package glyphanim

import "math"

// maxLengthDepth bounds the subdivision used for arc length.
const maxLengthDepth = 12

// QuadBez is a quadratic Bezier segment. P1 is the control point.
type QuadBez struct {
	P0, P1, P2 Point
}

// Eval returns the point at parameter t in [0, 1].
func (q QuadBez) Eval(t float64) Point {
	a := q.P0.Lerp(q.P1, t)
	b := q.P1.Lerp(q.P2, t)
	return a.Lerp(b, t)
}

// Split cuts the curve at t with de Casteljau's construction.
func (q QuadBez) Split(t float64) (QuadBez, QuadBez) {
	a := q.P0.Lerp(q.P1, t)
	b := q.P1.Lerp(q.P2, t)
	m := a.Lerp(b, t)
	return QuadBez{q.P0, a, m}, QuadBez{m, b, q.P2}
}

// BoundingBox returns the tight bounds of the curve, including interior
// extrema.
func (q QuadBez) BoundingBox() Rect {
	r := NewRect(q.P0, q.P2)
	for _, t := range [2]float64{
		quadRoot(q.P0.X, q.P1.X, q.P2.X),
		quadRoot(q.P0.Y, q.P1.Y, q.P2.Y),
	} {
		if t > 0 && t < 1 {
			r = r.extend(q.Eval(t))
		}
	}
	return r
}

// quadRoot solves the derivative of a 1D quadratic Bezier for zero.
// Returns -1 when there is no single root.
func quadRoot(p0, p1, p2 float64) float64 {
	den := p0 - 2*p1 + p2
	if den == 0 {
		return -1
	}
	return (p0 - p1) / den
}

// Length approximates the arc length by adaptive subdivision until chord
// and control polygon agree within accuracy.
func (q QuadBez) Length(accuracy float64) float64 {
	return q.length(accuracy, 0)
}

func (q QuadBez) length(accuracy float64, depth int) float64 {
	chord := q.P0.Distance(q.P2)
	poly := q.P0.Distance(q.P1) + q.P1.Distance(q.P2)
	if poly-chord <= accuracy || depth >= maxLengthDepth {
		return (chord + poly) / 2
	}
	l, r := q.Split(0.5)
	return l.length(accuracy/2, depth+1) + r.length(accuracy/2, depth+1)
}

// CubicBez is a cubic Bezier segment. P1 and P2 are control points.
type CubicBez struct {
	P0, P1, P2, P3 Point
}

// Eval returns the point at parameter t in [0, 1].
func (c CubicBez) Eval(t float64) Point {
	a := c.P0.Lerp(c.P1, t)
	b := c.P1.Lerp(c.P2, t)
	d := c.P2.Lerp(c.P3, t)
	ab := a.Lerp(b, t)
	bd := b.Lerp(d, t)
	return ab.Lerp(bd, t)
}

// Split cuts the curve at t with de Casteljau's construction.
func (c CubicBez) Split(t float64) (CubicBez, CubicBez) {
	a := c.P0.Lerp(c.P1, t)
	b := c.P1.Lerp(c.P2, t)
	d := c.P2.Lerp(c.P3, t)
	ab := a.Lerp(b, t)
	bd := b.Lerp(d, t)
	m := ab.Lerp(bd, t)
	return CubicBez{c.P0, a, ab, m}, CubicBez{m, bd, d, c.P3}
}

// BoundingBox returns the tight bounds of the curve, including interior
// extrema.
func (c CubicBez) BoundingBox() Rect {
	r := NewRect(c.P0, c.P3)
	var roots [4]float64
	n := cubicRoots(c.P0.X, c.P1.X, c.P2.X, c.P3.X, roots[:0])
	n = cubicRoots(c.P0.Y, c.P1.Y, c.P2.Y, c.P3.Y, n)
	for _, t := range n {
		r = r.extend(c.Eval(t))
	}
	return r
}

// cubicRoots appends the parameters in (0, 1) where the derivative of a
// 1D cubic Bezier vanishes.
func cubicRoots(p0, p1, p2, p3 float64, dst []float64) []float64 {
	// B'(t)/3 = a t^2 + b t + c
	a := -p0 + 3*p1 - 3*p2 + p3
	b := 2 * (p0 - 2*p1 + p2)
	c := p1 - p0

	add := func(t float64) {
		if t > 0 && t < 1 {
			dst = append(dst, t)
		}
	}
	const eps = 1e-12
	if math.Abs(a) < eps {
		if math.Abs(b) > eps {
			add(-c / b)
		}
		return dst
	}
	disc := b*b - 4*a*c
	if disc < 0 {
		return dst
	}
	sq := math.Sqrt(disc)
	add((-b + sq) / (2 * a))
	add((-b - sq) / (2 * a))
	return dst
}

// Length approximates the arc length by adaptive subdivision until chord
// and control polygon agree within accuracy.
func (c CubicBez) Length(accuracy float64) float64 {
	return c.length(accuracy, 0)
}

func (c CubicBez) length(accuracy float64, depth int) float64 {
	chord := c.P0.Distance(c.P3)
	poly := c.P0.Distance(c.P1) + c.P1.Distance(c.P2) + c.P2.Distance(c.P3)
	if poly-chord <= accuracy || depth >= maxLengthDepth {
		return (chord + poly) / 2
	}
	l, r := c.Split(0.5)
	return l.length(accuracy/2, depth+1) + r.length(accuracy/2, depth+1)
}
