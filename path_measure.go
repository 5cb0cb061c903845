package glyphanim

// lengthAccuracy is the arc length tolerance in path units.
const lengthAccuracy = 0.01

type segmentKind uint8

const (
	segmentLine segmentKind = iota
	segmentQuad
	segmentCubic
	segmentClose
)

// measuredSegment is one drawable piece of a path with its arc length.
type measuredSegment struct {
	kind   segmentKind
	pts    [4]Point
	length float64
	// first marks the first segment of a contour; a MoveTo is emitted
	// before it when trimming.
	first bool
}

// PathMeasure caches per-segment arc lengths of a path so that partial
// strokes can be produced for every animation frame without measuring
// the curves again.
type PathMeasure struct {
	segments []measuredSegment
	total    float64
}

// NewPathMeasure measures p. Closing segments count towards the length,
// so a fully trimmed closed contour is stroked all the way round.
func NewPathMeasure(p *Path) *PathMeasure {
	m := &PathMeasure{}
	var start, current Point
	first := false
	for _, elem := range p.Elements() {
		var seg measuredSegment
		switch e := elem.(type) {
		case MoveTo:
			start, current = e.Point, e.Point
			first = true
			continue
		case LineTo:
			seg = measuredSegment{kind: segmentLine, pts: [4]Point{current, e.Point}}
			seg.length = current.Distance(e.Point)
			current = e.Point
		case QuadTo:
			q := QuadBez{current, e.Control, e.Point}
			seg = measuredSegment{kind: segmentQuad, pts: [4]Point{q.P0, q.P1, q.P2}}
			seg.length = q.Length(lengthAccuracy)
			current = e.Point
		case CubicTo:
			c := CubicBez{current, e.Control1, e.Control2, e.Point}
			seg = measuredSegment{kind: segmentCubic, pts: [4]Point{c.P0, c.P1, c.P2, c.P3}}
			seg.length = c.Length(lengthAccuracy)
			current = e.Point
		case Close:
			seg = measuredSegment{kind: segmentClose, pts: [4]Point{current, start}}
			seg.length = current.Distance(start)
			current = start
		}
		seg.first = first
		first = false
		m.segments = append(m.segments, seg)
		m.total += seg.length
	}
	return m
}

// Length returns the total arc length.
func (m *PathMeasure) Length() float64 {
	return m.total
}

// Trim returns the leading part of the measured path covering the given
// fraction of its total length. Fractions are clamped to [0, 1]; 0 gives
// an empty path and 1 gives every contour including its closing segment.
// NaN is treated as 0.
func (m *PathMeasure) Trim(fraction float64) *Path {
	out := NewPath()
	if !(fraction > 0) || len(m.segments) == 0 {
		return out
	}
	if fraction > 1 {
		fraction = 1
	}
	remaining := fraction * m.total
	for _, seg := range m.segments {
		if seg.first {
			out.MoveTo(seg.pts[0].X, seg.pts[0].Y)
		}
		if seg.length <= remaining || fraction == 1 {
			emitSegment(out, seg)
			remaining -= seg.length
			continue
		}
		emitPartial(out, seg, remaining)
		break
	}
	return out
}

func emitSegment(out *Path, seg measuredSegment) {
	p := seg.pts
	switch seg.kind {
	case segmentLine:
		out.LineTo(p[1].X, p[1].Y)
	case segmentQuad:
		out.QuadraticTo(p[1].X, p[1].Y, p[2].X, p[2].Y)
	case segmentCubic:
		out.CubicTo(p[1].X, p[1].Y, p[2].X, p[2].Y, p[3].X, p[3].Y)
	case segmentClose:
		out.Close()
	}
}

// emitPartial draws the first `length` units of seg.
func emitPartial(out *Path, seg measuredSegment, length float64) {
	if length <= 0 || seg.length <= 0 {
		return
	}
	p := seg.pts
	switch seg.kind {
	case segmentLine, segmentClose:
		end := p[0].Lerp(p[1], length/seg.length)
		out.LineTo(end.X, end.Y)
	case segmentQuad:
		q := QuadBez{p[0], p[1], p[2]}
		t := solveParam(length, func(t float64) float64 {
			l, _ := q.Split(t)
			return l.Length(lengthAccuracy)
		})
		l, _ := q.Split(t)
		out.QuadraticTo(l.P1.X, l.P1.Y, l.P2.X, l.P2.Y)
	case segmentCubic:
		c := CubicBez{p[0], p[1], p[2], p[3]}
		t := solveParam(length, func(t float64) float64 {
			l, _ := c.Split(t)
			return l.Length(lengthAccuracy)
		})
		l, _ := c.Split(t)
		out.CubicTo(l.P1.X, l.P1.Y, l.P2.X, l.P2.Y, l.P3.X, l.P3.Y)
	}
}

// solveParam finds t in [0, 1] with lengthAt(t) ≈ target by bisection.
// lengthAt must be monotonic.
func solveParam(target float64, lengthAt func(float64) float64) float64 {
	lo, hi := 0.0, 1.0
	for i := 0; i < 24; i++ {
		mid := (lo + hi) / 2
		if lengthAt(mid) < target {
			lo = mid
		} else {
			hi = mid
		}
	}
	return (lo + hi) / 2
}
