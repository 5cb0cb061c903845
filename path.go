package glyphanim

// PathElement is a single drawing command in a Path.
type PathElement interface {
	isPathElement()
}

// MoveTo starts a new contour at Point.
type MoveTo struct {
	Point Point
}

func (MoveTo) isPathElement() {}

// LineTo draws a straight segment to Point.
type LineTo struct {
	Point Point
}

func (LineTo) isPathElement() {}

// QuadTo draws a quadratic Bezier segment.
type QuadTo struct {
	Control Point
	Point   Point
}

func (QuadTo) isPathElement() {}

// CubicTo draws a cubic Bezier segment.
type CubicTo struct {
	Control1 Point
	Control2 Point
	Point    Point
}

func (CubicTo) isPathElement() {}

// Close ends the current contour with a straight segment back to its start.
type Close struct{}

func (Close) isPathElement() {}

// Path is an ordered sequence of contours. Glyph outlines are made of
// closed contours; the animator treats the whole sequence as one stroke.
type Path struct {
	elements []PathElement
	start    Point
	current  Point
}

// NewPath creates an empty path.
func NewPath() *Path {
	return &Path{elements: make([]PathElement, 0, 64)}
}

// MoveTo starts a new contour.
func (p *Path) MoveTo(x, y float64) {
	pt := Pt(x, y)
	p.elements = append(p.elements, MoveTo{Point: pt})
	p.start = pt
	p.current = pt
}

// LineTo adds a straight segment.
func (p *Path) LineTo(x, y float64) {
	pt := Pt(x, y)
	p.elements = append(p.elements, LineTo{Point: pt})
	p.current = pt
}

// QuadraticTo adds a quadratic Bezier segment.
func (p *Path) QuadraticTo(cx, cy, x, y float64) {
	pt := Pt(x, y)
	p.elements = append(p.elements, QuadTo{Control: Pt(cx, cy), Point: pt})
	p.current = pt
}

// CubicTo adds a cubic Bezier segment.
func (p *Path) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	pt := Pt(x, y)
	p.elements = append(p.elements, CubicTo{Control1: Pt(c1x, c1y), Control2: Pt(c2x, c2y), Point: pt})
	p.current = pt
}

// Close closes the current contour.
func (p *Path) Close() {
	p.elements = append(p.elements, Close{})
	p.current = p.start
}

// Elements returns the path elements. The slice must not be modified.
func (p *Path) Elements() []PathElement {
	if p == nil {
		return nil
	}
	return p.elements
}

// IsEmpty reports whether the path has no elements.
func (p *Path) IsEmpty() bool {
	return p == nil || len(p.elements) == 0
}

// Contours returns the number of contours (MoveTo elements) in the path.
func (p *Path) Contours() int {
	n := 0
	for _, e := range p.Elements() {
		if _, ok := e.(MoveTo); ok {
			n++
		}
	}
	return n
}

// Append adds every element of other to p, transformed by m.
func (p *Path) Append(other *Path, m Matrix) {
	for _, elem := range other.Elements() {
		switch e := elem.(type) {
		case MoveTo:
			pt := m.TransformPoint(e.Point)
			p.MoveTo(pt.X, pt.Y)
		case LineTo:
			pt := m.TransformPoint(e.Point)
			p.LineTo(pt.X, pt.Y)
		case QuadTo:
			c := m.TransformPoint(e.Control)
			pt := m.TransformPoint(e.Point)
			p.QuadraticTo(c.X, c.Y, pt.X, pt.Y)
		case CubicTo:
			c1 := m.TransformPoint(e.Control1)
			c2 := m.TransformPoint(e.Control2)
			pt := m.TransformPoint(e.Point)
			p.CubicTo(c1.X, c1.Y, c2.X, c2.Y, pt.X, pt.Y)
		case Close:
			p.Close()
		}
	}
}

// Transform returns a new path with m applied to every point.
func (p *Path) Transform(m Matrix) *Path {
	result := NewPath()
	result.Append(p, m)
	return result
}

// Clone returns a deep copy of the path.
func (p *Path) Clone() *Path {
	result := &Path{elements: make([]PathElement, len(p.Elements()))}
	copy(result.elements, p.Elements())
	if p != nil {
		result.start = p.start
		result.current = p.current
	}
	return result
}

// BoundingBox returns the tight bounds of the path using curve extrema.
// An empty path has the zero Rect.
func (p *Path) BoundingBox() Rect {
	var (
		bbox    Rect
		current Point
		seen    bool
	)
	add := func(r Rect) {
		if !seen {
			bbox, seen = r, true
			return
		}
		bbox = bbox.Union(r)
	}
	for _, elem := range p.Elements() {
		switch e := elem.(type) {
		case MoveTo:
			add(NewRect(e.Point, e.Point))
			current = e.Point
		case LineTo:
			add(NewRect(e.Point, e.Point))
			current = e.Point
		case QuadTo:
			add(QuadBez{current, e.Control, e.Point}.BoundingBox())
			current = e.Point
		case CubicTo:
			add(CubicBez{current, e.Control1, e.Control2, e.Point}.BoundingBox())
			current = e.Point
		}
	}
	return bbox
}
