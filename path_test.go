package glyphanim

import (
	"math"
	"testing"
)

func square(x, y, size float64) *Path {
	p := NewPath()
	p.MoveTo(x, y)
	p.LineTo(x+size, y)
	p.LineTo(x+size, y+size)
	p.LineTo(x, y+size)
	p.Close()
	return p
}

func TestPathContours(t *testing.T) {
	p := square(0, 0, 10)
	p.Append(square(20, 0, 5), Identity())
	if got := p.Contours(); got != 2 {
		t.Errorf("Contours() = %d, want 2", got)
	}
	if got := len(p.Elements()); got != 10 {
		t.Errorf("len(Elements()) = %d, want 10", got)
	}
	var nilPath *Path
	if !nilPath.IsEmpty() || nilPath.Contours() != 0 {
		t.Error("nil path should be empty")
	}
}

func TestPathBoundingBox(t *testing.T) {
	tests := []struct {
		name string
		path func() *Path
		want Rect
	}{
		{"empty", NewPath, Rect{}},
		{"square", func() *Path { return square(1, 2, 3) }, XYWH(1, 2, 3, 3)},
		{"curve extrema", func() *Path {
			p := NewPath()
			p.MoveTo(0, 0)
			p.QuadraticTo(5, 10, 10, 0)
			p.Close()
			return p
		}, XYWH(0, 0, 10, 5)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.path().BoundingBox()
			if !rectNear(got, tt.want) {
				t.Errorf("BoundingBox() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestPathTransformFlip(t *testing.T) {
	p := square(0, 0, 10)
	flipped := p.Transform(FlipY())
	b := flipped.BoundingBox()
	if !rectNear(b, XYWH(0, -10, 10, 10)) {
		t.Errorf("flipped bounds = %+v", b)
	}
	// Transform must not touch the source.
	if b := p.BoundingBox(); !rectNear(b, XYWH(0, 0, 10, 10)) {
		t.Errorf("source bounds changed to %+v", b)
	}
}

func TestPathClone(t *testing.T) {
	p := square(0, 0, 1)
	c := p.Clone()
	c.LineTo(5, 5)
	if len(p.Elements()) == len(c.Elements()) {
		t.Error("Clone shares elements with the source")
	}
}

func rectNear(a, b Rect) bool {
	const eps = 1e-9
	return math.Abs(a.Min.X-b.Min.X) < eps && math.Abs(a.Min.Y-b.Min.Y) < eps &&
		math.Abs(a.Max.X-b.Max.X) < eps && math.Abs(a.Max.Y-b.Max.Y) < eps
}
