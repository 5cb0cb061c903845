package glyphanim

import (
	"math"
	"testing"
)

func TestPathMeasureLength(t *testing.T) {
	tests := []struct {
		name string
		path *Path
		want float64
	}{
		{"empty", NewPath(), 0},
		{"closed square", square(0, 0, 10), 40},
		{"two squares", func() *Path {
			p := square(0, 0, 10)
			p.Append(square(20, 0, 5), Identity())
			return p
		}(), 60},
		{"open polyline", func() *Path {
			p := NewPath()
			p.MoveTo(0, 0)
			p.LineTo(3, 4)
			return p
		}(), 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NewPathMeasure(tt.path).Length(); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Length() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPathMeasureTrim(t *testing.T) {
	m := NewPathMeasure(square(0, 0, 10))

	tests := []struct {
		name     string
		fraction float64
		elements int
		length   float64
		end      Point
	}{
		{"zero", 0, 0, 0, Point{}},
		{"nan", math.NaN(), 0, 0, Point{}},
		{"negative", -1, 0, 0, Point{}},
		{"first edge", 0.25, 2, 10, Pt(10, 0)},
		{"middle of second edge", 0.375, 3, 15, Pt(10, 5)},
		{"on closing edge", 0.875, 5, 35, Pt(0, 5)},
		{"full", 1, 5, 40, Pt(0, 0)},
		{"over", 3, 5, 40, Pt(0, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := m.Trim(tt.fraction)
			els := p.Elements()
			if len(els) != tt.elements {
				t.Fatalf("Trim(%v) has %d elements, want %d", tt.fraction, len(els), tt.elements)
			}
			if got := NewPathMeasure(p).Length(); math.Abs(got-tt.length) > 1e-9 {
				t.Errorf("trimmed length = %v, want %v", got, tt.length)
			}
			if len(els) == 0 {
				return
			}
			var end Point
			switch e := els[len(els)-1].(type) {
			case LineTo:
				end = e.Point
			case Close:
				end = Pt(0, 0)
			default:
				t.Fatalf("unexpected last element %T", e)
			}
			if end.Distance(tt.end) > 1e-9 {
				t.Errorf("trimmed end = %v, want %v", end, tt.end)
			}
		})
	}
}

func TestPathMeasureTrimCurve(t *testing.T) {
	p := NewPath()
	p.MoveTo(0, 0)
	p.CubicTo(0, 10, 10, 10, 10, 0)
	m := NewPathMeasure(p)

	half := m.Trim(0.5)
	got := NewPathMeasure(half).Length()
	if math.Abs(got-m.Length()/2) > 0.05 {
		t.Errorf("half trim length = %v, want %v", got, m.Length()/2)
	}
	// The curve is symmetric, so half its length ends on the axis x=5.
	last := half.Elements()[len(half.Elements())-1].(CubicTo)
	if math.Abs(last.Point.X-5) > 0.05 {
		t.Errorf("half trim ends at %v, want x=5", last.Point)
	}
}

func TestPathMeasureTrimMultipleContours(t *testing.T) {
	p := square(0, 0, 10)
	p.Append(square(20, 0, 10), Identity())
	m := NewPathMeasure(p)

	// Just past the first contour: it is complete and the second started.
	trimmed := m.Trim(0.5 + 1.0/80)
	if got := trimmed.Contours(); got != 2 {
		t.Fatalf("Contours() = %d, want 2", got)
	}
	if _, ok := trimmed.Elements()[4].(Close); !ok {
		t.Errorf("first contour not closed: %T", trimmed.Elements()[4])
	}
}
