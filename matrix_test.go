package glyphanim

import "testing"

func TestMatrixTransformPoint(t *testing.T) {
	tests := []struct {
		name string
		m    Matrix
		in   Point
		want Point
	}{
		{"identity", Identity(), Pt(3, 4), Pt(3, 4)},
		{"translate", Translate(10, -5), Pt(1, 1), Pt(11, -4)},
		{"scale", Scale(2, 3), Pt(1, 1), Pt(2, 3)},
		{"flip", FlipY(), Pt(7, 12), Pt(7, -12)},
		// Multiply applies its argument first: scale, then translate.
		{"translate after scale", Translate(10, 0).Multiply(Scale(2, 2)), Pt(1, 1), Pt(12, 2)},
		{"scale after translate", Scale(2, 2).Multiply(Translate(10, 0)), Pt(1, 1), Pt(22, 2)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.m.TransformPoint(tt.in); got != tt.want {
				t.Errorf("TransformPoint(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestFlipYInvolution(t *testing.T) {
	if m := FlipY().Multiply(FlipY()); !m.IsIdentity() {
		t.Errorf("FlipY twice = %+v, want identity", m)
	}
	if FlipY().IsIdentity() {
		t.Error("FlipY().IsIdentity() = true")
	}
}
