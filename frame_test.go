package glyphanim

import "testing"

func TestFramePaths(t *testing.T) {
	mp := newMergedPath(square(0, 0, 10), 1)
	tests := []struct {
		name       string
		frame      Frame
		strokeLen  float64
		fillEmpty  bool
		wantBounds Rect
	}{
		{
			name:       "nothing drawn",
			frame:      Frame{Path: mp, Placement: Identity(), Fill: Transparent},
			fillEmpty:  true,
			wantBounds: XYWH(0, 0, 10, 10),
		},
		{
			name:       "half stroke",
			frame:      Frame{Path: mp, Placement: Translate(5, 5), StrokeEnd: 0.5, Fill: Transparent},
			strokeLen:  20,
			fillEmpty:  true,
			wantBounds: XYWH(5, 5, 10, 10),
		},
		{
			name:       "filled",
			frame:      Frame{Path: mp, Placement: Identity(), StrokeEnd: 1, Fill: Red},
			strokeLen:  40,
			wantBounds: XYWH(0, 0, 10, 10),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NewPathMeasure(tt.frame.StrokePath()).Length(); got != tt.strokeLen {
				t.Errorf("stroke length = %v, want %v", got, tt.strokeLen)
			}
			if got := tt.frame.FillPath().IsEmpty(); got != tt.fillEmpty {
				t.Errorf("FillPath().IsEmpty() = %v, want %v", got, tt.fillEmpty)
			}
			if got := tt.frame.Bounds(); !rectNear(got, tt.wantBounds) {
				t.Errorf("Bounds() = %+v, want %+v", got, tt.wantBounds)
			}
		})
	}
}

func TestFrameEmptyPath(t *testing.T) {
	f := Frame{Path: newMergedPath(NewPath(), 0), StrokeEnd: 1, Fill: Red}
	if !f.StrokePath().IsEmpty() || !f.FillPath().IsEmpty() {
		t.Error("empty merged path produced geometry")
	}
	if f.Bounds() != (Rect{}) {
		t.Errorf("Bounds() = %+v, want zero", f.Bounds())
	}
}

func TestPlacement(t *testing.T) {
	bounds := XYWH(0, -40, 100, 50)
	m := placement(bounds, XYWH(0, 0, 200, 100))
	if got := m.TransformPoint(bounds.Center()); got != Pt(100, 50) {
		t.Errorf("placed center = %v, want (100, 50)", got)
	}
	if !placement(bounds, Rect{}).IsIdentity() {
		t.Error("placement without a frame should be identity")
	}
}
