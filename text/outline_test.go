package text

import (
	"testing"
)

func glyphFor(t *testing.T, face Face, r string) GlyphID {
	t.Helper()
	glyphs := NewBuiltinShaper().Shape(r, face)
	if len(glyphs) != 1 {
		t.Fatalf("Shape(%q) = %d glyphs", r, len(glyphs))
	}
	return glyphs[0].GID
}

func TestExtractOutline(t *testing.T) {
	face := goRegularFace(t, 50)
	ex := NewOutlineExtractor()

	tests := []struct {
		char         string
		wantContours int
	}{
		{"H", 1},
		{"o", 2},
		{"B", 3},
		{"i", 2},
	}
	for _, tt := range tests {
		t.Run(tt.char, func(t *testing.T) {
			gid := glyphFor(t, face, tt.char)
			o, err := ex.Extract(face, gid)
			if err != nil {
				t.Fatalf("Extract() error = %v", err)
			}
			if o.IsEmpty() {
				t.Fatal("outline is empty")
			}
			if o.GID != gid {
				t.Errorf("GID = %d, want %d", o.GID, gid)
			}
			if got := o.Contours(); got != tt.wantContours {
				t.Errorf("Contours() = %d, want %d", got, tt.wantContours)
			}
			if o.Segments[0].Op != OutlineOpMoveTo {
				t.Errorf("first op = %v, want MoveTo", o.Segments[0].Op)
			}
			b := o.Bounds
			if b.Empty() || b.Height() > 50 || b.MinY < -1 {
				t.Errorf("Bounds = %+v", b)
			}
		})
	}
}

func TestExtractSpaceIsEmpty(t *testing.T) {
	face := goRegularFace(t, 50)
	o, err := NewOutlineExtractor().Extract(face, glyphFor(t, face, " "))
	if err != nil {
		t.Fatal(err)
	}
	if !o.IsEmpty() || o.Contours() != 0 {
		t.Errorf("space outline has %d segments", len(o.Segments))
	}
}

func TestExtractScalesWithSize(t *testing.T) {
	small := goRegularFace(t, 10)
	large := goRegularFace(t, 40)
	gid := glyphFor(t, small, "H")
	ex := NewOutlineExtractor()
	a, err := ex.Extract(small, gid)
	if err != nil {
		t.Fatal(err)
	}
	b, err := ex.Extract(large, gid)
	if err != nil {
		t.Fatal(err)
	}
	ratio := b.Bounds.Height() / a.Bounds.Height()
	if ratio < 3.99 || ratio > 4.01 {
		t.Errorf("height ratio = %v, want 4", ratio)
	}
}

func TestGlyphOutlineTranslate(t *testing.T) {
	o := &GlyphOutline{
		GID: 7,
		Segments: []OutlineSegment{
			{Op: OutlineOpMoveTo, Points: [3]OutlinePoint{{0, 0}}},
			{Op: OutlineOpQuadTo, Points: [3]OutlinePoint{{1, 2}, {2, 0}}},
		},
		Bounds: Rect{MaxX: 2, MaxY: 2},
	}
	moved := o.Translate(10, -1)
	if moved.GID != 7 {
		t.Errorf("GID = %d", moved.GID)
	}
	if got := moved.Segments[1].Points[0]; got != (OutlinePoint{11, 1}) {
		t.Errorf("control = %v, want {11 1}", got)
	}
	if got := moved.Bounds; got != (Rect{MinX: 10, MinY: -1, MaxX: 12, MaxY: 1}) {
		t.Errorf("Bounds = %+v", got)
	}
	if o.Segments[1].Points[0] != (OutlinePoint{1, 2}) {
		t.Error("Translate modified the receiver")
	}

	var nilOutline *GlyphOutline
	if nilOutline.Translate(1, 1) != nil || !nilOutline.IsEmpty() || nilOutline.Contours() != 0 {
		t.Error("nil outline helpers misbehave")
	}
}
