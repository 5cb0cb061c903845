package glyphanim

import (
	"testing"
)

func TestDefaultStrokeStyle(t *testing.T) {
	s := DefaultStrokeStyle()

	if s.Width != 1.0 {
		t.Errorf("DefaultStrokeStyle().Width = %v, want 1.0", s.Width)
	}
	if s.Color != Black {
		t.Errorf("DefaultStrokeStyle().Color = %v, want Black", s.Color)
	}
	if s.Join != LineJoinBevel {
		t.Errorf("DefaultStrokeStyle().Join = %v, want LineJoinBevel", s.Join)
	}
	if s.MiterLimit != 4.0 {
		t.Errorf("DefaultStrokeStyle().MiterLimit = %v, want 4.0", s.MiterLimit)
	}
}

func TestStrokeStyleWith(t *testing.T) {
	base := DefaultStrokeStyle()
	s := base.WithWidth(3).WithColor(Red).WithJoin(LineJoinRound)

	if s.Width != 3 || s.Color != Red || s.Join != LineJoinRound {
		t.Errorf("chained style = %+v", s)
	}
	if s.MiterLimit != base.MiterLimit {
		t.Errorf("MiterLimit changed to %v", s.MiterLimit)
	}
	if base != DefaultStrokeStyle() {
		t.Error("With* modified the receiver")
	}
}

func TestLineJoinString(t *testing.T) {
	tests := []struct {
		join LineJoin
		want string
	}{
		{LineJoinBevel, "Bevel"},
		{LineJoinMiter, "Miter"},
		{LineJoinRound, "Round"},
		{LineJoin(99), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.join.String(); got != tt.want {
			t.Errorf("LineJoin(%d).String() = %q, want %q", tt.join, got, tt.want)
		}
	}
}

func TestTextStyleWith(t *testing.T) {
	base := DefaultTextStyle()
	if base.Font != "Go" || base.Size != 50 || base.Text != "HelloGopher!" || base.Fill != Red {
		t.Fatalf("DefaultTextStyle() = %+v", base)
	}

	s := base.WithFont("Go Mono").WithText("hi").WithSize(12).WithFill(Black)
	want := TextStyle{Font: "Go Mono", Size: 12, Text: "hi", Fill: Black}
	if s != want {
		t.Errorf("chained style = %+v, want %+v", s, want)
	}
	if base != DefaultTextStyle() {
		t.Error("With* modified the receiver")
	}
}
