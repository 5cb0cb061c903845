package glyphanim

// LineJoin specifies the shape of line joins.
type LineJoin int

const (
	// LineJoinBevel cuts the corner off. Glyph strokes use it by default.
	LineJoinBevel LineJoin = iota
	// LineJoinMiter specifies a sharp (mitered) join.
	LineJoinMiter
	// LineJoinRound specifies a rounded join.
	LineJoinRound
)

func (j LineJoin) String() string {
	switch j {
	case LineJoinBevel:
		return "Bevel"
	case LineJoinMiter:
		return "Miter"
	case LineJoinRound:
		return "Round"
	default:
		return "Unknown"
	}
}

// StrokeStyle is the paint of the outline stroke. It is drawn in every
// frame, before and after the fill appears.
type StrokeStyle struct {
	// Color of the stroke. Default: Black.
	Color RGBA

	// Width is the line width in pixels. Default: 1.0
	Width float64

	// Join is the shape of line joins. Default: LineJoinBevel
	Join LineJoin

	// MiterLimit applies to LineJoinMiter only. Default: 4.0
	MiterLimit float64
}

// DefaultStrokeStyle returns a solid black 1-pixel stroke with bevel joins.
func DefaultStrokeStyle() StrokeStyle {
	return StrokeStyle{
		Color:      Black,
		Width:      1.0,
		Join:       LineJoinBevel,
		MiterLimit: 4.0,
	}
}

// WithWidth returns a copy of the style with the given width.
func (s StrokeStyle) WithWidth(w float64) StrokeStyle {
	s.Width = w
	return s
}

// WithColor returns a copy of the style with the given color.
func (s StrokeStyle) WithColor(c RGBA) StrokeStyle {
	s.Color = c
	return s
}

// WithJoin returns a copy of the style with the given line join.
func (s StrokeStyle) WithJoin(join LineJoin) StrokeStyle {
	s.Join = join
	return s
}
