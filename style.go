package glyphanim

// TextStyle describes what to draw: a string, the font identifier and size
// to shape it with, and the color the glyphs are filled with once stroking
// completes. It is an immutable value; hosts build a new one whenever the
// user edits text, font or size.
type TextStyle struct {
	// Font is a font identifier resolved through text.Registry.
	Font string

	// Size is the font size in pixels per em.
	Size float64

	// Text is the string to draw on a single line.
	Text string

	// Fill is the target fill color of the coloring tail.
	Fill RGBA
}

// DefaultTextStyle returns the fallback-safe style hosts substitute when a
// font cannot be resolved: "Go" at 50px, red fill.
func DefaultTextStyle() TextStyle {
	return TextStyle{
		Font: "Go",
		Size: 50,
		Text: "HelloGopher!",
		Fill: Red,
	}
}

// WithFont returns a copy of s using the given font identifier.
func (s TextStyle) WithFont(font string) TextStyle {
	s.Font = font
	return s
}

// WithText returns a copy of s drawing the given text.
func (s TextStyle) WithText(text string) TextStyle {
	s.Text = text
	return s
}

// WithSize returns a copy of s at the given size.
func (s TextStyle) WithSize(size float64) TextStyle {
	s.Size = size
	return s
}

// WithFill returns a copy of s with the given fill color.
func (s TextStyle) WithFill(c RGBA) TextStyle {
	s.Fill = c
	return s
}
