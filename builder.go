package glyphanim

import (
	"fmt"

	"golang.org/x/text/unicode/norm"

	"github.com/gogpu/glyphanim/text"
)

// MergedPath is the outline of a whole string: the union of every glyph
// contour, each translated to its pen position, in device orientation
// (y down, baseline at y=0).
type MergedPath struct {
	// Path holds all contours. It must not be modified.
	Path *Path

	// Bounds is the tight bounding box of Path.
	Bounds Rect

	// Glyphs is the number of shaped glyphs, including blank ones.
	// Blank glyphs (spaces) add no contour, so Contours() >= Glyphs holds
	// only when every glyph has an outline; whitespace-only text has
	// Glyphs > 0 and no contours.
	Glyphs int

	measure *PathMeasure
}

// IsEmpty reports whether the path has no contours.
func (m *MergedPath) IsEmpty() bool {
	return m == nil || m.Path.IsEmpty()
}

// Contours returns the number of closed contours.
func (m *MergedPath) Contours() int {
	if m == nil {
		return 0
	}
	return m.Path.Contours()
}

// Length returns the total outline length, the distance a full stroke
// travels.
func (m *MergedPath) Length() float64 {
	if m == nil {
		return 0
	}
	return m.measure.Length()
}

// Trim returns the leading fraction of the outline, the part of the stroke
// drawn at that progress.
func (m *MergedPath) Trim(progress float64) *Path {
	if m == nil {
		return NewPath()
	}
	return m.measure.Trim(progress)
}

func newMergedPath(p *Path, glyphs int) *MergedPath {
	return &MergedPath{
		Path:    p,
		Bounds:  p.BoundingBox(),
		Glyphs:  glyphs,
		measure: NewPathMeasure(p),
	}
}

// BuilderOption configures a Builder.
type BuilderOption func(*Builder)

// WithRegistry sets the font registry used to resolve TextStyle.Font.
// The default is text.DefaultRegistry().
func WithRegistry(r *text.Registry) BuilderOption {
	return func(b *Builder) {
		b.registry = r
	}
}

// WithShaper sets the shaper. The default is the global text shaper.
func WithShaper(s text.Shaper) BuilderOption {
	return func(b *Builder) {
		b.shaper = s
	}
}

// Builder converts a TextStyle into a MergedPath. Build depends only on its
// argument and the builder's configuration, so it is safe for concurrent
// use and gives identical geometry for identical styles.
type Builder struct {
	registry  *text.Registry
	shaper    text.Shaper
	extractor *text.OutlineExtractor
}

// NewBuilder creates a Builder.
func NewBuilder(opts ...BuilderOption) *Builder {
	b := &Builder{extractor: text.NewOutlineExtractor()}
	for _, opt := range opts {
		opt(b)
	}
	if b.registry == nil {
		b.registry = text.DefaultRegistry()
	}
	return b
}

// Registry returns the registry fonts are resolved from.
func (b *Builder) Registry() *text.Registry {
	return b.registry
}

// Build shapes style.Text and merges the glyph outlines into one path.
//
// Empty text and non-positive sizes produce an empty MergedPath without
// consulting the registry. An unknown font yields a *FontResolutionError.
//
// Outlines are assembled in layout coordinates (y up) and flipped into
// device orientation once, after the union, so Bounds and Path always
// agree.
func (b *Builder) Build(style TextStyle) (*MergedPath, error) {
	s := norm.NFC.String(style.Text)
	if s == "" || !(style.Size > 0) {
		return newMergedPath(NewPath(), 0), nil
	}

	src, err := b.registry.Lookup(style.Font)
	if err != nil {
		return nil, fmt.Errorf("glyphanim: build: %w", err)
	}
	face := src.Face(style.Size)

	shaper := b.shaper
	if shaper == nil {
		shaper = text.GetShaper()
	}
	glyphs := shaper.Shape(s, face)

	layout := NewPath()
	for _, g := range glyphs {
		outline, err := b.extractor.Extract(face, g.GID)
		if err != nil {
			return nil, fmt.Errorf("glyphanim: build: glyph %d: %w", g.GID, err)
		}
		appendOutline(layout, outline, g.X, g.Y)
	}

	merged := newMergedPath(layout.Transform(FlipY()), len(glyphs))
	Logger().Debug("glyphanim: path built",
		"font", src.Name(),
		"size", style.Size,
		"glyphs", merged.Glyphs,
		"contours", merged.Contours(),
		"bounds", merged.Bounds)
	return merged, nil
}

// appendOutline adds a glyph outline to p at pen position (x, y), closing
// every contour explicitly.
func appendOutline(p *Path, o *text.GlyphOutline, x, y float64) {
	if o.IsEmpty() {
		return
	}
	pt := func(op text.OutlinePoint) (float64, float64) {
		return float64(op.X) + x, float64(op.Y) + y
	}
	open := false
	for _, seg := range o.Segments {
		switch seg.Op {
		case text.OutlineOpMoveTo:
			if open {
				p.Close()
			}
			px, py := pt(seg.Points[0])
			p.MoveTo(px, py)
			open = true
		case text.OutlineOpLineTo:
			px, py := pt(seg.Points[0])
			p.LineTo(px, py)
		case text.OutlineOpQuadTo:
			cx, cy := pt(seg.Points[0])
			px, py := pt(seg.Points[1])
			p.QuadraticTo(cx, cy, px, py)
		case text.OutlineOpCubicTo:
			c1x, c1y := pt(seg.Points[0])
			c2x, c2y := pt(seg.Points[1])
			px, py := pt(seg.Points[2])
			p.CubicTo(c1x, c1y, c2x, c2y, px, py)
		}
	}
	if open {
		p.Close()
	}
}
