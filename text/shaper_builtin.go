package text

import (
	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
)

// BuiltinShaper positions glyphs using golang.org/x/image/font/sfnt:
// one glyph per rune, advance widths plus pair kerning from the kern
// table. No substitution is performed, which makes glyph counts equal to
// rune counts and output predictable for tests and simple scripts.
//
// BuiltinShaper is stateless and safe for concurrent use.
type BuiltinShaper struct{}

// NewBuiltinShaper creates a new BuiltinShaper.
func NewBuiltinShaper() *BuiltinShaper {
	return &BuiltinShaper{}
}

// Shape implements the Shaper interface.
func (s *BuiltinShaper) Shape(text string, face Face) []ShapedGlyph {
	if text == "" || face == nil {
		return nil
	}
	source := face.Source()
	if source == nil {
		return nil
	}
	f := source.sfntFont()
	if f == nil {
		return nil
	}

	var buf sfnt.Buffer
	ppem := floatToFixed(face.Size())
	result := make([]ShapedGlyph, 0, len(text))

	var (
		x    float64
		prev sfnt.GlyphIndex
	)
	for cluster, r := range []rune(text) {
		gid, err := f.GlyphIndex(&buf, r)
		if err != nil {
			gid = 0
		}
		if cluster > 0 {
			if kern, err := f.Kern(&buf, prev, gid, ppem, xfont.HintingNone); err == nil {
				x += fixedToFloat(kern)
			}
		}
		adv, err := f.GlyphAdvance(&buf, gid, ppem, xfont.HintingNone)
		if err != nil {
			adv = 0
		}
		result = append(result, ShapedGlyph{
			GID:      GlyphID(gid),
			Cluster:  cluster,
			X:        x,
			XAdvance: fixedToFloat(adv),
		})
		x += fixedToFloat(adv)
		prev = gid
	}
	return result
}
