package text

import (
	"sync"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
)

// GoTextShaper provides HarfBuzz-level text shaping using go-text/typesetting.
// It applies kerning, ligature substitution and contextual alternates, so
// the glyph count may be lower than the rune count.
//
// GoTextShaper is safe for concurrent use. font.Face is not, so every
// Shape call wraps the shared *font.Font in a fresh face; HarfbuzzShaper
// instances are pooled for the same reason.
type GoTextShaper struct {
	shaperPool sync.Pool
}

// NewGoTextShaper creates a new GoTextShaper.
func NewGoTextShaper() *GoTextShaper {
	return &GoTextShaper{
		shaperPool: sync.Pool{
			New: func() any {
				return &shaping.HarfbuzzShaper{}
			},
		},
	}
}

// Shape implements the Shaper interface.
func (s *GoTextShaper) Shape(text string, face Face) []ShapedGlyph {
	if text == "" || face == nil {
		return nil
	}
	source := face.Source()
	if source == nil {
		return nil
	}
	goTextFont := source.goTextFont()
	if goTextFont == nil {
		return nil
	}

	runes := []rune(text)
	dir := mapDirection(face.Direction())
	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: dir,
		Face:      font.NewFace(goTextFont),
		Size:      floatToFixed(face.Size()),
		Script:    detectScript(runes),
		Language:  language.NewLanguage(face.Language()),
	}

	hb := s.shaperPool.Get().(*shaping.HarfbuzzShaper)
	output := hb.Shape(input)
	s.shaperPool.Put(hb)

	return convertGlyphs(output.Glyphs)
}

// mapDirection converts our Direction to go-text's di.Direction.
func mapDirection(d Direction) di.Direction {
	if d == DirectionRTL {
		return di.DirectionRTL
	}
	return di.DirectionLTR
}

// detectScript returns the script of the first non-space rune. Mixed
// script strings are shaped as one run.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}

// convertGlyphs accumulates go-text advances into pen positions. go-text
// offsets already use the y-up layout convention.
func convertGlyphs(glyphs []shaping.Glyph) []ShapedGlyph {
	if len(glyphs) == 0 {
		return nil
	}

	result := make([]ShapedGlyph, len(glyphs))
	var x float64
	for i, g := range glyphs {
		adv := fixedToFloat(g.Advance)
		result[i] = ShapedGlyph{
			GID:      GlyphID(uint16(g.GlyphID)), //nolint:gosec // TrueType glyph indices are 16-bit
			Cluster:  g.TextIndex(),
			X:        x + fixedToFloat(g.XOffset),
			Y:        fixedToFloat(g.YOffset),
			XAdvance: adv,
		}
		x += adv
	}
	return result
}
