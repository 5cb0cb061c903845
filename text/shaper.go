package text

import "sync"

// Shaper converts text to positioned glyphs.
// Implementations provide different levels of text shaping support:
//   - GoTextShaper: HarfBuzz shaping from go-text/typesetting (default)
//   - BuiltinShaper: advances and pair kerning from golang.org/x/image/font/sfnt
type Shaper interface {
	// Shape converts text into glyphs positioned along a single
	// horizontal line in layout units (y up). The font size is obtained
	// from face.Size().
	Shape(text string, face Face) []ShapedGlyph
}

var (
	shaperMu     sync.RWMutex
	globalShaper Shaper = NewGoTextShaper()
)

// SetShaper sets the global shaper used by Shape().
// Pass nil to reset to the default GoTextShaper.
func SetShaper(s Shaper) {
	shaperMu.Lock()
	defer shaperMu.Unlock()
	if s == nil {
		s = NewGoTextShaper()
	}
	globalShaper = s
}

// GetShaper returns the current global shaper.
func GetShaper() Shaper {
	shaperMu.RLock()
	defer shaperMu.RUnlock()
	return globalShaper
}

// Shape is a convenience function that uses the global shaper.
func Shape(text string, face Face) []ShapedGlyph {
	return GetShaper().Shape(text, face)
}
