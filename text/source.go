package text

import (
	"bytes"
	"fmt"
	"os"
	"sync"

	"github.com/go-text/typesetting/font"
	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// FontSource represents a loaded font file.
// One FontSource can create multiple Face instances at different sizes.
//
// The font is parsed twice: go-text/typesetting provides shaping and glyph
// outlines, golang.org/x/image/font/sfnt provides names, metrics and the
// data behind BuiltinShaper. Both views are read-only after parsing.
//
// FontSource is safe for concurrent use.
// FontSource must not be copied after creation (enforced by copyCheck).
type FontSource struct {
	// addr is used for copy protection (Ebitengine pattern).
	addr *FontSource

	mu     sync.RWMutex
	data   []byte
	gotext *font.Font
	sfnt   *opentype.Font

	name     string
	fullName string
	family   string
}

// NewFontSource creates a FontSource from font data (TTF or OTF).
// The data slice is copied internally and can be reused after this call.
func NewFontSource(data []byte, opts ...SourceOption) (*FontSource, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}

	var config sourceConfig
	for _, opt := range opts {
		opt(&config)
	}

	dataCopy := make([]byte, len(data))
	copy(dataCopy, data)

	sf, err := opentype.Parse(dataCopy)
	if err != nil {
		return nil, &FontError{Font: config.name, Reason: "failed to parse font", Err: err}
	}
	gf, err := font.ParseTTF(bytes.NewReader(dataCopy))
	if err != nil {
		return nil, &FontError{Font: config.name, Reason: "failed to load font for shaping", Err: err}
	}

	s := &FontSource{
		data:   dataCopy,
		gotext: gf.Font,
		sfnt:   sf,
	}
	s.addr = s

	s.family = sfntName(sf, sfnt.NameIDFamily)
	s.fullName = sfntName(sf, sfnt.NameIDFull)
	s.name = config.name
	if s.name == "" {
		s.name = s.fullName
	}
	if s.name == "" {
		s.name = s.family
	}
	if s.name == "" {
		s.name = "Unknown Font"
	}

	Logger().Debug("text: font source loaded", "name", s.name, "glyphs", sf.NumGlyphs())
	return s, nil
}

// NewFontSourceFromFile loads a FontSource from a font file path.
func NewFontSourceFromFile(path string, opts ...SourceOption) (*FontSource, error) {
	// #nosec G304 -- Font file path is provided by the user
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("text: failed to read font file: %w", err)
	}
	return NewFontSource(data, opts...)
}

// Face creates a Face at the specified size (in pixels per em).
// Panics if s is nil (e.g. when a lookup error was ignored).
func (s *FontSource) Face(size float64, opts ...FaceOption) Face {
	if s == nil {
		panic("text: FontSource is nil, did you check the lookup error?")
	}
	s.copyCheck()

	config := defaultFaceConfig()
	for _, opt := range opts {
		opt(&config)
	}
	return &sourceFace{source: s, size: size, config: config}
}

// Name returns the full font name, e.g. "Go Bold".
func (s *FontSource) Name() string {
	s.copyCheck()
	return s.name
}

// FullName returns the full name from the font's name table, which may
// differ from Name when the source was registered under an identifier.
func (s *FontSource) FullName() string {
	s.copyCheck()
	return s.fullName
}

// Family returns the family name, e.g. "Go".
func (s *FontSource) Family() string {
	s.copyCheck()
	return s.family
}

// NumGlyphs returns the number of glyphs in the font.
func (s *FontSource) NumGlyphs() int {
	sf := s.sfntFont()
	if sf == nil {
		return 0
	}
	return sf.NumGlyphs()
}

// Upem returns the font's units per em.
func (s *FontSource) Upem() int {
	f := s.goTextFont()
	if f == nil {
		return 0
	}
	return int(f.Upem())
}

// Metrics returns ascent and descent for the given size.
func (s *FontSource) Metrics(size float64) (Metrics, error) {
	sf := s.sfntFont()
	if sf == nil {
		return Metrics{}, ErrClosedSource
	}
	var buf sfnt.Buffer
	m, err := sf.Metrics(&buf, floatToFixed(size), xfont.HintingNone)
	if err != nil {
		return Metrics{}, &FontError{Font: s.name, Reason: "failed to read metrics", Err: err}
	}
	return Metrics{
		Ascent:    fixedToFloat(m.Ascent),
		Descent:   fixedToFloat(m.Descent),
		CapHeight: fixedToFloat(m.CapHeight),
	}, nil
}

// Close releases the parsed font data. Faces created from the source
// stop producing glyphs afterwards.
func (s *FontSource) Close() error {
	s.copyCheck()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = nil
	s.gotext = nil
	s.sfnt = nil
	return nil
}

func (s *FontSource) goTextFont() *font.Font {
	s.copyCheck()
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.gotext
}

func (s *FontSource) sfntFont() *opentype.Font {
	s.copyCheck()
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sfnt
}

// copyCheck panics if FontSource was copied by value.
func (s *FontSource) copyCheck() {
	if s.addr != s {
		panic("text: FontSource must not be copied by value")
	}
}

// Metrics holds font-level metrics at a specific size, in layout units.
type Metrics struct {
	// Ascent is the distance from the baseline to the top of the font.
	Ascent float64

	// Descent is the distance from the baseline to the bottom of the font.
	Descent float64

	// CapHeight is the height of uppercase letters.
	CapHeight float64
}

func sfntName(f *opentype.Font, id sfnt.NameID) string {
	name, err := f.Name(nil, id)
	if err != nil {
		return ""
	}
	return name
}

// floatToFixed converts a float64 size to fixed.Int26_6.
func floatToFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(v * 64)
}

// fixedToFloat converts a fixed.Int26_6 value to float64.
func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64.0
}
