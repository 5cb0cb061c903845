// Package text turns strings into positioned glyph outlines for glyphanim.
//
// The pipeline follows a separation of concerns:
//
//   - FontSource: heavyweight, shared font resource (parses TTF/OTF data)
//   - Registry: font identifiers → FontSource, the lookup behind a font picker
//   - Face: lightweight font instance at a specific size
//   - Shaper: text → positioned glyphs (go-text HarfBuzz by default)
//   - OutlineExtractor: glyph ID → filled outline in layout units
//
// Layout coordinates follow the font convention: the origin is the left end
// of the baseline and y grows upwards. Converting to device coordinates is
// the caller's job and must happen exactly once.
//
// # Example usage
//
//	source, err := text.DefaultRegistry().Lookup("Go Bold")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	face := source.Face(48)
//	for _, g := range text.Shape("Hello", face) {
//	    outline, _ := text.NewOutlineExtractor().Extract(face, g.GID)
//	    _ = outline.Translate(float32(g.X), float32(g.Y))
//	}
package text
