package text

// Face represents a font face at a specific size.
// This is a lightweight object that can be created from a FontSource.
// Face is safe for concurrent use.
type Face interface {
	// Source returns the FontSource this face was created from.
	Source() *FontSource

	// Size returns the size of this face in pixels per em.
	Size() float64

	// Direction returns the text direction for this face.
	Direction() Direction

	// Language returns the BCP 47 language tag used for shaping.
	Language() string

	// private prevents external implementation
	private()
}

// sourceFace is the internal implementation of Face.
type sourceFace struct {
	source *FontSource
	size   float64
	config faceConfig
}

func (f *sourceFace) Source() *FontSource  { return f.source }
func (f *sourceFace) Size() float64        { return f.size }
func (f *sourceFace) Direction() Direction { return f.config.direction }
func (f *sourceFace) Language() string     { return f.config.language }
func (f *sourceFace) private()             {}
