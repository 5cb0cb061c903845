package text

import (
	"errors"
	"fmt"
)

// Sentinel errors for text package.
var (
	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("text: empty font data")

	// ErrUnknownFont is wrapped by FontResolutionError.
	ErrUnknownFont = errors.New("text: unknown font")

	// ErrClosedSource is returned when a closed FontSource is used.
	ErrClosedSource = errors.New("text: font source is closed")
)

// FontResolutionError is returned when a font identifier cannot be
// resolved to a loaded font. Callers are expected to substitute a default
// font and may retry.
type FontResolutionError struct {
	Name string
}

func (e *FontResolutionError) Error() string {
	return fmt.Sprintf("text: cannot resolve font %q", e.Name)
}

// Unwrap makes errors.Is(err, ErrUnknownFont) work.
func (e *FontResolutionError) Unwrap() error {
	return ErrUnknownFont
}

// FontError represents a font parsing or glyph extraction failure.
type FontError struct {
	Font   string
	Reason string
	Err    error
}

func (e *FontError) Error() string {
	msg := "text: " + e.Reason
	if e.Font != "" {
		msg += " (" + e.Font + ")"
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *FontError) Unwrap() error {
	return e.Err
}
