package glyphanim

import (
	"errors"
	"fmt"

	"github.com/gogpu/glyphanim/text"
)

// ErrInvalidStateTransition is wrapped by StateError. It signals that the
// host called an operation in a state that does not allow it.
var ErrInvalidStateTransition = errors.New("glyphanim: invalid state transition")

// FontResolutionError is returned by Build, Prepare and Start when the
// descriptor names a font the registry does not know.
type FontResolutionError = text.FontResolutionError

// StateError reports an operation that is not valid in the current state.
type StateError struct {
	Op    string
	State State
}

func (e *StateError) Error() string {
	return fmt.Sprintf("glyphanim: %s not allowed while %s", e.Op, e.State)
}

// Unwrap makes errors.Is(err, ErrInvalidStateTransition) work.
func (e *StateError) Unwrap() error {
	return ErrInvalidStateTransition
}

// ColorError reports a malformed color string.
type ColorError struct {
	Value string
}

func (e *ColorError) Error() string {
	return fmt.Sprintf("glyphanim: invalid color %q", e.Value)
}
