package glyphanim

import "time"

// Frame is one rendered state of the animation, handed to a Presenter.
type Frame struct {
	// Path is the merged outline. It is shared and must not be modified.
	Path *MergedPath

	// Placement maps path coordinates into the attached reference frame.
	Placement Matrix

	// StrokeEnd is the stroked fraction of the outline in [0, 1].
	StrokeEnd float64

	// Fill is the current fill color; transparent during the stroke phase.
	Fill RGBA

	Stroke StrokeStyle

	// Elapsed is the read head the frame was sampled at.
	Elapsed time.Duration
}

// StrokePath returns the visible part of the stroke, placed in the
// reference frame.
func (f Frame) StrokePath() *Path {
	if f.Path.IsEmpty() || f.StrokeEnd <= 0 {
		return NewPath()
	}
	return f.Path.Trim(f.StrokeEnd).Transform(f.Placement)
}

// FillPath returns the whole outline placed in the reference frame, or an
// empty path while the fill is transparent.
func (f Frame) FillPath() *Path {
	if f.Path.IsEmpty() || f.Fill.IsTransparent() {
		return NewPath()
	}
	return f.Path.Path.Transform(f.Placement)
}

// Bounds returns the placed bounding box of the outline.
func (f Frame) Bounds() Rect {
	if f.Path.IsEmpty() {
		return Rect{}
	}
	b := f.Path.Bounds
	return NewRect(f.Placement.TransformPoint(b.Min), f.Placement.TransformPoint(b.Max))
}

// Presenter displays frames. Calls are made without the Animator's lock
// held and never overlap: they follow the order in which the Animator
// produced them, whichever goroutine ticked. A frame superseded by a later
// Present or Remove may be skipped. A Presenter must not call back into
// the Animator.
type Presenter interface {
	// Present shows f, replacing the previous frame.
	Present(f Frame)

	// Remove takes the visual away.
	Remove()
}

// PresenterFunc adapts a function to a Presenter whose Remove does nothing.
type PresenterFunc func(Frame)

// Present calls fn(f).
func (fn PresenterFunc) Present(f Frame) { fn(f) }

// Remove does nothing.
func (PresenterFunc) Remove() {}

type nopPresenter struct{}

func (nopPresenter) Present(Frame) {}
func (nopPresenter) Remove()       {}

// placement centers bounds inside frame.
func placement(bounds, frame Rect) Matrix {
	if frame.IsEmpty() {
		return Identity()
	}
	d := frame.Center().Sub(bounds.Center())
	return Translate(d.X, d.Y)
}
