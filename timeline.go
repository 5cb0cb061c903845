package glyphanim

import (
	"math"
	"time"
)

// Timing splits an animation into the stroke phase and the coloring tail
// that follows it.
type Timing struct {
	Stroke   time.Duration
	Coloring time.Duration
}

// Total returns the length of the whole animation.
func (t Timing) Total() time.Duration {
	return t.Stroke + t.Coloring
}

var (
	// PrepareTiming is used by Animator.Prepare: a one second stroke and no
	// coloring tail, meant to be scrubbed.
	PrepareTiming = Timing{Stroke: time.Second}

	// PlayTiming is used by Animator.Start.
	PlayTiming = Timing{Stroke: 4 * time.Second, Coloring: 2 * time.Second}
)

// Timeline maps elapsed time to the two animated properties: how much of
// the outline is stroked and the current fill color.
//
// Stroke progress runs linearly from 0 to 1 over [0, Stroke] and holds at
// 1. The fill is transparent until Stroke, then interpolates to Fill over
// the coloring tail. A zero tail jumps to Fill at exactly Total.
type Timeline struct {
	Timing Timing
	Fill   RGBA
}

// NewTimeline creates a timeline for the given timing and target fill.
func NewTimeline(timing Timing, fill RGBA) Timeline {
	if timing.Stroke < 0 {
		timing.Stroke = 0
	}
	if timing.Coloring < 0 {
		timing.Coloring = 0
	}
	return Timeline{Timing: timing, Fill: fill}
}

// Total returns the timeline length.
func (tl Timeline) Total() time.Duration {
	return tl.Timing.Total()
}

// Clamp limits t to [0, Total].
func (tl Timeline) Clamp(t time.Duration) time.Duration {
	switch {
	case t < 0:
		return 0
	case t > tl.Total():
		return tl.Total()
	}
	return t
}

// At converts a scrub position in [0, 1] to a read head. Out of range and
// NaN positions are clamped; NaN reads as 0.
func (tl Timeline) At(position float64) time.Duration {
	position = clampUnit(position)
	if position == 1 {
		return tl.Total()
	}
	return time.Duration(math.Round(position * float64(tl.Total())))
}

// StrokeEnd returns the stroked fraction of the outline at t.
func (tl Timeline) StrokeEnd(t time.Duration) float64 {
	t = tl.Clamp(t)
	if t >= tl.Timing.Stroke {
		return 1
	}
	return float64(t) / float64(tl.Timing.Stroke)
}

// FillAt returns the fill color at t.
func (tl Timeline) FillAt(t time.Duration) RGBA {
	t = tl.Clamp(t)
	if t >= tl.Total() {
		return tl.Fill
	}
	if t <= tl.Timing.Stroke {
		return Transparent
	}
	p := float64(t-tl.Timing.Stroke) / float64(tl.Timing.Coloring)
	return Transparent.Lerp(tl.Fill, p)
}

// clampUnit limits v to [0, 1], mapping NaN to 0.
func clampUnit(v float64) float64 {
	switch {
	case math.IsNaN(v), v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}
