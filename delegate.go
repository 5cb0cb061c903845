package glyphanim

import (
	"sync/atomic"
	"time"
)

// Delegate is notified about play sessions. Methods are called without the
// Animator's lock held and may call back into the Animator.
type Delegate interface {
	AnimationStarted(a *Animator, anim *Animation)
	AnimationStopped(a *Animator, anim *Animation)
}

// DelegateFuncs adapts plain functions to Delegate. Nil fields are skipped.
type DelegateFuncs struct {
	Started func(a *Animator, anim *Animation)
	Stopped func(a *Animator, anim *Animation)
}

// AnimationStarted calls d.Started.
func (d DelegateFuncs) AnimationStarted(a *Animator, anim *Animation) {
	if d.Started != nil {
		d.Started(a, anim)
	}
}

// AnimationStopped calls d.Stopped.
func (d DelegateFuncs) AnimationStopped(a *Animator, anim *Animation) {
	if d.Stopped != nil {
		d.Stopped(a, anim)
	}
}

// Animation identifies one play session started by Animator.Start.
type Animation struct {
	id       uint64
	style    TextStyle
	timeline Timeline
	elapsed  atomic.Int64
}

// ID returns the session id. Ids increase with every Start.
func (a *Animation) ID() uint64 {
	return a.id
}

// Style returns the descriptor the session was started with.
func (a *Animation) Style() TextStyle {
	return a.style
}

// Timeline returns the session timeline.
func (a *Animation) Timeline() Timeline {
	return a.timeline
}

// Elapsed returns the last read head of the session. After the session
// stopped it is where playback froze.
func (a *Animation) Elapsed() time.Duration {
	return time.Duration(a.elapsed.Load())
}
