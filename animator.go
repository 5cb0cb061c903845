package glyphanim

import (
	"sync"
	"time"
)

// Animator draws a string as its glyph outlines and animates the stroke
// running along them, followed by the fill fading in.
//
// It is a small state machine:
//
//	Idle ──Prepare──▶ Primed ──Start──▶ Playing ──Stop/complete──▶ Frozen
//	  ▲                                                               │
//	  └──────────────────────────── Clear ◀───────────────────────────┘
//
// Start and Prepare are valid from every state; Scrub requires Primed or
// Frozen and implicitly stops a playing session.
//
// All methods are safe for concurrent use. Clock ticks and host calls are
// serialized by an internal mutex. Their outside calls (presenter and
// delegate) are queued under that mutex and delivered after it is
// released, one goroutine at a time and in queue order, so a delegate may
// call back into the Animator and a late tick never overtakes Clear.
type Animator struct {
	mu   sync.Mutex
	opts animatorOptions

	state    State
	path     *MergedPath
	timeline Timeline
	elapsed  time.Duration
	frame    Rect
	session  uint64
	current  *Animation
	detach   func()

	// gen moves with every operation that replaces or removes the
	// visual; epoch moves with Clear and Prepare, which end a session
	// without notification.
	gen        uint64
	epoch      uint64
	pending    []effects
	delivering bool
}

// NewAnimator creates an idle Animator.
func NewAnimator(opts ...AnimatorOption) *Animator {
	o := defaultAnimatorOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.builder == nil {
		o.builder = NewBuilder()
	}
	if o.driver == nil {
		o.driver = NewTickerDriver(DefaultFrameInterval)
	}
	return &Animator{opts: o}
}

// effects are the outside calls an operation produced, delivered after
// unlock.
type effects struct {
	gen     uint64
	epoch   uint64
	remove  bool
	frame   *Frame
	stopped *Animation
	started *Animation
}

// emitLocked queues e behind everything produced earlier.
func (a *Animator) emitLocked(e effects) {
	e.gen, e.epoch = a.gen, a.epoch
	a.pending = append(a.pending, e)
}

// deliver runs queued effects in order. If another call is already
// delivering, on this goroutine or another one, it returns at once and
// that call picks the new effects up.
//
// Frames superseded by a later visual change are dropped, as are
// notifications for sessions ended by Clear or Prepare.
func (a *Animator) deliver() {
	a.mu.Lock()
	if a.delivering {
		a.mu.Unlock()
		return
	}
	a.delivering = true
	for len(a.pending) > 0 {
		e := a.pending[0]
		a.pending = a.pending[1:]
		if e.frame != nil && e.gen != a.gen {
			e.frame = nil
		}
		a.mu.Unlock()
		a.present(e)

		a.mu.Lock()
		if e.epoch != a.epoch && (e.stopped != nil || e.started != nil) {
			Logger().Debug("glyphanim: notification dropped after clear")
			e.stopped, e.started = nil, nil
		}
		a.mu.Unlock()
		a.notify(e)

		a.mu.Lock()
	}
	a.pending = nil
	a.delivering = false
	a.mu.Unlock()
}

func (a *Animator) present(e effects) {
	if e.remove {
		a.opts.presenter.Remove()
	}
	if e.frame != nil {
		a.opts.presenter.Present(*e.frame)
	}
}

func (a *Animator) notify(e effects) {
	if e.stopped != nil {
		Logger().Info("glyphanim: animation stopped",
			"session", e.stopped.ID(), "elapsed", e.stopped.Elapsed())
		a.opts.delegate.AnimationStopped(a, e.stopped)
	}
	if e.started != nil {
		Logger().Info("glyphanim: animation started",
			"session", e.started.ID(), "total", e.started.Timeline().Total())
		a.opts.delegate.AnimationStarted(a, e.started)
	}
}

// Attach sets the reference frame the path is centered in and re-presents
// the current frame. Attaching the same rectangle again changes nothing.
func (a *Animator) Attach(frame Rect) {
	a.mu.Lock()
	a.frame = frame
	if a.state != Idle {
		a.gen++
		f := a.frameLocked()
		a.emitLocked(effects{frame: &f})
	}
	a.mu.Unlock()
	a.deliver()
}

// Prepare builds the path for style and parks the animation at t=0 with a
// one second stroke and no coloring tail, ready to be scrubbed. A running
// session is detached without notification.
//
// On error the Animator is left untouched.
func (a *Animator) Prepare(style TextStyle) error {
	path, err := a.opts.builder.Build(style)
	if err != nil {
		return err
	}

	a.mu.Lock()
	from := a.state
	a.detachLocked()
	a.path = path
	a.timeline = NewTimeline(a.opts.prepareTiming, style.Fill)
	a.elapsed = 0
	a.current = nil
	a.state = Primed
	a.gen++
	a.epoch++
	f := a.frameLocked()
	a.emitLocked(effects{frame: &f})
	a.mu.Unlock()

	Logger().Debug("glyphanim: prepared", "from", from, "contours", path.Contours())
	a.deliver()
	return nil
}

// Scrub moves the read head to position·Total and re-presents. Positions
// outside [0, 1] are clamped and NaN reads as 0.
//
// Scrub while Playing stops the session first, notifying the delegate.
// Scrub while Idle returns a *StateError.
func (a *Animator) Scrub(position float64) error {
	a.mu.Lock()
	var e effects
	switch a.state {
	case Idle:
		a.mu.Unlock()
		return &StateError{Op: "scrub", State: Idle}
	case Playing:
		e.stopped = a.stopLocked()
	}

	clamped := clampUnit(position)
	if clamped != position {
		Logger().Debug("glyphanim: scrub position clamped", "position", position, "clamped", clamped)
	}
	a.elapsed = a.timeline.At(clamped)
	a.gen++
	f := a.frameLocked()
	e.frame = &f
	a.emitLocked(e)
	a.mu.Unlock()

	a.deliver()
	return nil
}

// Start builds the path for style and plays it from t=0 with a four second
// stroke and a two second coloring tail. A session already playing is
// stopped first and its delegate notification precedes the new one.
//
// AnimationStarted is delivered before Start returns, unless another
// goroutine is delivering at that moment; it then delivers it in order.
// On error the Animator is left untouched.
func (a *Animator) Start(style TextStyle) error {
	path, err := a.opts.builder.Build(style)
	if err != nil {
		return err
	}

	a.mu.Lock()
	var e effects
	if a.state == Playing {
		e.stopped = a.stopLocked()
	}
	a.detachLocked()

	a.session++
	tl := NewTimeline(a.opts.playTiming, style.Fill)
	anim := &Animation{id: a.session, style: style, timeline: tl}
	a.path = path
	a.timeline = tl
	a.elapsed = 0
	a.current = anim
	a.state = Playing
	a.detach = a.opts.driver.Attach(a.tick(anim))

	a.gen++
	f := a.frameLocked()
	e.frame = &f
	e.started = anim
	a.emitLocked(e)
	a.mu.Unlock()

	a.deliver()
	return nil
}

// Stop freezes a playing session at its current read head. It does
// nothing in any other state.
func (a *Animator) Stop() {
	a.mu.Lock()
	if a.state != Playing {
		a.mu.Unlock()
		return
	}
	a.emitLocked(effects{stopped: a.stopLocked()})
	a.mu.Unlock()

	a.deliver()
}

// Clear detaches the clock, drops the path and timeline and removes the
// visual. No notification is sent, and notifications still queued for the
// ended session are dropped.
func (a *Animator) Clear() {
	a.mu.Lock()
	from := a.state
	a.detachLocked()
	a.path = nil
	a.timeline = Timeline{}
	a.elapsed = 0
	a.current = nil
	a.state = Idle
	a.gen++
	a.epoch++
	a.emitLocked(effects{remove: true})
	a.mu.Unlock()

	Logger().Debug("glyphanim: cleared", "from", from)
	a.deliver()
}

// tick returns the clock hook for one session.
func (a *Animator) tick(anim *Animation) TickFunc {
	return func(elapsed time.Duration) {
		a.mu.Lock()
		if a.current != anim || a.state != Playing {
			a.mu.Unlock()
			Logger().Warn("glyphanim: stale tick dropped", "session", anim.ID())
			return
		}

		var e effects
		if elapsed >= a.timeline.Total() {
			a.elapsed = a.timeline.Total()
			e.stopped = a.stopLocked()
		} else {
			a.elapsed = max(elapsed, 0)
			anim.elapsed.Store(int64(a.elapsed))
		}
		f := a.frameLocked()
		e.frame = &f
		a.emitLocked(e)
		a.mu.Unlock()

		a.deliver()
	}
}

// stopLocked moves a playing session to Frozen and returns it for
// notification.
func (a *Animator) stopLocked() *Animation {
	a.detachLocked()
	a.state = Frozen
	anim := a.current
	if anim != nil {
		anim.elapsed.Store(int64(a.elapsed))
	}
	return anim
}

func (a *Animator) detachLocked() {
	if a.detach != nil {
		a.detach()
		a.detach = nil
	}
}

func (a *Animator) frameLocked() Frame {
	return Frame{
		Path:      a.path,
		Placement: placement(a.path.Bounds, a.frame),
		StrokeEnd: a.timeline.StrokeEnd(a.elapsed),
		Fill:      a.timeline.FillAt(a.elapsed),
		Stroke:    a.opts.stroke,
		Elapsed:   a.elapsed,
	}
}

// State returns the current state.
func (a *Animator) State() State {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.state
}

// Path returns the current merged path, or nil while Idle.
func (a *Animator) Path() *MergedPath {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.path
}

// Timeline returns the current timeline. It is the zero Timeline while
// Idle.
func (a *Animator) Timeline() Timeline {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.timeline
}

// Elapsed returns the read head.
func (a *Animator) Elapsed() time.Duration {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.elapsed
}

// Animation returns the latest play session, or nil if the Animator was
// prepared or cleared since.
func (a *Animator) Animation() *Animation {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.current
}

// Frame returns the frame at the read head. The boolean is false while
// Idle.
func (a *Animator) Frame() (Frame, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.state == Idle {
		return Frame{}, false
	}
	return a.frameLocked(), true
}
