package glyphanim

import (
	"sync"
	"time"
)

// TickFunc receives the time elapsed since the hook was attached.
type TickFunc func(elapsed time.Duration)

// Driver is the clock that advances a playing animation.
//
// Attach registers fn and returns a function that detaches it. Detach may
// be called from inside fn and more than once. A tick already in flight
// when detach is called may still be delivered; the Animator drops such
// ticks by session.
type Driver interface {
	Attach(fn TickFunc) (detach func())
}

// DefaultFrameInterval is the tick interval of NewTickerDriver(0).
const DefaultFrameInterval = time.Second / 60

// TickerDriver delivers wall-clock ticks from one goroutine per attached
// hook at a fixed interval.
type TickerDriver struct {
	interval time.Duration
	now      func() time.Time
}

// NewTickerDriver creates a TickerDriver. A non-positive interval selects
// DefaultFrameInterval.
func NewTickerDriver(interval time.Duration) *TickerDriver {
	if interval <= 0 {
		interval = DefaultFrameInterval
	}
	return &TickerDriver{interval: interval, now: time.Now}
}

// Interval returns the tick interval.
func (d *TickerDriver) Interval() time.Duration {
	return d.interval
}

// Attach starts a ticker goroutine for fn.
func (d *TickerDriver) Attach(fn TickFunc) func() {
	done := make(chan struct{})
	start := d.now()
	ticker := time.NewTicker(d.interval)

	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				// Check again so a detach racing the tick wins.
				select {
				case <-done:
					return
				default:
				}
				fn(d.now().Sub(start))
			}
		}
	}()

	var once sync.Once
	return func() {
		once.Do(func() { close(done) })
	}
}

// ManualDriver is a Driver whose clock only moves when Advance is called.
// Ticks are delivered synchronously on the caller's goroutine, which makes
// it suitable for tests and offline frame export.
type ManualDriver struct {
	mu     sync.Mutex
	now    time.Duration
	nextID uint64
	hooks  map[uint64]manualHook
}

type manualHook struct {
	fn    TickFunc
	start time.Duration
}

// NewManualDriver creates a ManualDriver at time zero.
func NewManualDriver() *ManualDriver {
	return &ManualDriver{hooks: make(map[uint64]manualHook)}
}

// Attach registers fn. Its elapsed time counts from the current clock.
func (d *ManualDriver) Attach(fn TickFunc) func() {
	d.mu.Lock()
	d.nextID++
	id := d.nextID
	d.hooks[id] = manualHook{fn: fn, start: d.now}
	d.mu.Unlock()

	return func() {
		d.mu.Lock()
		delete(d.hooks, id)
		d.mu.Unlock()
	}
}

// Advance moves the clock forward by step and ticks every attached hook.
// Negative steps are ignored.
func (d *ManualDriver) Advance(step time.Duration) {
	if step < 0 {
		step = 0
	}
	d.mu.Lock()
	d.now += step
	now := d.now
	ticks := make([]func(), 0, len(d.hooks))
	for id, h := range d.hooks {
		fn, elapsed := h.fn, now-h.start
		ticks = append(ticks, func() {
			if d.attached(id) {
				fn(elapsed)
			}
		})
	}
	d.mu.Unlock()

	for _, tick := range ticks {
		tick()
	}
}

// Now returns the driver clock.
func (d *ManualDriver) Now() time.Duration {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.now
}

// Hooks returns the number of attached hooks.
func (d *ManualDriver) Hooks() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.hooks)
}

func (d *ManualDriver) attached(id uint64) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	_, ok := d.hooks[id]
	return ok
}
