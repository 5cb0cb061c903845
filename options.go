package glyphanim

// AnimatorOption configures an Animator during creation.
//
// Example:
//
//	// Real-time playback, frames drawn into a canvas
//	a := glyphanim.NewAnimator(
//		glyphanim.WithPresenter(canvas),
//		glyphanim.WithDelegate(host),
//	)
//
//	// Deterministic clock for tests and offline export
//	clock := glyphanim.NewManualDriver()
//	a := glyphanim.NewAnimator(glyphanim.WithDriver(clock))
type AnimatorOption func(*animatorOptions)

// animatorOptions holds optional configuration for Animator creation.
type animatorOptions struct {
	builder       *Builder
	driver        Driver
	presenter     Presenter
	delegate      Delegate
	stroke        StrokeStyle
	prepareTiming Timing
	playTiming    Timing
}

// defaultAnimatorOptions returns the default animator options.
func defaultAnimatorOptions() animatorOptions {
	return animatorOptions{
		builder:       nil, // NewBuilder() with the default registry
		driver:        nil, // NewTickerDriver(DefaultFrameInterval)
		presenter:     nopPresenter{},
		delegate:      DelegateFuncs{},
		stroke:        DefaultStrokeStyle(),
		prepareTiming: PrepareTiming,
		playTiming:    PlayTiming,
	}
}

// WithBuilder sets the path builder, and through it the font registry and
// shaper.
func WithBuilder(b *Builder) AnimatorOption {
	return func(o *animatorOptions) {
		o.builder = b
	}
}

// WithDriver sets the clock that advances playback.
func WithDriver(d Driver) AnimatorOption {
	return func(o *animatorOptions) {
		o.driver = d
	}
}

// WithPresenter sets where frames are shown. Nil disables presentation.
func WithPresenter(p Presenter) AnimatorOption {
	return func(o *animatorOptions) {
		if p == nil {
			p = nopPresenter{}
		}
		o.presenter = p
	}
}

// WithDelegate sets the receiver of started/stopped notifications.
func WithDelegate(d Delegate) AnimatorOption {
	return func(o *animatorOptions) {
		if d == nil {
			d = DelegateFuncs{}
		}
		o.delegate = d
	}
}

// WithStrokeStyle overrides the outline stroke paint.
func WithStrokeStyle(s StrokeStyle) AnimatorOption {
	return func(o *animatorOptions) {
		o.stroke = s
	}
}

// WithPrepareTiming overrides the timing used by Prepare.
func WithPrepareTiming(t Timing) AnimatorOption {
	return func(o *animatorOptions) {
		o.prepareTiming = t
	}
}

// WithPlayTiming overrides the timing used by Start.
func WithPlayTiming(t Timing) AnimatorOption {
	return func(o *animatorOptions) {
		o.playTiming = t
	}
}
