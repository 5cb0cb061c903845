// Package glyphanim renders a string as its glyph outlines and animates
// the outline being stroked and then filled.
//
// # Overview
//
// Two parts make up the library. A Builder turns a TextStyle (text, font
// identifier, size, fill color) into a single MergedPath: the union of all
// glyph contours, each translated to its pen position and flipped into
// device orientation. An Animator owns that path and drives a Timeline with
// two tracks, stroke progress and fill color, presenting a Frame for every
// change of the read head.
//
// # Quick Start
//
//	import (
//		"github.com/gogpu/glyphanim"
//		"github.com/gogpu/glyphanim/render"
//	)
//
//	canvas := render.MustNew(640, 160)
//	a := glyphanim.NewAnimator(glyphanim.WithPresenter(canvas))
//	a.Attach(canvas.Bounds())
//
//	// Park at t=0 and scrub by hand
//	_ = a.Prepare(glyphanim.DefaultTextStyle())
//	_ = a.Scrub(0.5)
//
//	// Or play it in real time: 4s stroke, 2s coloring
//	_ = a.Start(glyphanim.DefaultTextStyle())
//
// # Clocks
//
// Playback is advanced by a Driver. TickerDriver ticks from its own
// goroutine in wall-clock time; ManualDriver ticks only when Advance is
// called, which makes tests and frame export deterministic.
//
// # Notifications
//
// A Delegate receives AnimationStarted and AnimationStopped for every play
// session. Callbacks run without internal locks held and may call back
// into the Animator.
//
// # Fonts
//
// Fonts are resolved by name through text.Registry. The default registry
// contains the Go font family. Unknown names yield a *FontResolutionError;
// hosts typically fall back to DefaultTextStyle().Font.
//
// # Logging
//
// The library is silent by default. Use SetLogger to route its log/slog
// output, which also configures package text.
package glyphanim
