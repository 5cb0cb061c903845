// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package render draws glyphanim frames into CPU images.
//
// Canvas implements glyphanim.Presenter. Each presented frame is drawn in
// two passes over a cleared *image.RGBA:
//
//   - fill: the whole outline, rasterized with golang.org/x/image/vector
//     in the frame's current fill color (skipped while transparent)
//   - stroke: the stroked part of the outline, drawn on top with
//     github.com/srwiley/rasterx using the frame's StrokeStyle
//
// # Usage
//
//	canvas := render.MustNew(640, 200)
//	a := glyphanim.NewAnimator(glyphanim.WithPresenter(canvas))
//	a.Attach(canvas.Bounds())
//	_ = a.Prepare(glyphanim.DefaultTextStyle())
//	_ = a.Scrub(1)
//	_ = canvas.SavePNG("hello.png")
package render
