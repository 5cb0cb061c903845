// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"image"
	"image/draw"

	"github.com/srwiley/rasterx"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"github.com/gogpu/glyphanim"
)

// fillFrame rasterizes the placed outline in the frame's fill color.
func fillFrame(img *image.RGBA, f glyphanim.Frame) {
	p := f.FillPath()
	if p.IsEmpty() {
		return
	}
	b := img.Bounds()
	rast := vector.NewRasterizer(b.Dx(), b.Dy())
	rast.DrawOp = draw.Over
	toVector(p, rast)
	rast.Draw(img, b, image.NewUniform(f.Fill.Color()), image.Point{})
}

// toVector replays p into a vector rasterizer.
func toVector(p *glyphanim.Path, rast *vector.Rasterizer) {
	for _, el := range p.Elements() {
		switch e := el.(type) {
		case glyphanim.MoveTo:
			rast.MoveTo(float32(e.Point.X), float32(e.Point.Y))
		case glyphanim.LineTo:
			rast.LineTo(float32(e.Point.X), float32(e.Point.Y))
		case glyphanim.QuadTo:
			rast.QuadTo(
				float32(e.Control.X), float32(e.Control.Y),
				float32(e.Point.X), float32(e.Point.Y),
			)
		case glyphanim.CubicTo:
			rast.CubeTo(
				float32(e.Control1.X), float32(e.Control1.Y),
				float32(e.Control2.X), float32(e.Control2.Y),
				float32(e.Point.X), float32(e.Point.Y),
			)
		case glyphanim.Close:
			rast.ClosePath()
		}
	}
}

// strokeFrame draws the stroked part of the outline on top of img.
func strokeFrame(img *image.RGBA, f glyphanim.Frame) {
	p := f.StrokePath()
	if p.IsEmpty() || f.Stroke.Width <= 0 || f.Stroke.Color.IsTransparent() {
		return
	}
	b := img.Bounds()
	scanner := rasterx.NewScannerGV(b.Dx(), b.Dy(), img, b)
	stroker := rasterx.NewStroker(b.Dx(), b.Dy(), scanner)
	stroker.SetStroke(
		toFixed(f.Stroke.Width),
		toFixed(f.Stroke.MiterLimit),
		rasterx.ButtCap, rasterx.ButtCap,
		rasterx.FlatGap,
		joinMode(f.Stroke.Join),
	)
	stroker.SetColor(f.Stroke.Color.Color())
	toStroker(p, stroker)
	stroker.Draw()
}

// toStroker replays p into a rasterx stroker. Close ends a contour as a
// closed loop so the last join is drawn.
func toStroker(p *glyphanim.Path, s *rasterx.Stroker) {
	started := false
	for _, el := range p.Elements() {
		switch e := el.(type) {
		case glyphanim.MoveTo:
			if started {
				s.Stop(false)
			}
			s.Start(rasterx.ToFixedP(e.Point.X, e.Point.Y))
			started = true
		case glyphanim.LineTo:
			s.Line(rasterx.ToFixedP(e.Point.X, e.Point.Y))
		case glyphanim.QuadTo:
			s.QuadBezier(
				rasterx.ToFixedP(e.Control.X, e.Control.Y),
				rasterx.ToFixedP(e.Point.X, e.Point.Y),
			)
		case glyphanim.CubicTo:
			s.CubeBezier(
				rasterx.ToFixedP(e.Control1.X, e.Control1.Y),
				rasterx.ToFixedP(e.Control2.X, e.Control2.Y),
				rasterx.ToFixedP(e.Point.X, e.Point.Y),
			)
		case glyphanim.Close:
			if started {
				s.Stop(true)
				started = false
			}
		}
	}
	if started {
		s.Stop(false)
	}
}

func joinMode(j glyphanim.LineJoin) rasterx.JoinMode {
	switch j {
	case glyphanim.LineJoinMiter:
		return rasterx.Miter
	case glyphanim.LineJoinRound:
		return rasterx.Round
	default:
		return rasterx.Bevel
	}
}

func toFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(v * 64)
}
