// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/gogpu/glyphanim"
)

// Common errors returned by Canvas operations.
var (
	// ErrInvalidDimensions is returned when width or height is invalid.
	ErrInvalidDimensions = errors.New("render: invalid dimensions")

	// ErrNothingPresented is returned when exporting a canvas that has no
	// visible frame.
	ErrNothingPresented = errors.New("render: nothing presented")
)

// CanvasOption configures a Canvas during creation.
type CanvasOption func(*canvasOptions)

type canvasOptions struct {
	background color.Color
	onPresent  func(img *image.RGBA, f glyphanim.Frame)
}

func defaultCanvasOptions() canvasOptions {
	return canvasOptions{
		background: color.White,
	}
}

// WithBackground sets the color the canvas is cleared to before every
// frame and on Remove.
func WithBackground(c color.Color) CanvasOption {
	return func(o *canvasOptions) {
		o.background = c
	}
}

// WithPresentHook registers fn to be called after every frame is drawn,
// with the canvas lock held. fn must not retain img.
func WithPresentHook(fn func(img *image.RGBA, f glyphanim.Frame)) CanvasOption {
	return func(o *canvasOptions) {
		o.onPresent = fn
	}
}

// Canvas is a software Presenter backed by an *image.RGBA.
//
// Canvas is safe for concurrent use: a TickerDriver presents from its own
// goroutine while the host reads or exports the image.
type Canvas struct {
	mu      sync.Mutex
	opts    canvasOptions
	img     *image.RGBA
	visible bool
	frames  int
	last    glyphanim.Frame
}

// New creates a Canvas of the given size, cleared to the background.
func New(width, height int, opts ...CanvasOption) (*Canvas, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: width=%d, height=%d", ErrInvalidDimensions, width, height)
	}
	o := defaultCanvasOptions()
	for _, opt := range opts {
		opt(&o)
	}
	c := &Canvas{
		opts: o,
		img:  image.NewRGBA(image.Rect(0, 0, width, height)),
	}
	c.clear()
	return c, nil
}

// MustNew is like New but panics on error.
func MustNew(width, height int, opts ...CanvasOption) *Canvas {
	c, err := New(width, height, opts...)
	if err != nil {
		panic(err)
	}
	return c
}

// Width returns the canvas width in pixels.
func (c *Canvas) Width() int {
	return c.img.Bounds().Dx()
}

// Height returns the canvas height in pixels.
func (c *Canvas) Height() int {
	return c.img.Bounds().Dy()
}

// Bounds returns the canvas area as a reference frame for Animator.Attach.
func (c *Canvas) Bounds() glyphanim.Rect {
	return glyphanim.XYWH(0, 0, float64(c.Width()), float64(c.Height()))
}

// Present draws f, replacing the previous frame.
func (c *Canvas) Present(f glyphanim.Frame) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.clear()
	fillFrame(c.img, f)
	strokeFrame(c.img, f)
	c.visible = true
	c.frames++
	c.last = f
	if c.opts.onPresent != nil {
		c.opts.onPresent(c.img, f)
	}
}

// Remove clears the canvas to the background.
func (c *Canvas) Remove() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.clear()
	c.visible = false
}

// Visible reports whether a frame is currently shown.
func (c *Canvas) Visible() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.visible
}

// Frames returns how many frames have been presented.
func (c *Canvas) Frames() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.frames
}

// Last returns the most recently presented frame.
func (c *Canvas) Last() (glyphanim.Frame, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.last, c.visible
}

// Image returns a copy of the canvas pixels.
func (c *Canvas) Image() *image.RGBA {
	c.mu.Lock()
	defer c.mu.Unlock()
	dst := image.NewRGBA(c.img.Bounds())
	copy(dst.Pix, c.img.Pix)
	return dst
}

// EncodePNG writes the canvas as PNG.
func (c *Canvas) EncodePNG(w io.Writer) error {
	if !c.Visible() {
		return ErrNothingPresented
	}
	if err := png.Encode(w, c.Image()); err != nil {
		return fmt.Errorf("render: encode png: %w", err)
	}
	return nil
}

// SavePNG writes the canvas to path, creating parent directories.
func (c *Canvas) SavePNG(path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("render: create output directory: %w", err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("render: create output file: %w", err)
	}
	if err := c.EncodePNG(f); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

func (c *Canvas) clear() {
	draw.Draw(c.img, c.img.Bounds(), image.NewUniform(c.opts.background), image.Point{}, draw.Src)
}

// Ensure Canvas implements glyphanim.Presenter.
var _ glyphanim.Presenter = (*Canvas)(nil)
