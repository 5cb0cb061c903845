package main

import (
	"flag"
	"fmt"
	"path/filepath"
	"time"

	"github.com/pterm/pterm"

	"github.com/gogpu/glyphanim"
	"github.com/gogpu/glyphanim/render"
)

// runExport plays one session on a manual clock and writes every frame.
func runExport(cfg *config, args []string) error {
	fs := flag.NewFlagSet("export", flag.ContinueOnError)
	out := fs.String("out", "frames", "output directory")
	fps := fs.Int("fps", 30, "frames per second")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *fps <= 0 {
		return fmt.Errorf("invalid fps %d", *fps)
	}

	canvas, err := render.New(cfg.width, cfg.height)
	if err != nil {
		return err
	}
	clock := glyphanim.NewManualDriver()
	a := glyphanim.NewAnimator(
		glyphanim.WithBuilder(glyphanim.NewBuilder(glyphanim.WithRegistry(cfg.registry))),
		glyphanim.WithDriver(clock),
		glyphanim.WithPresenter(canvas),
	)
	a.Attach(canvas.Bounds())

	if _, err := withFontFallback(cfg.style, a.Start); err != nil {
		return err
	}

	step := time.Second / time.Duration(*fps)
	n := 0
	for {
		name := filepath.Join(*out, fmt.Sprintf("frame_%04d.png", n))
		if err := canvas.SavePNG(name); err != nil {
			return err
		}
		n++
		if a.State() != glyphanim.Playing {
			break
		}
		clock.Advance(step)
	}
	pterm.Info.Printf("wrote %d frames to %s\n", n, *out)
	return nil
}

// runScrub prepares the text, scrubs to one position and saves the frame.
func runScrub(cfg *config, args []string) error {
	fs := flag.NewFlagSet("scrub", flag.ContinueOnError)
	pos := fs.Float64("t", 1, "scrub position in [0, 1]")
	out := fs.String("out", "frame.png", "output file")
	if err := fs.Parse(args); err != nil {
		return err
	}

	canvas, err := render.New(cfg.width, cfg.height)
	if err != nil {
		return err
	}
	a := glyphanim.NewAnimator(
		glyphanim.WithBuilder(glyphanim.NewBuilder(glyphanim.WithRegistry(cfg.registry))),
		glyphanim.WithDriver(glyphanim.NewManualDriver()),
		glyphanim.WithPresenter(canvas),
	)
	a.Attach(canvas.Bounds())

	if _, err := withFontFallback(cfg.style, a.Prepare); err != nil {
		return err
	}
	if err := a.Scrub(*pos); err != nil {
		return err
	}
	if err := canvas.SavePNG(*out); err != nil {
		return err
	}
	pterm.Info.Printf("wrote %s\n", *out)
	return nil
}
