// Command glyphanim draws text as glyph outlines and animates the stroke
// and fill.
//
// Usage:
//
//	glyphanim [flags]                   interactive session
//	glyphanim [flags] export [-out DIR] [-fps N]
//	glyphanim [flags] scrub [-t POS] [-out FILE]
package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/pterm/pterm"

	"github.com/gogpu/glyphanim"
	"github.com/gogpu/glyphanim/text"
)

// config holds the global flags shared by every mode.
type config struct {
	style    glyphanim.TextStyle
	width    int
	height   int
	fontDir  string
	verbose  bool
	registry *text.Registry
}

func main() {
	initDisplay()
	if err := run(os.Args[1:]); err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}
}

func run(args []string) error {
	def := glyphanim.DefaultTextStyle()
	fs := flag.NewFlagSet("glyphanim", flag.ContinueOnError)
	txt := fs.String("text", def.Text, "text to draw")
	fontName := fs.String("font", def.Font, "font identifier, family or full name")
	size := fs.Float64("size", def.Size, "font size in pixels")
	fill := fs.String("color", def.Fill.Hex(), "fill color as #rgb, #rrggbb or #rrggbbaa")
	width := fs.Int("width", 640, "canvas width in pixels")
	height := fs.Int("height", 160, "canvas height in pixels")
	fontDir := fs.String("fonts", "", "directory of additional .ttf/.otf fonts")
	verbose := fs.Bool("v", false, "debug logging")
	if err := fs.Parse(args); err != nil {
		return err
	}

	setupLogging(*verbose)

	fillColor, err := glyphanim.ParseHex(*fill)
	if err != nil {
		return err
	}
	cfg := &config{
		style: glyphanim.TextStyle{
			Font: fallback(*fontName, def.Font),
			Size: *size,
			Text: *txt,
			Fill: fillColor,
		},
		width:    *width,
		height:   *height,
		fontDir:  *fontDir,
		verbose:  *verbose,
		registry: text.DefaultRegistry(),
	}
	if cfg.fontDir != "" {
		n, err := cfg.registry.LoadDir(cfg.fontDir)
		if err != nil {
			return err
		}
		pterm.Info.Printf("loaded %d fonts from %s\n", n, cfg.fontDir)
	}

	rest := fs.Args()
	mode := ""
	if len(rest) > 0 {
		mode, rest = rest[0], rest[1:]
	}
	switch mode {
	case "":
		return runREPL(cfg)
	case "export":
		return runExport(cfg, rest)
	case "scrub":
		return runScrub(cfg, rest)
	default:
		return fmt.Errorf("unknown mode %q (want export, scrub or none)", mode)
	}
}

// setupLogging routes library logs to stderr.
func setupLogging(verbose bool) {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	glyphanim.SetLogger(logger)
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.Info.Prefix = pterm.Prefix{
		Text:  " !  ",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// withFontFallback runs op with style. If the font cannot be resolved it
// reports the problem and retries once with the default font.
func withFontFallback(style glyphanim.TextStyle, op func(glyphanim.TextStyle) error) (glyphanim.TextStyle, error) {
	err := op(style)
	var fre *glyphanim.FontResolutionError
	if !errors.As(err, &fre) {
		return style, err
	}
	def := glyphanim.DefaultTextStyle()
	if strings.EqualFold(style.Font, def.Font) {
		return style, err
	}
	pterm.Error.Printf("font %q not found, using %q\n", fre.Name, def.Font)
	style.Font = def.Font
	return style, op(style)
}

// fallback returns v unless it is blank.
func fallback(v, last string) string {
	if strings.TrimSpace(v) == "" {
		return last
	}
	return v
}
