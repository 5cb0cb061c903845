package main

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/chzyer/readline"
	"github.com/pterm/pterm"

	"github.com/gogpu/glyphanim"
	"github.com/gogpu/glyphanim/render"
)

// host is the interactive session. It plays the part of the UI around the
// animator: it owns the descriptor, edits it field by field and forwards
// the user's actions.
type host struct {
	cfg      *config
	repl     *readline.Instance
	canvas   *render.Canvas
	animator *glyphanim.Animator
	style    glyphanim.TextStyle
}

type commandFunc func(h *host, arg string) (quit bool, err error)

type command struct {
	fn   commandFunc
	help string
}

var commands map[string]command

func init() {
	commands = map[string]command{
		"text":    {textCmd, "text <string>      set the text (blank keeps the last)"},
		"font":    {fontCmd, "font <name>        set the font identifier"},
		"size":    {sizeCmd, "size <px>          set the font size"},
		"color":   {colorCmd, "color <hex>        set the fill color"},
		"fonts":   {fontsCmd, "fonts              list registered fonts"},
		"prepare": {prepareCmd, "prepare            build the path for scrubbing"},
		"scrub":   {scrubCmd, "scrub <0..1>       move the read head"},
		"start":   {startCmd, "start              play the animation"},
		"stop":    {stopCmd, "stop               freeze the animation"},
		"clear":   {clearCmd, "clear              remove the drawing"},
		"state":   {stateCmd, "state              show animator state"},
		"save":    {saveCmd, "save <file.png>    write the current frame"},
		"help":    {helpCmd, "help               show this list"},
		"quit":    {quitCmd, "quit               leave (or <ctrl>D)"},
	}
}

func runREPL(cfg *config) error {
	canvas, err := render.New(cfg.width, cfg.height)
	if err != nil {
		return err
	}
	repl, err := readline.New("glyphanim > ")
	if err != nil {
		return err
	}
	defer repl.Close()

	h := &host{cfg: cfg, repl: repl, canvas: canvas, style: cfg.style}
	h.animator = glyphanim.NewAnimator(
		glyphanim.WithBuilder(glyphanim.NewBuilder(glyphanim.WithRegistry(cfg.registry))),
		glyphanim.WithPresenter(canvas),
		glyphanim.WithDelegate(glyphanim.DelegateFuncs{
			Started: h.animationStarted,
			Stopped: h.animationStopped,
		}),
	)
	h.animator.Attach(canvas.Bounds())

	pterm.Info.Println("Welcome to glyphanim")
	pterm.Info.Println("Type help for commands, quit with <ctrl>D")
	h.loop()
	h.animator.Clear()
	pterm.Info.Println("Good bye!")
	return nil
}

func (h *host) loop() {
	for {
		line, err := h.repl.Readline()
		if err != nil { // io.EOF or interrupt
			return
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		name, arg, _ := strings.Cut(line, " ")
		cmd, ok := commands[strings.ToLower(name)]
		if !ok {
			pterm.Error.Printf("unknown command %q, try help\n", name)
			continue
		}
		quit, err := cmd.fn(h, strings.TrimSpace(arg))
		if err != nil {
			pterm.Error.Println(err)
			continue
		}
		if quit {
			return
		}
	}
}

func (h *host) animationStarted(_ *glyphanim.Animator, anim *glyphanim.Animation) {
	pterm.Info.Printf("animation %d started (%s)\n", anim.ID(), anim.Timeline().Total())
}

func (h *host) animationStopped(_ *glyphanim.Animator, anim *glyphanim.Animation) {
	pterm.Info.Printf("animation %d stopped at %s\n", anim.ID(), anim.Elapsed().Round(time.Millisecond))
}

// apply runs op with the current style, falling back to the default font
// and remembering the style that worked.
func (h *host) apply(op func(glyphanim.TextStyle) error) error {
	style, err := withFontFallback(h.style, op)
	if err == nil {
		h.style = style
	}
	return err
}

func textCmd(h *host, arg string) (bool, error) {
	h.style.Text = fallback(arg, h.style.Text)
	pterm.Printf("text: %q\n", h.style.Text)
	return false, nil
}

func fontCmd(h *host, arg string) (bool, error) {
	h.style.Font = fallback(arg, h.style.Font)
	pterm.Printf("font: %s\n", h.style.Font)
	return false, nil
}

func sizeCmd(h *host, arg string) (bool, error) {
	if arg == "" {
		pterm.Printf("size: %g\n", h.style.Size)
		return false, nil
	}
	size, err := strconv.ParseFloat(arg, 64)
	if err != nil {
		return false, fmt.Errorf("invalid size %q", arg)
	}
	h.style.Size = size
	return false, nil
}

func colorCmd(h *host, arg string) (bool, error) {
	if arg == "" {
		pterm.Printf("color: %s\n", h.style.Fill.Hex())
		return false, nil
	}
	c, err := glyphanim.ParseHex(arg)
	if err != nil {
		return false, err
	}
	h.style.Fill = c
	return false, nil
}

func fontsCmd(h *host, _ string) (bool, error) {
	names := h.cfg.registry.Names()
	sort.Strings(names)
	data := [][]string{{"Font"}}
	for _, n := range names {
		data = append(data, []string{n})
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	return false, nil
}

func prepareCmd(h *host, _ string) (bool, error) {
	return false, h.apply(h.animator.Prepare)
}

func scrubCmd(h *host, arg string) (bool, error) {
	pos, err := strconv.ParseFloat(arg, 64)
	if err != nil {
		return false, fmt.Errorf("invalid scrub position %q", arg)
	}
	err = h.animator.Scrub(pos)
	if errors.Is(err, glyphanim.ErrInvalidStateTransition) {
		return false, fmt.Errorf("%w (run prepare or start first)", err)
	}
	return false, err
}

func startCmd(h *host, _ string) (bool, error) {
	return false, h.apply(h.animator.Start)
}

func stopCmd(h *host, _ string) (bool, error) {
	h.animator.Stop()
	return false, nil
}

func clearCmd(h *host, _ string) (bool, error) {
	h.animator.Clear()
	return false, nil
}

func stateCmd(h *host, _ string) (bool, error) {
	a := h.animator
	data := [][]string{
		{"Property", "Value"},
		{"state", a.State().String()},
		{"text", strconv.Quote(h.style.Text)},
		{"font", h.style.Font},
		{"size", strconv.FormatFloat(h.style.Size, 'g', -1, 64)},
		{"fill", h.style.Fill.Hex()},
	}
	if f, ok := a.Frame(); ok {
		data = append(data,
			[]string{"elapsed", f.Elapsed.Round(time.Millisecond).String()},
			[]string{"total", a.Timeline().Total().String()},
			[]string{"stroke end", strconv.FormatFloat(f.StrokeEnd, 'f', 3, 64)},
			[]string{"fill now", f.Fill.Hex()},
			[]string{"contours", strconv.Itoa(f.Path.Contours())},
			[]string{"glyphs", strconv.Itoa(f.Path.Glyphs)},
		)
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	return false, nil
}

func saveCmd(h *host, arg string) (bool, error) {
	name := fallback(arg, "frame.png")
	if err := h.canvas.SavePNG(name); err != nil {
		return false, err
	}
	pterm.Info.Printf("wrote %s\n", name)
	return false, nil
}

func helpCmd(_ *host, _ string) (bool, error) {
	names := make([]string, 0, len(commands))
	for n := range commands {
		names = append(names, n)
	}
	sort.Strings(names)
	for _, n := range names {
		pterm.Println("  " + commands[n].help)
	}
	return false, nil
}

func quitCmd(_ *host, _ string) (bool, error) {
	return true, nil
}
