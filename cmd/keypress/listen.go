package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-isatty"
	"github.com/rivo/uniseg"

	"github.com/dshills/keypress/internal/input/key"
	"github.com/dshills/keypress/internal/input/keymap"
	"github.com/dshills/keypress/internal/input/termkey"
	"github.com/dshills/keypress/internal/logging"
)

var escapeToken = key.MustParse("escape")

// errNotTerminal is returned by listen when stdin or stdout is redirected.
var errNotTerminal = errors.New("-listen needs an interactive terminal")

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// listen opens the terminal and prints a line for every key or button
// pressed until Escape is pressed or ctx is done. When keymapPath is set
// the keymap is watched and each line shows the bound command.
func listen(ctx context.Context, host key.Host, keymapPath string, logger *logging.Logger) error {
	if !isTerminal(os.Stdin) || !isTerminal(os.Stdout) {
		return errNotTerminal
	}

	current := func() *keymap.Table { return nil }
	var watchErrors <-chan error
	if keymapPath != "" {
		log := logger.WithComponent("keymap").WithField("file", keymapPath)
		w, err := keymap.NewWatcher(keymap.NewLoader(), keymapPath,
			keymap.WithOnReload(func(t *keymap.Table) {
				log.Info("loaded %d bindings", t.Len())
			}),
		)
		if err != nil {
			return err
		}
		defer w.Close()
		current = w.Current
		watchErrors = w.Errors()
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()
	screen.EnableMouse()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	events := make(chan termkey.Event)
	done := make(chan error, 1)
	go func() {
		done <- termkey.NewSource(screen).Run(ctx, events)
	}()

	view := &logView{screen: screen}
	view.add("press keys or mouse buttons; escape quits")

	for {
		select {
		case ev := <-events:
			if ev.Token.Equal(escapeToken) {
				cancel()
				<-done
				return nil
			}
			view.add(eventLine(ev, host, current()))

		case err, ok := <-watchErrors:
			if !ok {
				watchErrors = nil
				continue
			}
			logger.Warn("keymap reload failed: %v", err)
			view.add("keymap: " + err.Error())

		case err := <-done:
			if err != nil && !errors.Is(err, context.Canceled) {
				return err
			}
			return nil
		}
	}
}

// eventLine describes a terminal event, prefixing held modifiers.
func eventLine(ev termkey.Event, host key.Host, table *keymap.Table) string {
	var mods []string
	for _, m := range modifierTokens {
		if ev.Mod&m.mask != 0 && !ev.Token.Equal(m.token) {
			mods = append(mods, m.token.Render(host))
		}
	}
	line := describe(ev.Token, host, table)
	if len(mods) > 0 {
		line = strings.Join(mods, "+") + " " + line
	}
	return line
}

var modifierTokens = []struct {
	mask  tcell.ModMask
	token key.Token
}{
	{tcell.ModCtrl, key.MustParse("control")},
	{tcell.ModAlt, key.MustParse("alt")},
	{tcell.ModShift, key.MustParse("shift")},
	{tcell.ModMeta, key.MustParse("meta")},
}

// logView shows the most recent lines, newest at the bottom.
type logView struct {
	screen tcell.Screen
	lines  []string
}

func (v *logView) add(line string) {
	_, height := v.screen.Size()
	v.lines = append(v.lines, line)
	if height > 0 && len(v.lines) > height {
		v.lines = v.lines[len(v.lines)-height:]
	}
	v.draw()
}

func (v *logView) draw() {
	v.screen.Clear()
	width, _ := v.screen.Size()
	for y, line := range v.lines {
		x := 0
		g := uniseg.NewGraphemes(line)
		for g.Next() && x < width {
			runes := g.Runes()
			v.screen.SetContent(x, y, runes[0], runes[1:], tcell.StyleDefault)
			x += max(g.Width(), 1)
		}
	}
	v.screen.Show()
}
