package termkey

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/keypress/internal/input/key"
	"github.com/dshills/keypress/internal/input/mouse"
)

func newSimulationScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("")
	if err := screen.Init(); err != nil {
		t.Fatalf("Init error = %v", err)
	}
	t.Cleanup(screen.Fini)
	return screen
}

func receive(t *testing.T, events <-chan Event) Event {
	t.Helper()
	select {
	case ev := <-events:
		return ev
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for event")
		return Event{}
	}
}

func TestSourceRun(t *testing.T) {
	screen := newSimulationScreen(t)
	src := NewSource(screen)

	ctx, cancel := context.WithCancel(context.Background())
	events := make(chan Event, 8)
	done := make(chan error, 1)
	go func() {
		done <- src.Run(ctx, events)
	}()

	screen.InjectKey(tcell.KeyRune, 'q', tcell.ModCtrl)
	ev := receive(t, events)
	if !ev.Token.Equal(key.MustParse("q")) {
		t.Errorf("Token = %#v, want q", ev.Token)
	}
	if ev.Mod&tcell.ModCtrl == 0 {
		t.Errorf("Mod = %v, want ModCtrl", ev.Mod)
	}

	screen.InjectKey(tcell.KeyF5, 0, tcell.ModNone)
	if ev := receive(t, events); !ev.Token.Equal(key.MustParse("f5")) {
		t.Errorf("Token = %#v, want f5", ev.Token)
	}

	screen.InjectMouse(3, 4, tcell.ButtonMiddle, tcell.ModNone)
	if ev := receive(t, events); ev.Token.Button() != mouse.ButtonMiddle {
		t.Errorf("Token = %#v, want middle button", ev.Token)
	}

	cancel()
	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("Run error = %v, want context.Canceled", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not stop after cancel")
	}
}

func TestSourceReportsButtonDownOnce(t *testing.T) {
	src := &Source{}

	press := tcell.NewEventMouse(0, 0, tcell.ButtonMiddle, tcell.ModNone)
	if got := src.convert(press); len(got) != 1 {
		t.Fatalf("press produced %d events, want 1", len(got))
	}

	drag := tcell.NewEventMouse(5, 5, tcell.ButtonMiddle, tcell.ModNone)
	if got := src.convert(drag); len(got) != 0 {
		t.Errorf("drag produced %d events, want 0", len(got))
	}

	release := tcell.NewEventMouse(5, 5, tcell.ButtonNone, tcell.ModNone)
	if got := src.convert(release); len(got) != 0 {
		t.Errorf("release produced %d events, want 0", len(got))
	}

	if got := src.convert(press); len(got) != 1 {
		t.Errorf("second press produced %d events, want 1", len(got))
	}
}

func TestSourceRepeatsWheel(t *testing.T) {
	src := &Source{}
	wheel := tcell.NewEventMouse(0, 0, tcell.WheelUp, tcell.ModNone)

	for i := 0; i < 3; i++ {
		got := src.convert(wheel)
		if len(got) != 1 || got[0].Token.Button() != mouse.ButtonScrollUp {
			t.Errorf("wheel event %d = %v", i, got)
		}
	}
}

func TestSourceIgnoresUnknownKeys(t *testing.T) {
	src := &Source{}
	if got := src.convert(tcell.NewEventKey(tcell.KeyCtrlBackslash, 0, tcell.ModNone)); got != nil {
		t.Errorf("convert = %v, want nil", got)
	}
	if got := src.convert(tcell.NewEventResize(80, 24)); got != nil {
		t.Errorf("convert(resize) = %v, want nil", got)
	}
}
