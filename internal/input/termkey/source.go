package termkey

import (
	"context"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/keypress/internal/input/key"
)

// Event is a token read from the terminal together with the modifiers
// held when it was produced.
type Event struct {
	Token key.Token
	Mod   tcell.ModMask
}

// Source reads tokens from a tcell screen.
type Source struct {
	screen tcell.Screen

	// Buttons held in the previous mouse event, without wheel bits.
	held tcell.ButtonMask
}

// NewSource creates a source reading from screen. The caller owns the
// screen and must have initialized it.
func NewSource(screen tcell.Screen) *Source {
	return &Source{screen: screen}
}

// Run polls the screen and sends an Event for every key press and for
// every mouse button that goes down. It returns ctx.Err() when ctx is
// done and nil when the screen is finalized.
func (s *Source) Run(ctx context.Context, out chan<- Event) error {
	stop := context.AfterFunc(ctx, func() {
		// Wake PollEvent; best-effort, the queue may be full.
		_ = s.screen.PostEvent(tcell.NewEventInterrupt(nil))
	})
	defer stop()

	for {
		ev := s.screen.PollEvent()
		if ev == nil {
			return nil
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		for _, e := range s.convert(ev) {
			select {
			case out <- e:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
	}
}

// convert maps one tcell event to zero or more token events.
func (s *Source) convert(ev tcell.Event) []Event {
	switch e := ev.(type) {
	case *tcell.EventKey:
		tok, ok := FromKey(e)
		if !ok {
			return nil
		}
		return []Event{{Token: tok, Mod: e.Modifiers()}}

	case *tcell.EventMouse:
		mask := e.Buttons()
		pressed := mask &^ s.held
		s.held = mask &^ wheelMask
		var events []Event
		for _, tok := range convertButtons(pressed) {
			events = append(events, Event{Token: tok, Mod: e.Modifiers()})
		}
		return events

	default:
		return nil
	}
}

const wheelMask = tcell.WheelUp | tcell.WheelDown | tcell.WheelLeft | tcell.WheelRight
