package termkey

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/keypress/internal/input/key"
	"github.com/dshills/keypress/internal/input/mouse"
)

func TestFromKey(t *testing.T) {
	tests := []struct {
		name  string
		key   tcell.Key
		rune  rune
		token string
		label string
	}{
		{"rune", tcell.KeyRune, 'a', "a", "a"},
		{"shifted rune", tcell.KeyRune, 'A', "a", "a"},
		{"digit", tcell.KeyRune, '7', "7", "7"},
		{"punctuation", tcell.KeyRune, '[', "[", "["},
		{"space rune", tcell.KeyRune, ' ', "space", " "},
		{"escape", tcell.KeyEscape, 0, "esc", "Escape"},
		{"enter", tcell.KeyEnter, 0, "enter", "Enter"},
		{"tab", tcell.KeyTab, 0, "tab", "Tab"},
		{"backtab", tcell.KeyBacktab, 0, "tab", "Tab"},
		{"backspace", tcell.KeyBackspace, 0, "bs", "Backspace"},
		{"backspace2", tcell.KeyBackspace2, 0, "backspace", "Backspace"},
		{"delete", tcell.KeyDelete, 0, "del", "Delete"},
		{"page up", tcell.KeyPgUp, 0, "pageup", "PageUp"},
		{"arrow", tcell.KeyLeft, 0, "left", "ArrowLeft"},
		{"f1", tcell.KeyF1, 0, "f1", "F1"},
		{"f30", tcell.KeyF30, 0, "f30", "F30"},
		{"ctrl a", tcell.KeyCtrlA, 0, "a", "a"},
		{"ctrl z", tcell.KeyCtrlZ, 0, "z", "z"},
		{"ctrl space", tcell.KeyCtrlSpace, 0, "space", " "},
		{"print", tcell.KeyPrint, 0, "printscreen", "PrintScreen"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tok, ok := FromKey(tcell.NewEventKey(tt.key, tt.rune, tcell.ModNone))
			if !ok {
				t.Fatalf("FromKey(%v, %q) returned no token", tt.key, tt.rune)
			}
			if want := key.MustParse(tt.token); !tok.Equal(want) {
				t.Errorf("FromKey = %#v, want %#v", tok, want)
			}
			if got := tok.Render(key.HostOther); got != tt.label {
				t.Errorf("Render() = %q, want %q", got, tt.label)
			}
		})
	}
}

func TestFromKeyFunctionKeysBeyondF35(t *testing.T) {
	tok, ok := FromKey(tcell.NewEventKey(tcell.KeyF35, 0, tcell.ModNone))
	if !ok || tok.Code() != key.CodeF35 {
		t.Errorf("FromKey(F35) = %#v, %v", tok, ok)
	}
	if _, ok := FromKey(tcell.NewEventKey(tcell.KeyF36, 0, tcell.ModNone)); ok {
		t.Error("F36 has no token")
	}
}

func TestFromKeyNonASCIIRune(t *testing.T) {
	tok, ok := FromKey(tcell.NewEventKey(tcell.KeyRune, 'Ж', tcell.ModNone))
	if !ok {
		t.Fatal("expected a token")
	}
	if tok.Logical().Text != "ж" {
		t.Errorf("Logical().Text = %q, want %q", tok.Logical().Text, "ж")
	}
	if tok.Code() != key.CodeFn {
		t.Errorf("Code() = %v, want %v", tok.Code(), key.CodeFn)
	}
}

func TestFromKeyNil(t *testing.T) {
	if _, ok := FromKey(nil); ok {
		t.Error("FromKey(nil) should return false")
	}
}

func TestFromMouse(t *testing.T) {
	tests := []struct {
		name string
		mask tcell.ButtonMask
		want []mouse.Button
	}{
		{"none", tcell.ButtonNone, nil},
		{"primary", tcell.ButtonPrimary, []mouse.Button{mouse.ButtonLeft}},
		{"middle", tcell.ButtonMiddle, []mouse.Button{mouse.ButtonMiddle}},
		{"back", tcell.Button4, []mouse.Button{mouse.ButtonBack}},
		{"forward", tcell.Button5, []mouse.Button{mouse.ButtonForward}},
		{"wheel", tcell.WheelDown, []mouse.Button{mouse.ButtonScrollDown}},
		{"chord", tcell.ButtonPrimary | tcell.ButtonSecondary, []mouse.Button{mouse.ButtonLeft, mouse.ButtonRight}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			toks := FromMouse(tcell.NewEventMouse(1, 2, tt.mask, tcell.ModNone))
			if len(toks) != len(tt.want) {
				t.Fatalf("FromMouse returned %d tokens, want %d", len(toks), len(tt.want))
			}
			for i, tok := range toks {
				if !tok.IsPointer() || tok.Button() != tt.want[i] {
					t.Errorf("token %d = %#v, want pointer %v", i, tok, tt.want[i])
				}
			}
		})
	}
}

func TestFromMouseMatchesParsedTokens(t *testing.T) {
	toks := FromMouse(tcell.NewEventMouse(0, 0, tcell.ButtonMiddle, tcell.ModNone))
	if len(toks) != 1 || !toks[0].Equal(key.MustParse("mousemiddle")) {
		t.Errorf("FromMouse(middle) = %v", toks)
	}
	if FromMouse(nil) != nil {
		t.Error("FromMouse(nil) should return nil")
	}
}
