package termkey

import (
	"unicode"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/keypress/internal/input/key"
	"github.com/dshills/keypress/internal/input/mouse"
)

// FromKey converts a tcell key event into a token. It returns false for
// keys that have no token, such as tcell.KeyCtrlBackslash.
func FromKey(ev *tcell.EventKey) (key.Token, bool) {
	if ev == nil {
		return key.Token{}, false
	}
	return convertKey(ev.Key(), ev.Rune())
}

func convertKey(k tcell.Key, r rune) (key.Token, bool) {
	switch k {
	case tcell.KeyRune:
		if r == 0 || unicode.IsControl(r) {
			return key.Token{}, false
		}
		return key.Character(string(unicode.ToLower(r))), true
	case tcell.KeyEscape:
		return named(key.KeyEscape, key.CodeEscape), true
	case tcell.KeyEnter:
		return named(key.KeyEnter, key.CodeEnter), true
	case tcell.KeyTab, tcell.KeyBacktab:
		return named(key.KeyTab, key.CodeTab), true
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return named(key.KeyBackspace, key.CodeBackspace), true
	case tcell.KeyDelete:
		return named(key.KeyDelete, key.CodeDelete), true
	case tcell.KeyInsert:
		return named(key.KeyInsert, key.CodeInsert), true
	case tcell.KeyHome:
		return named(key.KeyHome, key.CodeHome), true
	case tcell.KeyEnd:
		return named(key.KeyEnd, key.CodeEnd), true
	case tcell.KeyPgUp:
		return named(key.KeyPageUp, key.CodePageUp), true
	case tcell.KeyPgDn:
		return named(key.KeyPageDown, key.CodePageDown), true
	case tcell.KeyUp:
		return named(key.KeyArrowUp, key.CodeArrowUp), true
	case tcell.KeyDown:
		return named(key.KeyArrowDown, key.CodeArrowDown), true
	case tcell.KeyLeft:
		return named(key.KeyArrowLeft, key.CodeArrowLeft), true
	case tcell.KeyRight:
		return named(key.KeyArrowRight, key.CodeArrowRight), true
	case tcell.KeyHelp:
		return named(key.KeyHelp, key.CodeHelp), true
	case tcell.KeyPrint:
		return named(key.KeyPrintScreen, key.CodePrintScreen), true
	case tcell.KeyPause:
		return named(key.KeyPause, key.CodePause), true
	case tcell.KeyCtrlSpace:
		return key.Character(" "), true
	}

	if k >= tcell.KeyF1 && k <= tcell.KeyF64 {
		n := k - tcell.KeyF1
		if n > tcell.Key(key.KeyF35-key.KeyF1) {
			return key.Token{}, false
		}
		return named(key.KeyF1+key.Key(n), key.CodeF1+key.Code(n)), true
	}

	// Ctrl+letter arrives as a control code; the token is the letter key.
	if k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ {
		return key.Character(string(rune('a' + (k - tcell.KeyCtrlA)))), true
	}

	return key.Token{}, false
}

func named(k key.Key, c key.Code) key.Token {
	return key.Keyboard(key.Named(k), c)
}

// buttonMasks lists the tcell buttons that map to pointer tokens, in
// the order FromMouse reports them.
var buttonMasks = []struct {
	mask   tcell.ButtonMask
	button mouse.Button
}{
	{tcell.ButtonPrimary, mouse.ButtonLeft},
	{tcell.ButtonMiddle, mouse.ButtonMiddle},
	{tcell.ButtonSecondary, mouse.ButtonRight},
	{tcell.Button4, mouse.ButtonBack},
	{tcell.Button5, mouse.ButtonForward},
	{tcell.WheelUp, mouse.ButtonScrollUp},
	{tcell.WheelDown, mouse.ButtonScrollDown},
	{tcell.WheelLeft, mouse.ButtonScrollLeft},
	{tcell.WheelRight, mouse.ButtonScrollRight},
}

// FromMouse returns one pointer token per button held in a tcell mouse
// event. A motion event without buttons returns nil.
func FromMouse(ev *tcell.EventMouse) []key.Token {
	if ev == nil {
		return nil
	}
	return convertButtons(ev.Buttons())
}

func convertButtons(mask tcell.ButtonMask) []key.Token {
	var toks []key.Token
	for _, bm := range buttonMasks {
		if mask&bm.mask != 0 {
			toks = append(toks, key.Pointer(bm.button))
		}
	}
	return toks
}
