package key

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"unicode"

	"github.com/rivo/uniseg"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/dshills/keypress/internal/input/mouse"
)

// ErrUnknownToken is returned when a token names no key or button.
var ErrUnknownToken = errors.New("unrecognized key token")

// Parse parses a single binding token into a Token.
//
// Parsing is case-insensitive. A token is tried as a keyboard key first
// (a literal character, then a key name such as "enter", "f5" or
// "esc") and then as a pointer button ("mousemiddle", "mouseforward",
// "mousebackward"). Tokens that match neither return an error wrapping
// ErrUnknownToken.
//
// Parse handles one token; splitting chords such as "ctrl+a" or "g g"
// is left to the caller.
func Parse(text string) (Token, error) {
	s := cases.Lower(language.Und).String(text)

	if t, ok := parseKeyboard(s); ok {
		return t, nil
	}
	if b, ok := pointerNames[s]; ok {
		return Pointer(b), nil
	}
	return Token{}, fmt.Errorf("%w: %q", ErrUnknownToken, text)
}

// MustParse parses a token and panics on error.
// Use only for known-valid tokens in initialization code.
func MustParse(text string) Token {
	t, err := Parse(text)
	if err != nil {
		panic("invalid key token: " + err.Error())
	}
	return t
}

// Character returns the keyboard token for a literal character. The
// physical code is looked up from the lowercase form of text; characters
// outside the US layout table get CodeFn.
func Character(text string) Token {
	return Keyboard(Text(text), characterCode(strings.ToLower(text)))
}

func parseKeyboard(s string) (Token, bool) {
	if isCharacterToken(s) {
		return Keyboard(Text(s), characterCode(s)), true
	}
	if n, ok := keyNames[s]; ok {
		return Keyboard(n.logical, n.code), true
	}
	return Token{}, false
}

// isCharacterToken reports whether s denotes one literal symbol rather
// than a key name: a single grapheme cluster with no control characters.
// This accepts "a", "=" and single non-ASCII glyphs while rejecting
// names such as "tab". Runs of several glyphs, such as "日本", are
// rejected even when none of them is ASCII.
func isCharacterToken(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if unicode.IsControl(r) {
			return false
		}
	}
	return uniseg.GraphemeClusterCount(s) == 1
}

func characterCode(s string) Code {
	if c, ok := characterCodes[s]; ok {
		return c
	}
	return CodeFn
}

// characterCodes maps literal characters to the key position producing
// them on a US layout.
var characterCodes = map[string]Code{
	"a": CodeKeyA, "b": CodeKeyB, "c": CodeKeyC, "d": CodeKeyD,
	"e": CodeKeyE, "f": CodeKeyF, "g": CodeKeyG, "h": CodeKeyH,
	"i": CodeKeyI, "j": CodeKeyJ, "k": CodeKeyK, "l": CodeKeyL,
	"m": CodeKeyM, "n": CodeKeyN, "o": CodeKeyO, "p": CodeKeyP,
	"q": CodeKeyQ, "r": CodeKeyR, "s": CodeKeyS, "t": CodeKeyT,
	"u": CodeKeyU, "v": CodeKeyV, "w": CodeKeyW, "x": CodeKeyX,
	"y": CodeKeyY, "z": CodeKeyZ,

	"0": CodeDigit0, "1": CodeDigit1, "2": CodeDigit2, "3": CodeDigit3,
	"4": CodeDigit4, "5": CodeDigit5, "6": CodeDigit6, "7": CodeDigit7,
	"8": CodeDigit8, "9": CodeDigit9,

	"=":  CodeEqual,
	"-":  CodeMinus,
	"`":  CodeBackquote,
	"/":  CodeSlash,
	"\\": CodeBackslash,
	",":  CodeComma,
	".":  CodePeriod,
	"*":  CodeNumpadMultiply,
	"+":  CodeNumpadAdd,
	";":  CodeSemicolon,
	"'":  CodeQuote,
	"[":  CodeBracketLeft,
	"]":  CodeBracketRight,
	"<":  CodeIntlBackslash,
	" ":  CodeSpace,
}

type namedKey struct {
	logical Logical
	code    Code
}

func named(k Key, c Code) namedKey {
	return namedKey{logical: Named(k), code: c}
}

// keyNames maps lowercase key names to their logical and physical
// values. Aliases resolve to exactly the same pair as the long name.
var keyNames = map[string]namedKey{
	// Modifiers
	"alt":        named(KeyAlt, CodeAltLeft),
	"altgraph":   named(KeyAltGraph, CodeAltRight),
	"capslock":   named(KeyCapsLock, CodeCapsLock),
	"control":    named(KeyControl, CodeControlLeft),
	"fn":         named(KeyFn, CodeFn),
	"fnlock":     named(KeyFnLock, CodeFnLock),
	"meta":       named(KeyMeta, CodeMeta),
	"numlock":    named(KeyNumLock, CodeNumLock),
	"scrolllock": named(KeyScrollLock, CodeScrollLock),
	"shift":      named(KeyShift, CodeShiftLeft),
	"hyper":      named(KeyHyper, CodeHyper),
	"super":      named(KeySuper, CodeMeta),

	// Whitespace and navigation
	"enter":      named(KeyEnter, CodeEnter),
	"tab":        named(KeyTab, CodeTab),
	"arrowdown":  named(KeyArrowDown, CodeArrowDown),
	"arrowleft":  named(KeyArrowLeft, CodeArrowLeft),
	"arrowright": named(KeyArrowRight, CodeArrowRight),
	"arrowup":    named(KeyArrowUp, CodeArrowUp),
	"end":        named(KeyEnd, CodeEnd),
	"home":       named(KeyHome, CodeHome),
	"pagedown":   named(KeyPageDown, CodePageDown),
	"pageup":     named(KeyPageUp, CodePageUp),

	// Editing
	"backspace": named(KeyBackspace, CodeBackspace),
	"copy":      named(KeyCopy, CodeCopy),
	"cut":       named(KeyCut, CodeCut),
	"delete":    named(KeyDelete, CodeDelete),
	"insert":    named(KeyInsert, CodeInsert),
	"paste":     named(KeyPaste, CodePaste),
	"undo":      named(KeyUndo, CodeUndo),

	// UI and device
	"again":       named(KeyAgain, CodeAgain),
	"contextmenu": named(KeyContextMenu, CodeContextMenu),
	"escape":      named(KeyEscape, CodeEscape),
	"find":        named(KeyFind, CodeFind),
	"help":        named(KeyHelp, CodeHelp),
	"pause":       named(KeyPause, CodePause),
	"play":        named(KeyPlay, CodeMediaPlayPause),
	"props":       named(KeyProps, CodeProps),
	"select":      named(KeySelect, CodeSelect),
	"eject":       named(KeyEject, CodeEject),
	"power":       named(KeyPower, CodePower),
	"printscreen": named(KeyPrintScreen, CodePrintScreen),
	"wakeup":      named(KeyWakeUp, CodeWakeUp),

	// IME
	"nonconvert": named(KeyNonConvert, CodeNonConvert),
	"hiragana":   named(KeyHiragana, CodeHiragana),
	"kanamode":   named(KeyKanaMode, CodeKanaMode),
	"katakana":   named(KeyKatakana, CodeKatakana),

	// Function keys
	"f1":  named(KeyF1, CodeF1),
	"f2":  named(KeyF2, CodeF2),
	"f3":  named(KeyF3, CodeF3),
	"f4":  named(KeyF4, CodeF4),
	"f5":  named(KeyF5, CodeF5),
	"f6":  named(KeyF6, CodeF6),
	"f7":  named(KeyF7, CodeF7),
	"f8":  named(KeyF8, CodeF8),
	"f9":  named(KeyF9, CodeF9),
	"f10": named(KeyF10, CodeF10),
	"f11": named(KeyF11, CodeF11),
	"f12": named(KeyF12, CodeF12),
	"f13": named(KeyF13, CodeF13),
	"f14": named(KeyF14, CodeF14),
	"f15": named(KeyF15, CodeF15),
	"f16": named(KeyF16, CodeF16),
	"f17": named(KeyF17, CodeF17),
	"f18": named(KeyF18, CodeF18),
	"f19": named(KeyF19, CodeF19),
	"f20": named(KeyF20, CodeF20),
	"f21": named(KeyF21, CodeF21),
	"f22": named(KeyF22, CodeF22),
	"f23": named(KeyF23, CodeF23),
	"f24": named(KeyF24, CodeF24),
	"f25": named(KeyF25, CodeF25),
	"f26": named(KeyF26, CodeF26),
	"f27": named(KeyF27, CodeF27),
	"f28": named(KeyF28, CodeF28),
	"f29": named(KeyF29, CodeF29),
	"f30": named(KeyF30, CodeF30),

	// Media, audio and browser
	"mediaplaypause":     named(KeyMediaPlayPause, CodeMediaPlayPause),
	"mediastop":          named(KeyMediaStop, CodeMediaStop),
	"mediatracknext":     named(KeyMediaTrackNext, CodeMediaTrackNext),
	"mediatrackprevious": named(KeyMediaTrackPrevious, CodeMediaTrackPrevious),
	"open":               named(KeyOpen, CodeOpen),
	"audiovolumedown":    named(KeyAudioVolumeDown, CodeAudioVolumeDown),
	"audiovolumeup":      named(KeyAudioVolumeUp, CodeAudioVolumeUp),
	"audiovolumemute":    named(KeyAudioVolumeMute, CodeAudioVolumeMute),
	"launchmail":         named(KeyLaunchMail, CodeLaunchMail),
	"browserback":        named(KeyBrowserBack, CodeBrowserBack),
	"browserfavorites":   named(KeyBrowserFavorites, CodeBrowserFavorites),
	"browserforward":     named(KeyBrowserForward, CodeBrowserForward),
	"browserhome":        named(KeyBrowserHome, CodeBrowserHome),
	"browserrefresh":     named(KeyBrowserRefresh, CodeBrowserRefresh),
	"browsersearch":      named(KeyBrowserSearch, CodeBrowserSearch),
	"browserstop":        named(KeyBrowserStop, CodeBrowserStop),

	// Short aliases
	"esc":   named(KeyEscape, CodeEscape),
	"space": {logical: Text(" "), code: CodeSpace},
	"bs":    named(KeyBackspace, CodeBackspace),
	"up":    named(KeyArrowUp, CodeArrowUp),
	"down":  named(KeyArrowDown, CodeArrowDown),
	"right": named(KeyArrowRight, CodeArrowRight),
	"left":  named(KeyArrowLeft, CodeArrowLeft),
	"del":   named(KeyDelete, CodeDelete),
}

var pointerNames = map[string]mouse.Button{
	"mousemiddle":   mouse.ButtonMiddle,
	"mouseforward":  mouse.ButtonForward,
	"mousebackward": mouse.ButtonBack,
}

// Names returns every key and button name accepted by Parse, excluding
// literal characters, in sorted order.
func Names() []string {
	names := make([]string, 0, len(keyNames)+len(pointerNames))
	for name := range keyNames {
		names = append(names, name)
	}
	for name := range pointerNames {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
