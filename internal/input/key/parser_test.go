package key

import (
	"errors"
	"strings"
	"testing"

	"github.com/dshills/keypress/internal/input/mouse"
)

func TestParseCharacter(t *testing.T) {
	tests := []struct {
		token string
		text  string
		code  Code
	}{
		{"a", "a", CodeKeyA},
		{"A", "a", CodeKeyA},
		{"z", "z", CodeKeyZ},
		{"5", "5", CodeDigit5},
		{"=", "=", CodeEqual},
		{"-", "-", CodeMinus},
		{"`", "`", CodeBackquote},
		{"/", "/", CodeSlash},
		{"\\", "\\", CodeBackslash},
		{",", ",", CodeComma},
		{".", ".", CodePeriod},
		{"*", "*", CodeNumpadMultiply},
		{"+", "+", CodeNumpadAdd},
		{";", ";", CodeSemicolon},
		{"'", "'", CodeQuote},
		{"[", "[", CodeBracketLeft},
		{"]", "]", CodeBracketRight},
		{"<", "<", CodeIntlBackslash},
		{" ", " ", CodeSpace},
		{"@", "@", CodeFn},
		{"é", "é", CodeFn},
		{"É", "é", CodeFn},
		{"ж", "ж", CodeFn},
		{"e\u0301", "e\u0301", CodeFn},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			tok, err := Parse(tt.token)
			if err != nil {
				t.Fatalf("Parse(%q) error = %v", tt.token, err)
			}
			if !tok.IsKeyboard() {
				t.Fatalf("Parse(%q) kind = %v, want keyboard", tt.token, tok.Kind())
			}
			if !tok.Logical().IsCharacter() {
				t.Errorf("Logical() = %v, want a character", tok.Logical())
			}
			if tok.Logical().Text != tt.text {
				t.Errorf("Logical().Text = %q, want %q", tok.Logical().Text, tt.text)
			}
			if tok.Code() != tt.code {
				t.Errorf("Code() = %v, want %v", tok.Code(), tt.code)
			}
		})
	}
}

func TestParseNamed(t *testing.T) {
	tests := []struct {
		token string
		key   Key
		code  Code
	}{
		{"alt", KeyAlt, CodeAltLeft},
		{"altgraph", KeyAltGraph, CodeAltRight},
		{"control", KeyControl, CodeControlLeft},
		{"shift", KeyShift, CodeShiftLeft},
		{"meta", KeyMeta, CodeMeta},
		{"super", KeySuper, CodeMeta},
		{"fn", KeyFn, CodeFn},
		{"enter", KeyEnter, CodeEnter},
		{"Tab", KeyTab, CodeTab},
		{"ArrowUp", KeyArrowUp, CodeArrowUp},
		{"PAGEDOWN", KeyPageDown, CodePageDown},
		{"backspace", KeyBackspace, CodeBackspace},
		{"contextmenu", KeyContextMenu, CodeContextMenu},
		{"play", KeyPlay, CodeMediaPlayPause},
		{"kanamode", KeyKanaMode, CodeKanaMode},
		{"f1", KeyF1, CodeF1},
		{"F30", KeyF30, CodeF30},
		{"mediatrackprevious", KeyMediaTrackPrevious, CodeMediaTrackPrevious},
		{"browserstop", KeyBrowserStop, CodeBrowserStop},
		{"esc", KeyEscape, CodeEscape},
		{"bs", KeyBackspace, CodeBackspace},
		{"del", KeyDelete, CodeDelete},
		{"up", KeyArrowUp, CodeArrowUp},
		{"down", KeyArrowDown, CodeArrowDown},
		{"left", KeyArrowLeft, CodeArrowLeft},
		{"right", KeyArrowRight, CodeArrowRight},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			tok, err := Parse(tt.token)
			if err != nil {
				t.Fatalf("Parse(%q) error = %v", tt.token, err)
			}
			if tok.Logical().Key != tt.key {
				t.Errorf("Logical().Key = %v, want %v", tok.Logical().Key, tt.key)
			}
			if tok.Code() != tt.code {
				t.Errorf("Code() = %v, want %v", tok.Code(), tt.code)
			}
		})
	}
}

func TestParseSpace(t *testing.T) {
	space := MustParse("space")
	if got := space.Logical(); got != Text(" ") {
		t.Errorf("Logical() = %#v, want literal space", got)
	}
	if space.Code() != CodeSpace {
		t.Errorf("Code() = %v, want %v", space.Code(), CodeSpace)
	}

	literal := MustParse(" ")
	if !space.Equal(literal) {
		t.Errorf("space and %q should share the Space position", " ")
	}
}

func TestParsePointer(t *testing.T) {
	tests := []struct {
		token  string
		button mouse.Button
	}{
		{"mousemiddle", mouse.ButtonMiddle},
		{"MouseForward", mouse.ButtonForward},
		{"mousebackward", mouse.ButtonBack},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			tok, err := Parse(tt.token)
			if err != nil {
				t.Fatalf("Parse(%q) error = %v", tt.token, err)
			}
			if !tok.IsPointer() {
				t.Fatalf("Parse(%q) kind = %v, want pointer", tt.token, tok.Kind())
			}
			if tok.Button() != tt.button {
				t.Errorf("Button() = %v, want %v", tok.Button(), tt.button)
			}
		})
	}
}

func TestParseUnknown(t *testing.T) {
	tokens := []string{
		"",
		"mousewheel",
		"mouseleft",
		"f31",
		"ctrl",
		"ctrl+a",
		"ab",
		"aé",
		"\t",
		"\n",
		"\x00",
		"Unidentified",
		"MouseUnimplemented",
		"cmd",
	}

	for _, token := range tokens {
		t.Run(token, func(t *testing.T) {
			tok, err := Parse(token)
			if err == nil {
				t.Fatalf("Parse(%q) = %#v, want error", token, tok)
			}
			if !errors.Is(err, ErrUnknownToken) {
				t.Errorf("Parse(%q) error = %v, want ErrUnknownToken", token, err)
			}
		})
	}
}

func TestParseErrorQuotesToken(t *testing.T) {
	_, err := Parse("Hyperspace")
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), `"Hyperspace"`) {
		t.Errorf("error %q should quote the original token", err)
	}
}

func TestParseCaseInsensitive(t *testing.T) {
	pairs := [][2]string{
		{"a", "A"},
		{"arrowup", "ArrowUp"},
		{"escape", "ESCAPE"},
		{"mousemiddle", "MouseMiddle"},
		{"f12", "F12"},
	}

	for _, p := range pairs {
		a, b := MustParse(p[0]), MustParse(p[1])
		if !a.Equal(b) {
			t.Errorf("Parse(%q) != Parse(%q)", p[0], p[1])
		}
		if a.Logical() != b.Logical() {
			t.Errorf("Parse(%q).Logical() = %#v, Parse(%q).Logical() = %#v", p[0], a.Logical(), p[1], b.Logical())
		}
	}
}

func TestParseAliases(t *testing.T) {
	aliases := map[string]string{
		"esc":   "escape",
		"bs":    "backspace",
		"del":   "delete",
		"up":    "arrowup",
		"down":  "arrowdown",
		"left":  "arrowleft",
		"right": "arrowright",
	}

	for alias, name := range aliases {
		t.Run(alias, func(t *testing.T) {
			a, b := MustParse(alias), MustParse(name)
			if !a.Equal(b) {
				t.Errorf("Parse(%q) != Parse(%q)", alias, name)
			}
			if a.Logical() != b.Logical() {
				t.Errorf("Parse(%q) logical = %v, Parse(%q) logical = %v", alias, a.Logical(), name, b.Logical())
			}
		})
	}
}

func TestMustParsePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustParse should panic on an unknown token")
		}
	}()
	MustParse("nosuchkey")
}

func TestCharacter(t *testing.T) {
	upper := Character("A")
	if upper.Logical().Text != "A" {
		t.Errorf("Logical().Text = %q, want %q", upper.Logical().Text, "A")
	}
	if upper.Code() != CodeKeyA {
		t.Errorf("Code() = %v, want %v", upper.Code(), CodeKeyA)
	}
	if !upper.Equal(MustParse("a")) {
		t.Error("Character(\"A\") should equal Parse(\"a\")")
	}
	if got := Character("ß").Code(); got != CodeFn {
		t.Errorf("Character(\"ß\").Code() = %v, want %v", got, CodeFn)
	}
}

func TestNames(t *testing.T) {
	names := Names()
	if len(names) != len(keyNames)+len(pointerNames) {
		t.Fatalf("len(Names()) = %d, want %d", len(names), len(keyNames)+len(pointerNames))
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] >= names[i] {
			t.Fatalf("Names() not sorted at %d: %q >= %q", i, names[i-1], names[i])
		}
	}
	for _, name := range names {
		if _, err := Parse(name); err != nil {
			t.Errorf("Parse(%q) error = %v", name, err)
		}
	}
}

func TestCanonicalNamesMatchLabels(t *testing.T) {
	aliases := map[string]bool{
		"esc": true, "space": true, "bs": true, "del": true,
		"up": true, "down": true, "left": true, "right": true,
	}

	for _, name := range Names() {
		if aliases[name] {
			continue
		}
		tok := MustParse(name)
		label := tok.Render(HostOther)
		if strings.ToLower(label) != name {
			t.Errorf("Parse(%q).Render() = %q, want the same name", name, label)
		}
		if !MustParse(label).Equal(tok) {
			t.Errorf("Parse(%q) != Parse(%q)", label, name)
		}
	}
}

func TestRoundTripOnParsedTokens(t *testing.T) {
	tokens := append(Names(), "a", "Z", "0", "=", "<", " ", "é")

	for _, token := range tokens {
		tok := MustParse(token)
		label := tok.Render(HostOther)
		back, err := Parse(label)
		if err != nil {
			t.Errorf("Parse(Render(%q)) = Parse(%q) error = %v", token, label, err)
			continue
		}
		if !back.Equal(tok) {
			t.Errorf("Parse(Render(%q)) = %#v, want %#v", token, back, tok)
		}
		if back.Logical() != tok.Logical() {
			t.Errorf("Parse(Render(%q)).Logical() = %#v, want %#v", token, back.Logical(), tok.Logical())
		}
	}
}

func TestIsCharacterToken(t *testing.T) {
	tests := []struct {
		s    string
		want bool
	}{
		{"a", true},
		{"=", true},
		{" ", true},
		{"é", true},
		{"日", true},
		{"e\u0301", true},
		{"", false},
		{"tab", false},
		{"f1", false},
		{"\t", false},
		{"a\u0000", false},
		{"日本", false},
		{"aé", false},
	}

	for _, tt := range tests {
		t.Run(tt.s, func(t *testing.T) {
			if got := isCharacterToken(tt.s); got != tt.want {
				t.Errorf("isCharacterToken(%q) = %v, want %v", tt.s, got, tt.want)
			}
		})
	}
}
