package key

import (
	"fmt"

	"github.com/dshills/keypress/internal/input/mouse"
)

// Kind tells which variant a Token holds.
type Kind uint8

const (
	// KindKeyboard is a keyboard key with a logical and a physical part.
	KindKeyboard Kind = iota
	// KindPointer is a pointer button.
	KindPointer
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindKeyboard:
		return "keyboard"
	case KindPointer:
		return "pointer"
	default:
		return fmt.Sprintf("Kind(%d)", k)
	}
}

// Token is a single key or pointer button as used in key bindings.
//
// A keyboard Token carries both the logical value reported by the host
// and the physical code of the key. The two may disagree under remapped
// layouts: the token "a" always names the CodeKeyA position, whatever
// that key produces on the active layout.
//
// Token is an immutable value. Equality ignores the logical value, so
// Token cannot be compared with == or used directly as a map key; use
// Equal and ID instead.
type Token struct {
	_       [0]func()
	kind    Kind
	logical Logical
	code    Code
	button  mouse.Button
}

// Keyboard returns a keyboard token.
func Keyboard(logical Logical, code Code) Token {
	return Token{kind: KindKeyboard, logical: logical, code: code}
}

// Pointer returns a pointer button token.
func Pointer(button mouse.Button) Token {
	return Token{kind: KindPointer, button: button}
}

// Kind returns the variant of the token.
func (t Token) Kind() Kind {
	return t.kind
}

// IsKeyboard returns true for keyboard tokens.
func (t Token) IsKeyboard() bool {
	return t.kind == KindKeyboard
}

// IsPointer returns true for pointer button tokens.
func (t Token) IsPointer() bool {
	return t.kind == KindPointer
}

// Logical returns the logical value of a keyboard token.
func (t Token) Logical() Logical {
	return t.logical
}

// Code returns the physical code of a keyboard token.
func (t Token) Code() Code {
	return t.code
}

// Button returns the button of a pointer token.
func (t Token) Button() mouse.Button {
	return t.button
}

// ID is the identity of a Token: the physical code of a keyboard token
// or the button of a pointer token, tagged with the variant. IDs are
// comparable and are the keys of binding tables.
type ID struct {
	kind  Kind
	value uint16
}

// ID returns the identity used for equality and lookup.
func (t Token) ID() ID {
	if t.kind == KindPointer {
		return ID{kind: KindPointer, value: uint16(t.button)}
	}
	return ID{kind: KindKeyboard, value: uint16(t.code)}
}

// Equal reports whether t and other name the same physical key or the
// same pointer button. Logical values are not compared, and tokens of
// different kinds are never equal.
func (t Token) Equal(other Token) bool {
	return t.ID() == other.ID()
}

// String returns the display label of the token for the current host.
func (t Token) String() string {
	return t.Render(CurrentHost())
}

// Render returns the display label of the token on host h. Every token
// has a label; values without one render as "Unidentified" (keyboard)
// or "MouseUnimplemented" (pointer).
func (t Token) Render(h Host) string {
	if t.kind == KindPointer {
		return pointerLabel(t.button)
	}
	switch t.logical.Key {
	case KeyCharacter:
		return t.logical.Text
	case KeyMeta:
		return h.metaLabel()
	}
	if label := t.logical.Key.Label(); label != "" {
		return label
	}
	return "Unidentified"
}

// GoString helps debugging output show both halves of a keyboard token.
func (t Token) GoString() string {
	if t.kind == KindPointer {
		return fmt.Sprintf("key.Pointer(%s)", t.button)
	}
	return fmt.Sprintf("key.Keyboard(%q, %s)", t.logical.String(), t.code)
}

func pointerLabel(b mouse.Button) string {
	switch b {
	case mouse.ButtonMiddle:
		return "MouseMiddle"
	case mouse.ButtonForward:
		return "MouseForward"
	case mouse.ButtonBack:
		return "MouseBackward"
	default:
		return "MouseUnimplemented"
	}
}
