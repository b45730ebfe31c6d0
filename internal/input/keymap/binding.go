package keymap

import (
	"errors"
	"fmt"

	"github.com/dshills/keypress/internal/input/key"
)

// ErrEmptyCommand is returned for bindings without a command.
var ErrEmptyCommand = errors.New("binding has no command")

// Entry is a binding as written in a keymap file.
type Entry struct {
	// Key is the binding token, e.g. "f5", "esc" or "mousemiddle".
	Key string `json:"key" toml:"key" yaml:"key"`

	// Command is the command to execute.
	Command string `json:"command" toml:"command" yaml:"command"`

	// Description documents the binding.
	Description string `json:"description,omitempty" toml:"description,omitempty" yaml:"description,omitempty"`
}

// Location identifies where a binding was defined.
type Location struct {
	// File is the keymap file, or a descriptive name such as "<reader>".
	File string

	// Index is the zero-based position of the binding in the file.
	Index int
}

// String formats the location for error messages.
func (l Location) String() string {
	if l.File == "" {
		return fmt.Sprintf("binding %d", l.Index+1)
	}
	return fmt.Sprintf("%s: binding %d", l.File, l.Index+1)
}

// Binding is a parsed key-to-command mapping.
type Binding struct {
	// Token is the key or button that triggers the binding.
	Token key.Token

	// Command is the command to execute.
	Command string

	// Description documents the binding.
	Description string

	// Source is where the binding was defined.
	Source Location
}

// Label returns the display label of the binding's key on host h.
func (b Binding) Label(h key.Host) string {
	return b.Token.Render(h)
}

// EntryError reports a keymap entry that could not be turned into a
// binding.
type EntryError struct {
	Source Location
	Key    string
	Err    error
}

func (e *EntryError) Error() string {
	return fmt.Sprintf("%s: key %q: %v", e.Source, e.Key, e.Err)
}

func (e *EntryError) Unwrap() error {
	return e.Err
}

// parseEntry converts one file entry into a binding.
func parseEntry(src Location, e Entry) (Binding, error) {
	tok, err := key.Parse(e.Key)
	if err != nil {
		return Binding{}, &EntryError{Source: src, Key: e.Key, Err: err}
	}
	if e.Command == "" {
		return Binding{}, &EntryError{Source: src, Key: e.Key, Err: ErrEmptyCommand}
	}
	return Binding{
		Token:       tok,
		Command:     e.Command,
		Description: e.Description,
		Source:      src,
	}, nil
}
