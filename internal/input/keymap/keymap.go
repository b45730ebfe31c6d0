package keymap

import (
	"errors"
	"strings"

	"github.com/dshills/keypress/internal/input/key"
)

// Table is an immutable set of single-key bindings.
type Table struct {
	// Name is the keymap identifier.
	Name string

	bindings []Binding
	index    map[key.ID]int
}

// NewTable builds a table from file entries. file names the source of
// the entries in error messages and binding locations.
//
// Entries that bind the same physical key replace the earlier binding
// in place. All invalid entries are reported, joined into one error;
// the table is only returned when every entry is valid.
func NewTable(name, file string, entries []Entry) (*Table, error) {
	t := &Table{
		Name:     name,
		bindings: make([]Binding, 0, len(entries)),
		index:    make(map[key.ID]int, len(entries)),
	}

	var errs []error
	for i, e := range entries {
		b, err := parseEntry(Location{File: file, Index: i}, e)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		t.add(b)
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return t, nil
}

func (t *Table) add(b Binding) {
	id := b.Token.ID()
	if i, ok := t.index[id]; ok {
		t.bindings[i] = b
		return
	}
	t.index[id] = len(t.bindings)
	t.bindings = append(t.bindings, b)
}

// Lookup returns the binding for a token. Any token on the same
// physical key or button matches, whatever its logical value.
func (t *Table) Lookup(tok key.Token) (Binding, bool) {
	if t == nil {
		return Binding{}, false
	}
	i, ok := t.index[tok.ID()]
	if !ok {
		return Binding{}, false
	}
	return t.bindings[i], true
}

// Len returns the number of bindings.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.bindings)
}

// Bindings returns the bindings in file order.
func (t *Table) Bindings() []Binding {
	if t == nil {
		return nil
	}
	out := make([]Binding, len(t.bindings))
	copy(out, t.bindings)
	return out
}

// KeysFor returns the tokens bound to a command, in file order.
func (t *Table) KeysFor(command string) []key.Token {
	if t == nil {
		return nil
	}
	var toks []key.Token
	for _, b := range t.bindings {
		if b.Command == command {
			toks = append(toks, b.Token)
		}
	}
	return toks
}

// Hint returns the labels of every key bound to command, joined with
// ", ", for display next to a menu entry. It returns "" for unbound
// commands.
func (t *Table) Hint(command string, h key.Host) string {
	toks := t.KeysFor(command)
	labels := make([]string, len(toks))
	for i, tok := range toks {
		labels[i] = tok.Render(h)
	}
	return strings.Join(labels, ", ")
}
