package lua

import (
	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/keypress/internal/input/fuzzy"
	"github.com/dshills/keypress/internal/input/key"
	"github.com/dshills/keypress/internal/input/keymap"
)

// keysModule implements the global keys table.
type keysModule struct {
	host   key.Host
	keymap func() *keymap.Table
}

// Register installs the module as the global "keys".
func (m *keysModule) Register(L *lua.LState) {
	mod := L.NewTable()

	L.SetField(mod, "parse", L.NewFunction(m.parse))
	L.SetField(mod, "label", L.NewFunction(m.label))
	L.SetField(mod, "equal", L.NewFunction(m.equal))
	L.SetField(mod, "names", L.NewFunction(m.names))
	L.SetField(mod, "suggest", L.NewFunction(m.suggest))
	L.SetField(mod, "command", L.NewFunction(m.command))
	L.SetField(mod, "host", lua.LString(m.host.String()))

	L.SetGlobal("keys", mod)
}

// parse(token) -> {kind, label, code} | nil, err
func (m *keysModule) parse(L *lua.LState) int {
	tok, err := key.Parse(L.CheckString(1))
	if err != nil {
		L.Push(lua.LNil)
		L.Push(lua.LString(err.Error()))
		return 2
	}

	tbl := L.NewTable()
	L.SetField(tbl, "kind", lua.LString(tok.Kind().String()))
	L.SetField(tbl, "label", lua.LString(tok.Render(m.host)))
	if tok.IsPointer() {
		L.SetField(tbl, "code", lua.LString(tok.Button().String()))
	} else {
		L.SetField(tbl, "code", lua.LString(tok.Code().String()))
	}
	L.Push(tbl)
	return 1
}

// label(token) -> string | nil, err
func (m *keysModule) label(L *lua.LState) int {
	tok, err := key.Parse(L.CheckString(1))
	if err != nil {
		L.Push(lua.LNil)
		L.Push(lua.LString(err.Error()))
		return 2
	}
	L.Push(lua.LString(tok.Render(m.host)))
	return 1
}

// equal(a, b) -> bool
// Raises an argument error if either token is unknown.
func (m *keysModule) equal(L *lua.LState) int {
	a, err := key.Parse(L.CheckString(1))
	if err != nil {
		L.ArgError(1, err.Error())
		return 0
	}
	b, err := key.Parse(L.CheckString(2))
	if err != nil {
		L.ArgError(2, err.Error())
		return 0
	}
	L.Push(lua.LBool(a.Equal(b)))
	return 1
}

// names() -> {string...}
func (m *keysModule) names(L *lua.LState) int {
	tbl := L.NewTable()
	for _, name := range key.Names() {
		tbl.Append(lua.LString(name))
	}
	L.Push(tbl)
	return 1
}

// suggest(text, limit?) -> {string...}
// Returns the key names closest to text, best first.
func (m *keysModule) suggest(L *lua.LState) int {
	text := L.CheckString(1)
	limit := L.OptInt(2, 5)

	tbl := L.NewTable()
	for _, name := range fuzzy.Suggest(text, key.Names(), limit) {
		tbl.Append(lua.LString(name))
	}
	L.Push(tbl)
	return 1
}

// command(token) -> string | nil
func (m *keysModule) command(L *lua.LState) int {
	tok, err := key.Parse(L.CheckString(1))
	if err != nil {
		L.ArgError(1, err.Error())
		return 0
	}
	if m.keymap == nil {
		L.Push(lua.LNil)
		return 1
	}
	b, ok := m.keymap().Lookup(tok)
	if !ok {
		L.Push(lua.LNil)
		return 1
	}
	L.Push(lua.LString(b.Command))
	return 1
}
