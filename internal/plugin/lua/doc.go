// Package lua exposes key token handling to Lua scripts.
//
// A State is a gopher-lua runtime with only the safe standard libraries
// opened and a global "keys" module installed:
//
//	keys.parse("control")   --> {kind = "keyboard", label = "Control", code = "ControlLeft"}
//	keys.parse("nope")      --> nil, "unrecognized key token: \"nope\""
//	keys.label("meta")      --> "Cmd" on a Mac host
//	keys.equal("a", "A")    --> true
//	keys.names()            --> sorted list of key and button names
//	keys.suggest("entr")    --> {"enter"}
//	keys.command("f5")      --> command bound to f5 in the active keymap, or nil
//
// Usage:
//
//	state, err := lua.NewState(lua.WithHost(key.HostMac))
//	if err != nil {
//	    return err
//	}
//	defer state.Close()
//
//	if err := state.DoString(`assert(keys.label("meta") == "Cmd")`); err != nil {
//	    return err
//	}
package lua
