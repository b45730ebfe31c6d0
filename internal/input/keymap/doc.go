// Package keymap holds single-key binding tables.
//
// A Table maps key tokens to commands. Tokens are matched by physical
// identity (see key.Token.ID), so a binding on "a" fires for the key in
// the A position whatever character the active layout assigns to it.
// Chords and multi-key sequences are resolved by the caller, one token
// at a time.
//
// # Keymap Files
//
// Tables are loaded from TOML, YAML, JSON or INI (binds.conf style)
// files. The format is picked from the file extension:
//
//	name = "editor"
//
//	[[bindings]]
//	key = "f5"
//	command = "build.run"
//	description = "Run the current target"
//
//	[[bindings]]
//	key = "mousemiddle"
//	command = "clipboard.paste"
//
// Every binding token is parsed with key.Parse. Entries that fail are
// reported together, each as an *EntryError carrying the file and the
// index of the binding.
//
// # Reloading
//
// Watcher keeps a Table in sync with its file and swaps in a new Table
// whenever the file changes. Tables themselves are immutable and safe
// for concurrent use.
package keymap
