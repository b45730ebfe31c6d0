// Package key normalizes key binding tokens.
//
// A binding token is the text a user writes in a keymap to name one key
// or pointer button: "a", "=", "f5", "esc", "control", "mousemiddle".
// Parse turns such a token into a Token, and Token.Render turns a Token
// back into the label shown in menus and binding hints.
//
// # Logical and physical keys
//
// A keyboard Token carries two values:
//
//   - Logical: what the key means (a named key such as KeyArrowUp, or
//     the literal text it produces).
//   - Code: which physical key position it is (CodeKeyA, CodeShiftLeft),
//     independent of the keyboard layout.
//
// Bindings are matched on the physical part only. Two tokens with the
// same Code are Equal and share an ID even if their logical values
// differ, so a binding on "a" still fires on a layout where that key
// produces another character.
//
// # Labels
//
// Every Token has a label. Named keys render with their PascalCase name
// ("ArrowUp", "ContextMenu"), characters render verbatim, and the meta
// key renders as "Cmd", "Win" or "Meta" depending on the Host. Values
// without a label render as "Unidentified" or "MouseUnimplemented".
// Labels are not always parseable: only tokens produced by Parse are
// guaranteed to survive Parse(t.Render(HostOther)).
//
// All tables in this package are built at init and never modified, so
// every function is safe for concurrent use.
package key
