// Package termkey turns terminal input events into key tokens.
//
// It is the host input layer for terminal front ends: tcell reports a
// key (or a rune) and a set of mouse buttons, and termkey maps them to
// key.Token values that can be looked up in a keymap.Table.
//
// Terminals do not report physical key positions. FromKey derives the
// physical code the same way key.Parse does for configuration tokens:
// named keys map to their usual position and printable characters use
// the US layout table. Modifiers are not part of a token and are
// returned separately by the caller's own event handling.
package termkey
