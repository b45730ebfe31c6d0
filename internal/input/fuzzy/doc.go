// Package fuzzy ranks candidate names against a partial or mistyped
// query.
//
// A candidate matches when every rune of the query appears in it in
// order. Matches are scored higher for consecutive runs, for starting
// at the beginning of the candidate, for being a prefix, and for short
// candidates:
//
//	fuzzy.Match("pgdn", []string{"pagedown", "pageup"}, 0)
//	// [{Text: "pagedown", Score: ..., Matches: [0 2 4 7]}]
//
// The keypress CLI and the Lua keys module use it to suggest token
// names for unrecognized input.
package fuzzy
