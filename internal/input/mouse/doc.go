// Package mouse defines the pointer buttons that can take part in key
// bindings.
//
// Only a few buttons have a binding token name (see key.Parse): the
// middle button and the back/forward side buttons. Every other button
// is still representable so that the host input layer can report it,
// and it renders as "MouseUnimplemented" in binding hints.
package mouse
