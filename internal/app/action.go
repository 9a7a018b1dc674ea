package app

import "github.com/dshills/lime/internal/engine/buffer"

// Action is one discrete editor command. Each action maps onto exactly one
// buffer, selector or canvas operation.
type Action interface {
	action()
}

// InsertChar inserts a single character at the cursor.
type InsertChar struct{ Char rune }

// InsertText inserts text at the cursor, e.g. a bracketed paste.
type InsertText struct{ Text string }

// DeleteBackward deletes the character before the cursor.
type DeleteBackward struct{}

// Move moves the cursor one step.
type Move struct{ Direction buffer.Direction }

// CycleTheme switches to the next theme in the palette.
type CycleTheme struct{}

// Resize reallocates the canvas after a terminal size change.
type Resize struct{ Columns, Rows int }

// Save writes the buffer to its source file.
type Save struct{}

// Quit ends the session.
type Quit struct{}

func (InsertChar) action()     {}
func (InsertText) action()     {}
func (DeleteBackward) action() {}
func (Move) action()           {}
func (CycleTheme) action()     {}
func (Resize) action()         {}
func (Save) action()           {}
func (Quit) action()           {}
