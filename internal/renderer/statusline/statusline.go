// Package statusline paints the cursor position into the bottom row of the
// canvas.
package statusline

import (
	"fmt"

	"github.com/dshills/lime/internal/renderer/canvas"
	"github.com/dshills/lime/internal/renderer/core"
)

// Position reports the cursor coordinates shown by the status line.
// *buffer.Buffer implements it.
type Position interface {
	Line() int
	Column() int
}

// StatusLine renders "(line, column)" on the last canvas row.
// It holds no state of its own beyond the source and style.
type StatusLine struct {
	source Position
	Style  core.Style
}

// New creates a status line reading from source.
func New(source Position, style core.Style) *StatusLine {
	return &StatusLine{source: source, Style: style}
}

// SetSource replaces the position source, e.g. after a buffer swap.
func (s *StatusLine) SetSource(source Position) {
	s.source = source
}

// Text returns the formatted status text.
func (s *StatusLine) Text() string {
	if s.source == nil {
		return "(0, 0)"
	}
	return fmt.Sprintf("(%d, %d)", s.source.Line(), s.source.Column())
}

// Render fills the bottom row of c with the status style and writes the
// status text from column 0. Nothing outside the bottom row is touched.
func (s *StatusLine) Render(c *canvas.Canvas) {
	if c.Height() == 0 || c.Width() == 0 {
		return
	}
	y := c.Height() - 1
	c.Fill(core.ScreenRect{Top: y, Left: 0, Bottom: y + 1, Right: c.Width()}, core.BlankCell(s.Style))
	c.SetString(0, y, s.Text(), s.Style)
}
