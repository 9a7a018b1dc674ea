// Package textview paints the visible part of a document onto the canvas
// and keeps the cursor in view.
package textview

import (
	"github.com/dshills/lime/internal/engine/buffer"
	"github.com/dshills/lime/internal/renderer/canvas"
	"github.com/dshills/lime/internal/renderer/core"
)

// Document is the read-only view of a buffer that the text view paints.
type Document interface {
	LineCount() int
	LineStart(line int) int
	LineText(line int) string
	Line() int
	Column() int
	Selection() (buffer.Selection, bool)
}

// Styles are the styles used to paint document text.
type Styles struct {
	Text      core.Style
	Selection core.Style
}

// TextView paints document lines into every canvas row except the last,
// which belongs to the status line.
type TextView struct {
	doc Document

	// First visible line and column.
	top  int
	left int

	// Scroll margins: how close the cursor may get to an edge before the
	// view scrolls.
	marginY int
	marginX int

	cursorX, cursorY int
	cursorVisible    bool
}

// New creates a text view over doc.
func New(doc Document) *TextView {
	return &TextView{doc: doc}
}

// SetDocument replaces the painted document and resets scrolling.
func (v *TextView) SetDocument(doc Document) {
	v.doc = doc
	v.top, v.left = 0, 0
	v.cursorVisible = false
}

// SetMargins sets the vertical and horizontal scroll margins.
func (v *TextView) SetMargins(vertical, horizontal int) {
	v.marginY = max(0, vertical)
	v.marginX = max(0, horizontal)
}

// Scroll returns the first visible line and column.
func (v *TextView) Scroll() (top, left int) {
	return v.top, v.left
}

// Cursor returns the cursor's screen position from the last Render.
// visible is false when the text area had no room.
func (v *TextView) Cursor() (x, y int, visible bool) {
	return v.cursorX, v.cursorY, v.cursorVisible
}

// Area returns the rectangle the view paints into on c.
func Area(c *canvas.Canvas) core.ScreenRect {
	return core.ScreenRect{Right: c.Width(), Bottom: max(0, c.Height()-1)}
}

// Render scrolls so the cursor is visible, then paints the visible lines.
// Cells past the end of a line are left as they are, so callers clear the
// canvas first.
func (v *TextView) Render(c *canvas.Canvas, styles Styles) {
	area := Area(c)
	v.cursorVisible = false
	if v.doc == nil || area.IsEmpty() {
		return
	}
	width, height := area.Width(), area.Height()
	v.reveal(width, height)

	sel, hasSel := v.doc.Selection()
	lineCount := v.doc.LineCount()
	for row := 0; row < height; row++ {
		line := v.top + row
		if line >= lineCount {
			break
		}
		start := v.doc.LineStart(line)
		col := 0
		for _, r := range v.doc.LineText(line) {
			if x := col - v.left; x >= width {
				break
			} else if x >= 0 {
				c.Set(x, row, core.NewCell(canvas.DisplayRune(r), pick(styles, hasSel && sel.Contains(start+col))))
			}
			col++
		}
		// A selected line break shows as one highlighted cell.
		if hasSel && line < lineCount-1 && sel.Contains(start+col) {
			if x := col - v.left; x >= 0 && x < width {
				c.Set(x, row, core.BlankCell(styles.Selection))
			}
		}
	}

	v.cursorX = v.doc.Column() - v.left
	v.cursorY = v.doc.Line() - v.top
	v.cursorVisible = true
}

func pick(styles Styles, selected bool) core.Style {
	if selected {
		return styles.Selection
	}
	return styles.Text
}

// reveal scrolls minimally so the cursor lies inside the view, keeping the
// margins where the view is large enough.
func (v *TextView) reveal(width, height int) {
	line, col := v.doc.Line(), v.doc.Column()

	my := min(v.marginY, (height-1)/2)
	switch {
	case line < v.top+my:
		v.top = max(0, line-my)
	case line > v.top+height-1-my:
		v.top = line - height + 1 + my
	}

	mx := min(v.marginX, (width-1)/2)
	switch {
	case col < v.left+mx:
		v.left = max(0, col-mx)
	case col > v.left+width-1-mx:
		v.left = col - width + 1 + mx
	}
}
