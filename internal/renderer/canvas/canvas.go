// Package canvas provides the virtual screen: a grid of cells that the
// editor paints every frame and then flushes to a terminal in one pass.
package canvas

import (
	"fmt"

	"github.com/mattn/go-runewidth"

	"github.com/dshills/lime/internal/renderer/core"
)

// Placeholder is drawn in place of a character whose display width is not
// exactly one cell, keeping screen columns aligned with buffer columns.
const Placeholder = '?'

// Target receives a rendered frame.
type Target interface {
	// SetCell stages a cell at (x, y).
	SetCell(x, y int, cell core.Cell)

	// Show makes the staged cells visible.
	Show() error
}

// Canvas is a fixed-size, row-major grid of cells.
// Reads and writes outside the grid are clipped, never errors.
type Canvas struct {
	width, height int
	cells         []core.Cell
}

// New creates a canvas of the given size filled with empty cells.
// Negative dimensions are treated as zero.
func New(width, height int) *Canvas {
	c := &Canvas{}
	c.Resize(width, height)
	return c
}

// Width returns the number of columns.
func (c *Canvas) Width() int {
	return c.width
}

// Height returns the number of rows.
func (c *Canvas) Height() int {
	return c.height
}

// Bounds returns the rectangle covering the whole canvas.
func (c *Canvas) Bounds() core.ScreenRect {
	return core.ScreenRect{Bottom: c.height, Right: c.width}
}

// Resize reallocates the grid. All previous content is discarded and every
// cell becomes an empty cell.
func (c *Canvas) Resize(width, height int) {
	c.width = max(0, width)
	c.height = max(0, height)
	c.cells = make([]core.Cell, c.width*c.height)
	c.Clear(core.EmptyCell())
}

// Get returns the cell at (x, y). The second result is false when the
// coordinate is outside the grid.
func (c *Canvas) Get(x, y int) (core.Cell, bool) {
	if !c.inBounds(x, y) {
		return core.Cell{}, false
	}
	return c.cells[y*c.width+x], true
}

// Set writes the cell at (x, y). Writes outside the grid are ignored.
func (c *Canvas) Set(x, y int, cell core.Cell) {
	if !c.inBounds(x, y) {
		return
	}
	c.cells[y*c.width+x] = cell
}

// Clear sets every cell to cell.
func (c *Canvas) Clear(cell core.Cell) {
	for i := range c.cells {
		c.cells[i] = cell
	}
}

// Fill sets every cell inside rect to cell, clipped to the grid.
func (c *Canvas) Fill(rect core.ScreenRect, cell core.Cell) {
	rect = rect.Intersect(c.Bounds())
	for y := rect.Top; y < rect.Bottom; y++ {
		row := c.cells[y*c.width : (y+1)*c.width]
		for x := rect.Left; x < rect.Right; x++ {
			row[x] = cell
		}
	}
}

// SetString writes s starting at (x, y), one cell per character, and
// returns the column after the last character. Characters that do not
// occupy exactly one terminal cell are drawn as Placeholder; control
// characters are drawn as spaces.
func (c *Canvas) SetString(x, y int, s string, style core.Style) int {
	for _, r := range s {
		c.Set(x, y, core.NewCell(DisplayRune(r), style))
		x++
	}
	return x
}

// DisplayRune returns the glyph drawn for r in a single cell.
func DisplayRune(r rune) rune {
	if r < 0x20 || r == 0x7F {
		return ' '
	}
	if runewidth.RuneWidth(r) != 1 {
		return Placeholder
	}
	return r
}

// Render sends every cell to t in row-major order, each exactly once, and
// then calls Show once. An error from Show aborts the frame and is
// returned.
func (c *Canvas) Render(t Target) error {
	for y := 0; y < c.height; y++ {
		row := c.cells[y*c.width : (y+1)*c.width]
		for x, cell := range row {
			t.SetCell(x, y, cell)
		}
	}
	if err := t.Show(); err != nil {
		return fmt.Errorf("render frame: %w", err)
	}
	return nil
}

func (c *Canvas) inBounds(x, y int) bool {
	return x >= 0 && x < c.width && y >= 0 && y < c.height
}
