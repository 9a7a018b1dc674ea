package backend

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/dshills/lime/internal/renderer/core"
)

// Writer renders cells as ANSI escape sequences onto an io.Writer.
// Output is buffered and written out by Show in a single flush, so an I/O
// failure surfaces from Show. It is used for headless snapshots.
type Writer struct {
	out           *bufio.Writer
	width, height int

	style    core.Style
	hasStyle bool
	nextX    int
	nextY    int

	cursorX, cursorY int
	cursorVisible    bool
}

// NewWriter creates a writer target for a screen of the given size.
func NewWriter(w io.Writer, width, height int) *Writer {
	return &Writer{
		out:    bufio.NewWriter(w),
		width:  width,
		height: height,
		nextX:  -1,
	}
}

// Size returns the screen size the writer was created with.
func (w *Writer) Size() (int, int) {
	return w.width, w.height
}

// SetCell emits the cell at (x, y). Cursor positioning is skipped for a
// cell directly after the previous one, and colors are only re-emitted
// when they change.
func (w *Writer) SetCell(x, y int, cell core.Cell) {
	if x < 0 || x >= w.width || y < 0 || y >= w.height {
		return
	}
	if x != w.nextX || y != w.nextY {
		fmt.Fprintf(w.out, "\x1b[%d;%dH", y+1, x+1)
	}
	if !w.hasStyle || !cell.Style.Equals(w.style) {
		w.out.WriteString(sgr(cell.Style))
		w.style = cell.Style
		w.hasStyle = true
	}
	w.out.WriteRune(cell.Rune)
	w.nextX, w.nextY = x+1, y
}

// ShowCursor places the visible cursor at (x, y) when Show runs.
func (w *Writer) ShowCursor(x, y int) {
	w.cursorX, w.cursorY = x, y
	w.cursorVisible = true
}

// HideCursor hides the cursor when Show runs.
func (w *Writer) HideCursor() {
	w.cursorVisible = false
}

// Show resets attributes, places the cursor and flushes the output.
func (w *Writer) Show() error {
	w.out.WriteString("\x1b[0m")
	if w.cursorVisible {
		fmt.Fprintf(w.out, "\x1b[%d;%dH\x1b[?25h", w.cursorY+1, w.cursorX+1)
	} else {
		w.out.WriteString("\x1b[?25l")
	}
	w.hasStyle = false
	w.nextX = -1
	return w.out.Flush()
}

// sgr returns the Select Graphic Rendition sequence for a style.
func sgr(s core.Style) string {
	params := []string{colorParams(s.Foreground, 38, 39), colorParams(s.Background, 48, 49)}
	return "\x1b[" + strings.Join(params, ";") + "m"
}

func colorParams(c core.Color, set, reset int) string {
	if c.IsDefault() {
		return strconv.Itoa(reset)
	}
	return fmt.Sprintf("%d;2;%d;%d;%d", set, c.R, c.G, c.B)
}
