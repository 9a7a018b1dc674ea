package backend

import (
	"strings"

	"github.com/dshills/lime/internal/renderer/core"
)

// NullBackend is an in-memory backend for testing.
// Events are served from a scripted queue; once the queue is empty
// PollEvent returns EventClosed.
type NullBackend struct {
	width, height int
	cells         [][]core.Cell
	cursorX       int
	cursorY       int
	cursorVisible bool
	events        []Event
	shows         int
	showErr       error
	initialized   bool
	shutdown      bool
}

// NewNullBackend creates a null backend with the given dimensions.
func NewNullBackend(width, height int) *NullBackend {
	b := &NullBackend{width: width, height: height}
	b.allocate()
	return b
}

func (b *NullBackend) allocate() {
	b.cells = make([][]core.Cell, b.height)
	for i := range b.cells {
		b.cells[i] = make([]core.Cell, b.width)
		for j := range b.cells[i] {
			b.cells[i][j] = core.EmptyCell()
		}
	}
}

func (b *NullBackend) Init() error {
	b.initialized = true
	return nil
}

func (b *NullBackend) Shutdown() {
	b.shutdown = true
}

func (b *NullBackend) Size() (int, int) {
	return b.width, b.height
}

func (b *NullBackend) SetCell(x, y int, cell core.Cell) {
	if x >= 0 && x < b.width && y >= 0 && y < b.height {
		b.cells[y][x] = cell
	}
}

func (b *NullBackend) Show() error {
	b.shows++
	return b.showErr
}

func (b *NullBackend) ShowCursor(x, y int) {
	b.cursorX = x
	b.cursorY = y
	b.cursorVisible = true
}

func (b *NullBackend) HideCursor() {
	b.cursorVisible = false
}

func (b *NullBackend) PollEvent() Event {
	if len(b.events) == 0 {
		return Event{Type: EventClosed}
	}
	ev := b.events[0]
	b.events = b.events[1:]
	if ev.Type == EventResize {
		b.width, b.height = ev.Width, ev.Height
		b.allocate()
	}
	return ev
}

func (b *NullBackend) PostEvent(event Event) {
	b.events = append(b.events, event)
}

// Cell returns the last cell staged at (x, y) for testing.
func (b *NullBackend) Cell(x, y int) core.Cell {
	if x >= 0 && x < b.width && y >= 0 && y < b.height {
		return b.cells[y][x]
	}
	return core.EmptyCell()
}

// Row returns the glyphs of row y as a string for testing.
func (b *NullBackend) Row(y int) string {
	if y < 0 || y >= b.height {
		return ""
	}
	var sb strings.Builder
	for _, c := range b.cells[y] {
		sb.WriteRune(c.Rune)
	}
	return sb.String()
}

// Shows returns how many times Show was called.
func (b *NullBackend) Shows() int {
	return b.shows
}

// FailShow makes every subsequent Show return err.
func (b *NullBackend) FailShow(err error) {
	b.showErr = err
}

// CursorPosition returns the cursor position and visibility for testing.
func (b *NullBackend) CursorPosition() (x, y int, visible bool) {
	return b.cursorX, b.cursorY, b.cursorVisible
}

// IsShutdown reports whether Shutdown was called.
func (b *NullBackend) IsShutdown() bool {
	return b.shutdown
}

// Ensure NullBackend implements Backend.
var _ Backend = (*NullBackend)(nil)
