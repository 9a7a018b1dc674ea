package buffer

// Direction is a cursor movement direction.
type Direction int

const (
	Left Direction = iota
	Right
	Up
	Down
)

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case Left:
		return "left"
	case Right:
		return "right"
	case Up:
		return "up"
	case Down:
		return "down"
	default:
		return "unknown"
	}
}

// Move moves the cursor one step. Every direction is a no-op at its
// document boundary.
//
// Vertical moves keep a sticky column: the column before the first of a
// run of Up/Down moves is remembered, so passing through a short line and
// back onto a long one restores it.
func (b *Buffer) Move(d Direction) {
	switch d {
	case Left:
		b.cursor = max(0, b.cursor-1)
		b.sticky = false
	case Right:
		b.cursor = min(b.content.Len(), b.cursor+1)
		b.sticky = false
	case Up:
		b.moveVertical(-1)
	case Down:
		b.moveVertical(1)
	}
}

func (b *Buffer) moveVertical(delta int) {
	line := b.Line()
	target := max(0, min(line+delta, b.LineCount()-1))
	if target == line {
		return
	}

	if !b.sticky {
		b.desiredCol = b.Column()
		b.sticky = true
	}
	b.cursor = b.LineStart(target) + min(b.desiredCol, b.LineLen(target))
}
