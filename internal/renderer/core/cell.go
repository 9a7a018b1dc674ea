package core

// Cell is a single screen position: a glyph drawn in a style.
type Cell struct {
	// Rune is the character to display.
	Rune rune

	// Style is the foreground and background of this cell.
	Style Style
}

// EmptyCell returns a space in the terminal's default colors.
func EmptyCell() Cell {
	return Cell{Rune: ' ', Style: DefaultStyle()}
}

// BlankCell returns a space in the given style.
func BlankCell(style Style) Cell {
	return Cell{Rune: ' ', Style: style}
}

// NewCell creates a cell with the given rune and style.
func NewCell(r rune, style Style) Cell {
	return Cell{Rune: r, Style: style}
}

// Equals returns true if two cells are identical.
func (c Cell) Equals(other Cell) bool {
	return c.Rune == other.Rune && c.Style.Equals(other.Style)
}
