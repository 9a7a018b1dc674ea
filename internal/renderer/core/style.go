package core

// Style is a foreground and background color pair.
type Style struct {
	Foreground Color
	Background Color
}

// DefaultStyle returns the terminal's default colors.
func DefaultStyle() Style {
	return Style{Foreground: ColorDefault, Background: ColorDefault}
}

// NewStyle creates a style from a foreground and background color.
func NewStyle(fg, bg Color) Style {
	return Style{Foreground: fg, Background: bg}
}

// WithForeground returns a new style with the given foreground color.
func (s Style) WithForeground(fg Color) Style {
	s.Foreground = fg
	return s
}

// WithBackground returns a new style with the given background color.
func (s Style) WithBackground(bg Color) Style {
	s.Background = bg
	return s
}

// Invert returns a style with foreground and background swapped.
func (s Style) Invert() Style {
	return Style{Foreground: s.Background, Background: s.Foreground}
}

// Equals returns true if two styles are identical.
func (s Style) Equals(other Style) bool {
	return s.Foreground.Equals(other.Foreground) && s.Background.Equals(other.Background)
}
