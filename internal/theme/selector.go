package theme

// Selector tracks the current theme as an index into the palette.
// The zero value selects the first theme.
type Selector struct {
	index int
}

// NewSelector starts at the named theme. An unknown or empty name falls
// back to DefaultName, and failing that to the first theme.
func NewSelector(name string) *Selector {
	i := indexOf(name)
	if i < 0 {
		i = indexOf(DefaultName)
	}
	return &Selector{index: max(i, 0)}
}

// Current returns the selected theme.
func (s *Selector) Current() Theme {
	return palette[s.index]
}

// Index returns the palette index of the selected theme.
func (s *Selector) Index() int {
	return s.index
}

// Next advances to the following theme, wrapping after the last one, and
// returns it.
func (s *Selector) Next() Theme {
	s.index = (s.index + 1) % len(palette)
	return palette[s.index]
}

// Select switches to the named theme. It returns false and keeps the
// current theme if the name is unknown.
func (s *Selector) Select(name string) bool {
	i := indexOf(name)
	if i < 0 {
		return false
	}
	s.index = i
	return true
}
