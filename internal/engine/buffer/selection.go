package buffer

// Selection is a pair of document positions. It is stored as entered and
// may be reversed; use Range for the normalised bounds.
type Selection struct {
	Start int
	End   int
}

// Range returns the selection bounds with start <= end.
func (s Selection) Range() (start, end int) {
	if s.Start <= s.End {
		return s.Start, s.End
	}
	return s.End, s.Start
}

// IsEmpty returns true if the selection covers no characters.
func (s Selection) IsEmpty() bool {
	return s.Start == s.End
}

// Len returns the number of selected characters.
func (s Selection) Len() int {
	start, end := s.Range()
	return end - start
}

// Contains reports whether pos lies inside the normalised selection.
func (s Selection) Contains(pos int) bool {
	start, end := s.Range()
	return pos >= start && pos < end
}
