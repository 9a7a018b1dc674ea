package rope

// TextSummary holds aggregated metrics for a text span.
// Summaries form a monoid under Add, which lets every node cache the
// metrics of its whole subtree.
type TextSummary struct {
	// Bytes is the UTF-8 byte count.
	Bytes int

	// Chars is the rune count.
	Chars int

	// Lines is the number of newline characters.
	Lines int
}

// Add combines two summaries (monoid operation).
func (s TextSummary) Add(other TextSummary) TextSummary {
	return TextSummary{
		Bytes: s.Bytes + other.Bytes,
		Chars: s.Chars + other.Chars,
		Lines: s.Lines + other.Lines,
	}
}

// IsZero returns true if this is the zero/identity summary.
func (s TextSummary) IsZero() bool {
	return s.Bytes == 0
}

// IsASCII reports whether every character is a single byte.
func (s TextSummary) IsASCII() bool {
	return s.Bytes == s.Chars
}

// ComputeSummary calculates metrics for a string.
func ComputeSummary(s string) TextSummary {
	sum := TextSummary{Bytes: len(s)}
	for _, r := range s {
		sum.Chars++
		if r == '\n' {
			sum.Lines++
		}
	}
	return sum
}
