package rope

import "strings"

// Chunk size constants control the granularity of text storage.
const (
	// MinChunkSize is the minimum bytes per chunk produced by splitting.
	MinChunkSize = 128

	// MaxChunkSize is the maximum bytes per chunk before splitting.
	MaxChunkSize = 256

	// TargetChunkSize is the preferred chunk size when building.
	TargetChunkSize = (MinChunkSize + MaxChunkSize) / 2
)

// Chunk represents a bounded string stored in leaf nodes.
// Chunks are immutable once created.
type Chunk struct {
	data    string
	summary TextSummary
}

// NewChunk creates a chunk from a string.
// Computes summary metrics eagerly.
func NewChunk(s string) Chunk {
	return Chunk{
		data:    s,
		summary: ComputeSummary(s),
	}
}

// String returns the chunk's text.
func (c Chunk) String() string {
	return c.data
}

// Summary returns the chunk's precomputed metrics.
func (c Chunk) Summary() TextSummary {
	return c.summary
}

// Len returns the byte length of the chunk.
func (c Chunk) Len() int {
	return len(c.data)
}

// Chars returns the number of characters in the chunk.
func (c Chunk) Chars() int {
	return c.summary.Chars
}

// IsEmpty returns true if the chunk contains no text.
func (c Chunk) IsEmpty() bool {
	return len(c.data) == 0
}

// byteIndex returns the byte offset of the char-th character.
// Values past the end map to Len().
func (c Chunk) byteIndex(char int) int {
	if char <= 0 {
		return 0
	}
	if char >= c.summary.Chars {
		return len(c.data)
	}
	if c.summary.IsASCII() {
		return char
	}
	n := 0
	for i := range c.data {
		if n == char {
			return i
		}
		n++
	}
	return len(c.data)
}

// newlinesBefore counts newlines among the first char characters.
func (c Chunk) newlinesBefore(char int) int {
	if char >= c.summary.Chars {
		return c.summary.Lines
	}
	lines := 0
	n := 0
	for _, r := range c.data {
		if n == char {
			break
		}
		if r == '\n' {
			lines++
		}
		n++
	}
	return lines
}

// charAfterNewline returns the character offset just past the nth newline
// (1-indexed), or -1 if the chunk has fewer newlines.
func (c Chunk) charAfterNewline(nth int) int {
	if nth <= 0 || nth > c.summary.Lines {
		return -1
	}
	seen := 0
	n := 0
	for _, r := range c.data {
		n++
		if r == '\n' {
			seen++
			if seen == nth {
				return n
			}
		}
	}
	return -1
}

// runeAt returns the char-th character.
func (c Chunk) runeAt(char int) rune {
	n := 0
	for _, r := range c.data {
		if n == char {
			return r
		}
		n++
	}
	return 0
}

// slice returns the characters in [start, end).
func (c Chunk) slice(start, end int) string {
	return c.data[c.byteIndex(start):c.byteIndex(end)]
}

// splitIntoChunks splits a string into chunks of appropriate size.
func splitIntoChunks(s string) []Chunk {
	if len(s) == 0 {
		return nil
	}
	if len(s) <= MaxChunkSize {
		return []Chunk{NewChunk(s)}
	}

	var chunks []Chunk
	remaining := s

	for len(remaining) > 0 {
		if len(remaining) <= MaxChunkSize {
			chunks = append(chunks, NewChunk(remaining))
			break
		}

		splitPoint := findUTF8Boundary(remaining, TargetChunkSize)
		chunks = append(chunks, NewChunk(remaining[:splitPoint]))
		remaining = remaining[splitPoint:]
	}

	return chunks
}

// findUTF8Boundary finds a valid UTF-8 boundary near the target position.
// It prefers splitting after a newline if one exists nearby.
func findUTF8Boundary(s string, target int) int {
	if target >= len(s) {
		return len(s)
	}
	if target <= 0 {
		return 0
	}

	searchStart := max(target-MinChunkSize/4, 1)
	searchEnd := min(target+MinChunkSize/4, len(s))

	if i := strings.IndexByte(s[target:searchEnd], '\n'); i >= 0 {
		return target + i + 1
	}
	if i := strings.LastIndexByte(s[searchStart:target], '\n'); i >= 0 {
		return searchStart + i + 1
	}

	pos := target
	for pos > 0 && !isUTF8Start(s[pos]) {
		pos--
	}
	if pos == 0 {
		// Not UTF-8; split anywhere rather than loop forever.
		return target
	}
	return pos
}

// isUTF8Start returns true if the byte is the start of a UTF-8 sequence.
func isUTF8Start(b byte) bool {
	// Continuation bytes are 10xxxxxx.
	return b&0xC0 != 0x80
}
