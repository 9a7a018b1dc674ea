package rope

import (
	"io"
	"strings"
)

// Rope is an immutable rope data structure for efficient text storage.
// Operations return new Rope values; the original is never modified.
// The zero value is an empty rope.
type Rope struct {
	root *Node
}

// New creates an empty rope.
func New() Rope {
	return Rope{root: newLeafNode()}
}

// FromString creates a rope from a string.
func FromString(s string) Rope {
	if len(s) == 0 {
		return New()
	}
	return buildFromChunks(splitIntoChunks(s))
}

// buildFromChunks builds a balanced rope bottom-up from a slice of chunks.
func buildFromChunks(chunks []Chunk) Rope {
	if len(chunks) == 0 {
		return New()
	}

	groups := partition(chunks, MaxChunksPerLeaf)
	leaves := make([]*Node, len(groups))
	for i, g := range groups {
		leaves[i] = newLeafNodeWithChunks(g)
	}
	return Rope{root: buildNodeFromChildren(leaves)}
}

// Len returns the total number of characters.
func (r Rope) Len() int {
	if r.root == nil {
		return 0
	}
	return r.root.summary.Chars
}

// Bytes returns the UTF-8 encoded length.
func (r Rope) Bytes() int {
	if r.root == nil {
		return 0
	}
	return r.root.summary.Bytes
}

// LineCount returns the number of lines (newlines + 1).
func (r Rope) LineCount() int {
	if r.root == nil {
		return 1
	}
	return r.root.summary.Lines + 1
}

// IsEmpty returns true if the rope contains no text.
func (r Rope) IsEmpty() bool {
	return r.Len() == 0
}

// Summary returns the aggregated metrics for the entire rope.
func (r Rope) Summary() TextSummary {
	if r.root == nil {
		return TextSummary{}
	}
	return r.root.summary
}

// String returns the full text as a string.
// Use sparingly for large ropes.
func (r Rope) String() string {
	if r.root == nil {
		return ""
	}

	var sb strings.Builder
	sb.Grow(r.Bytes())
	r.root.appendTo(&sb)
	return sb.String()
}

// Slice returns the text in the character range [start, end).
func (r Rope) Slice(start, end int) string {
	start = r.clamp(start)
	end = r.clamp(end)
	if r.root == nil || start >= end {
		return ""
	}

	var sb strings.Builder
	r.root.appendRange(&sb, start, end)
	return sb.String()
}

// RuneAt returns the character at the given offset.
// Returns 0 and false if offset is out of range.
func (r Rope) RuneAt(pos int) (rune, bool) {
	if r.root == nil || pos < 0 || pos >= r.Len() {
		return 0, false
	}
	return r.root.runeAt(pos), true
}

// Insert inserts text at the given character offset.
// The offset is clamped to [0, Len()].
func (r Rope) Insert(at int, text string) Rope {
	if len(text) == 0 {
		return r
	}
	if r.root == nil {
		r = New()
	}

	nodes := r.root.insert(r.clamp(at), text)
	return Rope{root: buildNodeFromChildren(nodes)}
}

// Delete removes the characters in [start, end).
// The range is clamped; an empty range returns the rope unchanged.
func (r Rope) Delete(start, end int) Rope {
	start = r.clamp(start)
	end = r.clamp(end)
	if r.root == nil || start >= end {
		return r
	}

	root := r.root.delete(start, end)
	if root == nil {
		return New()
	}
	for !root.IsLeaf() && len(root.children) == 1 {
		root = root.children[0]
	}
	return Rope{root: root}
}

// CharToLine returns the line containing the character offset: the number
// of newlines strictly before pos. Offsets are clamped to [0, Len()].
func (r Rope) CharToLine(pos int) int {
	pos = r.clamp(pos)
	if r.root == nil || pos == 0 {
		return 0
	}
	if pos >= r.Len() {
		return r.root.summary.Lines
	}
	return r.root.lineOfChar(pos)
}

// LineToChar returns the character offset of the first character of line.
// Lines past the end map to Len(); negative lines map to 0.
func (r Rope) LineToChar(line int) int {
	if r.root == nil || line <= 0 {
		return 0
	}
	if line > r.root.summary.Lines {
		return r.Len()
	}
	return r.root.charAfterNewline(line)
}

// LineLen returns the number of characters in line, excluding its newline.
// Returns 0 for lines out of range.
func (r Rope) LineLen(line int) int {
	if line < 0 || line >= r.LineCount() {
		return 0
	}
	start := r.LineToChar(line)
	if line == r.LineCount()-1 {
		return r.Len() - start
	}
	return r.LineToChar(line+1) - 1 - start
}

// LineText returns the text of the given line (not including newline).
func (r Rope) LineText(line int) string {
	if line < 0 || line >= r.LineCount() {
		return ""
	}
	start := r.LineToChar(line)
	return r.Slice(start, start+r.LineLen(line))
}

// WriteTo writes the rope's text to w chunk by chunk.
func (r Rope) WriteTo(w io.Writer) (int64, error) {
	var total int64
	it := r.Chunks()
	for it.Next() {
		n, err := io.WriteString(w, it.Chunk().String())
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// Height returns the height of the rope tree.
// Useful for debugging and testing balance.
func (r Rope) Height() int {
	if r.root == nil {
		return 0
	}
	return int(r.root.height) + 1
}

// Equals returns true if two ropes contain the same text.
// Note: This compares content, not structure.
func (r Rope) Equals(other Rope) bool {
	if r.Bytes() != other.Bytes() {
		return false
	}
	return r.String() == other.String()
}

func (r Rope) clamp(pos int) int {
	return max(0, min(pos, r.Len()))
}
