package buffer

import (
	"strings"
	"unicode/utf8"

	"github.com/dshills/lime/internal/engine/rope"
	"github.com/dshills/lime/internal/vfs"
)

// Buffer is an editable document with a cursor.
type Buffer struct {
	content rope.Rope
	cursor  int

	selection    Selection
	hasSelection bool

	// Sticky column for consecutive vertical moves.
	desiredCol int
	sticky     bool

	source   string
	modified bool

	fs         vfs.FS
	encoding   vfs.Encoding
	lineEnding vfs.LineEnding
}

// New creates an empty, unmodified buffer with no backing file.
func New(opts ...Option) *Buffer {
	b := &Buffer{
		content:    rope.New(),
		fs:         vfs.NewOSFS(),
		encoding:   vfs.EncodingUTF8,
		lineEnding: vfs.LineEndingLF,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

func (b *Buffer) setContent(text string) {
	b.content = rope.FromString(strings.ToValidUTF8(text, string(utf8.RuneError)))
	b.cursor = 0
	b.hasSelection = false
	b.sticky = false
}

// Text returns the entire buffer content.
func (b *Buffer) Text() string {
	return b.content.String()
}

// Len returns the number of characters in the buffer.
func (b *Buffer) Len() int {
	return b.content.Len()
}

// IsEmpty returns true if the buffer has no content.
func (b *Buffer) IsEmpty() bool {
	return b.content.IsEmpty()
}

// LineCount returns the number of lines; an empty buffer has one line.
func (b *Buffer) LineCount() int {
	return b.content.LineCount()
}

// LineStart returns the offset of the first character of line, clamped to
// the document.
func (b *Buffer) LineStart(line int) int {
	return b.content.LineToChar(line)
}

// LineLen returns the number of characters in line, excluding its newline.
func (b *Buffer) LineLen(line int) int {
	return b.content.LineLen(line)
}

// LineText returns the text of line without its newline.
func (b *Buffer) LineText(line int) string {
	return b.content.LineText(line)
}

// Slice returns the text in [start, end), clamped to the document.
func (b *Buffer) Slice(start, end int) string {
	return b.content.Slice(start, end)
}

// Cursor returns the cursor offset.
func (b *Buffer) Cursor() int {
	return b.cursor
}

// SetCursor moves the cursor to pos, clamped to [0, Len()].
func (b *Buffer) SetCursor(pos int) {
	b.cursor = b.clamp(pos)
	b.sticky = false
}

// Line returns the line of the cursor.
func (b *Buffer) Line() int {
	return b.LineOf(b.cursor)
}

// Column returns the column of the cursor.
func (b *Buffer) Column() int {
	return b.ColumnOf(b.cursor)
}

// LineOf returns the number of newlines strictly before pos.
func (b *Buffer) LineOf(pos int) int {
	return b.content.CharToLine(b.clamp(pos))
}

// ColumnOf returns the distance of pos from the start of its line.
func (b *Buffer) ColumnOf(pos int) int {
	pos = b.clamp(pos)
	return pos - b.content.LineToChar(b.content.CharToLine(pos))
}

// Source returns the backing file path, or "" for a scratch buffer.
func (b *Buffer) Source() string {
	return b.source
}

// Modified reports whether the content changed since the last load or save.
func (b *Buffer) Modified() bool {
	return b.modified
}

// Encoding returns the file encoding that Save will write.
func (b *Buffer) Encoding() vfs.Encoding {
	return b.encoding
}

// LineEnding returns the line ending style that Save will write.
func (b *Buffer) LineEnding() vfs.LineEnding {
	return b.lineEnding
}

// Selection returns the current selection as entered, if any.
func (b *Buffer) Selection() (Selection, bool) {
	return b.selection, b.hasSelection
}

// SetSelection selects [start, end). Either bound may come first; both are
// clamped to the document.
func (b *Buffer) SetSelection(start, end int) {
	b.selection = Selection{Start: b.clamp(start), End: b.clamp(end)}
	b.hasSelection = true
}

// ClearSelection removes the selection.
func (b *Buffer) ClearSelection() {
	b.hasSelection = false
}

// Insert inserts text at the cursor and advances the cursor by the number
// of characters inserted. Inserting "" does nothing. Invalid UTF-8 is
// replaced with U+FFFD.
func (b *Buffer) Insert(text string) {
	if text == "" {
		return
	}
	text = strings.ToValidUTF8(text, string(utf8.RuneError))

	b.content = b.content.Insert(b.cursor, text)
	b.cursor += utf8.RuneCountInString(text)
	b.afterEdit()
}

// InsertRune inserts a single character at the cursor and advances the
// cursor by exactly one.
func (b *Buffer) InsertRune(r rune) {
	if !utf8.ValidRune(r) {
		r = utf8.RuneError
	}
	b.content = b.content.Insert(b.cursor, string(r))
	b.cursor++
	b.afterEdit()
}

// DeleteBackward removes the character before the cursor. It does nothing
// at offset 0.
func (b *Buffer) DeleteBackward() {
	if b.cursor == 0 {
		return
	}
	b.content = b.content.Delete(b.cursor-1, b.cursor)
	b.cursor--
	b.afterEdit()
}

// afterEdit records a content mutation.
func (b *Buffer) afterEdit() {
	b.modified = true
	b.hasSelection = false
	b.sticky = false
}

func (b *Buffer) clamp(pos int) int {
	return max(0, min(pos, b.content.Len()))
}
