package buffer

import (
	"testing"
	"testing/quick"
)

func TestNew(t *testing.T) {
	b := New()

	if !b.IsEmpty() || b.Len() != 0 {
		t.Errorf("new buffer should be empty, Len() = %d", b.Len())
	}
	if b.Cursor() != 0 {
		t.Errorf("Cursor() = %d, want 0", b.Cursor())
	}
	if b.Modified() {
		t.Error("new buffer should be unmodified")
	}
	if b.Source() != "" {
		t.Errorf("Source() = %q, want empty", b.Source())
	}
	if _, ok := b.Selection(); ok {
		t.Error("new buffer should have no selection")
	}
	if b.LineCount() != 1 {
		t.Errorf("LineCount() = %d, want 1", b.LineCount())
	}
}

func TestWithText(t *testing.T) {
	b := New(WithText("line1\nline2"))

	if b.Text() != "line1\nline2" {
		t.Errorf("Text() = %q", b.Text())
	}
	if b.Cursor() != 0 || b.Modified() {
		t.Errorf("Cursor() = %d, Modified() = %v; want 0, false", b.Cursor(), b.Modified())
	}
	if b.LineText(1) != "line2" {
		t.Errorf("LineText(1) = %q, want %q", b.LineText(1), "line2")
	}
}

func TestInsert(t *testing.T) {
	tests := []struct {
		name       string
		initial    string
		cursor     int
		text       string
		wantText   string
		wantCursor int
	}{
		{"into empty", "", 0, "hi", "hi", 2},
		{"at start", "world", 0, "hello ", "hello world", 6},
		{"in middle", "ac", 1, "b", "abc", 2},
		{"multi-byte advances by chars", "", 0, "日本語", "日本語", 3},
		{"emoji", "ab", 1, "🎉", "a🎉b", 2},
		{"newline", "ab", 1, "\n", "a\nb", 2},
		{"invalid utf-8 replaced", "", 0, "a\xffb", "a�b", 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := New(WithText(tt.initial))
			b.SetCursor(tt.cursor)
			b.Insert(tt.text)

			if b.Text() != tt.wantText {
				t.Errorf("Text() = %q, want %q", b.Text(), tt.wantText)
			}
			if b.Cursor() != tt.wantCursor {
				t.Errorf("Cursor() = %d, want %d", b.Cursor(), tt.wantCursor)
			}
			if !b.Modified() {
				t.Error("Modified() = false after insert")
			}
		})
	}
}

func TestInsertEmptyIsNoop(t *testing.T) {
	b := New(WithText("abc"))
	b.SetCursor(1)
	b.Insert("")

	if b.Text() != "abc" || b.Cursor() != 1 {
		t.Errorf("Text() = %q, Cursor() = %d", b.Text(), b.Cursor())
	}
	if b.Modified() {
		t.Error("inserting an empty string must not set modified")
	}
}

func TestInsertRuneAdvancesByOne(t *testing.T) {
	for _, r := range []rune{'a', 'é', '世', '🎉', '\n'} {
		b := New()
		b.InsertRune(r)
		if b.Cursor() != 1 {
			t.Errorf("InsertRune(%q): Cursor() = %d, want 1", r, b.Cursor())
		}
		if b.Text() != string(r) {
			t.Errorf("InsertRune(%q): Text() = %q", r, b.Text())
		}
	}
}

func TestDeleteBackward(t *testing.T) {
	tests := []struct {
		name       string
		initial    string
		cursor     int
		wantText   string
		wantCursor int
		modified   bool
	}{
		{"at start is noop", "abc", 0, "abc", 0, false},
		{"at end", "abc", 3, "ab", 2, true},
		{"in middle", "abc", 2, "ac", 1, true},
		{"multi-byte", "a世b", 2, "ab", 1, true},
		{"joins lines", "a\nb", 2, "ab", 1, true},
		{"empty buffer", "", 0, "", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := New(WithText(tt.initial))
			b.SetCursor(tt.cursor)
			b.DeleteBackward()

			if b.Text() != tt.wantText {
				t.Errorf("Text() = %q, want %q", b.Text(), tt.wantText)
			}
			if b.Cursor() != tt.wantCursor {
				t.Errorf("Cursor() = %d, want %d", b.Cursor(), tt.wantCursor)
			}
			if b.Modified() != tt.modified {
				t.Errorf("Modified() = %v, want %v", b.Modified(), tt.modified)
			}
		})
	}
}

func TestEndToEnd(t *testing.T) {
	b := New()

	b.Insert("hi")
	if b.Text() != "hi" || b.Cursor() != 2 {
		t.Fatalf("after insert: %q cursor %d", b.Text(), b.Cursor())
	}
	b.DeleteBackward()
	if b.Text() != "h" || b.Cursor() != 1 {
		t.Fatalf("after delete: %q cursor %d", b.Text(), b.Cursor())
	}
	b.Move(Left)
	if b.Cursor() != 0 {
		t.Fatalf("after left: cursor %d", b.Cursor())
	}
	b.Move(Left)
	if b.Cursor() != 0 {
		t.Fatalf("after second left: cursor %d", b.Cursor())
	}
}

func TestLineAndColumn(t *testing.T) {
	b := New(WithText("ab\n世界x\n\nend"))

	tests := []struct {
		pos, line, col int
	}{
		{0, 0, 0},
		{2, 0, 2},
		{3, 1, 0},
		{5, 1, 2},
		{6, 1, 3},
		{7, 2, 0},
		{8, 3, 0},
		{11, 3, 3},
		{99, 3, 3},
		{-5, 0, 0},
	}

	for _, tt := range tests {
		if got := b.LineOf(tt.pos); got != tt.line {
			t.Errorf("LineOf(%d) = %d, want %d", tt.pos, got, tt.line)
		}
		if got := b.ColumnOf(tt.pos); got != tt.col {
			t.Errorf("ColumnOf(%d) = %d, want %d", tt.pos, got, tt.col)
		}
	}
}

func TestLineColumnRoundTrip(t *testing.T) {
	f := func(s string) bool {
		b := New(WithText(s))
		for p := 0; p <= b.Len(); p++ {
			if b.LineStart(b.LineOf(p))+b.ColumnOf(p) != p {
				return false
			}
		}
		return true
	}

	if err := quick.Check(f, nil); err != nil {
		t.Error(err)
	}
}

func TestSelection(t *testing.T) {
	b := New(WithText("hello world"))

	b.SetSelection(8, 2)
	sel, ok := b.Selection()
	if !ok {
		t.Fatal("expected a selection")
	}
	if sel.Start != 8 || sel.End != 2 {
		t.Errorf("selection stored as %+v, want as entered {8 2}", sel)
	}
	if start, end := sel.Range(); start != 2 || end != 8 {
		t.Errorf("Range() = %d, %d; want 2, 8", start, end)
	}
	if sel.Len() != 6 || !sel.Contains(2) || sel.Contains(8) {
		t.Errorf("Len/Contains wrong for %+v", sel)
	}

	b.SetSelection(-3, 100)
	sel, _ = b.Selection()
	if sel.Start != 0 || sel.End != 11 {
		t.Errorf("selection not clamped: %+v", sel)
	}

	b.Insert("x")
	if _, ok := b.Selection(); ok {
		t.Error("selection should be cleared by an edit")
	}

	b.SetSelection(0, 1)
	b.ClearSelection()
	if _, ok := b.Selection(); ok {
		t.Error("ClearSelection did not clear")
	}
}

func TestInsertDeleteRoundTrip(t *testing.T) {
	f := func(s string, pos uint16, r rune) bool {
		b := New(WithText(s))
		b.SetCursor(int(pos) % (b.Len() + 1))
		before, cursor := b.Text(), b.Cursor()

		b.InsertRune(r)
		b.DeleteBackward()
		return b.Text() == before && b.Cursor() == cursor
	}

	if err := quick.Check(f, nil); err != nil {
		t.Error(err)
	}
}

// op is a random buffer operation for property checks.
type op struct {
	Kind uint8
	Text string
}

func TestCursorStaysInRange(t *testing.T) {
	f := func(initial string, ops []op) bool {
		b := New(WithText(initial))
		for _, o := range ops {
			switch o.Kind % 7 {
			case 0:
				b.Insert(o.Text)
			case 1:
				b.DeleteBackward()
			case 2:
				b.Move(Left)
			case 3:
				b.Move(Right)
			case 4:
				b.Move(Up)
			case 5:
				b.Move(Down)
			case 6:
				for _, r := range o.Text {
					b.InsertRune(r)
				}
			}
			if b.Cursor() < 0 || b.Cursor() > b.Len() {
				return false
			}
		}
		return true
	}

	if err := quick.Check(f, nil); err != nil {
		t.Error(err)
	}
}
