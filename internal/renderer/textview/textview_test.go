package textview

import (
	"strings"
	"testing"

	"github.com/dshills/lime/internal/engine/buffer"
	"github.com/dshills/lime/internal/renderer/canvas"
	"github.com/dshills/lime/internal/renderer/core"
)

var testStyles = Styles{
	Text:      core.NewStyle(core.ColorWhite, core.ColorBlack),
	Selection: core.NewStyle(core.ColorBlack, core.ColorWhite),
}

func rowText(c *canvas.Canvas, y int) string {
	var sb strings.Builder
	for x := 0; x < c.Width(); x++ {
		cell, _ := c.Get(x, y)
		sb.WriteRune(cell.Rune)
	}
	return sb.String()
}

func TestRenderLines(t *testing.T) {
	b := buffer.New(buffer.WithText("hello\nworld\n!"))
	v := New(b)
	c := canvas.New(8, 5)

	v.Render(c, testStyles)

	want := []string{"hello   ", "world   ", "!       ", "        ", "        "}
	for y, w := range want {
		if got := rowText(c, y); got != w {
			t.Errorf("row %d = %q, want %q", y, got, w)
		}
	}
	if x, y, ok := v.Cursor(); x != 0 || y != 0 || !ok {
		t.Errorf("Cursor() = %d,%d,%v", x, y, ok)
	}
}

func TestRenderLeavesStatusRow(t *testing.T) {
	b := buffer.New(buffer.WithText("a\nb\nc"))
	v := New(b)
	c := canvas.New(3, 2)
	v.Render(c, testStyles)

	if got := rowText(c, 0); got != "a  " {
		t.Errorf("row 0 = %q", got)
	}
	if got := rowText(c, 1); got != "   " {
		t.Errorf("status row was painted: %q", got)
	}
}

func TestRenderScrollsToCursor(t *testing.T) {
	b := buffer.New(buffer.WithText("0\n1\n2\n3\n4\n5\n6"))
	b.SetCursor(b.LineStart(5))
	v := New(b)
	c := canvas.New(4, 4) // three text rows

	v.Render(c, testStyles)

	if top, _ := v.Scroll(); top != 3 {
		t.Errorf("top = %d, want 3", top)
	}
	if got := rowText(c, 2); got != "5   " {
		t.Errorf("row 2 = %q", got)
	}
	if _, y, _ := v.Cursor(); y != 2 {
		t.Errorf("cursor row = %d, want 2", y)
	}

	// Moving back up past the top scrolls up.
	b.SetCursor(b.LineStart(1))
	v.Render(c, testStyles)
	if top, _ := v.Scroll(); top != 1 {
		t.Errorf("top = %d, want 1", top)
	}
}

func TestRenderHorizontalScroll(t *testing.T) {
	b := buffer.New(buffer.WithText("abcdefghij"))
	b.SetCursor(10)
	v := New(b)
	c := canvas.New(4, 2)

	v.Render(c, testStyles)

	if _, left := v.Scroll(); left != 7 {
		t.Errorf("left = %d, want 7", left)
	}
	if got := rowText(c, 0); got != "hij " {
		t.Errorf("row 0 = %q", got)
	}
	if x, _, _ := v.Cursor(); x != 3 {
		t.Errorf("cursor column = %d, want 3", x)
	}
}

func TestMargins(t *testing.T) {
	b := buffer.New(buffer.WithText(strings.Repeat("x\n", 20)))
	v := New(b)
	v.SetMargins(2, 0)
	c := canvas.New(2, 11) // ten text rows

	b.SetCursor(b.LineStart(8))
	v.Render(c, testStyles)
	if top, _ := v.Scroll(); top != 1 {
		t.Errorf("top = %d, want 1", top)
	}
}

func TestRenderSelection(t *testing.T) {
	b := buffer.New(buffer.WithText("abc\ndef"))
	b.SetSelection(5, 2) // reversed: covers "c\nd"
	v := New(b)
	c := canvas.New(5, 3)
	c.Clear(core.BlankCell(testStyles.Text))

	v.Render(c, testStyles)

	selected := map[[2]int]bool{{2, 0}: true, {3, 0}: true, {0, 1}: true}
	for y := 0; y < 2; y++ {
		for x := 0; x < 5; x++ {
			cell, _ := c.Get(x, y)
			want := testStyles.Text
			if selected[[2]int{x, y}] {
				want = testStyles.Selection
			}
			if !cell.Style.Equals(want) {
				t.Errorf("cell (%d,%d) style = %+v, want %+v", x, y, cell.Style, want)
			}
		}
	}
}

func TestRenderPlaceholders(t *testing.T) {
	b := buffer.New(buffer.WithText("a\t世"))
	v := New(b)
	c := canvas.New(4, 2)
	v.Render(c, testStyles)
	if got := rowText(c, 0); got != "a ? " {
		t.Errorf("row 0 = %q", got)
	}
}

func TestRenderTinyCanvas(t *testing.T) {
	b := buffer.New(buffer.WithText("abc"))
	v := New(b)
	for _, c := range []*canvas.Canvas{canvas.New(0, 0), canvas.New(5, 1), canvas.New(0, 5)} {
		v.Render(c, testStyles)
		if _, _, ok := v.Cursor(); ok {
			t.Errorf("cursor visible on %dx%d canvas", c.Width(), c.Height())
		}
	}
}

func TestSetDocumentResetsScroll(t *testing.T) {
	b := buffer.New(buffer.WithText("abcdefgh"))
	b.SetCursor(8)
	v := New(b)
	v.Render(canvas.New(3, 2), testStyles)

	v.SetDocument(buffer.New())
	if top, left := v.Scroll(); top != 0 || left != 0 {
		t.Errorf("Scroll() = %d,%d after SetDocument", top, left)
	}
}
