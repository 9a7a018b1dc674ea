package statusline

import (
	"strings"
	"testing"

	"github.com/dshills/lime/internal/renderer/canvas"
	"github.com/dshills/lime/internal/renderer/core"
)

type fixedPosition struct{ line, col int }

func (p fixedPosition) Line() int   { return p.line }
func (p fixedPosition) Column() int { return p.col }

func rowText(c *canvas.Canvas, y int) string {
	var sb strings.Builder
	for x := 0; x < c.Width(); x++ {
		cell, _ := c.Get(x, y)
		sb.WriteRune(cell.Rune)
	}
	return sb.String()
}

func TestStatusLineRender(t *testing.T) {
	style := core.NewStyle(core.ColorBlack, core.ColorWhite)
	s := New(fixedPosition{line: 3, col: 12}, style)
	c := canvas.New(12, 3)
	marker := core.NewCell('#', core.DefaultStyle())
	c.Clear(marker)

	s.Render(c)

	if got := rowText(c, 2); got != "(3, 12)     " {
		t.Errorf("bottom row = %q", got)
	}
	for x := 0; x < c.Width(); x++ {
		cell, _ := c.Get(x, 2)
		if !cell.Style.Equals(style) {
			t.Fatalf("cell %d has style %+v, want %+v", x, cell.Style, style)
		}
	}
	for y := 0; y < 2; y++ {
		if got := rowText(c, y); got != strings.Repeat("#", 12) {
			t.Errorf("row %d was modified: %q", y, got)
		}
	}
}

func TestStatusLineClipsLongText(t *testing.T) {
	s := New(fixedPosition{line: 12345, col: 678}, core.DefaultStyle())
	c := canvas.New(5, 1)
	s.Render(c)
	if got := rowText(c, 0); got != "(1234" {
		t.Errorf("row = %q, want %q", got, "(1234")
	}
}

func TestStatusLineZeroSize(t *testing.T) {
	s := New(fixedPosition{}, core.DefaultStyle())
	for _, c := range []*canvas.Canvas{canvas.New(0, 0), canvas.New(4, 0), canvas.New(0, 4)} {
		s.Render(c) // must not panic
	}
}

func TestStatusLineText(t *testing.T) {
	tests := []struct {
		name   string
		source Position
		want   string
	}{
		{"origin", fixedPosition{}, "(0, 0)"},
		{"nonzero", fixedPosition{line: 2, col: 7}, "(2, 7)"},
		{"nil source", nil, "(0, 0)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New(tt.source, core.DefaultStyle())
			if got := s.Text(); got != tt.want {
				t.Errorf("Text() = %q, want %q", got, tt.want)
			}
		})
	}
}
