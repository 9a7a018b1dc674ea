package backend

import (
	"errors"
	"strings"
	"testing"

	"github.com/dshills/lime/internal/renderer/core"
)

type failingWriter struct{ err error }

func (f failingWriter) Write([]byte) (int, error) { return 0, f.err }

func TestWriterOutput(t *testing.T) {
	var sb strings.Builder
	w := NewWriter(&sb, 3, 1)
	style := core.NewStyle(core.ColorFromRGB(1, 2, 3), core.ColorDefault)

	w.SetCell(0, 0, core.NewCell('a', style))
	w.SetCell(1, 0, core.NewCell('b', style))
	w.SetCell(5, 0, core.NewCell('z', style)) // clipped
	w.ShowCursor(1, 0)

	if sb.Len() != 0 {
		t.Fatal("output written before Show")
	}
	if err := w.Show(); err != nil {
		t.Fatalf("Show: %v", err)
	}

	want := "\x1b[1;1H" + "\x1b[38;2;1;2;3;49m" + "ab" + "\x1b[0m" + "\x1b[1;2H\x1b[?25h"
	if sb.String() != want {
		t.Errorf("output = %q\nwant     %q", sb.String(), want)
	}
}

func TestWriterRepositionsAfterGap(t *testing.T) {
	var sb strings.Builder
	w := NewWriter(&sb, 4, 2)
	style := core.DefaultStyle()

	w.SetCell(3, 0, core.NewCell('x', style))
	w.SetCell(0, 1, core.NewCell('y', style))
	w.HideCursor()
	_ = w.Show()

	want := "\x1b[1;4H\x1b[39;49mx\x1b[2;1Hy\x1b[0m\x1b[?25l"
	if sb.String() != want {
		t.Errorf("output = %q\nwant     %q", sb.String(), want)
	}
}

func TestWriterShowReturnsIOError(t *testing.T) {
	boom := errors.New("broken pipe")
	w := NewWriter(failingWriter{err: boom}, 2, 1)
	w.SetCell(0, 0, core.EmptyCell())

	if err := w.Show(); !errors.Is(err, boom) {
		t.Errorf("Show error = %v, want %v", err, boom)
	}
}
