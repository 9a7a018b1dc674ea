package app

import (
	"errors"
	"strings"
	"testing"

	"github.com/dshills/lime/internal/renderer/backend"
	"github.com/dshills/lime/internal/vfs"
)

func post(b *backend.NullBackend, events ...backend.Event) {
	for _, ev := range events {
		b.PostEvent(ev)
	}
}

func TestRun_Session(t *testing.T) {
	e := newTestEditor(t, nil, 1, 1)
	b := backend.NewNullBackend(12, 3)
	post(b,
		runeKey('h', 0),
		runeKey('i', 0),
		key(backend.KeyBackspace),
		key(backend.KeyLeft),
		key(backend.KeyCtrlSpace),
		backend.Event{Type: backend.EventPaste, PasteStart: true},
		runeKey('a', 0),
		key(backend.KeyEnter),
		runeKey('b', 0),
		backend.Event{Type: backend.EventPaste},
		key(backend.KeyCtrlQ),
		runeKey('!', 0), // never read
	)

	if err := e.Run(b); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if got := e.Buffer().Text(); got != "a\nbh" {
		t.Errorf("text = %q, want %q", got, "a\nbh")
	}
	if e.Buffer().Cursor() != 3 {
		t.Errorf("cursor = %d, want 3", e.Buffer().Cursor())
	}
	if !e.ThemeChanged() {
		t.Error("theme change lost")
	}
	// One frame before each of the eleven events read.
	if b.Shows() != 11 {
		t.Errorf("Show called %d times, want 11", b.Shows())
	}
	if ev := b.PollEvent(); ev.Rune != '!' {
		t.Errorf("events after quit were consumed, next = %+v", ev)
	}
}

func TestRun_SizesCanvasFromBackend(t *testing.T) {
	e := newTestEditor(t, nil, 1, 1)
	b := backend.NewNullBackend(30, 7)
	post(b, backend.Event{Type: backend.EventResize, Width: 40, Height: 9})

	if err := e.Run(b); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if e.Canvas().Width() != 40 || e.Canvas().Height() != 9 {
		t.Errorf("canvas = %dx%d, want 40x9", e.Canvas().Width(), e.Canvas().Height())
	}
	// The frame after the resize covered the whole new screen.
	if got := b.Row(8); !strings.HasPrefix(got, "(0, 0)") {
		t.Errorf("status row = %q", got)
	}
}

func TestRun_ClosedBackend(t *testing.T) {
	e := newTestEditor(t, nil, 1, 1)
	b := backend.NewNullBackend(5, 2)
	if err := e.Run(b); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if b.Shows() != 1 {
		t.Errorf("Show called %d times, want 1", b.Shows())
	}
}

func TestRun_SaveFailureKeepsRunning(t *testing.T) {
	e := newTestEditor(t, vfs.NewMemFS(), 1, 1)
	b := backend.NewNullBackend(5, 2)
	post(b, runeKey('x', 0), key(backend.KeyCtrlS), runeKey('y', 0))

	if err := e.Run(b); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if e.Buffer().Text() != "xy" || !e.Buffer().Modified() {
		t.Errorf("text = %q, modified = %v", e.Buffer().Text(), e.Buffer().Modified())
	}
}

func TestRun_FrameError(t *testing.T) {
	e := newTestEditor(t, nil, 1, 1)
	b := backend.NewNullBackend(5, 2)
	boom := errors.New("write /dev/tty: input/output error")
	b.FailShow(boom)
	post(b, runeKey('x', 0))

	if err := e.Run(b); !errors.Is(err, boom) {
		t.Errorf("Run error = %v, want %v", err, boom)
	}
}

type panickingBackend struct {
	*backend.NullBackend
}

func (panickingBackend) PollEvent() backend.Event {
	panic("poll exploded")
}

func TestRun_RecoversPanic(t *testing.T) {
	e := newTestEditor(t, nil, 1, 1)
	err := e.Run(panickingBackend{backend.NewNullBackend(4, 2)})

	var pe *RecoveredPanicError
	if !errors.As(err, &pe) {
		t.Fatalf("Run error = %v, want *RecoveredPanicError", err)
	}
	if pe.Value != "poll exploded" || pe.Stack == "" {
		t.Errorf("RecoveredPanicError = %+v", pe)
	}
}
