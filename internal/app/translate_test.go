package app

import (
	"testing"

	"github.com/dshills/lime/internal/engine/buffer"
	"github.com/dshills/lime/internal/renderer/backend"
)

func key(k backend.Key) backend.Event {
	return backend.Event{Type: backend.EventKey, Key: k}
}

func runeKey(r rune, mod backend.ModMask) backend.Event {
	return backend.Event{Type: backend.EventKey, Key: backend.KeyRune, Rune: r, Mod: mod}
}

func TestTranslator_Keys(t *testing.T) {
	tests := []struct {
		name   string
		event  backend.Event
		want   Action
		wantOK bool
	}{
		{"ctrl-q", key(backend.KeyCtrlQ), Quit{}, true},
		{"ctrl-c", key(backend.KeyCtrlC), Quit{}, true},
		{"ctrl-space", key(backend.KeyCtrlSpace), CycleTheme{}, true},
		{"ctrl-s", key(backend.KeyCtrlS), Save{}, true},
		{"rune", runeKey('x', 0), InsertChar{Char: 'x'}, true},
		{"shifted rune", runeKey('X', backend.ModShift), InsertChar{Char: 'X'}, true},
		{"ctrl rune", runeKey('x', backend.ModCtrl), nil, false},
		{"alt rune", runeKey('x', backend.ModAlt), nil, false},
		{"enter", key(backend.KeyEnter), InsertChar{Char: '\n'}, true},
		{"tab", key(backend.KeyTab), InsertChar{Char: '\t'}, true},
		{"backspace", key(backend.KeyBackspace), DeleteBackward{}, true},
		{"left", key(backend.KeyLeft), Move{Direction: buffer.Left}, true},
		{"right", key(backend.KeyRight), Move{Direction: buffer.Right}, true},
		{"up", key(backend.KeyUp), Move{Direction: buffer.Up}, true},
		{"down", key(backend.KeyDown), Move{Direction: buffer.Down}, true},
		{"escape", key(backend.KeyEscape), nil, false},
		{"resize", backend.Event{Type: backend.EventResize, Width: 80, Height: 24}, Resize{Columns: 80, Rows: 24}, true},
		{"none", backend.Event{Type: backend.EventNone}, nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var tr Translator
			got, ok := tr.Translate(tt.event)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("Translate() = %#v, %v; want %#v, %v", got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestTranslator_Paste(t *testing.T) {
	var tr Translator
	events := []backend.Event{
		{Type: backend.EventPaste, PasteStart: true},
		runeKey('a', 0),
		key(backend.KeyEnter),
		runeKey('b', backend.ModShift),
		key(backend.KeyTab),
		key(backend.KeyCtrlQ), // ignored inside a paste
	}
	for i, ev := range events {
		if a, ok := tr.Translate(ev); ok {
			t.Fatalf("event %d produced %#v during paste", i, a)
		}
	}

	got, ok := tr.Translate(backend.Event{Type: backend.EventPaste})
	if !ok || got != (InsertText{Text: "a\nb\t"}) {
		t.Errorf("paste end = %#v, %v", got, ok)
	}

	// Keys after the paste are translated normally again.
	if got, _ := tr.Translate(runeKey('z', 0)); got != (InsertChar{Char: 'z'}) {
		t.Errorf("after paste = %#v", got)
	}
}

func TestTranslator_EmptyOrStrayPaste(t *testing.T) {
	var tr Translator
	if _, ok := tr.Translate(backend.Event{Type: backend.EventPaste}); ok {
		t.Error("paste end without start produced an action")
	}
	tr.Translate(backend.Event{Type: backend.EventPaste, PasteStart: true})
	if _, ok := tr.Translate(backend.Event{Type: backend.EventPaste}); ok {
		t.Error("empty paste produced an action")
	}
}
