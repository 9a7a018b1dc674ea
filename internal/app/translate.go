package app

import (
	"strings"

	"github.com/dshills/lime/internal/engine/buffer"
	"github.com/dshills/lime/internal/renderer/backend"
)

// Translator turns backend events into editor actions.
//
// Text between the start and end of a bracketed paste is collected and
// delivered as a single InsertText when the paste ends.
type Translator struct {
	pasting bool
	paste   strings.Builder
}

var moveKeys = map[backend.Key]buffer.Direction{
	backend.KeyLeft:  buffer.Left,
	backend.KeyRight: buffer.Right,
	backend.KeyUp:    buffer.Up,
	backend.KeyDown:  buffer.Down,
}

// Translate returns the action for ev. The second result is false when the
// event maps to no action.
func (t *Translator) Translate(ev backend.Event) (Action, bool) {
	switch ev.Type {
	case backend.EventResize:
		return Resize{Columns: ev.Width, Rows: ev.Height}, true
	case backend.EventPaste:
		return t.pasteBoundary(ev.PasteStart)
	case backend.EventKey:
		if t.pasting {
			t.collect(ev)
			return nil, false
		}
		return translateKey(ev)
	default:
		return nil, false
	}
}

func (t *Translator) pasteBoundary(start bool) (Action, bool) {
	if start {
		t.pasting = true
		t.paste.Reset()
		return nil, false
	}
	if !t.pasting {
		return nil, false
	}
	t.pasting = false
	text := t.paste.String()
	t.paste.Reset()
	if text == "" {
		return nil, false
	}
	return InsertText{Text: text}, true
}

func (t *Translator) collect(ev backend.Event) {
	switch ev.Key {
	case backend.KeyRune:
		t.paste.WriteRune(ev.Rune)
	case backend.KeyEnter:
		t.paste.WriteByte('\n')
	case backend.KeyTab:
		t.paste.WriteByte('\t')
	}
}

func translateKey(ev backend.Event) (Action, bool) {
	switch ev.Key {
	case backend.KeyCtrlQ, backend.KeyCtrlC:
		return Quit{}, true
	case backend.KeyCtrlSpace:
		return CycleTheme{}, true
	case backend.KeyCtrlS:
		return Save{}, true
	case backend.KeyRune:
		// Ctrl and Alt chords that are not bound above are ignored
		// rather than typed.
		if ev.Mod.Has(backend.ModCtrl) || ev.Mod.Has(backend.ModAlt) {
			return nil, false
		}
		return InsertChar{Char: ev.Rune}, true
	case backend.KeyEnter:
		return InsertChar{Char: '\n'}, true
	case backend.KeyTab:
		return InsertChar{Char: '\t'}, true
	case backend.KeyBackspace:
		return DeleteBackward{}, true
	}
	if d, ok := moveKeys[ev.Key]; ok {
		return Move{Direction: d}, true
	}
	return nil, false
}
