package backend

import (
	"sync"
	"unicode"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/lime/internal/renderer/core"
)

// Terminal implements Backend using tcell for terminal output.
type Terminal struct {
	screen tcell.Screen
	mu     sync.Mutex
}

// NewTerminal creates a new terminal backend for the controlling terminal.
func NewTerminal() (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return &Terminal{screen: screen}, nil
}

// NewTerminalWithScreen wraps an existing tcell screen, such as a
// simulation screen in tests.
func NewTerminalWithScreen(screen tcell.Screen) *Terminal {
	return &Terminal{screen: screen}
}

// Init switches the terminal to raw mode and the alternate screen.
func (t *Terminal) Init() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if err := t.screen.Init(); err != nil {
		return err
	}
	t.screen.EnablePaste()
	return nil
}

// Shutdown restores the terminal to the state it had before Init.
func (t *Terminal) Shutdown() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.Fini()
}

func (t *Terminal) Size() (int, int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.screen.Size()
}

func (t *Terminal) SetCell(x, y int, cell core.Cell) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.SetContent(x, y, cell.Rune, nil, convertStyle(cell.Style))
}

// Show flushes staged cells. tcell reports no write errors.
func (t *Terminal) Show() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.Show()
	return nil
}

func (t *Terminal) ShowCursor(x, y int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.ShowCursor(x, y)
}

func (t *Terminal) HideCursor() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.HideCursor()
}

func (t *Terminal) PollEvent() Event {
	ev := t.screen.PollEvent()
	if ev == nil {
		return Event{Type: EventClosed}
	}
	return convertEvent(ev)
}

func (t *Terminal) PostEvent(event Event) {
	var ev tcell.Event
	switch event.Type {
	case EventKey:
		ev = tcell.NewEventKey(convertToTcellKey(event.Key), event.Rune, convertToTcellMod(event.Mod))
	case EventResize:
		ev = tcell.NewEventResize(event.Width, event.Height)
	default:
		return
	}
	_ = t.screen.PostEvent(ev) // best-effort; event queue may be full
}

// Ensure Terminal implements Backend.
var _ Backend = (*Terminal)(nil)

// convertStyle converts our Style to tcell.Style.
func convertStyle(s core.Style) tcell.Style {
	return tcell.StyleDefault.
		Foreground(convertColor(s.Foreground)).
		Background(convertColor(s.Background))
}

func convertColor(c core.Color) tcell.Color {
	if c.IsDefault() {
		return tcell.ColorDefault
	}
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// convertEvent converts tcell events to our Event type.
func convertEvent(ev tcell.Event) Event {
	switch e := ev.(type) {
	case *tcell.EventKey:
		key, r, mod := convertKey(e.Key()), e.Rune(), convertMod(e.Modifiers())
		if key == KeyRune && mod.Has(ModCtrl) {
			key = ctrlRuneKey(r)
		}
		return Event{Type: EventKey, Key: key, Rune: r, Mod: mod}

	case *tcell.EventResize:
		w, h := e.Size()
		return Event{Type: EventResize, Width: w, Height: h}

	case *tcell.EventPaste:
		return Event{Type: EventPaste, PasteStart: e.Start()}

	default:
		return Event{Type: EventNone}
	}
}

// ctrlRuneKey maps a Ctrl-modified rune, as reported by terminals using
// extended keyboard protocols, to the matching control key.
func ctrlRuneKey(r rune) Key {
	switch unicode.ToLower(r) {
	case ' ':
		return KeyCtrlSpace
	case 'c':
		return KeyCtrlC
	case 'q':
		return KeyCtrlQ
	case 's':
		return KeyCtrlS
	default:
		return KeyRune
	}
}

// keyPairs lists the keys the editor distinguishes with the tcell key that
// is posted for each. Aliases tcell reports for the same key come after.
var keyPairs = []struct {
	ours  Key
	tcell tcell.Key
}{
	{KeyEscape, tcell.KeyEscape},
	{KeyEnter, tcell.KeyEnter},
	{KeyTab, tcell.KeyTab},
	{KeyBackspace, tcell.KeyBackspace2},
	{KeyDelete, tcell.KeyDelete},
	{KeyHome, tcell.KeyHome},
	{KeyEnd, tcell.KeyEnd},
	{KeyPageUp, tcell.KeyPgUp},
	{KeyPageDown, tcell.KeyPgDn},
	{KeyUp, tcell.KeyUp},
	{KeyDown, tcell.KeyDown},
	{KeyLeft, tcell.KeyLeft},
	{KeyRight, tcell.KeyRight},
	{KeyCtrlSpace, tcell.KeyCtrlSpace},
	{KeyCtrlC, tcell.KeyCtrlC},
	{KeyCtrlQ, tcell.KeyCtrlQ},
	{KeyCtrlS, tcell.KeyCtrlS},

	{KeyEnter, tcell.KeyLF},
	{KeyBackspace, tcell.KeyBackspace},
}

var (
	fromTcellKey = make(map[tcell.Key]Key, len(keyPairs))
	toTcellKey   = make(map[Key]tcell.Key, len(keyPairs))
)

func init() {
	for _, p := range keyPairs {
		fromTcellKey[p.tcell] = p.ours
		if _, ok := toTcellKey[p.ours]; !ok {
			toTcellKey[p.ours] = p.tcell
		}
	}
}

// convertKey maps a tcell key to ours; unknown keys become KeyNone.
func convertKey(k tcell.Key) Key {
	if k == tcell.KeyRune {
		return KeyRune
	}
	if ours, ok := fromTcellKey[k]; ok {
		return ours
	}
	return KeyNone
}

func convertToTcellKey(k Key) tcell.Key {
	if tk, ok := toTcellKey[k]; ok {
		return tk
	}
	return tcell.KeyRune
}

var modPairs = [...]struct {
	ours  ModMask
	tcell tcell.ModMask
}{
	{ModShift, tcell.ModShift},
	{ModCtrl, tcell.ModCtrl},
	{ModAlt, tcell.ModAlt},
	{ModMeta, tcell.ModMeta},
}

func convertMod(m tcell.ModMask) ModMask {
	var out ModMask
	for _, p := range modPairs {
		if m&p.tcell != 0 {
			out |= p.ours
		}
	}
	return out
}

func convertToTcellMod(m ModMask) tcell.ModMask {
	var out tcell.ModMask
	for _, p := range modPairs {
		if m.Has(p.ours) {
			out |= p.tcell
		}
	}
	return out
}
