// Package app ties the buffer, theme selector, canvas and screen elements
// into an editing session and drives it from backend events.
package app

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/google/uuid"

	"github.com/dshills/lime/internal/config"
	"github.com/dshills/lime/internal/engine/buffer"
	"github.com/dshills/lime/internal/renderer/canvas"
	"github.com/dshills/lime/internal/renderer/core"
	"github.com/dshills/lime/internal/renderer/statusline"
	"github.com/dshills/lime/internal/renderer/textview"
	"github.com/dshills/lime/internal/theme"
	"github.com/dshills/lime/internal/vfs"
)

// Screen receives a rendered frame. backend.Backend satisfies it.
type Screen interface {
	canvas.Target
	ShowCursor(x, y int)
	HideCursor()
}

// Options configures a new Editor.
type Options struct {
	// Width and Height are the initial canvas size.
	Width, Height int
	// Theme is the initial theme name. Unknown names fall back to the
	// default theme.
	Theme string
	// ScrollMargin is the number of lines kept visible around the cursor.
	ScrollMargin int
	// FS is used for file access. Defaults to the OS file system.
	FS vfs.FS
	// Logger receives diagnostics. Defaults to NullLogger.
	Logger *Logger
}

// Editor is one editing session. It owns a single buffer, the canvas, the
// theme selector and the elements painted onto the canvas. It is not safe
// for concurrent use; all calls happen on the event loop.
type Editor struct {
	id     string
	buf    *buffer.Buffer
	canvas *canvas.Canvas
	themes *theme.Selector
	status *statusline.StatusLine
	view   *textview.TextView

	fs           vfs.FS
	log          *Logger
	startTheme   string
	themeChanged bool
}

// NewEditor creates a session with an empty scratch buffer.
func NewEditor(opts Options) *Editor {
	if opts.FS == nil {
		opts.FS = vfs.NewOSFS()
	}
	if opts.Logger == nil {
		opts.Logger = NullLogger
	}

	id := uuid.NewString()
	themes := theme.NewSelector(opts.Theme)
	buf := buffer.New(buffer.WithFS(opts.FS))

	e := &Editor{
		id:         id,
		buf:        buf,
		canvas:     canvas.New(opts.Width, opts.Height),
		themes:     themes,
		status:     statusline.New(buf, themes.Current().StatusStyle()),
		view:       textview.New(buf),
		fs:         opts.FS,
		log:        opts.Logger.WithField("session", id),
		startTheme: themes.Current().Name,
	}
	e.view.SetMargins(opts.ScrollMargin, 0)
	e.log.Info("session started with theme %q", e.startTheme)
	return e
}

// SessionID returns the unique id of this session.
func (e *Editor) SessionID() string {
	return e.id
}

// Buffer returns the active buffer.
func (e *Editor) Buffer() *buffer.Buffer {
	return e.buf
}

// Canvas returns the session's canvas.
func (e *Editor) Canvas() *canvas.Canvas {
	return e.canvas
}

// Theme returns the current theme.
func (e *Editor) Theme() theme.Theme {
	return e.themes.Current()
}

// ThemeChanged reports whether the theme differs from the one the session
// started with.
func (e *Editor) ThemeChanged() bool {
	return e.themeChanged && e.themes.Current().Name != e.startTheme
}

// Open loads path into a new buffer and makes it active. On failure the
// current buffer stays untouched.
func (e *Editor) Open(path string) error {
	buf, err := buffer.Open(path, buffer.WithFS(e.fs))
	if err != nil {
		e.log.Warn("open failed: %v", err)
		return NewOperationError("open", path, err)
	}
	e.setBuffer(buf)
	e.log.Info("opened %s (%d lines, %s)", path, buf.LineCount(), buf.Encoding())
	return nil
}

// OpenOrCreate is like Open, but a path that does not exist yet becomes an
// empty buffer that will be saved to path.
func (e *Editor) OpenOrCreate(path string) error {
	err := e.Open(path)
	if err == nil || !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	e.setBuffer(buffer.New(buffer.WithFS(e.fs), buffer.WithSource(path)))
	e.log.Info("new file %s", path)
	return nil
}

func (e *Editor) setBuffer(buf *buffer.Buffer) {
	e.buf = buf
	e.status.SetSource(buf)
	e.view.SetDocument(buf)
}

// Apply performs one action. Quit returns ErrQuit; a failed save returns an
// *OperationError and leaves the buffer modified.
func (e *Editor) Apply(a Action) error {
	switch a := a.(type) {
	case InsertChar:
		e.buf.InsertRune(a.Char)
	case InsertText:
		e.buf.Insert(a.Text)
	case DeleteBackward:
		e.buf.DeleteBackward()
	case Move:
		e.buf.Move(a.Direction)
	case CycleTheme:
		th := e.themes.Next()
		e.themeChanged = true
		e.log.Debug("theme switched to %q", th.Name)
	case Resize:
		e.canvas.Resize(a.Columns, a.Rows)
		e.log.Debug("resized to %dx%d", a.Columns, a.Rows)
	case Save:
		if err := e.buf.Save(); err != nil {
			e.log.Error("save failed: %v", err)
			return NewOperationError("save", e.buf.Source(), err)
		}
		e.log.Info("saved %s", e.buf.Source())
	case Quit:
		return ErrQuit
	default:
		return fmt.Errorf("%w: %T", ErrUnknownAction, a)
	}
	return nil
}

// Frame repaints the whole canvas and sends it to s in a single render.
func (e *Editor) Frame(s Screen) error {
	th := e.themes.Current()
	text := th.TextStyle()

	e.canvas.Clear(core.BlankCell(text))
	e.view.Render(e.canvas, textview.Styles{Text: text, Selection: th.SelectionStyle()})
	e.status.Style = th.StatusStyle()
	e.status.Render(e.canvas)

	if x, y, ok := e.view.Cursor(); ok {
		s.ShowCursor(x, y)
	} else {
		s.HideCursor()
	}
	return e.canvas.Render(s)
}

// PersistTheme saves the current theme name to the config file at path
// when the theme changed during the session. Only the theme is updated;
// the rest of the file is kept. An empty path disables it.
func (e *Editor) PersistTheme(path string) error {
	if path == "" || !e.ThemeChanged() {
		return nil
	}
	name := e.themes.Current().Name
	if err := config.SaveTheme(e.fs, path, name); err != nil {
		return NewOperationError("save config", path, err)
	}
	e.log.Info("saved theme %q to %s", name, path)
	return nil
}
