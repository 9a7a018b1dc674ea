package app

import (
	"errors"
	"runtime/debug"

	"github.com/dshills/lime/internal/renderer/backend"
)

// Run drives the session from b until a quit action or until b closes.
// Each event is applied and followed by a full repaint, so frames never
// interleave. The caller owns b's Init and Shutdown; a panic inside the
// loop is returned as a *RecoveredPanicError so the caller's deferred
// Shutdown still restores the terminal.
func (e *Editor) Run(b backend.Backend) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = NewRecoveredPanicError(r, string(debug.Stack()))
			e.log.Error("recovered panic: %v", r)
		}
	}()

	w, h := b.Size()
	e.canvas.Resize(w, h)

	var tr Translator
	for {
		if err := e.Frame(b); err != nil {
			return err
		}

		ev := b.PollEvent()
		if ev.Type == backend.EventClosed {
			e.log.Info("backend closed")
			return nil
		}

		action, ok := tr.Translate(ev)
		if !ok {
			continue
		}
		err := e.Apply(action)
		switch {
		case errors.Is(err, ErrQuit):
			e.log.Info("quit")
			return nil
		case err != nil:
			// Failed saves keep the session alive; the buffer stays
			// modified.
			e.log.Warn("%v", err)
		}
	}
}
