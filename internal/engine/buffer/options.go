package buffer

import "github.com/dshills/lime/internal/vfs"

// Option is a functional option for configuring a Buffer.
type Option func(*Buffer)

// WithFS sets the file system used by Open and Save.
// The default is the operating system's file system.
func WithFS(fsys vfs.FS) Option {
	return func(b *Buffer) {
		if fsys != nil {
			b.fs = fsys
		}
	}
}

// WithText sets the initial content. The cursor stays at 0 and the buffer
// is unmodified.
func WithText(text string) Option {
	return func(b *Buffer) {
		b.setContent(text)
	}
}

// WithSource sets the backing file without reading it. This is how a new,
// not yet existing file is opened for editing.
func WithSource(path string) Option {
	return func(b *Buffer) {
		b.source = path
	}
}
