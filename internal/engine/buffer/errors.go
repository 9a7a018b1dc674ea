package buffer

import (
	"errors"
	"fmt"

	"github.com/dshills/lime/internal/vfs"
)

// ErrNoDestination is returned by Save when the buffer has no backing file.
var ErrNoDestination = errors.New("buffer has no file to save to")

// ReadError reports a failure to load a file into a buffer.
// Err is either the underlying I/O error or an *EncodingError.
type ReadError struct {
	Path string
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("read %s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying error.
func (e *ReadError) Unwrap() error {
	return e.Err
}

// WriteError reports a failure to save a buffer to a file.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("write %s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying error.
func (e *WriteError) Unwrap() error {
	return e.Err
}

// EncodingError reports file content that is not editable text.
type EncodingError struct {
	Path     string
	Encoding vfs.Encoding
	// Offset is the byte offset of the first invalid byte, or -1 when the
	// encoding as a whole is unsupported.
	Offset int
}

func (e *EncodingError) Error() string {
	if e.Offset < 0 {
		return fmt.Sprintf("%s: unsupported encoding %s", e.Path, e.Encoding)
	}
	return fmt.Sprintf("%s: invalid UTF-8 at byte %d", e.Path, e.Offset)
}
