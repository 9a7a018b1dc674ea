package buffer

import (
	"errors"
	"io/fs"
	"strings"

	"github.com/dshills/lime/internal/vfs"
)

// defaultPerm is used when saving a file whose mode is unknown.
const defaultPerm fs.FileMode = 0o644

// Open loads the file at path into a new buffer. The whole file is read
// and decoded up front. A UTF-8 BOM is stripped and CRLF line endings are
// normalised to '\n'; both are restored by Save.
//
// On success the cursor is 0, the buffer is unmodified and Source is path.
// Failures are *ReadError; content that is not UTF-8 text wraps an
// *EncodingError.
func Open(path string, opts ...Option) (*Buffer, error) {
	b := New(opts...)

	data, err := b.fs.ReadFile(path)
	if err != nil {
		return nil, &ReadError{Path: path, Err: err}
	}

	text, enc, err := vfs.DecodeText(data)
	if err != nil {
		var de *vfs.DecodeError
		if errors.As(err, &de) {
			err = &EncodingError{Path: path, Encoding: de.Encoding, Offset: de.Offset}
		}
		return nil, &ReadError{Path: path, Err: err}
	}

	ending := vfs.DetectLineEnding(data)
	if ending == vfs.LineEndingCRLF {
		text = vfs.NormalizeLineEndings(text, vfs.LineEndingLF)
	}

	b.setContent(text)
	b.source = path
	b.encoding = enc
	b.lineEnding = ending
	b.modified = false
	return b, nil
}

// Save writes the content to the backing file and clears the modified
// flag. Without a backing file it returns ErrNoDestination and leaves the
// flag untouched.
func (b *Buffer) Save() error {
	if b.source == "" {
		return ErrNoDestination
	}
	return b.write(b.source)
}

// SaveAs writes the content to path, which becomes the backing file once
// the write succeeds.
func (b *Buffer) SaveAs(path string) error {
	if path == "" {
		return ErrNoDestination
	}
	if err := b.write(path); err != nil {
		return err
	}
	b.source = path
	return nil
}

// write encodes the content and replaces path atomically. The modified
// flag is cleared only on success.
func (b *Buffer) write(path string) error {
	text := b.Text()
	if b.lineEnding == vfs.LineEndingCRLF {
		// Every '\n' in memory is a line break; a '\r' before it is content.
		text = strings.ReplaceAll(text, "\n", "\r\n")
	}

	data, err := vfs.EncodeText(text, b.encoding)
	if err != nil {
		return &WriteError{Path: path, Err: err}
	}

	perm := defaultPerm
	if info, err := b.fs.Stat(path); err == nil {
		perm = info.Mode().Perm()
	}

	if err := vfs.WriteFileAtomic(b.fs, path, data, perm); err != nil {
		return &WriteError{Path: path, Err: err}
	}
	b.modified = false
	return nil
}
