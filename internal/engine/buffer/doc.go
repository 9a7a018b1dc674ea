// Package buffer provides the editor's text buffer: document content stored
// in a rope, a single cursor, an optional selection, an optional backing
// file and a modified flag.
//
// All positions are character offsets in [0, Len()]. Line and column values
// are derived from the rope's line index, never stored:
//
//	line(p)   = number of '\n' characters strictly before p
//	column(p) = p - LineStart(line(p))
//
// Cursor operations clamp at document boundaries instead of failing, so an
// interactive caller never has to handle out-of-range errors. File
// operations return typed errors (*ReadError, *WriteError, *EncodingError)
// or ErrNoDestination.
//
// Basic usage:
//
//	b := buffer.New()
//	b.Insert("hi")          // content "hi", cursor 2
//	b.DeleteBackward()      // content "h", cursor 1
//	b.Move(buffer.Left)     // cursor 0
//
// A Buffer is not safe for concurrent use; it is owned by a single editor
// session.
package buffer
