// Package rope provides an immutable rope data structure for text storage and editing.
//
// A rope is a tree where leaf nodes contain text chunks and internal nodes
// store aggregated metrics (byte count, character count, newline count). This
// implementation uses a B+ tree variant: edits copy only the path from the root
// to the touched leaf, and node fan-out is bounded, so insertion, deletion and
// line lookups are O(log n).
//
// All positions are character (rune) offsets, never byte offsets. A line is
// terminated by '\n'; the line of a position is the number of newlines
// strictly before it.
//
// Basic usage:
//
//	r := rope.FromString("hello world")
//	r = r.Insert(5, ",")           // "hello, world"
//	r = r.Delete(0, 7)             // "world"
//	line := r.CharToLine(3)        // 0
//	text := r.String()             // "world"
//
// Operations return new Rope values; the original is never modified.
package rope
