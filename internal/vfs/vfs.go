// Package vfs provides a narrow file system abstraction.
//
// The FS interface lets the text buffer and the configuration layer swap the
// real disk for an in-memory file system in tests, including one that fails
// writes on demand.
package vfs

import "io/fs"

// FS is the file system surface the editor needs.
type FS interface {
	// ReadFile reads the entire file content.
	ReadFile(path string) ([]byte, error)

	// WriteFile writes data to a file, creating it if necessary.
	WriteFile(path string, data []byte, perm fs.FileMode) error

	// Rename renames (moves) a file, replacing the target.
	Rename(oldPath, newPath string) error

	// Remove removes a file.
	Remove(path string) error

	// Stat returns file information.
	Stat(path string) (fs.FileInfo, error)

	// MkdirAll creates a directory and all parent directories.
	MkdirAll(path string, perm fs.FileMode) error
}

// Exists returns true if path exists in fsys.
func Exists(fsys FS, path string) bool {
	_, err := fsys.Stat(path)
	return err == nil
}
