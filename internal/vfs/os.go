package vfs

import (
	"io/fs"
	"os"
)

// OSFS is the real disk. Every method forwards to the os package.
type OSFS struct{}

// NewOSFS returns the disk-backed FS.
func NewOSFS() *OSFS {
	return &OSFS{}
}

var _ FS = (*OSFS)(nil)

func (*OSFS) ReadFile(path string) ([]byte, error) { return os.ReadFile(path) }

func (*OSFS) WriteFile(path string, data []byte, perm fs.FileMode) error {
	return os.WriteFile(path, data, perm)
}

func (*OSFS) Rename(oldPath, newPath string) error { return os.Rename(oldPath, newPath) }

func (*OSFS) Remove(path string) error { return os.Remove(path) }

func (*OSFS) Stat(path string) (fs.FileInfo, error) { return os.Stat(path) }

func (*OSFS) MkdirAll(path string, perm fs.FileMode) error { return os.MkdirAll(path, perm) }
