package vfs

import "io/fs"

// WriteFileAtomic writes data to a temporary file next to path and renames
// it into place, so readers never observe a half-written file. The
// temporary file is removed if any step fails.
func WriteFileAtomic(fsys FS, path string, data []byte, perm fs.FileMode) error {
	tmp := path + ".tmp"
	if err := fsys.WriteFile(tmp, data, perm); err != nil {
		_ = fsys.Remove(tmp)
		return err
	}
	if err := fsys.Rename(tmp, path); err != nil {
		_ = fsys.Remove(tmp)
		return err
	}
	return nil
}
