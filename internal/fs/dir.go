// Package fs holds the small filesystem and environment helpers shared by srcfmt.
package fs

import (
	"os"
)

// IsDir reports whether path names a directory, following symlinks.
// A path that cannot be stat'ed is not a directory.
func IsDir(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}

// Exists reports whether anything exists at path, without following a final symlink.
func Exists(path string) bool {
	_, err := os.Lstat(path)
	return err == nil
}
