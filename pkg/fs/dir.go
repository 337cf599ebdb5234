// Package fs provides filesystem helpers for scanning game installations and writing locale
// distribution trees.
package fs

import (
	"io/fs"
	"os"
)

// A PathedFS is a [fs.FS] which knows where it is located on the host filesystem.
type PathedFS interface {
	fs.FS
	fs.ReadDirFS
	fs.ReadFileFS
	// Path returns the path where the file system is located.
	Path() string
}

func DirExists(dirPath string) bool {
	dir, err := os.Stat(dirPath)
	if err == nil && dir.IsDir() {
		return true
	}
	return false
}

func EnsureExists(dirPath string) error {
	const perm = 0o755 // owner rwx, group rx, public rx
	return os.MkdirAll(dirPath, perm)
}

// DirFS returns a filesystem (a PathedFS) for a tree of files rooted at the directory dir.
func DirFS(dir string) PathedFS {
	return &dirFS{
		path: dir,
		fsys: os.DirFS(dir),
	}
}

// dirFS

type dirFS struct {
	path string
	fsys fs.FS
}

func (f dirFS) Path() string {
	return f.path
}

func (f dirFS) Open(name string) (fs.File, error) {
	return f.fsys.Open(name)
}

// dirFS: fs.ReadDirFS

func (f dirFS) ReadDir(name string) ([]fs.DirEntry, error) {
	return fs.ReadDir(f.fsys, name)
}

// dirFS: fs.ReadFileFS

func (f dirFS) ReadFile(name string) ([]byte, error) {
	return fs.ReadFile(f.fsys, name)
}
