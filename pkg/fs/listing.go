package fs

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
)

// IsHidden reports whether the base name of a directory entry marks it as hidden (e.g. `.git` or
// `.DS_Store`).
func IsHidden(name string) bool {
	return strings.HasPrefix(name, ".")
}

// ListSubdirs returns the absolute paths of the non-hidden immediate children of folder, in the
// order in which the filesystem enumerates them.
//
// A folder which doesn't exist has no children, so it yields an empty result without any log
// output. Any other failure to read the folder is reported on the logger (if one is provided) and
// also yields an empty result, so that one unreadable folder never aborts a larger scan.
func ListSubdirs(folder string, logger *log.Logger) []string {
	absFolder, err := filepath.Abs(folder)
	if err != nil {
		warn(logger, "couldn't resolve absolute path", "folder", folder, "err", err)
		return nil
	}
	entries, err := readDirUnsorted(absFolder)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			warn(logger, "couldn't list folder", "folder", absFolder, "err", err)
		}
		return nil
	}

	subdirs := make([]string, 0, len(entries))
	for _, name := range entries {
		if IsHidden(name) {
			continue
		}
		subdirs = append(subdirs, filepath.Join(absFolder, name))
	}
	return subdirs
}

// readDirUnsorted lists the names in a directory without sorting them, unlike [os.ReadDir].
func readDirUnsorted(dirPath string) ([]string, error) {
	dir, err := os.Open(filepath.Clean(dirPath))
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = dir.Close()
	}()
	return dir.Readdirnames(-1)
}

func warn(logger *log.Logger, msg string, keyvals ...any) {
	if logger == nil {
		return
	}
	logger.Warn(msg, keyvals...)
}
