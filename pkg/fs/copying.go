package fs

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// CopyFile copies the regular file at sourcePath to destPath, creating or truncating destPath.
// If destPerms is 0, the permissions of the source file are used.
func CopyFile(sourcePath, destPath string, destPerms fs.FileMode) (err error) {
	sourceFile, err := os.Open(filepath.Clean(sourcePath))
	if err != nil {
		return errors.Wrapf(err, "couldn't open source file %s for copying", sourcePath)
	}
	defer func() {
		// FIXME: handle this error more rigorously
		if err := sourceFile.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: couldn't close source file %s\n", sourcePath)
		}
	}()
	sourceInfo, err := sourceFile.Stat()
	if err != nil {
		return errors.Wrapf(err, "couldn't stat source file %s for copying", sourcePath)
	}
	if !sourceInfo.Mode().IsRegular() {
		return errors.Errorf("source %s is not a regular file", sourcePath)
	}

	if destPerms == 0 {
		destPerms = sourceInfo.Mode().Perm()
	}
	destFile, err := os.OpenFile(
		filepath.Clean(destPath), os.O_CREATE|os.O_TRUNC|os.O_WRONLY, destPerms,
	)
	if err != nil {
		return errors.Wrapf(err, "couldn't open dest file %s for copying", destPath)
	}
	defer func() {
		if cerr := destFile.Close(); cerr != nil && err == nil {
			err = errors.Wrapf(cerr, "couldn't close dest file %s", destPath)
		}
	}()

	if _, err = io.Copy(destFile, sourceFile); err != nil {
		return errors.Wrapf(err, "couldn't copy %s to %s", sourcePath, destPath)
	}
	return nil
}
