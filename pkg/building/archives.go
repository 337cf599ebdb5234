package building

import (
	"archive/zip"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/h2non/filetype"
	"github.com/pkg/errors"
)

// WriteZip compresses the contents of dir into a new zip archive at archivePath. Entry names are
// slash-separated paths relative to dir; directories get their own entries. If writing fails, no
// partial archive is left behind.
func WriteZip(dir, archivePath string) (err error) {
	archiveFile, err := os.OpenFile(
		filepath.Clean(archivePath), os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644,
	)
	if err != nil {
		return errors.Wrapf(err, "couldn't create archive %s", archivePath)
	}
	defer func() {
		if cerr := archiveFile.Close(); cerr != nil && err == nil {
			err = errors.Wrapf(cerr, "couldn't close archive %s", archivePath)
		}
		if err != nil {
			_ = os.Remove(archivePath)
		}
	}()

	zipWriter := zip.NewWriter(archiveFile)
	if err = addTree(zipWriter, dir); err != nil {
		_ = zipWriter.Close()
		return err
	}
	if err = zipWriter.Close(); err != nil {
		return errors.Wrapf(err, "couldn't finish writing archive %s", archivePath)
	}
	return nil
}

func addTree(zipWriter *zip.Writer, dir string) error {
	return filepath.WalkDir(dir, func(filePath string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		relPath, err := filepath.Rel(dir, filePath)
		if err != nil {
			return errors.Wrapf(err, "couldn't determine path of %s relative to %s", filePath, dir)
		}
		if relPath == "." {
			return nil
		}

		info, err := d.Info()
		if err != nil {
			return errors.Wrapf(err, "couldn't stat %s", filePath)
		}
		header, err := zip.FileInfoHeader(info)
		if err != nil {
			return errors.Wrapf(err, "couldn't make archive entry header for %s", filePath)
		}
		header.Name = filepath.ToSlash(relPath)
		if d.IsDir() {
			header.Name += "/"
			header.Method = zip.Store
			if _, err = zipWriter.CreateHeader(header); err != nil {
				return errors.Wrapf(err, "couldn't add directory %s to archive", relPath)
			}
			return nil
		}
		if !info.Mode().IsRegular() {
			return errors.Errorf("%s is not a regular file", filePath)
		}

		header.Method = zip.Deflate
		writer, err := zipWriter.CreateHeader(header)
		if err != nil {
			return errors.Wrapf(err, "couldn't add file %s to archive", relPath)
		}
		return copyInto(writer, filePath)
	})
}

func copyInto(w io.Writer, filePath string) error {
	file, err := os.Open(filepath.Clean(filePath))
	if err != nil {
		return errors.Wrapf(err, "couldn't open %s for archiving", filePath)
	}
	defer func() {
		_ = file.Close()
	}()
	if _, err = io.Copy(w, file); err != nil {
		return errors.Wrapf(err, "couldn't archive %s", filePath)
	}
	return nil
}

// CheckZip checks that the file at archivePath has the contents of a zip archive.
func CheckZip(archivePath string) error {
	kind, err := filetype.MatchFile(archivePath)
	if err != nil {
		return errors.Wrapf(err, "couldn't determine file type of %s", archivePath)
	}
	if kind.MIME.Value != "application/zip" {
		return errors.Errorf(
			"%s has unexpected file type %s (.%s)", archivePath, kind.MIME.Value, kind.Extension,
		)
	}
	return nil
}
