// Package building packages locale source files into a distribution tree and zip archive.
package building

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	pkgerrors "github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	ffs "github.com/sdtd-l10n/locpack/pkg/fs"
	"github.com/sdtd-l10n/locpack/pkg/mods"
)

var copyFile = ffs.CopyFile

// Result describes a successful build.
type Result struct {
	// Locales lists the packaged locales, ordered by name.
	Locales []Locale
	// OutDir is the path of the distribution directory.
	OutDir string
	// ArchivePath is the path of the archive.
	ArchivePath string
	// ArchiveSize is the size of the archive in bytes.
	ArchiveSize int64
}

// Build rebuilds the distribution directory and its archive from scratch. Every locale source file
// is copied to `<out-dir>/<locale>/Config/Localization.txt`, and then the whole distribution
// directory is compressed into the archive.
//
// Any failure aborts the build with a [*BuildError] naming the failed stage. No archive is left
// behind by a failed build, but the distribution directory may be left incomplete.
func Build(ctx context.Context, opts Options) (*Result, error) {
	opts = opts.WithDefaults()
	outDir := opts.OutDirPath()
	archivePath := opts.ArchiveFilePath()

	if err := clean(opts.Root, outDir, archivePath); err != nil {
		return nil, err
	}
	if err := ffs.EnsureExists(outDir); err != nil {
		return nil, stageErr(StageCreateOutput, "", outDir, err)
	}

	ignorePatterns, err := ReadIgnorePatterns(opts.IgnoreFilePath())
	if err != nil {
		return nil, stageErr(StageReadIgnore, "", opts.IgnoreFilePath(), err)
	}
	locales, err := FindLocales(ffs.DirFS(opts.Root), opts.SourceGlob, ignorePatterns)
	if err != nil {
		return nil, stageErr(StageGlob, "", opts.Root, err)
	}

	eg, egctx := errgroup.WithContext(ctx)
	eg.SetLimit(opts.Parallelism)
	for _, locale := range locales {
		eg.Go(func() error {
			if err := egctx.Err(); err != nil {
				return err
			}
			return packageLocale(opts.Root, outDir, locale)
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if err := WriteZip(outDir, archivePath); err != nil {
		return nil, stageErr(StageArchive, "", archivePath, err)
	}
	if err := CheckZip(archivePath); err != nil {
		_ = os.Remove(archivePath)
		return nil, stageErr(StageArchive, "", archivePath, err)
	}
	info, err := os.Stat(archivePath)
	if err != nil {
		return nil, stageErr(StageArchive, "", archivePath, err)
	}

	return &Result{
		Locales:     locales,
		OutDir:      outDir,
		ArchivePath: archivePath,
		ArchiveSize: info.Size(),
	}, nil
}

// clean deletes the output of any previous build.
func clean(root, outDir, archivePath string) error {
	if contains(outDir, root) {
		return stageErr(StageCleanOutput, "", outDir, pkgerrors.Errorf(
			"refusing to delete %s, since it contains the build root %s", outDir, root,
		))
	}
	if contains(outDir, archivePath) {
		return stageErr(StageCleanArchive, "", archivePath, pkgerrors.Errorf(
			"archive %s can't be written inside the output directory %s", archivePath, outDir,
		))
	}
	if err := os.RemoveAll(outDir); err != nil {
		return stageErr(StageCleanOutput, "", outDir, err)
	}
	if err := os.Remove(archivePath); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return stageErr(StageCleanArchive, "", archivePath, err)
	}
	return nil
}

// contains checks whether the directory dir is target or one of its ancestors.
func contains(dir, target string) bool {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return true
	}
	absTarget, err := filepath.Abs(target)
	if err != nil {
		return true
	}
	rel, err := filepath.Rel(absDir, absTarget)
	if err != nil {
		return false
	}
	return rel == "." || (rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)))
}

// packageLocale copies a locale source file into its slot in the distribution tree.
func packageLocale(root, outDir string, locale Locale) error {
	localeDir := filepath.Join(outDir, locale.Name)
	if err := os.Mkdir(localeDir, 0o755); err != nil {
		return stageErr(StageCreateLocaleDir, locale.Name, localeDir, err)
	}
	configDir := filepath.Join(localeDir, mods.ConfigDir)
	if err := os.Mkdir(configDir, 0o755); err != nil {
		return stageErr(StageCreateLocaleDir, locale.Name, configDir, err)
	}

	destPath := filepath.Join(configDir, mods.LocalizationFileName)
	sourcePath := filepath.Join(root, filepath.FromSlash(locale.Source))
	if err := copyFile(sourcePath, destPath, 0o644); err != nil {
		return stageErr(StageCopyFile, locale.Name, destPath, err)
	}
	return nil
}
