package building

import (
	"path/filepath"
)

const (
	DefaultIgnoreFile  = ".ignore"
	DefaultSourceGlob  = "*.csv"
	DefaultOutDir      = "dist"
	DefaultArchivePath = "dist.zip"
	DefaultParallelism = 8
)

// Options configures a build. Relative paths are resolved against Root.
type Options struct {
	// Root is the directory which the build works in. If empty, the current working directory is
	// used.
	Root string
	// IgnoreFile is the path of a file listing glob patterns (one per line) of source files to
	// exclude. The file is optional.
	IgnoreFile string
	// SourceGlob is a doublestar pattern, relative to Root, matching the locale source files.
	SourceGlob string
	// OutDir is the distribution directory, which is deleted and recreated by each build.
	OutDir string
	// ArchivePath is the path of the zip archive made from OutDir, which is deleted and recreated
	// by each build.
	ArchivePath string
	// Parallelism bounds the number of locales which are processed concurrently.
	Parallelism int
}

// DefaultOptions returns the options for a build in the specified root directory.
func DefaultOptions(root string) Options {
	return Options{
		Root:        root,
		IgnoreFile:  DefaultIgnoreFile,
		SourceGlob:  DefaultSourceGlob,
		OutDir:      DefaultOutDir,
		ArchivePath: DefaultArchivePath,
		Parallelism: DefaultParallelism,
	}
}

// WithDefaults returns a copy of the options in which every unset field has its default value.
func (o Options) WithDefaults() Options {
	defaults := DefaultOptions(o.Root)
	if o.Root == "" {
		o.Root = "."
	}
	if o.IgnoreFile == "" {
		o.IgnoreFile = defaults.IgnoreFile
	}
	if o.SourceGlob == "" {
		o.SourceGlob = defaults.SourceGlob
	}
	if o.OutDir == "" {
		o.OutDir = defaults.OutDir
	}
	if o.ArchivePath == "" {
		o.ArchivePath = defaults.ArchivePath
	}
	if o.Parallelism <= 0 {
		o.Parallelism = defaults.Parallelism
	}
	return o
}

func (o Options) resolve(p string) string {
	if filepath.IsAbs(p) {
		return filepath.Clean(p)
	}
	return filepath.Join(o.Root, filepath.FromSlash(p))
}

// OutDirPath returns the path of the distribution directory.
func (o Options) OutDirPath() string {
	return o.resolve(o.OutDir)
}

// ArchiveFilePath returns the path of the archive.
func (o Options) ArchiveFilePath() string {
	return o.resolve(o.ArchivePath)
}

// IgnoreFilePath returns the path of the ignore file.
func (o Options) IgnoreFilePath() string {
	return o.resolve(o.IgnoreFile)
}
