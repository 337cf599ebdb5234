package building

import (
	"fmt"

	"github.com/pkg/errors"
)

// A Stage identifies a step of a build.
type Stage int

const (
	StageCleanOutput Stage = iota
	StageCleanArchive
	StageCreateOutput
	StageReadIgnore
	StageGlob
	StageCreateLocaleDir
	StageCopyFile
	StageArchive
)

func (s Stage) String() string {
	switch s {
	case StageCleanOutput:
		return "clean-output"
	case StageCleanArchive:
		return "clean-archive"
	case StageCreateOutput:
		return "create-output"
	case StageReadIgnore:
		return "read-ignore"
	case StageGlob:
		return "glob"
	case StageCreateLocaleDir:
		return "create-locale-dir"
	case StageCopyFile:
		return "copy-file"
	case StageArchive:
		return "archive"
	default:
		return fmt.Sprintf("stage(%d)", int(s))
	}
}

var ErrDuplicateLocale = errors.New("multiple source files map to the same locale")

// A BuildError reports which step of a build failed, and for which locale (if the step was
// specific to one locale).
type BuildError struct {
	Stage Stage
	// Locale is the name of the locale being processed, or empty for steps which aren't specific
	// to one locale.
	Locale string
	// Path is the file or directory which the step was operating on, if any.
	Path string
	Err  error
}

func (e *BuildError) Error() string {
	return fmt.Sprintf("%s: %s", e.describe(), e.Err)
}

func (e *BuildError) Unwrap() error {
	return e.Err
}

func (e *BuildError) describe() string {
	switch e.Stage {
	case StageCleanOutput:
		return fmt.Sprintf("couldn't delete previous output directory %s", e.Path)
	case StageCleanArchive:
		return fmt.Sprintf("couldn't delete previous archive %s", e.Path)
	case StageCreateOutput:
		return fmt.Sprintf("couldn't create output directory %s", e.Path)
	case StageReadIgnore:
		return fmt.Sprintf("couldn't read ignore file %s", e.Path)
	case StageGlob:
		return "couldn't search for locale source files"
	case StageCreateLocaleDir:
		return fmt.Sprintf("couldn't create directory %s for locale %q", e.Path, e.Locale)
	case StageCopyFile:
		return fmt.Sprintf("couldn't copy locale %q to %s", e.Locale, e.Path)
	case StageArchive:
		return fmt.Sprintf("couldn't archive output directory into %s", e.Path)
	default:
		return fmt.Sprintf("build failed at %s", e.Stage)
	}
}

func stageErr(stage Stage, locale, path string, err error) *BuildError {
	return &BuildError{Stage: stage, Locale: locale, Path: path, Err: err}
}
