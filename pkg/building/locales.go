package building

import (
	"bufio"
	"bytes"
	"cmp"
	"errors"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	pkgerrors "github.com/pkg/errors"
	"golang.org/x/mod/module"

	ffs "github.com/sdtd-l10n/locpack/pkg/fs"
)

// A Locale is one locale source file, packaged into its own directory of the distribution tree.
type Locale struct {
	// Name is the base name of the source file without its extension.
	Name string
	// Source is the slash-separated path of the source file, relative to the build root.
	Source string
}

// LocaleName returns the name of the locale provided by a source file.
func LocaleName(sourcePath string) string {
	base := path.Base(filepath.ToSlash(sourcePath))
	return strings.TrimSuffix(base, path.Ext(base))
}

// ReadIgnorePatterns reads the glob patterns listed in an ignore file, one per line. Blank lines
// are skipped. A missing ignore file means that nothing is ignored.
func ReadIgnorePatterns(filePath string) ([]string, error) {
	content, err := os.ReadFile(filepath.Clean(filePath))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	return ParseIgnorePatterns(content)
}

// ParseIgnorePatterns parses the contents of an ignore file.
func ParseIgnorePatterns(content []byte) ([]string, error) {
	var patterns []string
	scanner := bufio.NewScanner(bytes.NewReader(content))
	for scanner.Scan() {
		pattern := strings.TrimSpace(scanner.Text())
		if pattern == "" {
			continue
		}
		if !doublestar.ValidatePattern(pattern) {
			return nil, pkgerrors.Errorf("invalid ignore pattern %q", pattern)
		}
		patterns = append(patterns, pattern)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return patterns, nil
}

// FindLocales lists the files in fsys matching the source pattern and none of the ignore patterns,
// as locales ordered by name. Hidden files, and files in hidden directories, are never locales.
// Every locale name must be unique and usable as a directory name.
func FindLocales(fsys ffs.PathedFS, sourcePattern string, ignorePatterns []string) ([]Locale, error) {
	matches, err := doublestar.Glob(fsys, sourcePattern, doublestar.WithFilesOnly())
	if err != nil {
		return nil, pkgerrors.Wrapf(
			err, "couldn't search for files in %s matching pattern %s", fsys.Path(), sourcePattern,
		)
	}

	locales := make([]Locale, 0, len(matches))
	sources := make(map[string]string)
	for _, match := range matches {
		if isHiddenPath(match) {
			continue
		}
		ignored, err := matchesAny(ignorePatterns, match)
		if err != nil {
			return nil, err
		}
		if ignored {
			continue
		}

		name := LocaleName(match)
		if err := module.CheckFilePath(name); err != nil {
			return nil, pkgerrors.Wrapf(err, "source file %s has an unusable locale name", match)
		}
		if previous, ok := sources[name]; ok {
			return nil, pkgerrors.Wrapf(
				ErrDuplicateLocale, "locale %q is provided by both %s and %s", name, previous, match,
			)
		}
		sources[name] = match
		locales = append(locales, Locale{Name: name, Source: match})
	}
	slices.SortFunc(locales, func(a, b Locale) int {
		return cmp.Compare(a.Name, b.Name)
	})
	return locales, nil
}

func isHiddenPath(name string) bool {
	return slices.ContainsFunc(strings.Split(name, "/"), ffs.IsHidden)
}

func matchesAny(patterns []string, name string) (bool, error) {
	for _, pattern := range patterns {
		match, err := doublestar.Match(strings.TrimPrefix(pattern, "./"), name)
		if err != nil {
			return false, pkgerrors.Wrapf(err, "couldn't match %s against pattern %q", name, pattern)
		}
		if match {
			return true, nil
		}
	}
	return false, nil
}
