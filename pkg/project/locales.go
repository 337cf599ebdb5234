package project

import (
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/blang/semver/v4"
	"github.com/pkg/errors"
	"golang.org/x/mod/module"
	"gopkg.in/yaml.v3"

	"github.com/sdtd-l10n/locpack/pkg/building"
	ffs "github.com/sdtd-l10n/locpack/pkg/fs"
)

const (
	// LocalesDir is the directory of a locale repository which holds the locale packages.
	LocalesDir = "locales"
	// LocaleDeclFile is the name of the file declaring a locale package.
	LocaleDeclFile = "locale.yml"
	// DefaultLocaleVersion is the version of a newly-scaffolded locale package.
	DefaultLocaleVersion = "0.1.0"
)

// A LocaleDecl is the declaration of a locale package.
type LocaleDecl struct {
	Name    string `yaml:"name"`
	Version string `yaml:"version"`
}

// Check looks for problems in the declaration.
func (d LocaleDecl) Check() error {
	if err := CheckLocaleName(d.Name); err != nil {
		return err
	}
	if _, err := semver.Parse(strings.TrimPrefix(d.Version, "v")); err != nil {
		return errors.Wrapf(err, "invalid version %q for locale package %s", d.Version, d.Name)
	}
	return nil
}

// CheckLocaleName checks that a locale package name can be used as a directory name on every OS.
func CheckLocaleName(name string) error {
	if name == "" {
		return errors.New("locale package name is empty")
	}
	if strings.ContainsAny(name, `/\`) {
		return errors.Errorf("locale package name %q has a path separator", name)
	}
	if err := module.CheckFilePath(name); err != nil {
		return errors.Wrapf(err, "invalid locale package name %q", name)
	}
	return nil
}

// NewLocale scaffolds a locale package in the locales directory of the repository at root. The
// package gets a declaration file and an empty ignore file; it's an error for the package to
// already exist.
func NewLocale(root string, decl LocaleDecl) (string, error) {
	if decl.Version == "" {
		decl.Version = DefaultLocaleVersion
	}
	if err := decl.Check(); err != nil {
		return "", err
	}

	localePath := filepath.Join(root, LocalesDir, decl.Name)
	if _, err := os.Stat(localePath); err == nil {
		return "", errors.Errorf("locale package %s already exists at %s", decl.Name, localePath)
	}
	if err := ffs.EnsureExists(filepath.Dir(localePath)); err != nil {
		return "", errors.Wrapf(err, "couldn't make directory %s", filepath.Dir(localePath))
	}
	if err := os.Mkdir(localePath, 0o755); err != nil {
		return "", errors.Wrapf(err, "couldn't make directory %s", localePath)
	}

	marshaled, err := yaml.Marshal(decl)
	if err != nil {
		return "", errors.Wrapf(err, "couldn't marshal declaration of locale package %s", decl.Name)
	}
	declPath := filepath.Join(localePath, LocaleDeclFile)
	if err = os.WriteFile(declPath, marshaled, 0o644); err != nil {
		return "", errors.Wrapf(err, "couldn't save declaration %s", declPath)
	}
	ignorePath := filepath.Join(localePath, building.DefaultIgnoreFile)
	if err = os.WriteFile(ignorePath, nil, 0o644); err != nil {
		return "", errors.Wrapf(err, "couldn't save ignore file %s", ignorePath)
	}
	return localePath, nil
}

// LoadLocales loads the declarations of all locale packages in the repository at root, ordered by
// directory name.
func LoadLocales(root string) ([]LocaleDecl, error) {
	localesFS := ffs.DirFS(filepath.Join(root, LocalesDir))
	entries, err := localesFS.ReadDir(".")
	if err != nil {
		if ffs.DirExists(localesFS.Path()) {
			return nil, errors.Wrapf(err, "couldn't list locale packages in %s", localesFS.Path())
		}
		return nil, nil
	}

	decls := make([]LocaleDecl, 0, len(entries))
	for _, entry := range entries {
		if !entry.IsDir() || ffs.IsHidden(entry.Name()) {
			continue
		}
		bytes, err := localesFS.ReadFile(path.Join(entry.Name(), LocaleDeclFile))
		if err != nil {
			continue // not a locale package, e.g. a template directory
		}
		var decl LocaleDecl
		if err = yaml.Unmarshal(bytes, &decl); err != nil {
			return nil, errors.Wrapf(
				err, "couldn't parse declaration of locale package %s", entry.Name(),
			)
		}
		decls = append(decls, decl)
	}
	return decls, nil
}
