// Package importing copies the localization files of selected mods into a locale repository.
package importing

import (
	"context"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/sdtd-l10n/locpack/pkg/building"
	"github.com/sdtd-l10n/locpack/pkg/discovery"
	ffs "github.com/sdtd-l10n/locpack/pkg/fs"
)

// SourceExt is the file extension of locale source files in a locale repository.
const SourceExt = ".csv"

// A Selection is a choice of mods from one game installation, to be imported into a destination
// folder.
type Selection struct {
	Installation *discovery.Installation
	Mods         []discovery.Mod
	// Dest is the folder of the locale repository to import into. It must already exist.
	Dest string
}

// Validate checks that the selection can be imported.
func (s Selection) Validate() error {
	if s.Installation == nil {
		return errors.New("no game installation was selected")
	}
	if len(s.Mods) == 0 {
		return errors.New("no mods were selected")
	}
	for _, mod := range s.Mods {
		if _, ok := s.Installation.Mod(mod.Name); !ok {
			return errors.Errorf("mod %s is not installed in %s", mod.Name, s.Installation.Path)
		}
		if !mod.HasLocalization() {
			return errors.Errorf("mod %s has no localization file", mod.Name)
		}
	}
	if s.Dest == "" {
		return errors.New("no destination folder was selected")
	}
	if !ffs.DirExists(s.Dest) {
		return errors.Errorf("destination folder %s does not exist", s.Dest)
	}
	return nil
}

// An Imported file is a mod's localization file which was copied into the locale repository.
type Imported struct {
	Mod discovery.Mod
	// Path is the path of the copy in the locale repository.
	Path string
	// Status describes how the copy differs from what the locale repository's git worktree had
	// before the import.
	Status Status
}

// DestPath returns the path which a mod's localization file is imported to, which is where a build
// would pick it up again as the source of a locale named after the mod.
func DestPath(dest string, mod discovery.Mod) string {
	return filepath.Join(dest, mod.Name+SourceExt)
}

// Import copies the localization file of each selected mod into the destination folder, replacing
// any previous copy.
func Import(ctx context.Context, sel Selection, parallelism int, logger *log.Logger) ([]Imported, error) {
	if err := sel.Validate(); err != nil {
		return nil, err
	}
	if parallelism <= 0 {
		parallelism = building.DefaultParallelism
	}

	imported := make([]Imported, len(sel.Mods))
	eg, egctx := errgroup.WithContext(ctx)
	eg.SetLimit(parallelism)
	for i, mod := range sel.Mods {
		eg.Go(func() error {
			if err := egctx.Err(); err != nil {
				return err
			}
			destPath := DestPath(sel.Dest, mod)
			if err := ffs.CopyFile(mod.LocalizationPath, destPath, 0o644); err != nil {
				return errors.Wrapf(err, "couldn't import localization of mod %s", mod.Name)
			}
			if logger != nil {
				logger.Debug("imported mod localization", "mod", mod.Name, "path", destPath)
			}
			imported[i] = Imported{Mod: mod, Path: destPath}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return imported, nil
}
