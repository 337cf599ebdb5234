package cli

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/fatih/color"
	"github.com/pkg/errors"

	"github.com/sdtd-l10n/locpack/pkg/discovery"
	"github.com/sdtd-l10n/locpack/pkg/importing"
	"github.com/sdtd-l10n/locpack/pkg/project"
)

// DiscoverGames scans the platform's libraries for installations of the declared game, ordered by
// path.
func DiscoverGames(
	ctx context.Context, platform discovery.Platform, game project.GameDecl, parallelism int,
	logger *log.Logger,
) *discovery.Result {
	result := discovery.Discoverer{
		Platform:    platform,
		DefaultName: game.DefaultName,
		Parallelism: parallelism,
		Logger:      logger,
	}.Discover(ctx, game.AppID)
	result.Sort()
	return result
}

// Printing

var activeMarker = color.New(color.FgGreen, color.Bold).SprintFunc()

func FprintDiscoveryResult(indent int, w io.Writer, result *discovery.Result) {
	if len(result.All) == 0 {
		IndentedFprintln(indent, w, "No installations of the game were found.")
		return
	}
	for _, installation := range result.All {
		FprintInstallation(indent, w, installation, result.IsActive(installation))
	}
}

func FprintInstallation(
	indent int, w io.Writer, installation *discovery.Installation, active bool,
) {
	IndentedFprint(indent, w, installation.Path)
	if active {
		_, _ = fmt.Fprint(w, " ", activeMarker("(active)"))
	}
	_, _ = fmt.Fprintln(w)
	indent++

	if len(installation.Mods) == 0 {
		IndentedFprintln(indent, w, "No mods")
		return
	}
	localized := installation.LocalizedMods()
	IndentedFprintf(
		indent, w, "Mods (%d, %d with localization):\n", len(installation.Mods), len(localized),
	)
	for _, mod := range installation.Mods {
		if mod.HasLocalization() {
			BulletedFprintf(indent, w, "%s: %s\n", mod.Name, mod.LocalizationPath)
			continue
		}
		BulletedFprintf(indent, w, "%s: no localization\n", mod.Name)
	}
}

// Selection

// SelectInstallation picks the installation at installationPath, or the active installation if
// no path is specified. Without an active installation, a single installation is picked
// implicitly.
func SelectInstallation(
	result *discovery.Result, installationPath string,
) (*discovery.Installation, error) {
	if installationPath != "" {
		absPath, err := filepath.Abs(installationPath)
		if err != nil {
			return nil, errors.Wrapf(err, "couldn't resolve path %s", installationPath)
		}
		if installation := result.Find(absPath); installation != nil {
			return installation, nil
		}
		return nil, errors.Errorf(
			"%s is not a known installation of the game (known: %s)", absPath, listPaths(result),
		)
	}
	if result.Active != nil {
		return result.Active, nil
	}
	switch len(result.All) {
	case 0:
		return nil, errors.New("no installations of the game were found")
	case 1:
		return result.All[0], nil
	default:
		return nil, errors.Errorf(
			"no installation is active, so one must be specified (known: %s)", listPaths(result),
		)
	}
}

func listPaths(result *discovery.Result) string {
	if len(result.All) == 0 {
		return "none"
	}
	paths := make([]string, 0, len(result.All))
	for _, installation := range result.All {
		paths = append(paths, installation.Path)
	}
	return strings.Join(paths, ", ")
}

// SelectMods picks mods with localization files from the installation by name. If all is set,
// every mod with a localization file is picked. The selection must not be empty.
func SelectMods(
	installation *discovery.Installation, modNames []string, all bool,
) ([]discovery.Mod, error) {
	if all {
		selected := installation.LocalizedMods()
		if len(selected) == 0 {
			return nil, errors.Errorf("no mods in %s have localization files", installation.Path)
		}
		return selected, nil
	}
	if len(modNames) == 0 {
		return nil, errors.New("at least one mod must be selected")
	}

	selected := make([]discovery.Mod, 0, len(modNames))
	for _, name := range modNames {
		mod, ok := installation.Mod(name)
		if !ok {
			return nil, errors.Errorf("mod %s is not installed in %s", name, installation.Path)
		}
		if !mod.HasLocalization() {
			return nil, errors.Errorf("mod %s has no localization file", name)
		}
		selected = append(selected, mod)
	}
	return selected, nil
}

// Importing

// ImportMods imports the selected mods and reports what was imported.
func ImportMods(
	ctx context.Context, w io.Writer, sel importing.Selection, parallelism int, logger *log.Logger,
) error {
	imported, err := importing.Import(ctx, sel, parallelism, logger)
	if err != nil {
		return err
	}
	if err = importing.AnnotateGitStatus(sel.Dest, imported); err != nil && logger != nil {
		logger.Warn("couldn't check git status of imported files", "err", err)
	}

	IndentedFprintf(0, w, "Imported %d mod localization files into %s:\n", len(imported), sel.Dest)
	for _, file := range imported {
		if file.Status == importing.StatusUnknown {
			BulletedFprintf(1, w, "%s -> %s\n", file.Mod.Name, file.Path)
			continue
		}
		BulletedFprintf(1, w, "%s -> %s (%s)\n", file.Mod.Name, file.Path, file.Status)
	}
	return nil
}
