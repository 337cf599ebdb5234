// Package discovery finds installed copies of a game and the mods installed into them.
package discovery

import (
	"cmp"
	"context"
	"path/filepath"
	"slices"

	"github.com/sdtd-l10n/locpack/pkg/steam"
)

const (
	// DefaultAppID is the Steam app id of 7 Days to Die.
	DefaultAppID = 251570
	// DefaultGameName is the display name which installation folders of the game are expected to
	// start with, regardless of what the platform reports.
	DefaultGameName = "7 Days to Die"
	// DefaultParallelism is the default maximum number of concurrent filesystem scans per batch.
	DefaultParallelism = 8
	// ModsDir is the name of the directory in a game installation which holds its mods.
	ModsDir = "mods"
)

// A Platform knows which game libraries exist and where a game is currently installed.
type Platform interface {
	GameInfo(ctx context.Context, appID int) (*steam.GameInfo, error)
}

// A Mod is a folder in the mods directory of a game installation.
type Mod struct {
	// Name is the base name of the mod's folder.
	Name string `yaml:"name"`
	// Path is the absolute path of the mod's folder.
	Path string `yaml:"path"`
	// LocalizationPath is the absolute path of the mod's localization file, or empty if the mod has
	// no localization file.
	LocalizationPath string `yaml:"localization-path,omitempty"`
}

// HasLocalization checks whether the mod was found to carry a localization file.
func (m Mod) HasLocalization() bool {
	return m.LocalizationPath != ""
}

// An Installation is one installed copy of the game, identified by its path.
type Installation struct {
	Path string `yaml:"path"`
	Mods []Mod  `yaml:"mods"`
}

// Mod looks up a mod by name.
func (i *Installation) Mod(name string) (Mod, bool) {
	for _, mod := range i.Mods {
		if mod.Name == name {
			return mod, true
		}
	}
	return Mod{}, false
}

// LocalizedMods returns the mods which carry a localization file.
func (i *Installation) LocalizedMods() []Mod {
	localized := make([]Mod, 0, len(i.Mods))
	for _, mod := range i.Mods {
		if mod.HasLocalization() {
			localized = append(localized, mod)
		}
	}
	return localized
}

// Result is the outcome of a discovery run.
type Result struct {
	// Active is the installation which the platform currently uses for the game, if any. When set,
	// it is also an element of All.
	Active *Installation `yaml:"active,omitempty"`
	// All lists every installation which was found.
	All []*Installation `yaml:"all"`
}

// IsActive checks whether the installation is the active one.
func (r *Result) IsActive(installation *Installation) bool {
	return r.Active != nil && installation != nil && r.Active.Path == installation.Path
}

// Find looks up an installation by path.
func (r *Result) Find(installationPath string) *Installation {
	installationPath = filepath.Clean(installationPath)
	for _, installation := range r.All {
		if installation.Path == installationPath {
			return installation
		}
	}
	return nil
}

// Sort orders installations by path and the mods of each installation by name, since the order
// produced by concurrent scanning isn't meaningful to users.
func (r *Result) Sort() {
	slices.SortFunc(r.All, func(a, b *Installation) int {
		return cmp.Compare(a.Path, b.Path)
	})
	for _, installation := range r.All {
		slices.SortFunc(installation.Mods, func(a, b Mod) int {
			return cmp.Compare(a.Name, b.Name)
		})
	}
}
