package steam

import (
	"errors"
	"io/fs"
	"path/filepath"
	"slices"
	"strconv"

	pkgerrors "github.com/pkg/errors"

	"github.com/sdtd-l10n/locpack/pkg/structures"
)

const (
	// AppsDir is the name of the directory in a library folder (and in the client directory)
	// which holds app manifests and the installed apps.
	AppsDir = "steamapps"
	// CommonDir is the name of the directory in a steamapps directory holding app installations.
	CommonDir = "common"
	// LibraryFoldersFile is the name of the file in the client's steamapps directory which lists
	// all library folders.
	LibraryFoldersFile = "libraryfolders.vdf"
)

// LoadLibraries returns the steamapps directories of all library folders known to the Steam
// client at steamRoot. The client's own steamapps directory always comes first. A missing library
// folders file is not an error, since older clients only have the default library.
//
// Libraries are deduplicated by their resolved location, so a library which is listed under its
// real path but also reached through a symlinked client root (e.g. ~/.steam/steam on Linux) is
// only returned once, under the first path it was seen at.
func LoadLibraries(steamRoot string) ([]string, error) {
	defaultLibrary := filepath.Join(steamRoot, AppsDir)
	libraries := []string{filepath.Clean(defaultLibrary)}
	seen := structures.NewSet(resolveLibrary(defaultLibrary))

	kv, err := loadKeyValues(filepath.Join(defaultLibrary, LibraryFoldersFile))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return libraries, nil
		}
		return nil, pkgerrors.Wrap(err, "couldn't load steam library folders")
	}
	folders, ok := lookupSection(kv, "libraryfolders")
	if !ok {
		return nil, pkgerrors.Errorf(
			"%s has no libraryfolders section", filepath.Join(defaultLibrary, LibraryFoldersFile),
		)
	}

	for _, libraryPath := range parseLibraryFolders(folders) {
		library := filepath.Clean(filepath.Join(libraryPath, AppsDir))
		resolved := resolveLibrary(library)
		if seen.Has(resolved) {
			continue
		}
		seen.Add(resolved)
		libraries = append(libraries, library)
	}
	return libraries, nil
}

// resolveLibrary returns the location of a library with all symlinks resolved. Libraries which
// can't be resolved (e.g. on unmounted drives) are identified by their cleaned path instead.
func resolveLibrary(library string) string {
	resolved, err := filepath.EvalSymlinks(library)
	if err != nil {
		return filepath.Clean(library)
	}
	return resolved
}

// parseLibraryFolders returns the library folder paths listed in a libraryfolders section, ordered
// by their numeric keys. Both the current format (where each entry is a section with a "path"
// key) and the legacy format (where each entry is just a path) are supported.
func parseLibraryFolders(folders map[string]any) []string {
	type entry struct {
		index int
		path  string
	}
	entries := make([]entry, 0, len(folders))
	for key, value := range folders {
		index, err := strconv.Atoi(key)
		if err != nil {
			continue // e.g. "contentstatsid" or "TimeNextStatsReport"
		}
		var libraryPath string
		switch v := value.(type) {
		case string:
			libraryPath = v
		case map[string]any:
			libraryPath, _ = lookupString(v, "path")
		}
		if libraryPath == "" {
			continue
		}
		entries = append(entries, entry{index: index, path: libraryPath})
	}
	slices.SortFunc(entries, func(a, b entry) int {
		return a.index - b.index
	})

	paths := make([]string, 0, len(entries))
	for _, e := range entries {
		paths = append(paths, e.path)
	}
	return paths
}
