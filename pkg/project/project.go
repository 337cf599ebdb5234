// Package project loads locpack project declarations and scaffolds new locale packages.
package project

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	pkgerrors "github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/sdtd-l10n/locpack/pkg/building"
	"github.com/sdtd-l10n/locpack/pkg/discovery"
)

// DeclFile is the name of the file declaring a locpack project.
const DeclFile = "locpack.yml"

// A Decl is the declaration of a locpack project.
type Decl struct {
	// Build configures `locpack build`.
	Build BuildDecl `yaml:"build,omitempty"`
	// Game configures discovery of the game whose mods are localized.
	Game GameDecl `yaml:"game,omitempty"`
}

// A BuildDecl overrides the default build options.
type BuildDecl struct {
	SourceGlob  string `yaml:"source-glob,omitempty"`
	IgnoreFile  string `yaml:"ignore-file,omitempty"`
	OutDir      string `yaml:"out-dir,omitempty"`
	Archive     string `yaml:"archive,omitempty"`
	Parallelism int    `yaml:"parallelism,omitempty"`
}

// A GameDecl identifies the game to discover.
type GameDecl struct {
	// AppID is the Steam app id of the game.
	AppID int `yaml:"app-id,omitempty"`
	// DefaultName is a name prefix which installation folders of the game are matched against.
	DefaultName string `yaml:"default-name,omitempty"`
}

// DefaultDecl returns the declaration of a project which doesn't have a declaration file.
func DefaultDecl() Decl {
	return Decl{
		Build: BuildDecl{
			SourceGlob:  building.DefaultSourceGlob,
			IgnoreFile:  building.DefaultIgnoreFile,
			OutDir:      building.DefaultOutDir,
			Archive:     building.DefaultArchivePath,
			Parallelism: building.DefaultParallelism,
		},
		Game: GameDecl{
			AppID:       discovery.DefaultAppID,
			DefaultName: discovery.DefaultGameName,
		},
	}
}

// LoadDecl loads a project declaration from the specified file. Fields omitted from the file keep
// their default values, and a missing file yields the default declaration.
func LoadDecl(filePath string) (Decl, error) {
	decl := DefaultDecl()
	bytes, err := os.ReadFile(filepath.Clean(filePath))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return decl, nil
		}
		return Decl{}, pkgerrors.Wrapf(err, "couldn't read project declaration file %s", filePath)
	}
	if err = yaml.Unmarshal(bytes, &decl); err != nil {
		return Decl{}, pkgerrors.Wrapf(err, "couldn't parse project declaration file %s", filePath)
	}
	if decl.Build.Parallelism < 0 {
		return Decl{}, pkgerrors.Errorf(
			"project declaration file %s has negative parallelism %d", filePath, decl.Build.Parallelism,
		)
	}
	return decl, nil
}

// BuildOptions returns the build options declared for a project in the root directory.
func (d Decl) BuildOptions(root string) building.Options {
	return building.Options{
		Root:        root,
		IgnoreFile:  d.Build.IgnoreFile,
		SourceGlob:  d.Build.SourceGlob,
		OutDir:      d.Build.OutDir,
		ArchivePath: d.Build.Archive,
		Parallelism: d.Build.Parallelism,
	}.WithDefaults()
}
