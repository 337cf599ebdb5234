package discovery

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"
	"golang.org/x/text/cases"

	ffs "github.com/sdtd-l10n/locpack/pkg/fs"
	"github.com/sdtd-l10n/locpack/pkg/mods"
	"github.com/sdtd-l10n/locpack/pkg/steam"
	"github.com/sdtd-l10n/locpack/pkg/structures"
)

// A Discoverer scans the game libraries known to a platform for installations of a game.
type Discoverer struct {
	Platform Platform
	// DefaultName is a name prefix which installation folders are always matched against, in
	// addition to the display name reported by the platform. If empty, [DefaultGameName] is used.
	DefaultName string
	// Parallelism bounds the number of concurrent filesystem operations in each batch of the scan.
	// If not positive, [DefaultParallelism] is used.
	Parallelism int
	// Logger receives warnings about folders and files which couldn't be read. It may be nil.
	Logger *log.Logger
}

// Discover finds all installations of the specified game in the platform's libraries, together
// with their mods.
//
// Discovery is best-effort: failures are logged and only remove the affected library,
// installation or mod from the result, so Discover always returns a valid (possibly empty)
// result.
func (d Discoverer) Discover(ctx context.Context, appID int) *Result {
	result := &Result{All: []*Installation{}}

	info, err := d.Platform.GameInfo(ctx, appID)
	if err != nil {
		d.warn("couldn't query platform for game", "app", appID, "err", err)
		return result
	}
	if info == nil {
		return result
	}

	prefixes := structures.NewSet(foldName(d.defaultName()))
	activePath := ""
	if info.Game != nil {
		if info.Game.Name != "" {
			prefixes.Add(foldName(info.Game.Name))
		}
		if info.Game.Path != "" {
			activePath = filepath.Clean(info.Game.Path)
		}
	}

	d.debug(
		"scanning libraries for installations",
		"libraries", len(info.Libraries), "prefixes", strings.Join(structures.Sorted(prefixes), ", "),
	)
	installationPaths := d.findInstallations(ctx, info.Libraries, prefixes)
	for _, installation := range d.scanInstallations(ctx, installationPaths) {
		if activePath != "" && installation.Path == activePath {
			result.Active = installation
		}
		result.All = append(result.All, installation)
	}
	return result
}

func (d Discoverer) defaultName() string {
	if d.DefaultName == "" {
		return DefaultGameName
	}
	return d.DefaultName
}

func (d Discoverer) parallelism() int {
	if d.Parallelism <= 0 {
		return DefaultParallelism
	}
	return d.Parallelism
}

func (d Discoverer) warn(msg string, keyvals ...any) {
	if d.Logger == nil {
		return
	}
	d.Logger.Warn(msg, keyvals...)
}

func (d Discoverer) debug(msg string, keyvals ...any) {
	if d.Logger == nil {
		return
	}
	d.Logger.Debug(msg, keyvals...)
}

// foldName normalizes a name for case-insensitive comparison. A [cases.Caser] can't be shared
// between goroutines, so each call makes its own.
func foldName(name string) string {
	return cases.Fold().String(name)
}

// findInstallations lists the folders in the common directory of every library which match any of
// the name prefixes. Each installation path is reported only once, in library order.
func (d Discoverer) findInstallations(
	ctx context.Context, libraries []string, prefixes structures.Set[string],
) []string {
	candidates := make([][]string, len(libraries))
	eg, egctx := errgroup.WithContext(ctx)
	eg.SetLimit(d.parallelism())
	for i, library := range libraries {
		eg.Go(func() error {
			if egctx.Err() != nil {
				return nil
			}
			for _, folder := range ffs.ListSubdirs(filepath.Join(library, steam.CommonDir), d.Logger) {
				name := foldName(filepath.Base(folder))
				if prefixes.Any(func(prefix string) bool { return strings.HasPrefix(name, prefix) }) {
					candidates[i] = append(candidates[i], filepath.Clean(folder))
				}
			}
			return nil
		})
	}
	_ = eg.Wait() // tasks only report problems through the logger

	seen := make(structures.Set[string])
	installationPaths := make([]string, 0, len(libraries))
	for _, libraryCandidates := range candidates {
		for _, candidate := range libraryCandidates {
			if seen.Has(candidate) {
				continue
			}
			seen.Add(candidate)
			installationPaths = append(installationPaths, candidate)
		}
	}
	return installationPaths
}

// scanInstallations lists the mods of every installation and probes each mod for a localization
// file. Listing and probing run as two batches so that the number of concurrent filesystem
// operations stays bounded.
func (d Discoverer) scanInstallations(
	ctx context.Context, installationPaths []string,
) []*Installation {
	installations := make([]*Installation, len(installationPaths))
	eg, egctx := errgroup.WithContext(ctx)
	eg.SetLimit(d.parallelism())
	for i, installationPath := range installationPaths {
		installation := &Installation{Path: installationPath, Mods: []Mod{}}
		installations[i] = installation
		eg.Go(func() error {
			if egctx.Err() != nil {
				return nil
			}
			for _, modFolder := range ffs.ListSubdirs(
				filepath.Join(installationPath, ModsDir), d.Logger,
			) {
				installation.Mods = append(installation.Mods, Mod{
					Name: filepath.Base(modFolder),
					Path: modFolder,
				})
			}
			return nil
		})
	}
	_ = eg.Wait()

	eg, egctx = errgroup.WithContext(ctx)
	eg.SetLimit(d.parallelism())
	for _, installation := range installations {
		for j := range installation.Mods {
			mod := &installation.Mods[j]
			eg.Go(func() error {
				if egctx.Err() != nil {
					return nil
				}
				mod.LocalizationPath, _ = mods.ProbeLocalization(mod.Path, d.Logger)
				return nil
			})
		}
	}
	_ = eg.Wait()
	return installations
}
