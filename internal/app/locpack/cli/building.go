package cli

import (
	"context"
	"io"
	"path/filepath"

	units "github.com/docker/go-units"

	"github.com/sdtd-l10n/locpack/pkg/building"
)

// BuildDist rebuilds the distribution tree and archive, and reports what was packaged.
func BuildDist(ctx context.Context, w io.Writer, opts building.Options) error {
	IndentedFprintf(0, w, "Building %s from %s...\n", opts.ArchivePath, opts.SourceGlob)
	result, err := building.Build(ctx, opts)
	if err != nil {
		return err
	}

	if len(result.Locales) == 0 {
		IndentedFprintln(1, w, "No locale source files were found!")
	} else {
		IndentedFprintf(1, w, "Packaged %d locales:\n", len(result.Locales))
		for _, locale := range result.Locales {
			BulletedFprintf(1, w, "%s (from %s)\n", locale.Name, locale.Source)
		}
	}
	IndentedFprintf(
		0, w, "Done! Wrote %s (%s)\n",
		relativeTo(opts.Root, result.ArchivePath), units.HumanSize(float64(result.ArchiveSize)),
	)
	return nil
}

func relativeTo(root, target string) string {
	rel, err := filepath.Rel(root, target)
	if err != nil {
		return target
	}
	return rel
}
