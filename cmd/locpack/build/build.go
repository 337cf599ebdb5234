package build

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	lcli "github.com/sdtd-l10n/locpack/internal/app/locpack/cli"
	"github.com/sdtd-l10n/locpack/pkg/project"
)

func buildAction(c *cli.Context) error {
	root := c.String("root")
	configPath := c.String("config")
	if !filepath.IsAbs(configPath) {
		configPath = filepath.Join(root, configPath)
	}
	decl, err := project.LoadDecl(configPath)
	if err != nil {
		return errors.Wrap(err, "couldn't load project declaration")
	}
	if c.IsSet("source-glob") {
		decl.Build.SourceGlob = c.String("source-glob")
	}
	if c.IsSet("ignore-file") {
		decl.Build.IgnoreFile = c.String("ignore-file")
	}
	if c.IsSet("out-dir") {
		decl.Build.OutDir = c.String("out-dir")
	}
	if c.IsSet("archive") {
		decl.Build.Archive = c.String("archive")
	}
	if c.IsSet("parallelism") {
		decl.Build.Parallelism = c.Int("parallelism")
	}

	return lcli.BuildDist(c.Context, os.Stdout, decl.BuildOptions(root))
}
