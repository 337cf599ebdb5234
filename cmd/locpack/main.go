package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/urfave/cli/v2"

	"github.com/sdtd-l10n/locpack/cmd/locpack/build"
	"github.com/sdtd-l10n/locpack/cmd/locpack/game"
	"github.com/sdtd-l10n/locpack/cmd/locpack/locale"
	"github.com/sdtd-l10n/locpack/cmd/locpack/versioning"
	"github.com/sdtd-l10n/locpack/pkg/project"
)

func main() {
	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

var (
	toolVersion = versioning.DetermineToolVersion(buildSummary)
	// buildSummary should be overridden by ldflags, such as with GoReleaser's "Summary".
	buildSummary = ""
)

var app = &cli.App{
	Name:    "locpack",
	Version: toolVersion,
	Usage:   "Packages mod localizations for 7 Days to Die and imports them from installed games",
	Commands: []*cli.Command{
		build.Cmd,
		game.Cmd,
		locale.Cmd,
	},
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Value:   project.DeclFile,
			Usage:   "Path of the project declaration file",
			EnvVars: []string{"LOCPACK_CONFIG"},
		},
		&cli.BoolFlag{
			Name:    "verbose",
			Usage:   "Log debugging details",
			EnvVars: []string{"LOCPACK_VERBOSE"},
		},
	},
	Suggest: true,
}
