// Package build provides the subcommand for packaging locales into a distribution archive
package build

import (
	"github.com/urfave/cli/v2"
)

var Cmd = &cli.Command{
	Name:  "build",
	Usage: "Packages the locale source files into a distribution directory and zip archive",
	Description: "Deletes any previous distribution directory and archive, copies each locale " +
		"source file to <out-dir>/<locale>/Config/Localization.txt, and zips the distribution " +
		"directory.",
	Action: buildAction,
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:  "root",
			Value: ".",
			Usage: "Directory to build in; other paths are relative to it",
		},
		&cli.StringFlag{
			Name:  "source-glob",
			Usage: "Glob pattern matching the locale source files",
		},
		&cli.StringFlag{
			Name:  "ignore-file",
			Usage: "File listing glob patterns of source files to skip, one per line",
		},
		&cli.StringFlag{
			Name:  "out-dir",
			Usage: "Distribution directory to (re)create",
		},
		&cli.StringFlag{
			Name:    "archive",
			Aliases: []string{"o"},
			Usage:   "Zip archive to (re)create",
		},
		&cli.IntFlag{
			Name:  "parallelism",
			Usage: "Maximum number of locales to package concurrently",
		},
	},
}
