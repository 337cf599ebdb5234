// Package locale provides subcommands for managing locale packages in a locale repository
package locale

import (
	"github.com/urfave/cli/v2"
)

var Cmd = &cli.Command{
	Name:  "locale",
	Usage: "Manages the locale packages of a locale repository",
	Subcommands: []*cli.Command{
		{
			Name:     "ls",
			Aliases:  []string{"list"},
			Category: "Query locale packages",
			Usage:    "Lists the locale packages",
			Action:   lsAction,
		},
		{
			Name:      "new",
			Aliases:   []string{"add"},
			Category:  "Modify locale packages",
			Usage:     "Scaffolds a new locale package",
			ArgsUsage: "name",
			Action:    newAction,
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:  "version",
					Usage: "Initial semantic version of the locale package",
				},
			},
		},
	},
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:  "repo",
			Value: ".",
			Usage: "Path of the locale repository",
		},
	},
}
