// Package game provides subcommands for discovering installed copies of the game and importing
// localizations from their mods
package game

import (
	"github.com/urfave/cli/v2"
)

var Cmd = &cli.Command{
	Name:  "game",
	Usage: "Discovers installed copies of the game and imports mod localizations from them",
	Subcommands: []*cli.Command{
		{
			Name:     "ls",
			Aliases:  []string{"list"},
			Category: "Query installed games",
			Usage:    "Lists installations of the game and their mods",
			Action:   lsAction,
			Flags: []cli.Flag{
				&cli.BoolFlag{
					Name:  "yaml",
					Usage: "Print the discovery result as a yaml document",
				},
			},
		},
		{
			Name:      "show",
			Category:  "Query installed games",
			Usage:     "Describes an installation of the game (by default, the active one)",
			ArgsUsage: "[installation_path]",
			Action:    showAction,
		},
		{
			Name:     "import",
			Category: "Import from installed games",
			Usage:    "Copies the localization files of installed mods into a locale repository folder",
			Action:   importAction,
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "dest",
					Aliases:  []string{"d"},
					Usage:    "Existing folder to import the localization files into",
					Required: true,
				},
				&cli.StringFlag{
					Name:  "game",
					Usage: "Path of the installation to import from (by default, the active one)",
				},
				&cli.StringSliceFlag{
					Name:    "mod",
					Aliases: []string{"m"},
					Usage:   "Name of a mod to import (may be repeated)",
				},
				&cli.BoolFlag{
					Name:  "all",
					Usage: "Import every mod which has a localization file",
				},
			},
		},
	},
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:    "steam-path",
			Usage:   "Path of the Steam client directory (by default, it's detected automatically)",
			EnvVars: []string{"LOCPACK_STEAM_PATH"},
		},
		&cli.IntFlag{
			Name:  "app-id",
			Usage: "Steam app id of the game (overrides the project declaration)",
		},
		&cli.IntFlag{
			Name:  "parallelism",
			Value: 8,
			Usage: "Maximum number of concurrent filesystem scans",
		},
	},
}
