package game

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	lcli "github.com/sdtd-l10n/locpack/internal/app/locpack/cli"
	"github.com/sdtd-l10n/locpack/pkg/discovery"
	"github.com/sdtd-l10n/locpack/pkg/importing"
	"github.com/sdtd-l10n/locpack/pkg/project"
	"github.com/sdtd-l10n/locpack/pkg/steam"
)

func discover(c *cli.Context) (*discovery.Result, error) {
	decl, err := project.LoadDecl(c.String("config"))
	if err != nil {
		return nil, errors.Wrap(err, "couldn't load project declaration")
	}
	if c.IsSet("app-id") {
		decl.Game.AppID = c.Int("app-id")
	}
	logger := lcli.NewLogger(os.Stderr, c.Bool("verbose"))
	platform := steam.Client{Root: c.String("steam-path")}
	return lcli.DiscoverGames(c.Context, platform, decl.Game, c.Int("parallelism"), logger), nil
}

// ls

func lsAction(c *cli.Context) error {
	result, err := discover(c)
	if err != nil {
		return err
	}
	if c.Bool("yaml") {
		return lcli.IndentedFprintYaml(0, os.Stdout, result)
	}
	lcli.FprintDiscoveryResult(0, os.Stdout, result)
	return nil
}

// show

func showAction(c *cli.Context) error {
	result, err := discover(c)
	if err != nil {
		return err
	}
	installation, err := lcli.SelectInstallation(result, c.Args().First())
	if err != nil {
		return err
	}
	lcli.FprintInstallation(0, os.Stdout, installation, result.IsActive(installation))
	return nil
}

// import

func importAction(c *cli.Context) error {
	result, err := discover(c)
	if err != nil {
		return err
	}
	installation, err := lcli.SelectInstallation(result, c.String("game"))
	if err != nil {
		return err
	}
	mods, err := lcli.SelectMods(installation, c.StringSlice("mod"), c.Bool("all"))
	if err != nil {
		return err
	}

	fmt.Printf("Importing %d mods from %s...\n", len(mods), installation.Path)
	sel := importing.Selection{
		Installation: installation,
		Mods:         mods,
		Dest:         c.String("dest"),
	}
	return lcli.ImportMods(
		c.Context, os.Stdout, sel, c.Int("parallelism"), lcli.NewLogger(os.Stderr, c.Bool("verbose")),
	)
}
