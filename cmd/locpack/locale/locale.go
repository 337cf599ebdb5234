package locale

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	lcli "github.com/sdtd-l10n/locpack/internal/app/locpack/cli"
	"github.com/sdtd-l10n/locpack/pkg/project"
)

// ls

func lsAction(c *cli.Context) error {
	decls, err := project.LoadLocales(c.String("repo"))
	if err != nil {
		return err
	}
	lcli.FprintLocales(0, os.Stdout, decls)
	return nil
}

// new

func newAction(c *cli.Context) error {
	if c.Args().Len() != 1 {
		return errors.Errorf("expected exactly one locale package name, got %d", c.Args().Len())
	}
	decl := project.LocaleDecl{
		Name:    c.Args().First(),
		Version: c.String("version"),
	}
	localePath, err := project.NewLocale(c.String("repo"), decl)
	if err != nil {
		return errors.Wrapf(err, "couldn't scaffold locale package %s", decl.Name)
	}
	fmt.Printf("Created locale package %s at %s\n", decl.Name, localePath)
	return nil
}
