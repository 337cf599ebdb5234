package cli

import (
	"io"

	"github.com/sdtd-l10n/locpack/pkg/project"
)

func FprintLocales(indent int, w io.Writer, decls []project.LocaleDecl) {
	if len(decls) == 0 {
		IndentedFprintln(indent, w, "No locale packages")
		return
	}
	for _, decl := range decls {
		BulletedFprintf(indent, w, "%s@%s\n", decl.Name, decl.Version)
	}
}
