// Package cli has shared utilities and application logic for the locpack CLI
package cli

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/muesli/reflow/indent"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Output is nested in steps of indentUnit, and list items are introduced by bulletMarker.
const (
	indentUnit   = "  "
	bulletMarker = "- "
)

func linePrefix(level int) string {
	return strings.Repeat(indentUnit, level)
}

// IndentedFprint writes its operands at the given nesting level, without a trailing newline.
func IndentedFprint(level int, w io.Writer, a ...any) {
	_, _ = io.WriteString(w, linePrefix(level)+fmt.Sprint(a...))
}

func IndentedFprintln(level int, w io.Writer, a ...any) {
	_, _ = io.WriteString(w, linePrefix(level)+fmt.Sprintln(a...))
}

func IndentedFprintf(level int, w io.Writer, format string, a ...any) {
	_, _ = io.WriteString(w, linePrefix(level)+fmt.Sprintf(format, a...))
}

// BulletedFprintf writes a list item at the given nesting level.
func BulletedFprintf(level int, w io.Writer, format string, a ...any) {
	IndentedFprintf(level, w, bulletMarker+format, a...)
}

// IndentedFprintYaml writes v as a yaml document with every line at the given nesting level.
func IndentedFprintYaml(level int, w io.Writer, v any) error {
	buf := &bytes.Buffer{}
	encoder := yaml.NewEncoder(buf)
	encoder.SetIndent(len(indentUnit))
	if err := encoder.Encode(v); err != nil {
		return errors.Wrapf(err, "couldn't serialize %T as yaml", v)
	}
	if err := encoder.Close(); err != nil {
		return errors.Wrapf(err, "couldn't finish serializing %T as yaml", v)
	}
	_, err := io.WriteString(w, indent.String(buf.String(), uint(len(linePrefix(level)))))
	return err
}
