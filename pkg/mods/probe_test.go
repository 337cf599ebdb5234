package mods

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
)

func TestProbeLocalization(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	withLocalization := filepath.Join(root, "withLocalization")
	if err := os.MkdirAll(filepath.Join(withLocalization, ConfigDir), 0o755); err != nil {
		t.Fatal(err)
	}
	localizationPath := filepath.Join(withLocalization, ConfigDir, LocalizationFileName)
	if err := os.WriteFile(localizationPath, []byte("Key,english\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	withoutConfig := filepath.Join(root, "withoutConfig")
	if err := os.Mkdir(withoutConfig, 0o755); err != nil {
		t.Fatal(err)
	}
	withEmptyConfig := filepath.Join(root, "withEmptyConfig")
	if err := os.MkdirAll(filepath.Join(withEmptyConfig, ConfigDir), 0o755); err != nil {
		t.Fatal(err)
	}
	withDirectory := filepath.Join(root, "withDirectory")
	if err := os.MkdirAll(LocalizationPath(withDirectory), 0o755); err != nil {
		t.Fatal(err)
	}

	for name, test := range map[string]struct {
		modFolder string
		path      string
		ok        bool
		logged    bool
	}{
		"present":        {modFolder: withLocalization, path: localizationPath, ok: true},
		"without config": {modFolder: withoutConfig},
		"empty config":   {modFolder: withEmptyConfig},
		"missing mod":    {modFolder: filepath.Join(root, "missing")},
		"directory":      {modFolder: withDirectory, logged: true},
	} {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			buf := &bytes.Buffer{}
			path, ok := ProbeLocalization(test.modFolder, log.New(buf))
			if ok != test.ok {
				t.Errorf("got ok = %t, want %t", ok, test.ok)
			}
			if path != test.path {
				t.Errorf("got path %q, want %q", path, test.path)
			}
			if logged := buf.Len() > 0; logged != test.logged {
				t.Errorf("got logged = %t (%q), want %t", logged, buf.String(), test.logged)
			}
		})
	}
}
