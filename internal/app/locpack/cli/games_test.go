package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/google/go-cmp/cmp"

	"github.com/sdtd-l10n/locpack/pkg/building"
	"github.com/sdtd-l10n/locpack/pkg/discovery"
)

func init() {
	color.NoColor = true
}

func makeResult() *discovery.Result {
	active := &discovery.Installation{
		Path: "/games/7 Days To Die",
		Mods: []discovery.Mod{
			{Name: "alpha", Path: "/games/7 Days To Die/mods/alpha"},
			{
				Name:             "beta",
				Path:             "/games/7 Days To Die/mods/beta",
				LocalizationPath: "/games/7 Days To Die/mods/beta/Config/Localization.txt",
			},
		},
	}
	other := &discovery.Installation{Path: "/other/7 Days To Die", Mods: []discovery.Mod{}}
	return &discovery.Result{Active: active, All: []*discovery.Installation{active, other}}
}

func TestFprintDiscoveryResult(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	FprintDiscoveryResult(0, buf, makeResult())
	want := strings.Join([]string{
		"/games/7 Days To Die (active)",
		"  Mods (2, 1 with localization):",
		"  - alpha: no localization",
		"  - beta: /games/7 Days To Die/mods/beta/Config/Localization.txt",
		"/other/7 Days To Die",
		"  No mods",
		"",
	}, "\n")
	if got := buf.String(); got != want {
		t.Errorf("diff (-want +got):\n%+v", cmp.Diff(want, got))
	}

	buf.Reset()
	FprintDiscoveryResult(0, buf, &discovery.Result{})
	if got := buf.String(); !strings.Contains(got, "No installations") {
		t.Errorf("unexpected output for an empty result: %q", got)
	}
}

func TestSelectInstallation(t *testing.T) {
	t.Parallel()

	result := makeResult()
	if got, err := SelectInstallation(result, ""); err != nil || got != result.Active {
		t.Errorf("expected the active installation, got %+v (err: %v)", got, err)
	}
	if got, err := SelectInstallation(result, "/other/7 Days To Die/"); err != nil ||
		got != result.All[1] {
		t.Errorf("expected the other installation, got %+v (err: %v)", got, err)
	}
	if _, err := SelectInstallation(result, "/nowhere"); err == nil {
		t.Error("expected an error for an unknown installation")
	}

	result.Active = nil
	if _, err := SelectInstallation(result, ""); err == nil {
		t.Error("expected an error when no installation is active and several exist")
	}
	result.All = result.All[1:]
	if got, err := SelectInstallation(result, ""); err != nil || got != result.All[0] {
		t.Errorf("expected the only installation, got %+v (err: %v)", got, err)
	}
	if _, err := SelectInstallation(&discovery.Result{}, ""); err == nil {
		t.Error("expected an error without installations")
	}
}

func TestSelectMods(t *testing.T) {
	t.Parallel()

	installation := makeResult().Active
	beta, _ := installation.Mod("beta")

	for name, test := range map[string]struct {
		names []string
		all   bool
		out   []discovery.Mod
	}{
		"by name":         {names: []string{"beta"}, out: []discovery.Mod{beta}},
		"all":             {all: true, out: []discovery.Mod{beta}},
		"empty":           {},
		"no localization": {names: []string{"alpha"}},
		"unknown":         {names: []string{"gamma"}},
	} {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got, err := SelectMods(installation, test.names, test.all)
			if test.out == nil {
				if err == nil {
					t.Errorf("expected an error, got %+v", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("couldn't select mods: %s", err)
			}
			if !cmp.Equal(got, test.out) {
				t.Errorf("diff (-want +got):\n%+v", cmp.Diff(test.out, got))
			}
		})
	}
}

func TestBuildDist(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, "en.csv"), []byte("Key,english\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	buf := &bytes.Buffer{}
	if err := BuildDist(context.Background(), buf, building.DefaultOptions(root)); err != nil {
		t.Fatalf("build failed: %s", err)
	}
	for _, line := range []string{"Packaged 1 locales:", "  - en (from en.csv)", "Wrote dist.zip"} {
		if !strings.Contains(buf.String(), line) {
			t.Errorf("expected output to contain %q, got:\n%s", line, buf.String())
		}
	}
}
