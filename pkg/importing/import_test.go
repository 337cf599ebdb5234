package importing

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"

	"github.com/sdtd-l10n/locpack/pkg/discovery"
	"github.com/sdtd-l10n/locpack/pkg/mods"
)

func makeMod(t *testing.T, installation *discovery.Installation, name, localization string) {
	t.Helper()
	mod := discovery.Mod{Name: name, Path: filepath.Join(installation.Path, discovery.ModsDir, name)}
	if err := os.MkdirAll(mod.Path, 0o755); err != nil {
		t.Fatal(err)
	}
	if localization != "" {
		mod.LocalizationPath = mods.LocalizationPath(mod.Path)
		if err := os.MkdirAll(filepath.Dir(mod.LocalizationPath), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(mod.LocalizationPath, []byte(localization), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	installation.Mods = append(installation.Mods, mod)
}

func makeInstallation(t *testing.T) *discovery.Installation {
	t.Helper()
	installation := &discovery.Installation{Path: filepath.Join(t.TempDir(), "7 Days To Die")}
	makeMod(t, installation, "alpha", "Key,english\nalpha,Alpha\n")
	makeMod(t, installation, "beta", "Key,english\nbeta,Beta\n")
	makeMod(t, installation, "plain", "")
	return installation
}

func TestSelectionValidate(t *testing.T) {
	t.Parallel()

	installation := makeInstallation(t)
	alpha, _ := installation.Mod("alpha")
	plain, _ := installation.Mod("plain")
	dest := t.TempDir()

	for name, test := range map[string]struct {
		sel   Selection
		valid bool
	}{
		"valid": {
			sel:   Selection{Installation: installation, Mods: []discovery.Mod{alpha}, Dest: dest},
			valid: true,
		},
		"no installation": {sel: Selection{Mods: []discovery.Mod{alpha}, Dest: dest}},
		"no mods":         {sel: Selection{Installation: installation, Dest: dest}},
		"no localization": {
			sel: Selection{Installation: installation, Mods: []discovery.Mod{plain}, Dest: dest},
		},
		"foreign mod": {
			sel: Selection{
				Installation: installation,
				Mods:         []discovery.Mod{{Name: "other", LocalizationPath: "x"}},
				Dest:         dest,
			},
		},
		"missing dest": {
			sel: Selection{
				Installation: installation,
				Mods:         []discovery.Mod{alpha},
				Dest:         filepath.Join(dest, "missing"),
			},
		},
	} {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			if err := test.sel.Validate(); (err == nil) != test.valid {
				t.Errorf("got validation error %v, want valid = %t", err, test.valid)
			}
		})
	}
}

func TestImport(t *testing.T) {
	t.Parallel()

	installation := makeInstallation(t)
	alpha, _ := installation.Mod("alpha")
	beta, _ := installation.Mod("beta")
	dest := t.TempDir()

	imported, err := Import(context.Background(), Selection{
		Installation: installation,
		Mods:         []discovery.Mod{alpha, beta},
		Dest:         dest,
	}, 1, nil)
	if err != nil {
		t.Fatalf("import failed: %s", err)
	}
	if len(imported) != 2 {
		t.Fatalf("expected 2 imported files, got %+v", imported)
	}
	for _, file := range imported {
		if want := filepath.Join(dest, file.Mod.Name+SourceExt); file.Path != want {
			t.Errorf("got import path %s, want %s", file.Path, want)
		}
		got, err := os.ReadFile(file.Path)
		if err != nil {
			t.Fatal(err)
		}
		want, err := os.ReadFile(file.Mod.LocalizationPath)
		if err != nil {
			t.Fatal(err)
		}
		if string(got) != string(want) {
			t.Errorf("imported content of %s differs: got %q, want %q", file.Mod.Name, got, want)
		}
	}
}

func TestAnnotateGitStatus(t *testing.T) {
	t.Parallel()

	installation := makeInstallation(t)
	alpha, _ := installation.Mod("alpha")
	beta, _ := installation.Mod("beta")

	dest := t.TempDir()
	repo, err := git.PlainInit(dest, false)
	if err != nil {
		t.Fatal(err)
	}
	worktree, err := repo.Worktree()
	if err != nil {
		t.Fatal(err)
	}
	if err = os.WriteFile(filepath.Join(dest, "alpha.csv"), []byte("old"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err = os.WriteFile(filepath.Join(dest, "beta.csv"), []byte("Key,english\nbeta,Beta\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{"alpha.csv", "beta.csv"} {
		if _, err = worktree.Add(name); err != nil {
			t.Fatal(err)
		}
	}
	if _, err = worktree.Commit("Add locales", &git.CommitOptions{
		Author: &object.Signature{Name: "Test", Email: "test@example.com", When: time.Now()},
	}); err != nil {
		t.Fatal(err)
	}

	gamma := discovery.Mod{Name: "gamma", LocalizationPath: alpha.LocalizationPath}
	installation.Mods = append(installation.Mods, gamma)
	imported, err := Import(context.Background(), Selection{
		Installation: installation,
		Mods:         []discovery.Mod{alpha, beta, gamma},
		Dest:         dest,
	}, 0, nil)
	if err != nil {
		t.Fatalf("import failed: %s", err)
	}
	if err = AnnotateGitStatus(dest, imported); err != nil {
		t.Fatalf("couldn't annotate git status: %s", err)
	}

	want := map[string]Status{
		"alpha": StatusModified,
		"beta":  StatusUnchanged,
		"gamma": StatusNew,
	}
	for _, file := range imported {
		if file.Status != want[file.Mod.Name] {
			t.Errorf("got status %q for %s, want %q", file.Status, file.Mod.Name, want[file.Mod.Name])
		}
	}
}

func TestAnnotateGitStatusOutsideRepository(t *testing.T) {
	t.Parallel()

	dest := t.TempDir()
	if _, err := git.PlainOpenWithOptions(
		dest, &git.PlainOpenOptions{DetectDotGit: true},
	); err == nil {
		t.Skip("the temporary directory is inside a git repository")
	}
	imported := []Imported{{Path: filepath.Join(dest, "alpha.csv")}}
	if err := AnnotateGitStatus(dest, imported); err != nil {
		t.Fatalf("expected no error outside a repository, got %s", err)
	}
	if imported[0].Status != StatusUnknown {
		t.Errorf("expected unknown status, got %q", imported[0].Status)
	}
}
