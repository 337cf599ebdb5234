package steam

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/pkg/errors"
)

var ErrNotFound = errors.New("steam client directory not found")

// FindRoot returns the first existing Steam client directory among the usual locations for the
// current OS.
func FindRoot() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(err, "couldn't determine home directory")
	}
	for _, candidate := range rootCandidates(runtime.GOOS, home) {
		if info, err := os.Stat(candidate); err == nil && info.IsDir() {
			return candidate, nil
		}
	}
	return "", ErrNotFound
}

func rootCandidates(goos, home string) []string {
	switch goos {
	case "windows":
		candidates := make([]string, 0, 2)
		for _, env := range []string{"ProgramFiles(x86)", "ProgramFiles"} {
			if dir := os.Getenv(env); dir != "" {
				candidates = append(candidates, filepath.Join(dir, "Steam"))
			}
		}
		return candidates
	case "darwin":
		return []string{filepath.Join(home, "Library", "Application Support", "Steam")}
	default:
		return []string{
			filepath.Join(home, ".steam", "steam"),
			filepath.Join(home, ".steam", "root"),
			filepath.Join(home, ".local", "share", "Steam"),
			filepath.Join(home, ".var", "app", "com.valvesoftware.Steam", ".steam", "steam"),
			filepath.Join(home, ".var", "app", "com.valvesoftware.Steam", "data", "Steam"),
		}
	}
}
