package steam

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/andygrunwald/vdf"
	"github.com/pkg/errors"
)

// loadKeyValues parses a Valve KeyValues (VDF/ACF) text file. Escape sequences in quoted strings
// (such as the doubled backslashes of Windows paths) are already resolved by the parser.
func loadKeyValues(filePath string) (map[string]any, error) {
	file, err := os.Open(filepath.Clean(filePath))
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = file.Close()
	}()

	parsed, err := vdf.NewParser(file).Parse()
	if err != nil {
		return nil, errors.Wrapf(err, "couldn't parse %s", filePath)
	}
	return parsed, nil
}

// lookupKey looks up a key case-insensitively, since Steam isn't consistent about key casing
// across client versions.
func lookupKey(kv map[string]any, key string) (any, bool) {
	if value, ok := kv[key]; ok {
		return value, true
	}
	for k, value := range kv {
		if strings.EqualFold(k, key) {
			return value, true
		}
	}
	return nil, false
}

func lookupSection(kv map[string]any, key string) (map[string]any, bool) {
	value, ok := lookupKey(kv, key)
	if !ok {
		return nil, false
	}
	section, ok := value.(map[string]any)
	return section, ok
}

func lookupString(kv map[string]any, key string) (string, bool) {
	value, ok := lookupKey(kv, key)
	if !ok {
		return "", false
	}
	s, ok := value.(string)
	return s, ok
}
