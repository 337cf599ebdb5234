// Package mods inspects installed game mods for localization content.
package mods

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
)

const (
	// ConfigDir is the name of a mod's configuration directory.
	ConfigDir = "Config"
	// LocalizationFileName is the name of a mod's localization file in its configuration directory.
	LocalizationFileName = "Localization.txt"
	// LocalizationFile is the path of a mod's localization file, relative to the mod's folder.
	LocalizationFile = ConfigDir + "/" + LocalizationFileName
)

// LocalizationPath returns the path where the mod at modFolder would keep its localization file.
func LocalizationPath(modFolder string) string {
	return filepath.Join(modFolder, ConfigDir, LocalizationFileName)
}

// ProbeLocalization checks whether the mod at modFolder carries a readable localization file. If
// so, it returns the path of that file.
//
// A missing file is the normal case for mods without localization content. Any other failure to
// read the file is reported on the logger (if one is provided), and the mod is treated as if it
// had no localization file.
func ProbeLocalization(modFolder string, logger *log.Logger) (localizationPath string, ok bool) {
	localizationPath = LocalizationPath(modFolder)
	file, err := os.Open(filepath.Clean(localizationPath))
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			warn(logger, "couldn't read mod localization file", "path", localizationPath, "err", err)
		}
		return "", false
	}
	defer func() {
		_ = file.Close()
	}()

	info, err := file.Stat()
	if err != nil {
		warn(logger, "couldn't stat mod localization file", "path", localizationPath, "err", err)
		return "", false
	}
	if info.IsDir() {
		warn(logger, "mod localization path is a directory", "path", localizationPath)
		return "", false
	}
	return localizationPath, true
}

func warn(logger *log.Logger, msg string, keyvals ...any) {
	if logger == nil {
		return
	}
	logger.Warn(msg, keyvals...)
}
