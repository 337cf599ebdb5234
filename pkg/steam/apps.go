package steam

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strconv"

	pkgerrors "github.com/pkg/errors"
)

// AppManifestFile returns the name of the manifest file for the specified app id.
func AppManifestFile(appID int) string {
	return fmt.Sprintf("appmanifest_%d.acf", appID)
}

// LoadAppManifest loads the manifest of the specified app from a steamapps directory. If the app
// isn't installed in that library, it returns nil without an error.
func LoadAppManifest(library string, appID int) (*App, error) {
	manifestPath := filepath.Join(library, AppManifestFile(appID))
	kv, err := loadKeyValues(manifestPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, pkgerrors.Wrapf(err, "couldn't load app manifest for app %d", appID)
	}

	state, ok := lookupSection(kv, "AppState")
	if !ok {
		return nil, pkgerrors.Errorf("%s has no AppState section", manifestPath)
	}
	if rawID, ok := lookupString(state, "appid"); ok {
		if id, err := strconv.Atoi(rawID); err == nil && id != appID {
			return nil, pkgerrors.Errorf("%s describes app %d instead of app %d", manifestPath, id, appID)
		}
	}
	installDir, ok := lookupString(state, "installdir")
	if !ok || installDir == "" {
		return nil, pkgerrors.Errorf("%s has no installdir", manifestPath)
	}
	name, _ := lookupString(state, "name")
	return &App{
		ID:   appID,
		Name: name,
		Path: filepath.Join(library, CommonDir, installDir),
	}, nil
}
