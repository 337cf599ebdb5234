package steam

import (
	"context"

	"github.com/pkg/errors"
)

// Client answers questions about games using the metadata files of a Steam client installation.
type Client struct {
	// Root is the path of the Steam client directory. If empty, it is located with [FindRoot].
	Root string
}

// GameInfo returns the library folders known to the Steam client, together with the installed
// copy of the specified app (if any). The app is looked up in every library in order, and the
// first library with a manifest for the app wins.
func (c Client) GameInfo(ctx context.Context, appID int) (*GameInfo, error) {
	root := c.Root
	if root == "" {
		var err error
		if root, err = FindRoot(); err != nil {
			return nil, err
		}
	}

	libraries, err := LoadLibraries(root)
	if err != nil {
		return nil, errors.Wrapf(err, "couldn't load library folders of steam client at %s", root)
	}
	info := &GameInfo{Libraries: libraries}
	for _, library := range libraries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		app, err := LoadAppManifest(library, appID)
		if err != nil {
			return nil, errors.Wrapf(err, "couldn't check library %s for app %d", library, appID)
		}
		if app != nil {
			info.Game = app
			break
		}
	}
	return info, nil
}
