// Package steam reads the Steam client's metadata about game libraries and installed apps.
package steam

// GameInfo is what the Steam client knows about a game.
type GameInfo struct {
	// Libraries lists the steamapps directories of all library folders known to the client.
	Libraries []string
	// Game describes the installed copy of the game, or is nil if the game isn't installed.
	Game *App
}

// An App is an installed Steam app, as described by its app manifest.
type App struct {
	// ID is the Steam app id.
	ID int
	// Name is the app's display name.
	Name string
	// Path is the absolute path of the app's installation directory.
	Path string
}
