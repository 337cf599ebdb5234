// Package versioning determines the version of the locpack tool
package versioning

import (
	"runtime/debug"
	"time"

	"github.com/carlmjohnson/versioninfo"
)

// fallbackVersion is reported when neither a module version nor a VCS revision is known, e.g. for
// `go run` outside of a checkout.
const fallbackVersion = "v0.1.0-dev"

// DetermineToolVersion returns override if it's set. Otherwise it returns the module version of a
// `go install`ed binary, or a pseudo-version derived from the VCS revision the binary was built
// from.
func DetermineToolVersion(override string) string {
	if override != "" {
		return override
	}
	mainVersion := versioninfo.Version
	if info, ok := debug.ReadBuildInfo(); ok {
		mainVersion = info.Main.Version
	}
	return describe(mainVersion, versioninfo.Revision, versioninfo.LastCommit, versioninfo.DirtyBuild)
}

func describe(mainVersion, revision string, committed time.Time, dirty bool) string {
	var version string
	switch {
	case mainVersion != "" && mainVersion != "unknown" && mainVersion != "(devel)":
		version = mainVersion
	case revision != "" && revision != "unknown":
		const revisionLength = 12
		if len(revision) > revisionLength {
			revision = revision[:revisionLength]
		}
		version = "v0.0.0-" + committed.UTC().Format("20060102150405") + "-" + revision
	default:
		return fallbackVersion
	}
	if dirty {
		version += "+dirty"
	}
	return version
}
