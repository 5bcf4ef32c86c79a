// Package version reports the build version of pagewidget.
package version

import (
	"github.com/Masterminds/semver/v3"
)

// DevVersion is reported when no valid version was set at build time.
const DevVersion = "0.0.0-dev"

// version is set at build time:
//
//	go build -ldflags "-X github.com/rshade/pagewidget/pkg/version.version=v1.2.3"
var version = DevVersion //nolint:gochecknoglobals // Set via ldflags.

// GetVersion returns the build version in canonical semver form, without a
// leading "v".
func GetVersion() string {
	return Normalize(version)
}

// Normalize parses v as a semantic version and returns its canonical form.
// Strings that are not semantic versions yield DevVersion.
func Normalize(v string) string {
	parsed, err := semver.NewVersion(v)
	if err != nil {
		return DevVersion
	}
	return parsed.String()
}
