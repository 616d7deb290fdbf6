// Package version provides the pstatus version strings.
package version

import (
	_ "embed"
	"strings"
)

// You can overridden buildVersion at compile time by using:
//
//  go run -ldflags "-X github.com/buildkite/pstatus/version.buildVersion=abc" ./cmd/pstatus --version
//
// On CI, the binaries are always built with the buildVersion variable set.

//go:embed VERSION
var baseVersion string
var buildVersion string

func Version() string {
	return strings.TrimSpace(baseVersion)
}

func BuildVersion() string {
	if buildVersion == "" {
		return "x"
	}
	return buildVersion
}
