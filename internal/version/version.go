// Package version resolves the version string the server announces.
package version

import "runtime/debug"

// Fallback is used when neither ldflags nor build info carry a version.
const Fallback = "0.1.0"

// Version is set at build time:
//
//	go build -ldflags "-X mcphello/internal/version.Version=1.2.3"
var Version = ""

var readBuildInfo = debug.ReadBuildInfo

// Resolve returns the ldflags version, then the main module version from
// build info, then Fallback.
func Resolve() string {
	if Version != "" {
		return Version
	}
	if info, ok := readBuildInfo(); ok && info != nil {
		if v := info.Main.Version; v != "" && v != "(devel)" {
			return v
		}
	}
	return Fallback
}
