// Package version reports the build of the binary.
package version

import "runtime/debug"

// Version is set at link time with -ldflags "-X".
var Version = "0.1.0"

// Revision is the VCS revision the binary was built from.
var Revision = revision()

func revision() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "unknown"
	}
	for _, s := range info.Settings {
		if s.Key == "vcs.revision" && s.Value != "" {
			return s.Value
		}
	}
	return "unknown"
}

// String returns the version and revision.
func String() string {
	return Version + "+" + Revision
}
