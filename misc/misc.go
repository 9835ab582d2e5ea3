// Package misc keeps program identity used in logs and version output.
package misc

import "runtime/debug"

// Set at build time via -ldflags "-X cssel/misc.appVersion=...".
var (
	appName    = "cssel"
	appVersion = "dev"
	gitHash    = ""
)

// GetAppName returns the program name.
func GetAppName() string {
	return appName
}

// GetVersion returns the program version.
func GetVersion() string {
	return appVersion
}

// GetGitHash returns the VCS revision the program was built from,
// falling back to build info when not set by the linker.
func GetGitHash() string {
	if gitHash != "" {
		return gitHash
	}
	if bi, ok := debug.ReadBuildInfo(); ok {
		for _, s := range bi.Settings {
			if s.Key == "vcs.revision" {
				return s.Value
			}
		}
	}
	return "unknown"
}
