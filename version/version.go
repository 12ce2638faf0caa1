// Package version reports which build of objwire is running.
package version

import (
	"fmt"
	"runtime/debug"
)

// Set with -ldflags "-X github.com/philipparndt/objwire/version.Version=..."
var (
	Version   = "dev"
	GitCommit = ""
	BuildDate = ""
)

// Info describes a build
type Info struct {
	Version   string
	Commit    string
	Date      string
	GoVersion string
	Modified  bool
}

// Current returns the linked-in version, falling back to the VCS stamp
// the toolchain embeds when the binary was built without ldflags.
func Current() Info {
	info := Info{Version: Version, Commit: GitCommit, Date: BuildDate}
	if build, ok := debug.ReadBuildInfo(); ok {
		info = fromBuildInfo(info, build)
	}
	return info
}

func fromBuildInfo(info Info, build *debug.BuildInfo) Info {
	info.GoVersion = build.GoVersion
	if info.Version == "dev" && build.Main.Version != "" && build.Main.Version != "(devel)" {
		info.Version = build.Main.Version
	}
	for _, s := range build.Settings {
		switch s.Key {
		case "vcs.revision":
			if info.Commit == "" {
				info.Commit = s.Value
			}
		case "vcs.time":
			if info.Date == "" {
				info.Date = s.Value
			}
		case "vcs.modified":
			info.Modified = s.Value == "true"
		}
	}
	return info
}

// String formats the version with whatever commit and date are known
func (i Info) String() string {
	commit := i.Commit
	if len(commit) > 12 {
		commit = commit[:12]
	}
	if i.Modified && commit != "" {
		commit += "-dirty"
	}

	switch {
	case commit != "" && i.Date != "":
		return fmt.Sprintf("%s (commit %s, built %s)", i.Version, commit, i.Date)
	case commit != "":
		return fmt.Sprintf("%s (commit %s)", i.Version, commit)
	}
	return i.Version
}

// GetVersion returns the short version used by --version
func GetVersion() string {
	return Current().Version
}

// GetFullVersion returns the version with commit and build date
func GetFullVersion() string {
	return Current().String()
}
