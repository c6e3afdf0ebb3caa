// Package version reports build metadata for the orderchat binary.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"time"
)

// Set at link time:
//
//	go build -ldflags="-X github.com/muurk/orderchat/internal/version.Version=v0.3.0 \
//	                   -X github.com/muurk/orderchat/internal/version.Commit=abc123"
//
// Unset values are derived from the embedded VCS stamp, then from the clock.
var (
	// Version is the release version of the binary
	Version = ""
	// Commit is the short git revision it was built from
	Commit = ""
)

// shortHashLen is the number of revision characters kept in Commit.
const shortHashLen = 7

// Info is the build metadata shown by `orderchat version`.
type Info struct {
	Version   string
	Commit    string
	GoVersion string
	Platform  string
}

func init() {
	if Version == "" || Commit == "" {
		applyVCS(readVCS())
	}
	if Version == "" {
		Version = "dev-" + time.Now().Format("20060102-150405")
	}
	if Commit == "" {
		Commit = "unknown"
	}
}

// vcsStamp holds the vcs.* settings the go command embeds in the binary.
type vcsStamp struct {
	revision string
	modified bool
	time     string
}

func readVCS() vcsStamp {
	var stamp vcsStamp
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return stamp
	}
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			stamp.revision = s.Value
		case "vcs.modified":
			stamp.modified = s.Value == "true"
		case "vcs.time":
			stamp.time = s.Value
		}
	}
	return stamp
}

// applyVCS fills whichever of Version and Commit are still empty.
func applyVCS(stamp vcsStamp) {
	if Commit == "" && stamp.revision != "" {
		Commit = shortHash(stamp.revision)
		if stamp.modified {
			Commit += "-dirty"
		}
	}
	if Version == "" && stamp.time != "" {
		if t, err := time.Parse(time.RFC3339, stamp.time); err == nil {
			Version = "dev-" + t.Format("20060102")
		}
	}
}

func shortHash(rev string) string {
	if len(rev) > shortHashLen {
		return rev[:shortHashLen]
	}
	return rev
}

// Get returns the metadata of the running binary.
func Get() Info {
	return Info{
		Version:   Version,
		Commit:    Commit,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
}

// Full returns the version with its commit, e.g. "v0.3.0 (commit: abc1234)".
func Full() string {
	return fmt.Sprintf("%s (commit: %s)", Version, Commit)
}
