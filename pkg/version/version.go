// Package version derives the build identity stamped into startup logs and
// protocol handshakes.
package version

import (
	"runtime/debug"
	"sync"
)

// AppName names this binary in version strings and MCP handshakes.
const AppName = "brigade"

// commitOverride can be injected with -ldflags for builds without VCS
// metadata (container builds strip .git).
var commitOverride string

// Commit returns the short git revision, or "dev" when none is known
// (go test, non-git builds).
var Commit = sync.OnceValue(func() string {
	if commitOverride != "" {
		return shortRev(commitOverride)
	}
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, s := range info.Settings {
			if s.Key == "vcs.revision" && s.Value != "" {
				return shortRev(s.Value)
			}
		}
	}
	return "dev"
})

func shortRev(rev string) string {
	if len(rev) > 8 {
		return rev[:8]
	}
	return rev
}

// Full returns "brigade/<commit>" for user-agent strings and logging.
func Full() string {
	return AppName + "/" + Commit()
}
