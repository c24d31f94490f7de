// Package version derives the build identity reported in logs and version
// strings: an -ldflags override when set, otherwise VCS metadata from the
// build info, otherwise "dev".
package version

import "runtime/debug"

// AppName prefixes version strings.
const AppName = "warden"

// commit can be injected at build time:
//
//	go build -ldflags "-X .../pkg/version.commit=$(git rev-parse HEAD)"
var commit string

// Commit returns the short commit hash identifying this build, with a
// "-dirty" suffix when the working tree had local modifications.
func Commit() string {
	if commit != "" {
		return short(commit)
	}

	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "dev"
	}

	revision, dirty := "", false
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			revision = s.Value
		case "vcs.modified":
			dirty = s.Value == "true"
		}
	}
	if revision == "" {
		return "dev"
	}
	if dirty {
		return short(revision) + "-dirty"
	}
	return short(revision)
}

// Full returns "warden/<commit>".
func Full() string {
	return AppName + "/" + Commit()
}

func short(rev string) string {
	if len(rev) > 8 {
		return rev[:8]
	}
	return rev
}
