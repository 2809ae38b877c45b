// Where: internal/version/version.go
// What: Version information retrieval.
// Why: Surface the module tag and VCS state without a release pipeline.
package version

import (
	"fmt"
	"runtime/debug"
)

// GetVersion builds a version string from the embedded build info: the
// module version tag when one exists, combined with the short VCS revision
// and a -dirty suffix for modified trees.
func GetVersion() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "dev"
	}

	var revision string
	var dirty bool
	for _, setting := range info.Settings {
		switch setting.Key {
		case "vcs.revision":
			revision = setting.Value
		case "vcs.modified":
			dirty = setting.Value == "true"
		}
	}
	return format(info.Main.Version, revision, dirty)
}

func format(tag, revision string, dirty bool) string {
	if tag == "" || tag == "(devel)" {
		tag = "dev"
	}
	if revision == "" {
		return tag
	}
	if len(revision) > 7 {
		revision = revision[:7]
	}
	if dirty {
		revision += "-dirty"
	}
	return fmt.Sprintf("%s (%s)", tag, revision)
}
