package main

import (
	"fmt"

	"github.com/flanksource/bsharp-analyzer/cmd"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
	dirty   = "unknown"
)

func main() {
	cmd.SetVersionInfo(GetVersionInfo)
	cmd.Execute()
}

// GetVersionInfo returns version information for use by the cmd package.
func GetVersionInfo() (string, string, string, bool) {
	isDirty := dirty == "true"
	versionStr := version
	if isDirty {
		versionStr = fmt.Sprintf("%s-dirty", version)
	}
	return versionStr, commit, date, isDirty
}
