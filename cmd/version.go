package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// getVersionInfo is supplied by main so the cmd package doesn't need build-time ldflags itself.
var getVersionInfo func() (version, commit, date string, dirty bool)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		printVersion()
	},
}

func printVersion() {
	if getVersionInfo == nil {
		fmt.Println("bsharp-analyzer version dev (commit: unknown, built: unknown)")
		return
	}
	version, commit, date, isDirty := getVersionInfo()
	status := "clean"
	if isDirty {
		status = "dirty"
	}
	fmt.Printf("bsharp-analyzer version %s (commit: %s, built: %s, %s)\n", version, commit, date, status)
}

// SetVersionInfo wires the build-time version function in from main.
func SetVersionInfo(fn func() (string, string, string, bool)) {
	getVersionInfo = fn
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
