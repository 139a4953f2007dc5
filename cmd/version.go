package cmd

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

// Overridden at build time with -ldflags.
var (
	Version   = "dev"
	BuiltAt   = "unknown"
	GitCommit = "unknown"
)

var VersionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("Version: %s\nBuilt At: %s\nGit Commit: %s\nGo Version: %s\nOS/Arch: %s/%s\n",
			Version, BuiltAt, GitCommit, runtime.Version(), runtime.GOOS, runtime.GOARCH)
	},
}

func init() {
	RootCmd.AddCommand(VersionCmd)
}
