package main

import (
	"fmt"
	"runtime"
	"runtime/debug"

	"github.com/spf13/cobra"
)

// Set by build flags: -ldflags "-X main.version=... -X main.commit=..."
var (
	version = "dev"
	commit  = ""
)

// buildInfo describes the running binary.
type buildInfo struct {
	Version   string
	Commit    string
	GoVersion string
	Platform  string
}

func currentBuild() buildInfo {
	info := buildInfo{
		Version:   version,
		Commit:    commit,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}

	if info.Commit == "" {
		info.Commit = "unknown"
		if bi, ok := debug.ReadBuildInfo(); ok {
			for _, s := range bi.Settings {
				if s.Key == "vcs.revision" && s.Value != "" {
					info.Commit = s.Value
				}
			}
		}
	}

	return info
}

func (b buildInfo) String() string {
	return fmt.Sprintf("%s (%s) %s %s", b.Version, b.Commit, b.GoVersion, b.Platform)
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of shapes",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "shapes version %s\n", currentBuild())
		},
	}
}
