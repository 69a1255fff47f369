// Package cmd contains helpers shared by cobra based command line tools.
package cmd

import (
	"fmt"
	"runtime/debug"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

// Version returns a `version` command to be added to any cobra (root) command.
func Version(name string) *cobra.Command {
	name = strings.TrimSpace(name)

	short := "Print version"
	if name != "" {
		short = "Print " + name + " version"
	}

	return &cobra.Command{
		Use:                   "version",
		Short:                 short,
		Args:                  cobra.NoArgs,
		DisableFlagsInUseLine: true,
		Run: func(cmd *cobra.Command, _ []string) {
			if name != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "%s version: %s\n", name, BuildVersion())

				return
			}

			fmt.Fprintf(cmd.OutOrStdout(), "version: %s\n", BuildVersion())
		},
	}
}

// BuildVersion returns the module version, or the last commit hash and its timestamp
// if the binary was built from a checkout.
// The format is `<version> from <timestamp>`.
func BuildVersion() string {
	info := readBuildInfo()

	switch {
	case info.modified || (info.revision == "" && info.version == ""):
		return "@latest from " + time.Now().UTC().Format(time.RFC3339)
	case info.revision == "":
		return info.version
	default:
		return info.revision + " from " + info.time
	}
}

type buildInfo struct {
	version  string
	revision string
	time     string
	// modified is true if the binary was built from uncommitted changes.
	modified bool
}

// readBuildInfo needs the information to be embedded by `go build` or `go install`.
// Binaries of `go run` and `go test` do not contain it.
func readBuildInfo() buildInfo {
	var info buildInfo

	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return info
	}

	if v := bi.Main.Version; v != "" && v != "(devel)" {
		info.version = v
	}

	for _, setting := range bi.Settings {
		switch setting.Key {
		case "vcs.revision":
			info.revision = setting.Value
		case "vcs.time":
			info.time = setting.Value
		case "vcs.modified":
			info.modified = setting.Value == "true"
		}
	}

	return info
}
