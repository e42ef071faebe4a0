package cmd

import (
	"github.com/spf13/cobra"

	"github.com/lugassawan/tilik/internal/output"
)

// version is overridden at build time via -ldflags.
var version = "dev"

// Invocation details recorded for error reporting in main.
var (
	calledName = "tilik"
	jsonMode   bool
)

func recordInvocation(cmd *cobra.Command) {
	calledName = cmd.Name()
	jsonMode = output.IsJSON(cmd)
}

// Version returns the build version.
func Version() string { return version }

// CommandName returns the name of the command that was invoked.
func CommandName() string { return calledName }

// IsJSONMode reports whether the invoked command ran with --json.
func IsJSONMode() bool { return jsonMode }

func init() {
	rootCmd.Version = version
}
