package cmd

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/lugassawan/tilik/internal/ci"
	"github.com/lugassawan/tilik/internal/config"
	"github.com/lugassawan/tilik/internal/git"
	"github.com/lugassawan/tilik/internal/output"
	"github.com/lugassawan/tilik/internal/termcolor"
)

// newRunner builds the git runner. A variable so tests can substitute a
// mock.
var newRunner = func() git.Runner {
	return &git.ExecRunner{}
}

// newCIRunner builds the gh runner, overridable in tests.
var newCIRunner = func() ci.Runner {
	return ci.ExecRunner{}
}

// painter builds a color painter honoring --no-color.
func painter(cmd *cobra.Command) *termcolor.Painter {
	noColor, _ := cmd.Flags().GetBool(flagNoColor)
	return termcolor.NewPainter(noColor)
}

// hintPainter colors the flag-hint block.
func hintPainter(cmd *cobra.Command) *termcolor.Painter {
	return painter(cmd)
}

// spinnerOpts returns the spinner constructor arguments for a command.
func spinnerOpts(cmd *cobra.Command) (io.Writer, bool) {
	noColor, _ := cmd.Flags().GetBool(flagNoColor)
	return cmd.ErrOrStderr(), noColor
}

func isJSON(cmd *cobra.Command) bool {
	return output.IsJSON(cmd)
}

// resolveBaseBranch picks the comparison branch: explicit flag, then
// config, then the primary checkout's branch, then git detection.
func resolveBaseBranch(r git.Runner, cfg *config.Config, flagValue, primaryBranch string) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}
	if cfg.BaseBranch != "" {
		return cfg.BaseBranch, nil
	}
	if primaryBranch != "" {
		return primaryBranch, nil
	}
	return git.DefaultBranch(r)
}
