package cmd

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/lugassawan/tilik/internal/config"
	"github.com/lugassawan/tilik/internal/git"
)

const flagNoColor = "no-color"

var rootCmd = &cobra.Command{
	Use:          "tilik",
	Short:        "Git worktree dashboard",
	Long:         "Tilik shows every git worktree (and optionally every branch) with commit, divergence, and working-tree status in one responsive table.",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		recordInvocation(cmd)

		// Skip config for Cobra internals (completion, __complete)
		if cmd.Name() == "completion" || cmd.Name() == "__complete" {
			return nil
		}

		// Skip config if any command in the chain is annotated
		for c := cmd; c != nil; c = c.Parent() {
			if c.Annotations != nil && c.Annotations["skipConfig"] == "true" {
				return nil
			}
		}

		r := newRunner()
		repoRoot, err := git.RepoRoot(r)
		if err != nil {
			return err
		}

		// A missing config file is fine; tilik works with zero setup.
		cfg, err := config.Load(filepath.Join(repoRoot, config.FileName))
		if err != nil {
			return err
		}
		cmd.SetContext(config.WithConfig(cmd.Context(), cfg))
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().Bool(flagNoColor, false, "disable colored output")
}

func Execute() error {
	return rootCmd.Execute()
}
