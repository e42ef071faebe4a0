package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/lugassawan/tilik/internal/list"
	"github.com/lugassawan/tilik/internal/output"
	"github.com/lugassawan/tilik/internal/tui"
)

func init() {
	rootCmd.AddCommand(selectCmd)
}

var selectCmd = &cobra.Command{
	Use:   "select",
	Short: "Interactively pick a worktree",
	Long:  "Opens a filterable picker over all worktrees and prints the chosen path to stdout, so shell integration can cd into it.",
	RunE: func(cmd *cobra.Command, args []string) error {
		r := newRunner()

		items, err := list.BuildItems(r, list.BuildOptions{Warn: cmd.ErrOrStderr()})
		if err != nil {
			return err
		}
		if len(items) == 0 {
			return fmt.Errorf("no worktrees found")
		}

		now := time.Now()
		picks := make([]tui.PickItem, 0, len(items))
		for _, it := range items {
			picks = append(picks, tui.PickItem{
				Branch:  it.DisplayName(),
				Path:    it.Path,
				Age:     list.FormatAge(it.Timestamp, now),
				Primary: it.Primary,
			})
		}

		choice, err := tui.Pick(picks)
		if err != nil {
			return err
		}
		if choice == nil {
			// Cancelled; the wrapping shell function treats a silent
			// non-zero exit as "stay put".
			return &output.SilentError{ExitCode: 1}
		}

		fmt.Fprintln(cmd.OutOrStdout(), choice.Path)
		return nil
	},
}
