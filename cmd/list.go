package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/lugassawan/tilik/internal/config"
	"github.com/lugassawan/tilik/internal/hint"
	"github.com/lugassawan/tilik/internal/layout"
	"github.com/lugassawan/tilik/internal/list"
	"github.com/lugassawan/tilik/internal/output"
	"github.com/lugassawan/tilik/internal/spinner"
	"github.com/lugassawan/tilik/internal/termcolor"
)

const (
	flagProgressive   = "progressive"
	flagNoProgressive = "no-progressive"
	flagBranches      = "branches"
	flagCI            = "ci"
	flagConflicts     = "conflicts"
	flagStrict        = "strict"
	flagJSON          = "json"
	flagBase          = "base"

	hintBranches  = "Include branches without a worktree"
	hintCI        = "Fetch pull request and check status (needs gh)"
	hintConflicts = "Simulate merges against the base branch"

	// envSequential disables concurrent collection, mainly for debugging.
	envSequential = "TILIK_SEQUENTIAL"
)

var (
	listProgressive   bool
	listNoProgressive bool
	listBranches      bool
	listCI            bool
	listConflicts     bool
	listStrict        bool
	listBase          string
)

func init() {
	rootCmd.AddCommand(listCmd)

	listCmd.Flags().BoolVar(&listProgressive, flagProgressive, false, "stream results into the table as they arrive")
	listCmd.Flags().BoolVar(&listNoProgressive, flagNoProgressive, false, "collect everything before printing")
	listCmd.Flags().BoolVar(&listBranches, flagBranches, false, "include local branches without a worktree")
	listCmd.Flags().BoolVar(&listCI, flagCI, false, "fetch pull request and CI status via gh")
	listCmd.Flags().BoolVar(&listConflicts, flagConflicts, false, "check for merge conflicts against the base branch")
	listCmd.Flags().BoolVar(&listStrict, flagStrict, false, "fail when any status query fails")
	listCmd.Flags().Bool(flagJSON, false, "output as JSON")
	listCmd.Flags().StringVar(&listBase, flagBase, "", "base branch to compare against")

	listCmd.MarkFlagsMutuallyExclusive(flagProgressive, flagNoProgressive)
	listCmd.MarkFlagsMutuallyExclusive(flagProgressive, flagJSON)
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Show the worktree dashboard",
	Long:  "Lists all git worktrees with commit, ahead/behind, diff, upstream, and working-tree status, streamed into the table as each value arrives.",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.FromContext(cmd.Context())
		r := newRunner()

		branches := listBranches || cfg.List.Branches
		fetchCI := listCI || cfg.List.CI
		conflicts := listConflicts || cfg.List.Conflicts
		strict := listStrict || cfg.List.Strict
		sequential := os.Getenv(envSequential) != ""

		jsonOut := isJSON(cmd)
		if !jsonOut {
			hint.New(cmd, hintPainter(cmd)).
				Add(flagBranches, hintBranches).
				Add(flagCI, hintCI).
				Add(flagConflicts, hintConflicts).
				Show()
		}

		buildConcurrency := 0
		if sequential {
			buildConcurrency = 1
		}
		items, err := list.BuildItems(r, list.BuildOptions{
			IncludeBranches: branches,
			Concurrency:     buildConcurrency,
			Warn:            cmd.ErrOrStderr(),
		})
		if err != nil {
			return err
		}
		if len(items) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No worktrees found.")
			return nil
		}

		var primary list.Item
		for _, it := range items {
			if it.Primary {
				primary = it
				break
			}
		}

		base, err := resolveBaseBranch(r, cfg, listBase, primary.Branch)
		if err != nil {
			return err
		}

		collector := list.NewCollector(r, newCIRunner(), primary.Path, list.CollectOptions{
			BaseBranch:     base,
			CheckConflicts: conflicts,
			FetchCI:        fetchCI,
			Sequential:     sequential,
			Warn:           cmd.ErrOrStderr(),
		})

		ch := make(chan list.Update, len(items)*list.WorktreeCells)
		go func() {
			collector.Run(items, ch)
			close(ch)
		}()

		tbl := list.NewTable(items)

		mode := list.DetectMode(listProgressive, listNoProgressive || jsonOut, list.StdoutIsTerminal())

		noColor, _ := cmd.Flags().GetBool(flagNoColor)
		p := termcolor.NewPainter(noColor || !list.StdoutIsTerminal())
		lay := list.BuildLayout(items, list.ViewConfig{ShowCI: fetchCI}, layout.TerminalWidth(os.Stdout))
		view := list.NewView(p, lay, time.Now())

		if mode == list.Progressive {
			renderer := list.NewRenderer(cmd.OutOrStdout(), view, tbl, true)
			renderer.Start()
			tbl.Drain(ch, renderer.RowChanged)
			renderer.Finish()
		} else {
			s := spinner.New(spinnerOpts(cmd))
			defer s.Stop()
			if !jsonOut {
				s.Start("Collecting worktree status...")
			}

			done := 0
			tbl.Drain(ch, func(int) {
				done++
				s.Update(fmt.Sprintf("Collecting worktree status... (%d/%d)", done, tbl.Expected()))
			})
			s.Stop()

			if jsonOut {
				if err := output.WriteJSON(cmd.OutOrStdout(), version, "list", output.ListRows(tbl)); err != nil {
					return err
				}
			} else {
				view.Render(cmd.OutOrStdout(), tbl)
			}
		}

		if strict {
			if err := collector.FirstErr(); err != nil {
				return fmt.Errorf("status collection failed: %w", err)
			}
		}
		return nil
	},
}
