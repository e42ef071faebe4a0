package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Shell functions that wrap `tilik select` so picking a worktree
// changes the caller's directory.
const (
	bashIntegration = `# tilik shell integration (bash/zsh)
# Add to your shell rc: eval "$(tilik init bash)"
tk() {
    local dest
    dest="$(tilik select)" || return $?
    cd "$dest" || return 1
}
`

	fishIntegration = `# tilik shell integration (fish)
# Add to config.fish: tilik init fish | source
function tk
    set -l dest (tilik select)
    or return $status
    cd $dest
end
`
)

func init() {
	rootCmd.AddCommand(initCmd)
}

var initCmd = &cobra.Command{
	Use:         "init <shell>",
	Short:       "Print shell integration for cd-on-select",
	Long:        "Prints a shell function `tk` that runs `tilik select` and changes directory to the chosen worktree. Supported shells: bash, zsh, fish.",
	Args:        cobra.ExactArgs(1),
	Annotations: map[string]string{"skipConfig": "true"},
	ValidArgs:   []string{"bash", "zsh", "fish"},
	RunE: func(cmd *cobra.Command, args []string) error {
		switch args[0] {
		case "bash", "zsh":
			fmt.Fprint(cmd.OutOrStdout(), bashIntegration)
		case "fish":
			fmt.Fprint(cmd.OutOrStdout(), fishIntegration)
		default:
			return fmt.Errorf("unsupported shell %q (supported: bash, zsh, fish)", args[0])
		}
		return nil
	},
}
