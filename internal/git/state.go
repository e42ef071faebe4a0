package git

import (
	"os"
	"path/filepath"
)

// WorktreeState names an in-progress repository operation, e.g. "merge"
// or "rebase". Empty means no special state.
type WorktreeState string

const (
	StateNone       WorktreeState = ""
	StateMerge      WorktreeState = "merge"
	StateRebase     WorktreeState = "rebase"
	StateCherryPick WorktreeState = "cherry-pick"
	StateRevert     WorktreeState = "revert"
	StateBisect     WorktreeState = "bisect"
)

// stateMarkers maps git-dir marker files/dirs to the operation they signal,
// checked in order.
var stateMarkers = []struct {
	marker string
	state  WorktreeState
}{
	{"rebase-merge", StateRebase},
	{"rebase-apply", StateRebase},
	{"MERGE_HEAD", StateMerge},
	{"CHERRY_PICK_HEAD", StateCherryPick},
	{"REVERT_HEAD", StateRevert},
	{"BISECT_LOG", StateBisect},
}

// DetectWorktreeState inspects the worktree's git dir for operation markers.
func DetectWorktreeState(r Runner, dir string) (WorktreeState, error) {
	gitDir, err := r.RunInDir(dir, cmdRevParse, "--git-dir")
	if err != nil {
		return StateNone, err
	}
	if !filepath.IsAbs(gitDir) {
		gitDir = filepath.Join(dir, gitDir)
	}

	for _, m := range stateMarkers {
		if _, err := os.Stat(filepath.Join(gitDir, m.marker)); err == nil {
			return m.state, nil
		}
	}
	return StateNone, nil
}
