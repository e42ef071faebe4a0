package list

import (
	"github.com/lugassawan/tilik/internal/ci"
	"github.com/lugassawan/tilik/internal/git"
)

// CommitDetails is the head commit summary for a row.
type CommitDetails struct {
	Timestamp int64
	Subject   string
}

// AheadBehind counts commits relative to a comparison point.
type AheadBehind struct {
	Ahead  int
	Behind int
}

// IsZero reports whether both counts are zero.
func (ab AheadBehind) IsZero() bool { return ab.Ahead == 0 && ab.Behind == 0 }

// WorkingTree summarizes uncommitted state of a checkout.
type WorkingTree struct {
	Diff    git.LineDiff
	Symbols string
	Dirty   bool
}

// Upstream describes the tracking branch relationship.
type Upstream struct {
	Remote string
	Counts AheadBehind
}

// CellSet holds every cell value for one row. Fields start at their
// defaults and are overwritten as updates arrive; a skipped or failed
// query leaves the default in place.
type CellSet struct {
	Commit      CommitDetails
	Base        AheadBehind
	BranchDiff  git.LineDiff
	WorkingTree WorkingTree
	Conflicts   bool
	State       git.WorktreeState
	UserStatus  string
	Upstream    Upstream
	CI          ci.Status
}

// Update is one cell value arriving for one row. Row is the item index
// the value belongs to; apply writes the value into the row's CellSet.
type Update interface {
	Row() int
	apply(cs *CellSet)
}

type rowRef int

func (r rowRef) Row() int { return int(r) }

// CommitUpdate carries the head commit details.
type CommitUpdate struct {
	rowRef
	Commit CommitDetails
}

func (u CommitUpdate) apply(cs *CellSet) { cs.Commit = u.Commit }

// BaseUpdate carries ahead/behind counts against the base branch.
type BaseUpdate struct {
	rowRef
	Counts AheadBehind
}

func (u BaseUpdate) apply(cs *CellSet) { cs.Base = u.Counts }

// BranchDiffUpdate carries the line diff against the base branch.
type BranchDiffUpdate struct {
	rowRef
	Diff git.LineDiff
}

func (u BranchDiffUpdate) apply(cs *CellSet) { cs.BranchDiff = u.Diff }

// WorkingTreeUpdate carries uncommitted-change details.
type WorkingTreeUpdate struct {
	rowRef
	WorkingTree WorkingTree
}

func (u WorkingTreeUpdate) apply(cs *CellSet) { cs.WorkingTree = u.WorkingTree }

// ConflictsUpdate reports whether merging into the base would conflict.
type ConflictsUpdate struct {
	rowRef
	Conflicts bool
}

func (u ConflictsUpdate) apply(cs *CellSet) { cs.Conflicts = u.Conflicts }

// StateUpdate carries the in-progress operation state of a checkout.
type StateUpdate struct {
	rowRef
	State git.WorktreeState
}

func (u StateUpdate) apply(cs *CellSet) { cs.State = u.State }

// UserStatusUpdate carries the user-assigned status note.
type UserStatusUpdate struct {
	rowRef
	Status string
}

func (u UserStatusUpdate) apply(cs *CellSet) { cs.UserStatus = u.Status }

// UpstreamUpdate carries the tracking branch relationship.
type UpstreamUpdate struct {
	rowRef
	Upstream Upstream
}

func (u UpstreamUpdate) apply(cs *CellSet) { cs.Upstream = u.Upstream }

// CIUpdate carries pull request and check status.
type CIUpdate struct {
	rowRef
	Status ci.Status
}

func (u CIUpdate) apply(cs *CellSet) { cs.CI = u.Status }
