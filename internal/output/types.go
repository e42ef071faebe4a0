package output

import "github.com/lugassawan/tilik/internal/list"

// ListRow is the JSON shape of one table row.
type ListRow struct {
	Type        string           `json:"type"`
	Branch      string           `json:"branch,omitempty"`
	Primary     bool             `json:"primary,omitempty"`
	Path        string           `json:"path,omitempty"`
	Head        string           `json:"head"`
	Commit      ListCommit       `json:"commit"`
	Base        *ListCounts      `json:"base,omitempty"`
	WorkingTree *ListWorkingTree `json:"working_tree,omitempty"`
	BranchDiff  *ListDiff        `json:"branch_diff,omitempty"`
	Conflicts   bool             `json:"conflicts,omitempty"`
	State       string           `json:"state,omitempty"`
	UserStatus  string           `json:"user_status,omitempty"`
	Upstream    *ListUpstream    `json:"upstream,omitempty"`
	CI          *ListCI          `json:"ci,omitempty"`
}

// ListCommit is the head commit summary.
type ListCommit struct {
	Timestamp int64  `json:"timestamp"`
	Subject   string `json:"subject"`
}

// ListCounts is an ahead/behind pair.
type ListCounts struct {
	Ahead  int `json:"ahead"`
	Behind int `json:"behind"`
}

// ListDiff is an added/deleted line pair.
type ListDiff struct {
	Added   int `json:"added"`
	Deleted int `json:"deleted"`
}

// ListWorkingTree summarizes uncommitted changes.
type ListWorkingTree struct {
	Added   int    `json:"added"`
	Deleted int    `json:"deleted"`
	Symbols string `json:"symbols,omitempty"`
}

// ListUpstream is the tracking branch relationship.
type ListUpstream struct {
	Remote string `json:"remote"`
	Ahead  int    `json:"ahead"`
	Behind int    `json:"behind"`
}

// ListCI is the pull request and check status.
type ListCI struct {
	PRNumber int    `json:"pr_number"`
	State    string `json:"state"`
	Checks   string `json:"checks,omitempty"`
}

// ListRows converts a fully drained table into JSON rows in display
// order. Cells still at their defaults are omitted.
func ListRows(t *list.Table) []ListRow {
	rows := make([]ListRow, 0, len(t.Items()))
	for _, it := range t.Items() {
		cs := t.Cells(it.Index)

		row := ListRow{
			Type:    "worktree",
			Branch:  it.Branch,
			Primary: it.Primary,
			Path:    it.Path,
			Head:    it.Head,
			Commit: ListCommit{
				Timestamp: cs.Commit.Timestamp,
				Subject:   cs.Commit.Subject,
			},
			Conflicts:  cs.Conflicts,
			State:      string(cs.State),
			UserStatus: cs.UserStatus,
		}
		if it.Kind == list.KindBranch {
			row.Type = "branch"
		}

		if !cs.Base.IsZero() {
			row.Base = &ListCounts{Ahead: cs.Base.Ahead, Behind: cs.Base.Behind}
		}
		if cs.WorkingTree.Dirty {
			row.WorkingTree = &ListWorkingTree{
				Added:   cs.WorkingTree.Diff.Added,
				Deleted: cs.WorkingTree.Diff.Deleted,
				Symbols: cs.WorkingTree.Symbols,
			}
		}
		if !cs.BranchDiff.IsZero() {
			row.BranchDiff = &ListDiff{Added: cs.BranchDiff.Added, Deleted: cs.BranchDiff.Deleted}
		}
		if cs.Upstream.Remote != "" {
			row.Upstream = &ListUpstream{
				Remote: cs.Upstream.Remote,
				Ahead:  cs.Upstream.Counts.Ahead,
				Behind: cs.Upstream.Counts.Behind,
			}
		}
		if !cs.CI.IsZero() {
			row.CI = &ListCI{
				PRNumber: cs.CI.PRNumber,
				State:    cs.CI.State,
				Checks:   string(cs.CI.Checks),
			}
		}

		rows = append(rows, row)
	}
	return rows
}
