package git

import (
	"fmt"
	"strconv"
	"strings"
)

// LineDiff holds added/deleted line totals from a diff.
type LineDiff struct {
	Added   int
	Deleted int
}

// IsZero reports whether the diff touches no lines.
func (d LineDiff) IsZero() bool { return d.Added == 0 && d.Deleted == 0 }

// CommitTimestamp returns the committer timestamp (unix seconds) of a commit.
func CommitTimestamp(r Runner, dir, commit string) (int64, error) {
	out, err := r.RunInDir(dir, "log", "-1", "--format=%ct", commit)
	if err != nil {
		return 0, err
	}
	ts, err := strconv.ParseInt(strings.TrimSpace(out), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse commit timestamp %q: %w", out, err)
	}
	return ts, nil
}

// CommitSubject returns the first line of a commit message.
func CommitSubject(r Runner, dir, commit string) (string, error) {
	return r.RunInDir(dir, "log", "-1", "--format=%s", commit)
}

// AheadBehind counts commits head has over base and vice versa using
// `rev-list --left-right --count base...head`.
func AheadBehind(r Runner, dir, base, head string) (ahead, behind int, err error) {
	out, err := r.RunInDir(dir, "rev-list", "--left-right", "--count", base+"..."+head)
	if err != nil {
		return 0, 0, err
	}

	parts := strings.Fields(out)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("unexpected rev-list output %q", out)
	}

	// Left column is base-only commits (behind), right is head-only (ahead).
	behind, _ = strconv.Atoi(parts[0])
	ahead, _ = strconv.Atoi(parts[1])
	return ahead, behind, nil
}

// BranchDiffStats totals the line changes on head since it diverged from
// base (three-dot diff).
func BranchDiffStats(r Runner, dir, base, head string) (LineDiff, error) {
	out, err := r.RunInDir(dir, "diff", "--shortstat", base+"..."+head)
	if err != nil {
		return LineDiff{}, err
	}
	return parseShortstat(out), nil
}

// WorkingTreeDiffStats totals uncommitted line changes against HEAD.
func WorkingTreeDiffStats(r Runner, dir string) (LineDiff, error) {
	out, err := r.RunInDir(dir, "diff", "HEAD", "--shortstat")
	if err != nil {
		return LineDiff{}, err
	}
	return parseShortstat(out), nil
}

// parseShortstat extracts insertion/deletion totals from --shortstat output:
//
//	3 files changed, 10 insertions(+), 2 deletions(-)
func parseShortstat(out string) LineDiff {
	var d LineDiff
	for part := range strings.SplitSeq(out, ",") {
		fields := strings.Fields(part)
		if len(fields) < 2 {
			continue
		}
		n, err := strconv.Atoi(fields[0])
		if err != nil {
			continue
		}
		switch {
		case strings.HasPrefix(fields[1], "insertion"):
			d.Added = n
		case strings.HasPrefix(fields[1], "deletion"):
			d.Deleted = n
		}
	}
	return d
}

// StatusPorcelain returns raw `git status --porcelain` output for a worktree.
func StatusPorcelain(r Runner, dir string) (string, error) {
	return r.RunInDir(dir, "status", "--porcelain")
}

// UpstreamBranch returns the remote tracking branch (e.g. "origin/feat")
// for a local branch, or "" when none is configured.
func UpstreamBranch(r Runner, branch string) (string, error) {
	out, err := r.Run(cmdRevParse, "--abbrev-ref", branch+"@{upstream}")
	if err != nil {
		// No upstream configured is the common case, not a failure.
		if strings.Contains(err.Error(), "no upstream") {
			return "", nil
		}
		return "", err
	}
	return out, nil
}

// HasMergeConflicts simulates merging head into base with
// `git merge-tree --write-tree` (git 2.38+) without touching any working
// tree. Exit code 1 with CONFLICT lines means a real conflict.
func HasMergeConflicts(r Runner, base, head string) (bool, error) {
	out, err := r.Run("merge-tree", "--write-tree", base, head)
	if err != nil {
		// merge-tree exits 1 for both conflicts and errors; CONFLICT
		// lines in the output distinguish the two.
		if strings.Contains(out, "CONFLICT") {
			return true, nil
		}
		return false, err
	}
	return false, nil
}
