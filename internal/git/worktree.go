package git

import "strings"

const (
	cmdWorktree = "worktree"

	// Porcelain output prefixes
	porcelainWorktree = "worktree "
	porcelainHEAD     = "HEAD "
	porcelainBranch   = "branch "
)

// WorktreeEntry represents a parsed worktree from `git worktree list --porcelain`.
type WorktreeEntry struct {
	Path     string
	HEAD     string
	Branch   string
	Bare     bool
	Detached bool
}

// ListWorktrees returns all worktrees by parsing `git worktree list --porcelain`.
// The first non-bare entry is the repository's primary checkout.
func ListWorktrees(r Runner) ([]WorktreeEntry, error) {
	out, err := r.Run(cmdWorktree, "list", "--porcelain")
	if err != nil {
		return nil, err
	}

	var entries []WorktreeEntry
	var current WorktreeEntry

	for line := range strings.SplitSeq(out, "\n") {
		line = strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(line, porcelainWorktree):
			if current.Path != "" {
				entries = append(entries, current)
			}
			current = WorktreeEntry{Path: strings.TrimPrefix(line, porcelainWorktree)}
		case strings.HasPrefix(line, porcelainHEAD):
			current.HEAD = strings.TrimPrefix(line, porcelainHEAD)
		case strings.HasPrefix(line, porcelainBranch):
			// refs/heads/feat/my-task → feat/my-task
			ref := strings.TrimPrefix(line, porcelainBranch)
			current.Branch = strings.TrimPrefix(ref, refsHeadsPrefix)
		case line == "bare":
			current.Bare = true
		case line == "detached":
			current.Detached = true
		}
	}

	if current.Path != "" {
		entries = append(entries, current)
	}

	return entries, nil
}

// BranchRef holds a local branch name and the commit it points to.
type BranchRef struct {
	Name string
	HEAD string
}

// LocalBranches lists local branches with their head commits via for-each-ref.
func LocalBranches(r Runner) ([]BranchRef, error) {
	out, err := r.Run("for-each-ref", "--format=%(refname:short) %(objectname)", refsHeadsPrefix)
	if err != nil {
		return nil, err
	}
	if out == "" {
		return nil, nil
	}

	var refs []BranchRef
	for line := range strings.SplitSeq(out, "\n") {
		name, sha, ok := strings.Cut(strings.TrimSpace(line), " ")
		if !ok || name == "" {
			continue
		}
		refs = append(refs, BranchRef{Name: name, HEAD: sha})
	}
	return refs, nil
}
