package list

import (
	"fmt"
	"io"
	"path/filepath"
	"slices"
	"strings"

	"github.com/lugassawan/tilik/internal/git"
	"github.com/lugassawan/tilik/internal/parallel"
)

// Kind distinguishes the two row variants.
type Kind int

const (
	KindWorktree Kind = iota
	KindBranch
)

// Cell counts per kind: branch rows have no working tree, so the
// working-tree, state and user-status queries don't exist for them.
const (
	WorktreeCells = 9
	BranchCells   = 6
)

// Item is one displayed row: either a checked-out worktree or a local
// branch without one. Index is assigned once at build time and is the
// sole key used to route updates back to the row.
type Item struct {
	Index  int
	Kind   Kind
	Path   string // empty for branch items
	Head   string
	Branch string // empty for detached worktrees
	Primary bool

	// Timestamp is the head commit time gathered during the build
	// pre-pass; it fixes the row order before any cell arrives.
	Timestamp int64

	// DisplayPath is Path shortened against the common prefix.
	DisplayPath string
}

// ExpectedCells returns how many updates the collector will send for
// this item, independent of which queries actually run.
func (it Item) ExpectedCells() int {
	if it.Kind == KindBranch {
		return BranchCells
	}
	return WorktreeCells
}

// DisplayName is the branch cell value.
func (it Item) DisplayName() string {
	if it.Branch == "" {
		return "(detached)"
	}
	return it.Branch
}

// BuildOptions controls item enumeration.
type BuildOptions struct {
	// IncludeBranches adds local branches that no worktree has checked out.
	IncludeBranches bool

	// Concurrency bounds the timestamp pre-pass; 1 forces a serial pass.
	Concurrency int

	// Warn receives advisory diagnostics. Nil silences them.
	Warn io.Writer
}

// BuildItems enumerates worktrees (and optionally branches), orders them
// by commit recency descending and assigns stable indexes. Failure to
// list worktrees is fatal; failures on optional extras degrade to
// warnings.
func BuildItems(r git.Runner, opts BuildOptions) ([]Item, error) {
	entries, err := git.ListWorktrees(r)
	if err != nil {
		return nil, err
	}

	var items []Item
	primarySeen := false
	for _, e := range entries {
		if e.Bare {
			continue
		}
		it := Item{
			Kind:   KindWorktree,
			Path:   e.Path,
			Head:   e.HEAD,
			Branch: e.Branch,
		}
		if !primarySeen {
			it.Primary = true
			primarySeen = true
		}
		items = append(items, it)
	}

	if len(items) == 0 {
		return nil, nil
	}

	if opts.IncludeBranches {
		items = append(items, branchItems(r, items, opts.Warn)...)
	}

	concurrency := opts.Concurrency
	if concurrency <= 0 {
		concurrency = 8
	}

	// Recency pre-pass: row order must be settled before rendering
	// starts, so progressive and buffered output agree.
	queryDir := items[0].Path
	timestamps := parallel.Collect(len(items), concurrency, func(i int) int64 {
		dir := items[i].Path
		if dir == "" {
			dir = queryDir
		}
		ts, err := git.CommitTimestamp(r, dir, items[i].Head)
		if err != nil {
			warnf(opts.Warn, "Warning: could not read commit time for %s: %v", items[i].DisplayName(), err)
			warnf(opts.Warn, "Hint: this row will sort last and show partial data")
			return 0
		}
		return ts
	})
	for i := range items {
		items[i].Timestamp = timestamps[i]
	}

	slices.SortStableFunc(items, func(a, b Item) int {
		switch {
		case a.Timestamp > b.Timestamp:
			return -1
		case a.Timestamp < b.Timestamp:
			return 1
		default:
			return 0
		}
	})

	shortenPaths(items)
	for i := range items {
		items[i].Index = i
	}
	return items, nil
}

// branchItems returns branch rows for local branches no worktree has
// checked out. A listing failure here is advisory, not fatal.
func branchItems(r git.Runner, worktrees []Item, warn io.Writer) []Item {
	refs, err := git.LocalBranches(r)
	if err != nil {
		warnf(warn, "Warning: could not list branches: %v", err)
		warnf(warn, "Hint: rerun without --branches to hide this warning")
		return nil
	}

	checkedOut := make(map[string]bool, len(worktrees))
	for _, it := range worktrees {
		if it.Branch != "" {
			checkedOut[it.Branch] = true
		}
	}

	var items []Item
	for _, ref := range refs {
		if checkedOut[ref.Name] {
			continue
		}
		items = append(items, Item{
			Kind:   KindBranch,
			Head:   ref.HEAD,
			Branch: ref.Name,
		})
	}
	return items
}

// shortenPaths strips the common parent directory from worktree paths.
func shortenPaths(items []Item) {
	var paths []string
	for _, it := range items {
		if it.Path != "" {
			paths = append(paths, it.Path)
		}
	}
	prefix := commonDir(paths)

	for i := range items {
		if items[i].Path == "" {
			continue
		}
		items[i].DisplayPath = shortenPath(items[i].Path, prefix)
	}
}

// commonDir finds the deepest directory shared by all paths.
func commonDir(paths []string) string {
	if len(paths) == 0 {
		return ""
	}
	sep := string(filepath.Separator)

	prefix := ""
	if filepath.IsAbs(paths[0]) {
		prefix = sep
	}
	for part := range strings.SplitSeq(paths[0], sep) {
		if part == "" {
			continue
		}
		candidate := filepath.Join(prefix, part)

		ok := true
		for _, p := range paths {
			if p != candidate && !strings.HasPrefix(p, candidate+sep) {
				ok = false
				break
			}
		}
		if !ok {
			break
		}
		prefix = candidate
	}
	return prefix
}

// shortenPath renders a path relative to the shared prefix.
func shortenPath(path, prefix string) string {
	if path == prefix {
		return "."
	}
	if prefix == "" {
		return path
	}
	if rel, err := filepath.Rel(prefix, path); err == nil && !strings.HasPrefix(rel, "..") {
		return "./" + rel
	}
	return path
}

func warnf(w io.Writer, format string, args ...any) {
	if w == nil {
		return
	}
	fmt.Fprintf(w, format+"\n", args...)
}
