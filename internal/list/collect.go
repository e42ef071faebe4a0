package list

import (
	"io"
	"strings"
	"sync"

	"github.com/lugassawan/tilik/internal/ci"
	"github.com/lugassawan/tilik/internal/git"
	"github.com/lugassawan/tilik/internal/giturl"
)

// CollectOptions configures the cell queries.
type CollectOptions struct {
	// BaseBranch is the comparison point for ahead/behind, branch diff
	// and conflict cells. Empty skips those queries.
	BaseBranch string

	// CheckConflicts enables the merge simulation against BaseBranch.
	CheckConflicts bool

	// FetchCI enables pull-request lookups through the GitHub CLI.
	FetchCI bool

	// Sequential runs every query one at a time, in a fixed order.
	Sequential bool

	// Warn receives diagnostics for query failures. Nil silences them.
	Warn io.Writer
}

// Collector runs the per-row cell queries and streams results as
// updates. Every cell slot of every item produces exactly one update,
// whether the query ran, was skipped, or failed; skipped and failed
// cells carry the default value. Completion is therefore detectable by
// counting alone.
type Collector struct {
	git  git.Runner
	ci   ci.Runner
	dir  string // primary worktree path, used for branch-item queries
	opts CollectOptions

	// onGitHub probes the origin remote once; CI lookups only make
	// sense against a GitHub host.
	onGitHub func() bool

	mu       sync.Mutex
	firstErr error
}

// NewCollector builds a Collector. dir is the primary worktree path,
// used for queries on rows that have no checkout of their own.
func NewCollector(g git.Runner, c ci.Runner, dir string, opts CollectOptions) *Collector {
	col := &Collector{git: g, ci: c, dir: dir, opts: opts}
	col.onGitHub = sync.OnceValue(func() bool {
		raw, err := git.RemoteURL(g, "origin")
		if err != nil {
			return false
		}
		u, ok := giturl.Parse(raw)
		return ok && u.IsGitHub()
	})
	return col
}

// Run executes all cell queries for all items and sends every update on
// ch. It returns once every update has been sent; the caller owns
// closing the channel.
func (c *Collector) Run(items []Item, ch chan<- Update) {
	if c.opts.Sequential {
		for _, it := range items {
			for _, task := range c.tasks(it) {
				ch <- task()
			}
		}
		return
	}

	var wg sync.WaitGroup
	for _, it := range items {
		for _, task := range c.tasks(it) {
			wg.Add(1)
			go func(task func() Update) {
				defer wg.Done()
				ch <- task()
			}(task)
		}
	}
	wg.Wait()
}

// FirstErr returns the first query error observed, if any. Skipped
// queries never contribute.
func (c *Collector) FirstErr() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.firstErr
}

func (c *Collector) fail(err error) {
	c.mu.Lock()
	if c.firstErr == nil {
		c.firstErr = err
	}
	c.mu.Unlock()
}

// tasks returns one closure per cell slot for the item. The slice
// length always matches it.ExpectedCells().
func (c *Collector) tasks(it Item) []func() Update {
	ts := []func() Update{
		func() Update { return c.commit(it) },
		func() Update { return c.baseCounts(it) },
		func() Update { return c.branchDiff(it) },
		func() Update { return c.conflicts(it) },
		func() Update { return c.upstream(it) },
		func() Update { return c.ciStatus(it) },
	}
	if it.Kind == KindWorktree {
		ts = append(ts,
			func() Update { return c.workingTree(it) },
			func() Update { return c.state(it) },
			func() Update { return c.userStatus(it) },
		)
	}
	return ts
}

// queryDir returns the directory to run git in for this item.
func (c *Collector) queryDir(it Item) string {
	if it.Path != "" {
		return it.Path
	}
	return c.dir
}

// compareToBase reports whether base-relative cells apply to this item.
// The base branch's own rows have nothing to compare against.
func (c *Collector) compareToBase(it Item) bool {
	if c.opts.BaseBranch == "" || it.Head == "" {
		return false
	}
	return !it.Primary && it.Branch != c.opts.BaseBranch
}

func (c *Collector) commit(it Item) Update {
	u := CommitUpdate{rowRef: rowRef(it.Index)}
	u.Commit.Timestamp = it.Timestamp

	subject, err := git.CommitSubject(c.git, c.queryDir(it), it.Head)
	if err != nil {
		c.fail(err)
		return u
	}
	u.Commit.Subject = subject
	return u
}

func (c *Collector) baseCounts(it Item) Update {
	u := BaseUpdate{rowRef: rowRef(it.Index)}
	if !c.compareToBase(it) {
		return u
	}

	ahead, behind, err := git.AheadBehind(c.git, c.queryDir(it), c.opts.BaseBranch, it.Head)
	if err != nil {
		c.fail(err)
		return u
	}
	u.Counts = AheadBehind{Ahead: ahead, Behind: behind}
	return u
}

func (c *Collector) branchDiff(it Item) Update {
	u := BranchDiffUpdate{rowRef: rowRef(it.Index)}
	if !c.compareToBase(it) {
		return u
	}

	diff, err := git.BranchDiffStats(c.git, c.queryDir(it), c.opts.BaseBranch, it.Head)
	if err != nil {
		c.fail(err)
		return u
	}
	u.Diff = diff
	return u
}

func (c *Collector) conflicts(it Item) Update {
	u := ConflictsUpdate{rowRef: rowRef(it.Index)}
	if !c.opts.CheckConflicts || !c.compareToBase(it) {
		return u
	}

	conflicts, err := git.HasMergeConflicts(c.git, c.opts.BaseBranch, it.Head)
	if err != nil {
		c.fail(err)
		warnf(c.opts.Warn, "Warning: conflict check failed for %s: %v", it.DisplayName(), err)
		return u
	}
	u.Conflicts = conflicts
	return u
}

func (c *Collector) upstream(it Item) Update {
	u := UpstreamUpdate{rowRef: rowRef(it.Index)}
	if it.Branch == "" {
		return u
	}

	tracking, err := git.UpstreamBranch(c.git, it.Branch)
	if err != nil {
		c.fail(err)
		warnf(c.opts.Warn, "Warning: upstream lookup failed for %s: %v", it.Branch, err)
		return u
	}
	if tracking == "" {
		return u
	}

	remote, _, ok := strings.Cut(tracking, "/")
	if !ok {
		return u
	}
	u.Upstream.Remote = remote

	ahead, behind, err := git.AheadBehind(c.git, c.queryDir(it), tracking, it.Head)
	if err != nil {
		c.fail(err)
		return u
	}
	u.Upstream.Counts = AheadBehind{Ahead: ahead, Behind: behind}
	return u
}

func (c *Collector) ciStatus(it Item) Update {
	u := CIUpdate{rowRef: rowRef(it.Index)}
	if !c.opts.FetchCI || it.Branch == "" || !c.onGitHub() {
		return u
	}

	status, err := ci.FetchPRStatus(c.ci, c.queryDir(it), it.Branch)
	if err != nil {
		c.fail(err)
		return u
	}
	u.Status = status
	return u
}

func (c *Collector) workingTree(it Item) Update {
	u := WorkingTreeUpdate{rowRef: rowRef(it.Index)}

	diff, err := git.WorkingTreeDiffStats(c.git, it.Path)
	if err != nil {
		c.fail(err)
	} else {
		u.WorkingTree.Diff = diff
	}

	porcelain, err := git.StatusPorcelain(c.git, it.Path)
	if err != nil {
		c.fail(err)
		return u
	}
	symbols, dirty := ParseStatusSymbols(porcelain)
	u.WorkingTree.Symbols = symbols
	u.WorkingTree.Dirty = dirty || !u.WorkingTree.Diff.IsZero()
	return u
}

func (c *Collector) state(it Item) Update {
	u := StateUpdate{rowRef: rowRef(it.Index)}

	state, err := git.DetectWorktreeState(c.git, it.Path)
	if err != nil {
		c.fail(err)
		return u
	}
	u.State = state
	return u
}

func (c *Collector) userStatus(it Item) Update {
	u := UserStatusUpdate{rowRef: rowRef(it.Index)}
	if it.Branch == "" {
		return u
	}

	status, err := git.ConfigValue(c.git, it.Path, "tilik.status."+it.Branch)
	if err != nil {
		c.fail(err)
		return u
	}
	u.Status = status
	return u
}
