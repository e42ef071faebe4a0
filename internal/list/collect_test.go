package list

import (
	"errors"
	"slices"
	"strings"
	"testing"

	"github.com/lugassawan/tilik/internal/git"
)

// fakeGit scripts git command results by inspecting the argument list.
type fakeGit struct {
	fn func(dir string, args []string) (string, error)
}

func (f fakeGit) Run(args ...string) (string, error) { return f.fn("", args) }

func (f fakeGit) RunInDir(dir string, args ...string) (string, error) { return f.fn(dir, args) }

type fakeGh struct {
	fn func(dir string, args []string) (string, error)
}

func (f fakeGh) Run(dir string, args ...string) (string, error) { return f.fn(dir, args) }

var errBoom = errors.New("boom")

func failingGit() git.Runner {
	return fakeGit{fn: func(string, []string) (string, error) { return "", errBoom }}
}

func collectItems() []Item {
	return []Item{
		{Index: 0, Kind: KindWorktree, Path: "/r/main", Head: "aaa", Branch: "main", Primary: true, DisplayPath: "."},
		{Index: 1, Kind: KindWorktree, Path: "/r/feat", Head: "bbb", Branch: "feat", DisplayPath: "./feat"},
		{Index: 2, Kind: KindBranch, Head: "ccc", Branch: "fix"},
	}
}

// drainAll runs the collector and returns every update it sent.
func drainAll(t *testing.T, c *Collector, items []Item) []Update {
	t.Helper()

	ch := make(chan Update)
	done := make(chan struct{})
	var updates []Update
	go func() {
		defer close(done)
		for u := range ch {
			updates = append(updates, u)
		}
	}()

	c.Run(items, ch)
	close(ch)
	<-done
	return updates
}

func TestCollectorSendsOneUpdatePerCellWhenEverythingFails(t *testing.T) {
	items := collectItems()
	c := NewCollector(failingGit(), nil, "/r/main", CollectOptions{
		BaseBranch:     "main",
		CheckConflicts: true,
		Sequential:     true,
	})

	updates := drainAll(t, c, items)

	want := 2*WorktreeCells + BranchCells
	if len(updates) != want {
		t.Fatalf("got %d updates, want %d", len(updates), want)
	}

	counts := make(map[int]int)
	for _, u := range updates {
		counts[u.Row()]++
	}
	for i, it := range items {
		if counts[i] != it.ExpectedCells() {
			t.Errorf("row %d got %d updates, want %d", i, counts[i], it.ExpectedCells())
		}
	}

	if c.FirstErr() == nil {
		t.Error("FirstErr() = nil, want the first query failure")
	}

	// Failed cells carry defaults; the table must accept the full stream.
	tbl := NewTable(items)
	for _, u := range updates {
		tbl.Apply(u)
	}
	if !tbl.Done() {
		t.Error("table not done after applying every update")
	}
	if cs := tbl.Cells(1); !cs.Base.IsZero() || cs.WorkingTree.Dirty || cs.Conflicts {
		t.Errorf("failed cells must stay at defaults, got %+v", cs)
	}
}

func TestCollectorConcurrentSendsSameUpdateCount(t *testing.T) {
	items := collectItems()
	c := NewCollector(failingGit(), nil, "/r/main", CollectOptions{BaseBranch: "main"})

	updates := drainAll(t, c, items)

	if want := 2*WorktreeCells + BranchCells; len(updates) != want {
		t.Errorf("got %d updates, want %d", len(updates), want)
	}
}

// scenarioGit scripts a small repo: feat is 2 ahead / 1 behind main with
// a dirty checkout, fix is 3 behind with no upstream.
func scenarioGit() git.Runner {
	return fakeGit{fn: func(dir string, args []string) (string, error) {
		cmd := strings.Join(args, " ")
		switch {
		case cmd == "log -1 --format=%s aaa":
			return "initial layout", nil
		case cmd == "log -1 --format=%s bbb":
			return "add login form", nil
		case cmd == "log -1 --format=%s ccc":
			return "fix flaky test", nil
		case cmd == "rev-list --left-right --count main...bbb":
			return "1\t2", nil
		case cmd == "rev-list --left-right --count main...ccc":
			return "3\t0", nil
		case cmd == "rev-list --left-right --count origin/feat...bbb":
			return "0\t2", nil
		case slices.Equal(args[:2], []string{"diff", "--shortstat"}):
			return "3 files changed, 40 insertions(+), 5 deletions(-)", nil
		case cmd == "diff HEAD --shortstat":
			if dir == "/r/feat" {
				return "1 file changed, 7 insertions(+)", nil
			}
			return "", nil
		case cmd == "status --porcelain":
			if dir == "/r/feat" {
				return " M form.go", nil
			}
			return "", nil
		case args[0] == "merge-tree":
			if args[len(args)-1] == "ccc" {
				return "CONFLICT (content): Merge conflict in test.go", errBoom
			}
			return "treehash", nil
		case cmd == "rev-parse --abbrev-ref feat@{upstream}":
			return "origin/feat", nil
		case strings.Contains(cmd, "@{upstream}"):
			return "", errors.New("fatal: no upstream configured")
		case args[0] == "config":
			if strings.HasSuffix(args[len(args)-1], "feat") {
				return "in review", nil
			}
			return "", errors.New("exit 1")
		case cmd == "rev-parse --git-dir":
			return "/nonexistent/.git", nil
		default:
			return "", errBoom
		}
	}}
}

func TestCollectorScenario(t *testing.T) {
	items := collectItems()
	c := NewCollector(scenarioGit(), nil, "/r/main", CollectOptions{
		BaseBranch:     "main",
		CheckConflicts: true,
		Sequential:     true,
	})

	tbl := NewTable(items)
	for _, u := range drainAll(t, c, items) {
		tbl.Apply(u)
	}
	if !tbl.Done() {
		t.Fatal("table not done")
	}

	main := tbl.Cells(0)
	if !main.Base.IsZero() {
		t.Errorf("primary row must skip the base comparison, got %+v", main.Base)
	}
	if main.Commit.Subject != "initial layout" {
		t.Errorf("main subject = %q", main.Commit.Subject)
	}

	feat := tbl.Cells(1)
	if feat.Base != (AheadBehind{Ahead: 2, Behind: 1}) {
		t.Errorf("feat base = %+v, want 2 ahead 1 behind", feat.Base)
	}
	if feat.BranchDiff != (git.LineDiff{Added: 40, Deleted: 5}) {
		t.Errorf("feat branch diff = %+v", feat.BranchDiff)
	}
	if !feat.WorkingTree.Dirty || feat.WorkingTree.Symbols != "!" {
		t.Errorf("feat working tree = %+v, want dirty with modified symbol", feat.WorkingTree)
	}
	if feat.WorkingTree.Diff != (git.LineDiff{Added: 7}) {
		t.Errorf("feat working diff = %+v", feat.WorkingTree.Diff)
	}
	if feat.Upstream.Remote != "origin" || feat.Upstream.Counts.Ahead != 2 {
		t.Errorf("feat upstream = %+v", feat.Upstream)
	}
	if feat.UserStatus != "in review" {
		t.Errorf("feat user status = %q", feat.UserStatus)
	}
	if feat.Conflicts {
		t.Error("feat must merge cleanly")
	}

	fix := tbl.Cells(2)
	if fix.Base != (AheadBehind{Behind: 3}) {
		t.Errorf("fix base = %+v, want 3 behind", fix.Base)
	}
	if !fix.Conflicts {
		t.Error("fix must report a merge conflict")
	}
	if fix.Upstream.Remote != "" {
		t.Errorf("fix upstream = %+v, want none", fix.Upstream)
	}
}

func TestCollectorSkipsCIOffGitHub(t *testing.T) {
	items := collectItems()

	ghCalls := 0
	gh := fakeGh{fn: func(string, []string) (string, error) {
		ghCalls++
		return "[]", nil
	}}

	g := fakeGit{fn: func(dir string, args []string) (string, error) {
		if args[0] == "remote" {
			return "https://gitlab.example.com/team/app.git", nil
		}
		return "", errBoom
	}}

	c := NewCollector(g, gh, "/r/main", CollectOptions{FetchCI: true, Sequential: true})
	drainAll(t, c, items)

	if ghCalls != 0 {
		t.Errorf("gh ran %d times for a non-GitHub remote, want 0", ghCalls)
	}
}
