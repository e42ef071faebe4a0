package list

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/lugassawan/tilik/internal/ci"
	"github.com/lugassawan/tilik/internal/git"
	"github.com/lugassawan/tilik/internal/layout"
	"github.com/lugassawan/tilik/internal/termcolor"
)

// ViewConfig selects optional table columns.
type ViewConfig struct {
	// ShowCI adds the CI column.
	ShowCI bool
}

// Column width samples for cells whose values are unknown before the
// queries finish. The layout must be settled before rendering starts,
// so these stand in for real content.
const (
	sampleStatus   = "+!?»✘"
	sampleCounts   = "99↑99↓"
	sampleDiff     = "+999 -999"
	sampleUpstream = "origin 99↓"
	sampleCI       = "#9999 ✗"
	sampleAge      = "99mo ago"
)

// BuildLayout fits the column set for the given rows to width. Branch
// and path widths are content-driven; value columns use fixed samples.
func BuildLayout(items []Item, cfg ViewConfig, width int) layout.Layout {
	branches := make([]string, 0, len(items))
	var paths []string
	for _, it := range items {
		branches = append(branches, it.DisplayName())
		if it.DisplayPath != "" {
			paths = append(paths, it.DisplayPath)
		}
	}

	content := map[layout.Column][]string{
		layout.Branch:     branches,
		layout.Status:     {sampleStatus},
		layout.Base:       {sampleCounts},
		layout.WorkDiff:   {sampleDiff},
		layout.BranchDiff: {sampleDiff},
		layout.Upstream:   {sampleUpstream},
		layout.Commit:     {strings.Repeat("m", 50)},
		layout.Age:        {sampleAge},
		layout.Path:       paths,
	}
	if cfg.ShowCI {
		content[layout.CI] = []string{sampleCI}
	}
	return layout.Compute(content, width)
}

// View renders table lines from accumulated cells. Both rendering modes
// share it, so their final output is identical byte for byte.
type View struct {
	p   *termcolor.Painter
	lay layout.Layout
	now time.Time
}

// NewView builds a View. now anchors relative age strings for the whole
// render, keeping repaints of the same cell stable.
func NewView(p *termcolor.Painter, lay layout.Layout, now time.Time) *View {
	return &View{p: p, lay: lay, now: now}
}

// Layout returns the column layout the view renders with.
func (v *View) Layout() layout.Layout { return v.lay }

// HeaderLine renders the bold column header row.
func (v *View) HeaderLine() string {
	var b strings.Builder
	cols := v.lay.Columns()
	for i, c := range cols {
		text := layout.Header(c)
		if i < len(cols)-1 {
			text = layout.Pad(text, v.lay.Width(c))
		}
		b.WriteString(v.p.Paint(text, termcolor.Bold))
		if i < len(cols)-1 {
			b.WriteString(strings.Repeat(" ", layout.Gap))
		}
	}
	return b.String()
}

// RowLine renders one row from its current cells. Cells that have not
// arrived yet hold defaults and render empty, so a pending row is a
// valid partial line.
func (v *View) RowLine(it Item, cs CellSet) string {
	var b strings.Builder
	cols := v.lay.Columns()
	for i, c := range cols {
		w := v.lay.Width(c)
		plain := layout.Truncate(v.cellText(c, it, cs), w)
		text := plain
		if i < len(cols)-1 {
			text = layout.Pad(text, w)
		}
		if colors := v.cellColors(c, it, cs); len(colors) > 0 && plain != "" {
			text = v.p.Paint(text, colors...)
		}
		b.WriteString(text)
		if i < len(cols)-1 {
			b.WriteString(strings.Repeat(" ", layout.Gap))
		}
	}
	return b.String()
}

// SummaryLine renders the dimmed closing count line.
func (v *View) SummaryLine(t *Table) string {
	worktrees, branches, changed, ahead, behind := 0, 0, 0, 0, 0
	for _, it := range t.Items() {
		cs := t.Cells(it.Index)
		if it.Kind == KindBranch {
			branches++
		} else {
			worktrees++
			if cs.WorkingTree.Dirty {
				changed++
			}
		}
		if cs.Base.Ahead > 0 {
			ahead++
		}
		if cs.Base.Behind > 0 {
			behind++
		}
	}

	parts := []string{fmt.Sprintf("%d %s", worktrees, plural(worktrees, "worktree"))}
	if branches > 0 {
		parts = append(parts, fmt.Sprintf("%d %s", branches, plural(branches, "branch")))
	}
	parts = append(parts,
		fmt.Sprintf("%d with changes", changed),
		fmt.Sprintf("%d ahead", ahead),
		fmt.Sprintf("%d behind", behind),
	)
	return v.p.Paint(strings.Join(parts, ", "), termcolor.Dim)
}

// Render writes the complete table in one pass: header, rows, summary.
func (v *View) Render(w io.Writer, t *Table) {
	fmt.Fprintln(w, v.HeaderLine())
	for _, it := range t.Items() {
		fmt.Fprintln(w, v.RowLine(it, t.Cells(it.Index)))
	}
	fmt.Fprintln(w, v.SummaryLine(t))
}

func (v *View) cellText(c layout.Column, it Item, cs CellSet) string {
	switch c {
	case layout.Branch:
		return it.DisplayName()
	case layout.Status:
		return formatStatus(cs)
	case layout.Base:
		return formatCounts(cs.Base)
	case layout.WorkDiff:
		return formatDiff(cs.WorkingTree.Diff)
	case layout.BranchDiff:
		return formatDiff(cs.BranchDiff)
	case layout.Upstream:
		return formatUpstream(cs.Upstream)
	case layout.CI:
		return cs.CI.Symbol()
	case layout.Commit:
		return cs.Commit.Subject
	case layout.Age:
		return FormatAge(cs.Commit.Timestamp, v.now)
	case layout.Path:
		return it.DisplayPath
	default:
		return ""
	}
}

func (v *View) cellColors(c layout.Column, it Item, cs CellSet) []termcolor.Color {
	switch c {
	case layout.Branch:
		if it.Primary {
			return []termcolor.Color{termcolor.Green, termcolor.Bold}
		}
		if it.Branch == "" {
			return []termcolor.Color{termcolor.Dim}
		}
	case layout.Status:
		if cs.Conflicts {
			return []termcolor.Color{termcolor.Red}
		}
		if cs.WorkingTree.Dirty || cs.State != "" {
			return []termcolor.Color{termcolor.Yellow}
		}
	case layout.Base:
		if cs.Base.Behind > 0 {
			return []termcolor.Color{termcolor.Yellow}
		}
		if cs.Base.Ahead > 0 {
			return []termcolor.Color{termcolor.Green}
		}
	case layout.WorkDiff:
		if !cs.WorkingTree.Diff.IsZero() {
			return []termcolor.Color{termcolor.Yellow}
		}
	case layout.CI:
		switch cs.CI.Checks {
		case ci.ChecksPassing:
			return []termcolor.Color{termcolor.Green}
		case ci.ChecksFailing:
			return []termcolor.Color{termcolor.Red}
		case ci.ChecksPending:
			return []termcolor.Color{termcolor.Yellow}
		}
	case layout.Upstream, layout.Age, layout.Path:
		return []termcolor.Color{termcolor.Dim}
	}
	return nil
}

// formatCounts renders ahead/behind as count-then-arrow pairs, e.g.
// "2↑1↓" or just "3↓". In sync renders empty.
func formatCounts(ab AheadBehind) string {
	if ab.IsZero() {
		return ""
	}
	var b strings.Builder
	if ab.Ahead > 0 {
		fmt.Fprintf(&b, "%d↑", ab.Ahead)
	}
	if ab.Behind > 0 {
		fmt.Fprintf(&b, "%d↓", ab.Behind)
	}
	return b.String()
}

// formatDiff renders line totals as "+12 -3", omitting zero sides.
func formatDiff(d git.LineDiff) string {
	if d.IsZero() {
		return ""
	}
	var parts []string
	if d.Added > 0 {
		parts = append(parts, fmt.Sprintf("+%d", d.Added))
	}
	if d.Deleted > 0 {
		parts = append(parts, fmt.Sprintf("-%d", d.Deleted))
	}
	return strings.Join(parts, " ")
}

// formatStatus combines operation state, change symbols, the conflict
// marker and any user note into one cell.
func formatStatus(cs CellSet) string {
	var parts []string
	if cs.State != "" {
		parts = append(parts, string(cs.State))
	}
	if cs.WorkingTree.Symbols != "" {
		parts = append(parts, cs.WorkingTree.Symbols)
	}
	if cs.Conflicts {
		parts = append(parts, "⚠")
	}
	if cs.UserStatus != "" {
		parts = append(parts, cs.UserStatus)
	}
	return strings.Join(parts, " ")
}

// formatUpstream shows the remote name, with divergence counts when the
// branch and its upstream are out of sync.
func formatUpstream(up Upstream) string {
	if up.Remote == "" {
		return ""
	}
	if up.Counts.IsZero() {
		return up.Remote
	}
	return up.Remote + " " + formatCounts(up.Counts)
}

// FormatAge renders a compact relative age like "2h ago". A zero
// timestamp (cell not yet arrived, or unreadable commit) renders empty.
func FormatAge(ts int64, now time.Time) string {
	if ts <= 0 {
		return ""
	}

	d := now.Sub(time.Unix(ts, 0))
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return fmt.Sprintf("%dm ago", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(d.Hours()))
	case d < 7*24*time.Hour:
		return fmt.Sprintf("%dd ago", int(d.Hours()/24))
	case d < 30*24*time.Hour:
		return fmt.Sprintf("%dw ago", int(d.Hours()/(24*7)))
	case d < 365*24*time.Hour:
		return fmt.Sprintf("%dmo ago", int(d.Hours()/(24*30)))
	default:
		return fmt.Sprintf("%dy ago", int(d.Hours()/(24*365)))
	}
}

func plural(n int, word string) string {
	if n == 1 {
		return word
	}
	if strings.HasSuffix(word, "ch") {
		return word + "es"
	}
	return word + "s"
}
