// Package layout computes a responsive column layout for the worktree table.
//
// Columns are sized from their content, then the set is narrowed to fit the
// terminal: the commit column shrinks first, then optional columns are
// hidden in drop order. The branch column is never dropped.
package layout

import (
	"os"
	"strconv"

	"github.com/mattn/go-runewidth"
	"golang.org/x/term"
)

// Column identifies one table column.
type Column int

const (
	Branch Column = iota
	Status
	Base       // ahead/behind vs the base branch
	WorkDiff   // uncommitted line totals
	BranchDiff // line totals vs the base branch
	Upstream
	CI
	Commit // commit subject, flexible width
	Age
	Path
)

// headers maps each column to its table header.
var headers = map[Column]string{
	Branch:     "BRANCH",
	Status:     "STATUS",
	Base:       "BASE",
	WorkDiff:   "HEAD±",
	BranchDiff: "BASE±",
	Upstream:   "UPSTREAM",
	CI:         "CI",
	Commit:     "COMMIT",
	Age:        "AGE",
	Path:       "PATH",
}

// displayOrder is the left-to-right column order when everything fits.
var displayOrder = []Column{Branch, Status, Base, WorkDiff, BranchDiff, Upstream, CI, Commit, Age, Path}

// dropOrder lists columns from first-hidden to last-hidden when the
// terminal is too narrow. Branch is absent: it always survives.
var dropOrder = []Column{CI, BranchDiff, Upstream, Path, Age, WorkDiff, Status, Commit, Base}

const (
	// Gap is the number of spaces between columns.
	Gap = 2

	maxCommitWidth = 50
	minCommitWidth = 12

	defaultWidth = 80
	minimumWidth = 20
)

// Layout is the resolved column set for one render.
type Layout struct {
	columns []Column
	widths  map[Column]int
}

// Columns returns the visible columns in display order.
func (l Layout) Columns() []Column { return l.columns }

// Width returns the padded width of a visible column, or 0 when hidden.
func (l Layout) Width(c Column) int { return l.widths[c] }

// Has reports whether a column survived the fitting pass.
func (l Layout) Has(c Column) bool {
	_, ok := l.widths[c]
	return ok
}

// Header returns the header text for a column.
func Header(c Column) string { return headers[c] }

// TotalWidth is the rendered line width: column widths plus gaps.
func (l Layout) TotalWidth() int {
	total := 0
	for _, c := range l.columns {
		total += l.widths[c]
	}
	if n := len(l.columns); n > 1 {
		total += Gap * (n - 1)
	}
	return total
}

// Compute fits the column set to the given terminal width. content holds
// the plain (uncolored) cell values per column; columns with no key in
// content are treated as absent and excluded up front (e.g. CI when not
// requested).
func Compute(content map[Column][]string, width int) Layout {
	if width < minimumWidth {
		width = minimumWidth
	}

	widths := make(map[Column]int)
	for c, cells := range content {
		w := runewidth.StringWidth(headers[c])
		for _, cell := range cells {
			if cw := runewidth.StringWidth(cell); cw > w {
				w = cw
			}
		}
		if c == Commit && w > maxCommitWidth {
			w = maxCommitWidth
		}
		widths[c] = w
	}

	// Shrink the commit column before hiding anything.
	for overflow(widths, width) > 0 && widths[Commit] > minCommitWidth {
		excess := overflow(widths, width)
		shrinkable := widths[Commit] - minCommitWidth
		widths[Commit] -= min(excess, shrinkable)
	}

	for _, c := range dropOrder {
		if overflow(widths, width) <= 0 {
			break
		}
		if _, ok := widths[c]; !ok {
			continue
		}
		delete(widths, c)
	}

	var cols []Column
	for _, c := range displayOrder {
		if _, ok := widths[c]; ok {
			cols = append(cols, c)
		}
	}
	return Layout{columns: cols, widths: widths}
}

// overflow returns how far the current widths exceed the terminal width.
func overflow(widths map[Column]int, width int) int {
	total := 0
	n := 0
	for _, w := range widths {
		total += w
		n++
	}
	if n > 1 {
		total += Gap * (n - 1)
	}
	return total - width
}

// TerminalWidth resolves the render width: the COLUMNS override wins,
// then the probed size of f, then a default of 80.
func TerminalWidth(f *os.File) int {
	if cols := os.Getenv("COLUMNS"); cols != "" {
		if w, err := strconv.Atoi(cols); err == nil && w > 0 {
			return w
		}
	}

	if f != nil {
		if w, _, err := term.GetSize(int(f.Fd())); err == nil && w > 0 {
			return w
		}
	}
	return defaultWidth
}
