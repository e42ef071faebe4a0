package list

import "strings"

// Status symbols, one per change category present in the working tree.
const (
	symbolStaged    = "+"
	symbolModified  = "!"
	symbolUntracked = "?"
	symbolRenamed   = "»"
	symbolDeleted   = "✘"
)

// ParseStatusSymbols condenses `git status --porcelain` output into a
// short symbol string, one symbol per category regardless of how many
// files fall into it.
func ParseStatusSymbols(porcelain string) (symbols string, dirty bool) {
	var staged, modified, untracked, renamed, deleted bool

	for line := range strings.Lines(porcelain) {
		if len(line) < 2 {
			continue
		}
		x, y := line[0], line[1]

		if x == '?' && y == '?' {
			untracked = true
			continue
		}
		if x == 'R' || y == 'R' {
			renamed = true
		}
		if x == 'D' || y == 'D' {
			deleted = true
		}
		if y == 'M' {
			modified = true
		}
		if x == 'A' || x == 'M' || x == 'D' || x == 'R' || x == 'C' {
			staged = true
		}
	}

	var b strings.Builder
	if staged {
		b.WriteString(symbolStaged)
	}
	if modified {
		b.WriteString(symbolModified)
	}
	if untracked {
		b.WriteString(symbolUntracked)
	}
	if renamed {
		b.WriteString(symbolRenamed)
	}
	if deleted {
		b.WriteString(symbolDeleted)
	}

	symbols = b.String()
	return symbols, symbols != ""
}
