package layout

import (
	"strings"
	"unicode"

	"github.com/mattn/go-runewidth"
)

const ellipsis = "..."

// Truncate shortens text to a rendered width of at most max, breaking at
// the nearest preceding word boundary and appending an ellipsis. Width is
// measured visually, so wide CJK glyphs count as two cells. Text that
// already fits is returned unchanged.
func Truncate(text string, max int) string {
	if runewidth.StringWidth(text) <= max {
		return text
	}

	budget := max - len(ellipsis)
	if budget <= 0 {
		return runewidth.Truncate(ellipsis, max, "")
	}

	width := 0
	lastSpace := -1
	cut := 0
	for i, r := range text {
		rw := runewidth.RuneWidth(r)
		if width+rw > budget {
			break
		}
		if unicode.IsSpace(r) {
			lastSpace = i
		}
		width += rw
		cut = i + len(string(r))
	}

	if lastSpace > 0 {
		cut = lastSpace
	}
	return strings.TrimRight(text[:cut], " \t") + ellipsis
}

// Pad right-pads plain text to the given rendered width.
func Pad(text string, width int) string {
	gap := width - runewidth.StringWidth(text)
	if gap <= 0 {
		return text
	}
	return text + strings.Repeat(" ", gap)
}
