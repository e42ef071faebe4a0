package list

import (
	"os"
	"sync"

	"github.com/mattn/go-isatty"
)

// RenderMode selects how results reach the terminal.
type RenderMode int

const (
	// Buffered collects every cell before printing the table once.
	Buffered RenderMode = iota

	// Progressive prints placeholder rows immediately and repaints
	// cells in place as values arrive.
	Progressive
)

func (m RenderMode) String() string {
	if m == Progressive {
		return "progressive"
	}
	return "buffered"
}

// DetectMode resolves the rendering mode from the explicit overrides and
// the terminal check. Overrides win; otherwise a terminal gets the
// progressive display and anything else gets buffered output.
func DetectMode(forceProgressive, forceBuffered, stdoutTerminal bool) RenderMode {
	switch {
	case forceProgressive:
		return Progressive
	case forceBuffered:
		return Buffered
	case stdoutTerminal:
		return Progressive
	default:
		return Buffered
	}
}

// StdoutIsTerminal reports whether stdout is attached to a terminal.
// Probed once per process.
var StdoutIsTerminal = sync.OnceValue(func() bool {
	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
})
