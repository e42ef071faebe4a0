package list

import (
	"fmt"
	"io"
)

// Renderer paints the progressive display: placeholder rows up front,
// then per-row repaints as cells arrive. When in-place repaint is off
// (the output is not a cursor-addressable terminal) it reprints the
// whole table on every update instead.
type Renderer struct {
	w       io.Writer
	view    *View
	table   *Table
	inPlace bool
	started bool
}

// NewRenderer builds a Renderer. inPlace enables cursor-movement
// repaints; pass false for outputs that cannot interpret them.
func NewRenderer(w io.Writer, view *View, table *Table, inPlace bool) *Renderer {
	return &Renderer{w: w, view: view, table: table, inPlace: inPlace}
}

// Start prints the header and one placeholder line per row.
func (r *Renderer) Start() {
	r.started = true
	if !r.inPlace {
		return
	}

	fmt.Fprintln(r.w, r.view.HeaderLine())
	for _, it := range r.table.Items() {
		fmt.Fprintln(r.w, r.view.RowLine(it, r.table.Cells(it.Index)))
	}
}

// RowChanged repaints after an update landed on the given row.
func (r *Renderer) RowChanged(row int) {
	if !r.started {
		return
	}

	if !r.inPlace {
		r.view.Render(r.w, r.table)
		fmt.Fprintln(r.w)
		return
	}

	// The cursor rests just below the last row; move up to the row,
	// rewrite it, and move back.
	up := len(r.table.Items()) - row
	it := r.table.Items()[row]
	fmt.Fprintf(r.w, "\033[%dA\r\033[K%s\033[%dB\r", up, r.view.RowLine(it, r.table.Cells(row)), up)
}

// Finish prints the summary once all updates are in.
func (r *Renderer) Finish() {
	if !r.started {
		return
	}
	if !r.inPlace {
		r.view.Render(r.w, r.table)
		return
	}
	fmt.Fprintln(r.w, r.view.SummaryLine(r.table))
}
