package list

import "fmt"

// Table accumulates streamed updates into per-row cell sets. It is not
// safe for concurrent use: one consumer goroutine drains the channel
// and applies updates in arrival order.
type Table struct {
	items    []Item
	cells    []CellSet
	filled   []int
	expected int
	received int
}

// NewTable prepares accumulation state for the given rows.
func NewTable(items []Item) *Table {
	t := &Table{
		items:  items,
		cells:  make([]CellSet, len(items)),
		filled: make([]int, len(items)),
	}
	for _, it := range items {
		t.expected += it.ExpectedCells()
	}
	return t
}

// Items returns the rows in display order.
func (t *Table) Items() []Item { return t.items }

// Cells returns the accumulated cell values for a row.
func (t *Table) Cells(row int) CellSet { return t.cells[row] }

// Filled returns how many cells have arrived for a row.
func (t *Table) Filled(row int) int { return t.filled[row] }

// RowComplete reports whether every cell of a row has arrived.
func (t *Table) RowComplete(row int) bool {
	return t.filled[row] == t.items[row].ExpectedCells()
}

// Done reports whether every expected update has arrived.
func (t *Table) Done() bool { return t.received == t.expected }

// Expected returns the total number of updates the table will accept.
func (t *Table) Expected() int { return t.expected }

// Apply folds one update into its row and returns the row index. An
// update for an already complete row breaks the one-update-per-cell
// contract, so it panics rather than corrupting state.
func (t *Table) Apply(u Update) int {
	row := u.Row()
	if row < 0 || row >= len(t.items) {
		panic(fmt.Sprintf("list: update for unknown row %d", row))
	}
	if t.RowComplete(row) {
		panic(fmt.Sprintf("list: update for row %d after completion", row))
	}

	u.apply(&t.cells[row])
	t.filled[row]++
	t.received++
	return row
}

// Drain consumes updates from ch until every expected update has
// arrived or the channel closes, whichever comes first. onApply, when
// non-nil, runs after each update with the affected row index.
func (t *Table) Drain(ch <-chan Update, onApply func(row int)) {
	for !t.Done() {
		u, ok := <-ch
		if !ok {
			return
		}
		row := t.Apply(u)
		if onApply != nil {
			onApply(row)
		}
	}
}
