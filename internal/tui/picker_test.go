package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func pickItems() []PickItem {
	return []PickItem{
		{Branch: "main", Path: "/repo/app", Age: "2h ago", Primary: true},
		{Branch: "feature-login", Path: "/repo/wt/feature-login", Age: "30m ago"},
		{Branch: "hotfix", Path: "/repo/wt/hotfix", Age: "3d ago"},
	}
}

func TestFilterItems(t *testing.T) {
	items := pickItems()

	if got := filterItems(items, ""); len(got) != 3 {
		t.Errorf("empty query kept %d items, want 3", len(got))
	}
	if got := filterItems(items, "LOGIN"); len(got) != 1 || got[0].Branch != "feature-login" {
		t.Errorf("filter by branch = %+v", got)
	}
	if got := filterItems(items, "wt/"); len(got) != 2 {
		t.Errorf("filter by path kept %d items, want 2", len(got))
	}
	if got := filterItems(items, "nope"); len(got) != 0 {
		t.Errorf("unmatched query kept %d items, want 0", len(got))
	}
}

func TestPickerCursorAndSelect(t *testing.T) {
	var m tea.Model = newPicker(pickItems())

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	choice := m.(pickerModel).choice
	if choice == nil || choice.Branch != "feature-login" {
		t.Errorf("choice = %+v, want feature-login", choice)
	}
}

func TestPickerEscapeCancels(t *testing.T) {
	var m tea.Model = newPicker(pickItems())

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil {
		t.Fatal("escape must quit")
	}
	if m.(pickerModel).choice != nil {
		t.Errorf("choice = %+v, want none after cancel", m.(pickerModel).choice)
	}
}

func TestPickerTypingFilters(t *testing.T) {
	var m tea.Model = newPicker(pickItems())

	for _, r := range "hot" {
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}

	pm := m.(pickerModel)
	if len(pm.filtered) != 1 || pm.filtered[0].Branch != "hotfix" {
		t.Fatalf("filtered = %+v, want just hotfix", pm.filtered)
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if choice := m.(pickerModel).choice; choice == nil || choice.Branch != "hotfix" {
		t.Errorf("choice = %+v, want hotfix", choice)
	}
}

func TestPickerViewListsEntries(t *testing.T) {
	m := newPicker(pickItems())
	view := m.View()

	for _, want := range []string{"main", "feature-login", "hotfix", "esc cancel"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}
	if !strings.Contains(view, "> main") {
		t.Errorf("view missing cursor on first row:\n%s", view)
	}
}
