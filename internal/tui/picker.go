// Package tui implements the interactive worktree picker.
package tui

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// PickItem is one selectable worktree.
type PickItem struct {
	Branch  string
	Path    string
	Age     string
	Primary bool
}

type pickerModel struct {
	input    textinput.Model
	items    []PickItem
	filtered []PickItem
	cursor   int
	choice   *PickItem
	width    int
	height   int
}

// newPicker builds the picker model over the given worktrees.
func newPicker(items []PickItem) pickerModel {
	input := textinput.New()
	input.Placeholder = "type to filter"
	input.Prompt = "> "
	input.Focus()

	return pickerModel{
		input:    input,
		items:    items,
		filtered: items,
	}
}

func (m pickerModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m pickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit), key.Matches(msg, keys.Escape):
			return m, tea.Quit

		case key.Matches(msg, keys.Enter):
			if m.cursor < len(m.filtered) {
				m.choice = &m.filtered[m.cursor]
			}
			return m, tea.Quit

		case key.Matches(msg, keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil

		case key.Matches(msg, keys.Down):
			if m.cursor < len(m.filtered)-1 {
				m.cursor++
			}
			return m, nil
		}

		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		m.filtered = filterItems(m.items, m.input.Value())
		if m.cursor >= len(m.filtered) {
			m.cursor = max(0, len(m.filtered)-1)
		}
		return m, cmd
	}

	return m, nil
}

func (m pickerModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Switch worktree"))
	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	if len(m.filtered) == 0 {
		b.WriteString(dimStyle.Render("  no matches"))
		b.WriteString("\n")
	}

	for i, it := range m.filtered {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}

		branch := it.Branch
		if it.Primary {
			branch = primaryStyle.Render(branch)
		}

		line := fmt.Sprintf("%s%-30s %s", cursor, branch, dimStyle.Render(it.Age))
		if i == m.cursor {
			line = selectedStyle.Render(fmt.Sprintf("%s%-30s", cursor, it.Branch)) + " " + dimStyle.Render(it.Age)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render("  enter select  esc cancel"))
	return b.String()
}

// filterItems keeps items whose branch or path contains the query,
// case-insensitively.
func filterItems(items []PickItem, query string) []PickItem {
	if query == "" {
		return items
	}
	query = strings.ToLower(query)

	var out []PickItem
	for _, it := range items {
		if strings.Contains(strings.ToLower(it.Branch), query) ||
			strings.Contains(strings.ToLower(it.Path), query) {
			out = append(out, it)
		}
	}
	return out
}

// Pick runs the interactive picker and returns the chosen worktree, or
// nil when the user cancelled. The UI draws on stderr so the selected
// path can be captured from stdout.
func Pick(items []PickItem) (*PickItem, error) {
	p := tea.NewProgram(newPicker(items), tea.WithOutput(os.Stderr))
	final, err := p.Run()
	if err != nil {
		return nil, err
	}

	m, ok := final.(pickerModel)
	if !ok {
		return nil, fmt.Errorf("unexpected model type %T", final)
	}
	return m.choice, nil
}
