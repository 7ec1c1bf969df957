package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sahilm/fuzzy"
)

// PickOption is a single selectable entry in the picker.
type PickOption struct {
	Label       string
	Description string
}

// PickResult holds the outcome of a multi-select picker.
type PickResult struct {
	Indices   []int // selected option indices in original order
	Cancelled bool
}

// optionSource implements fuzzy.Source over picker options.
type optionSource []PickOption

func (o optionSource) String(i int) string { return o[i].Label }
func (o optionSource) Len() int            { return len(o) }

// pickerModel is a filterable multi-select list. Typing narrows the
// list with fuzzy matching, space toggles, enter confirms.
type pickerModel struct {
	title    string
	options  []PickOption
	filtered []int // indices into options, filter applied
	cursor   int   // position in filtered list
	selected map[int]bool
	filter   string

	done      bool
	cancelled bool
}

func newPickerModel(title string, options []PickOption, preselect bool) pickerModel {
	m := pickerModel{
		title:    title,
		options:  options,
		selected: make(map[int]bool),
	}
	if preselect {
		for i := range options {
			m.selected[i] = true
		}
	}
	m.applyFilter()
	return m
}

func (m pickerModel) Init() tea.Cmd {
	return nil
}

func (m pickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "ctrl+c", "esc":
		m.cancelled = true
		m.done = true
		return m, tea.Quit
	case "enter":
		m.done = true
		return m, tea.Quit
	case "up":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down":
		if m.cursor < len(m.filtered)-1 {
			m.cursor++
		}
	case "home":
		m.cursor = 0
	case "end":
		if len(m.filtered) > 0 {
			m.cursor = len(m.filtered) - 1
		}
	case " ":
		if len(m.filtered) > 0 {
			idx := m.filtered[m.cursor]
			if m.selected[idx] {
				delete(m.selected, idx)
			} else {
				m.selected[idx] = true
			}
		}
	case "ctrl+a":
		if len(m.selected) == len(m.options) {
			m.selected = make(map[int]bool)
		} else {
			for i := range m.options {
				m.selected[i] = true
			}
		}
	case "backspace":
		if len(m.filter) > 0 {
			m.filter = m.filter[:len(m.filter)-1]
			m.applyFilter()
		}
	default:
		if keyMsg.Type == tea.KeyRunes {
			m.filter += string(keyMsg.Runes)
			m.applyFilter()
		}
	}

	return m, nil
}

func (m pickerModel) View() string {
	if m.done {
		return ""
	}

	var b strings.Builder
	b.WriteString(Bold.Render(m.title))
	b.WriteString(fmt.Sprintf(" (%d selected)\n", len(m.selected)))
	b.WriteString(MutedStyle.Render("Filter: ") + m.filter + "\n\n")

	maxVisible := 10
	start := 0
	if m.cursor >= maxVisible {
		start = m.cursor - maxVisible + 1
	}
	end := min(start+maxVisible, len(m.filtered))

	if start > 0 {
		b.WriteString(MutedStyle.Render("  ↑ more above") + "\n")
	}

	for i := start; i < end; i++ {
		idx := m.filtered[i]
		opt := m.options[idx]

		cursor := "  "
		label := opt.Label
		if i == m.cursor {
			cursor = "> "
			label = AccentStyle.Render(label)
		}

		checkbox := "[ ]"
		if m.selected[idx] {
			checkbox = SuccessStyle.Render("[✓]")
		}

		b.WriteString(cursor + checkbox + " " + label)
		if opt.Description != "" {
			b.WriteString("  " + MutedStyle.Render(opt.Description))
		}
		b.WriteString("\n")
	}

	if end < len(m.filtered) {
		b.WriteString(MutedStyle.Render("  ↓ more below") + "\n")
	}
	if len(m.filtered) == 0 {
		b.WriteString(MutedStyle.Render("  No matching entries") + "\n")
	}

	b.WriteString("\n" + MutedStyle.Render("↑/↓ move • space toggle • ctrl+a toggle all • type to filter • enter confirm • esc cancel") + "\n")
	return b.String()
}

func (m *pickerModel) applyFilter() {
	if m.filter == "" {
		m.filtered = make([]int, len(m.options))
		for i := range m.options {
			m.filtered[i] = i
		}
	} else {
		// Fuzzy ranking, best matches first
		matches := fuzzy.FindFrom(m.filter, optionSource(m.options))
		m.filtered = make([]int, len(matches))
		for i, match := range matches {
			m.filtered[i] = match.Index
		}
	}

	if m.cursor >= len(m.filtered) {
		m.cursor = max(0, len(m.filtered)-1)
	}
}

func (m pickerModel) result() PickResult {
	if m.cancelled {
		return PickResult{Cancelled: true}
	}
	var indices []int
	for i := range m.options {
		if m.selected[i] {
			indices = append(indices, i)
		}
	}
	return PickResult{Indices: indices}
}

// Pick shows a filterable multi-select list and returns the chosen
// option indices. All options start selected.
func Pick(title string, options []PickOption) (PickResult, error) {
	if len(options) == 0 {
		return PickResult{}, nil
	}

	model := newPickerModel(title, options, true)
	p := tea.NewProgram(model)
	finalModel, err := p.Run()
	if err != nil {
		return PickResult{}, err
	}
	return finalModel.(pickerModel).result(), nil
}
