package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// PickerOptions allows customization of the interactive picker.
type PickerOptions struct {
	Title string
}

// DefaultPickerOptions returns the default options.
func DefaultPickerOptions() PickerOptions {
	return PickerOptions{
		Title: "Select a path:",
	}
}

// PickOne shows an interactive list and returns the selected index.
func PickOne(items []string, opts ...PickerOptions) (int, error) {
	if len(items) == 0 {
		return -1, fmt.Errorf("no items provided")
	}

	options := DefaultPickerOptions()
	if len(opts) > 0 {
		options = opts[0]
	}

	p := tea.NewProgram(newPickerModel(items, options))
	m, err := p.Run()
	if err != nil {
		return -1, err
	}

	final := m.(pickerModel)
	if final.aborted {
		return -1, fmt.Errorf("selection cancelled")
	}
	return final.selected, nil
}

// pickerModel keeps a single selection index into items and derives the
// rendered window from it: top is the first visible row and visible the
// number of rows that fit. scrollIntoView is the only place the window moves.
type pickerModel struct {
	opts     PickerOptions
	items    []string
	selected int
	top      int
	visible  int
	aborted  bool
}

func newPickerModel(items []string, opts PickerOptions) pickerModel {
	return pickerModel{
		opts:    opts,
		items:   items,
		visible: len(items),
	}
}

func (m pickerModel) Init() tea.Cmd {
	return nil
}

func (m pickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		// Title, blank line, blank line, hint.
		m.visible = msg.Height - 4
		if m.visible < 1 {
			m.visible = 1
		}
		m.scrollIntoView()
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.aborted = true
			return m, tea.Quit
		case "enter":
			return m, tea.Quit
		case "up", "k":
			m.move(-1)
		case "down", "j":
			m.move(1)
		}
	}

	return m, nil
}

func (m *pickerModel) move(delta int) {
	m.selected += delta
	if m.selected < 0 {
		m.selected = 0
	}
	if m.selected > len(m.items)-1 {
		m.selected = len(m.items) - 1
	}
	m.scrollIntoView()
}

func (m *pickerModel) scrollIntoView() {
	if m.selected < m.top {
		m.top = m.selected
	}
	if m.selected >= m.top+m.visible {
		m.top = m.selected - m.visible + 1
	}
}

func (m pickerModel) View() string {
	var builder strings.Builder

	builder.WriteString(titleStyle.Render(m.opts.Title))
	builder.WriteString("\n\n")

	end := m.top + m.visible
	if end > len(m.items) {
		end = len(m.items)
	}
	for i := m.top; i < end; i++ {
		if i == m.selected {
			builder.WriteString(selectedItemStyle.Render("▸ " + m.items[i]))
		} else {
			builder.WriteString(itemStyle.Render("  " + m.items[i]))
		}
		builder.WriteString("\n")
	}

	builder.WriteString("\n")
	builder.WriteString(hintStyle.Render("↑/↓ to move • enter to select • esc to cancel"))

	return builder.String()
}
