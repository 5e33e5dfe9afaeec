// Package browse provides a read-only terminal UI over the catalog.
// It only reads entries; all mutation stays behind the record store.
package browse

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dvolk/mscat/internal/manuscript"
)

// viewState represents the current screen.
type viewState int

const (
	// viewList is the state where the user scrolls the entry list.
	viewList viewState = iota
	// viewDetail is the state showing a single entry.
	viewDetail
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	labelStyle  = lipgloss.NewStyle().Bold(true)
	detailStyle = lipgloss.NewStyle().Padding(1, 2)
	helpStyle   = lipgloss.NewStyle().Faint(true)
)

// item represents a selectable entry in the list.
type item struct {
	index int
	entry manuscript.Entry
}

// Title returns the list line for the entry.
func (i item) Title() string { return fmt.Sprintf("[%d] %s", i.index, i.entry.Title) }

// Description summarizes authors and detail counts.
func (i item) Description() string {
	desc := strings.Join(i.entry.Authors, ", ")
	if d := i.entry.Details; d != nil {
		desc += fmt.Sprintf("  (%d methods, %d datasets, %d metrics)",
			len(d.Methods), len(d.Datasets), len(d.Metrics))
	}
	return desc
}

// FilterValue returns the text used by the list's fuzzy filter.
func (i item) FilterValue() string { return i.entry.Title }

// model is the Bubble Tea model for the catalog browser.
type model struct {
	state    viewState
	entries  list.Model
	selected item
	width    int
	height   int
}

func initialModel(entries []manuscript.Entry) model {
	items := make([]list.Item, len(entries))
	for i, e := range entries {
		items[i] = item{index: i, entry: e}
	}

	l := list.New(items, list.NewDefaultDelegate(), 0, 0)
	l.Title = "Manuscript catalog"

	return model{state: viewList, entries: l}
}

// Init implements tea.Model.
func (m model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.entries.SetSize(msg.Width, msg.Height-1)
		return m, nil

	case tea.KeyMsg:
		switch m.state {
		case viewList:
			switch msg.String() {
			case "q", "ctrl+c":
				return m, tea.Quit
			case "enter":
				if it, ok := m.entries.SelectedItem().(item); ok {
					m.selected = it
					m.state = viewDetail
				}
				return m, nil
			}
		case viewDetail:
			switch msg.String() {
			case "q", "ctrl+c":
				return m, tea.Quit
			case "esc", "enter", "backspace":
				m.state = viewList
				return m, nil
			}
		}
	}

	if m.state == viewList {
		var cmd tea.Cmd
		m.entries, cmd = m.entries.Update(msg)
		return m, cmd
	}
	return m, nil
}

// View implements tea.Model.
func (m model) View() string {
	if m.state == viewDetail {
		return detailStyle.Render(renderDetail(m.selected)) +
			"\n" + helpStyle.Render("esc: back  q: quit")
	}
	return m.entries.View()
}

// renderDetail formats a single entry for the detail screen.
func renderDetail(it item) string {
	var b strings.Builder
	e := it.entry

	b.WriteString(titleStyle.Render(fmt.Sprintf("[%d] %s", it.index, e.Title)))
	b.WriteString("\n\n")

	if len(e.Authors) > 0 {
		b.WriteString(labelStyle.Render("Authors:      "))
		b.WriteString(strings.Join(e.Authors, ", "))
		b.WriteString("\n")
	}
	if len(e.Affiliations) > 0 {
		b.WriteString(labelStyle.Render("Affiliations: "))
		b.WriteString(strings.Join(e.Affiliations, "; "))
		b.WriteString("\n")
	}
	if e.Abstract != "" {
		b.WriteString("\n")
		b.WriteString(labelStyle.Render("Abstract"))
		b.WriteString("\n")
		b.WriteString(e.Abstract)
		b.WriteString("\n")
	}

	if d := e.Details; d != nil {
		if len(d.Methods) > 0 {
			b.WriteString("\n")
			b.WriteString(labelStyle.Render("Methods"))
			b.WriteString("\n")
			for _, m := range d.Methods {
				b.WriteString(fmt.Sprintf("  %s (%s)\n", m.ModelName, m.Type))
			}
		}
		if len(d.Datasets) > 0 {
			b.WriteString("\n")
			b.WriteString(labelStyle.Render("Datasets"))
			b.WriteString("\n")
			for _, ds := range d.Datasets {
				b.WriteString(fmt.Sprintf("  %s (%s)\n", ds.Name, ds.Usage))
			}
		}
		if len(d.Metrics) > 0 {
			b.WriteString("\n")
			b.WriteString(labelStyle.Render("Metrics"))
			b.WriteString("\n")
			for _, mt := range d.Metrics {
				b.WriteString(fmt.Sprintf("  %s = %g (%s)\n", mt.Name, mt.Value, mt.ModelName))
			}
		}
	}

	return b.String()
}

// Run opens the browser over the given entries and blocks until the user
// quits.
func Run(entries []manuscript.Entry) error {
	p := tea.NewProgram(initialModel(entries), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running browser: %w", err)
	}
	return nil
}
