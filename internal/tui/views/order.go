package views

import (
	"fmt"
	"path/filepath"

	"lom/internal/core"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ToggleOrderModeMsg is sent to switch between automatic and manual ordering
type ToggleOrderModeMsg struct{}

// Order is the resolved load-order preview: exactly what the game will load,
// in the order it will load it.
type Order struct {
	entries   []core.Entry
	automatic bool
	selected  int
	width     int
	height    int
}

// NewOrder creates a new load-order view
func NewOrder(entries []core.Entry, automatic bool) Order {
	return Order{
		entries:   entries,
		automatic: automatic,
		width:     80,
		height:    24,
	}
}

// EntryCount returns the number of resolved entries
func (o Order) EntryCount() int {
	return len(o.entries)
}

// Init implements tea.Model
func (o Order) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (o Order) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if len(o.entries) > 0 {
				o.selected--
				if o.selected < 0 {
					o.selected = len(o.entries) - 1
				}
			}
			return o, nil

		case "down", "j":
			if len(o.entries) > 0 {
				o.selected++
				if o.selected >= len(o.entries) {
					o.selected = 0
				}
			}
			return o, nil

		case "m":
			return o, func() tea.Msg { return ToggleOrderModeMsg{} }

		case "r":
			return o, func() tea.Msg { return RefreshMsg{} }
		}

	case tea.WindowSizeMsg:
		o.width = msg.Width
		o.height = msg.Height
		return o, nil
	}

	return o, nil
}

// View implements tea.Model
func (o Order) View() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("69")).
		MarginBottom(1)

	infoStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))

	itemStyle := lipgloss.NewStyle().
		PaddingLeft(2)

	selectedStyle := lipgloss.NewStyle().
		PaddingLeft(2).
		Foreground(lipgloss.Color("205")).
		Bold(true)

	tierStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))

	output := titleStyle.Render("Load Order") + "\n"

	mode := "automatic"
	if !o.automatic {
		mode = "manual"
	}
	output += infoStyle.Render(fmt.Sprintf("Mode: %s  Entries: %d", mode, len(o.entries))) + "\n\n"

	if len(o.entries) == 0 {
		output += itemStyle.Render("Nothing to load: no mods are enabled.") + "\n"
		return output
	}

	for i, e := range o.entries {
		cursor := "  "
		style := itemStyle
		if i == o.selected {
			cursor = "▸ "
			style = selectedStyle
		}

		line := fmt.Sprintf("%s%3d. %s", cursor, e.Rank, filepath.Base(e.Path))
		output += style.Render(line) + tierStyle.Render(fmt.Sprintf("  (%s)", e.Tier)) + "\n"
	}

	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		MarginTop(1)
	output += helpStyle.Render("↑/↓: navigate  m: toggle mode  r: rescan")

	return output
}
