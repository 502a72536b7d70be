package views

import (
	"fmt"
	"strings"

	"lom/internal/domain"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ToggleModMsg is sent to flip a mod's enabled state
type ToggleModMsg struct {
	ID string
}

// ShiftModMsg is sent to move a mod within the manual order
type ShiftModMsg struct {
	ID    string
	Delta int // -1 up, +1 down
}

// RefreshMsg is sent to rescan the mod folders
type RefreshMsg struct{}

// Mods is the mod list view: every discovered mod, its enabled state, its
// resolved tier and any staleness badges.
type Mods struct {
	mods      []*domain.Mod
	category  func(id string) string
	automatic bool
	selected  int
	width     int
	height    int
}

// NewMods creates a new mod list view. category maps a mod id to its category
// name; it may be nil.
func NewMods(mods []*domain.Mod, category func(id string) string, automatic bool) Mods {
	return Mods{
		mods:      mods,
		category:  category,
		automatic: automatic,
		width:     80,
		height:    24,
	}
}

// Selected returns the currently selected index
func (m Mods) Selected() int {
	return m.selected
}

// ModCount returns the number of listed mods
func (m Mods) ModCount() int {
	return len(m.mods)
}

// SelectedMod returns the currently selected mod
func (m Mods) SelectedMod() *domain.Mod {
	if len(m.mods) == 0 || m.selected >= len(m.mods) {
		return nil
	}
	return m.mods[m.selected]
}

// Init implements tea.Model
func (m Mods) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m Mods) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}

	return m, nil
}

func (m Mods) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "r" {
		return m, func() tea.Msg { return RefreshMsg{} }
	}
	if len(m.mods) == 0 {
		return m, nil
	}

	switch msg.String() {
	case "up", "k":
		m.selected--
		if m.selected < 0 {
			m.selected = len(m.mods) - 1
		}
		return m, nil

	case "down", "j":
		m.selected++
		if m.selected >= len(m.mods) {
			m.selected = 0
		}
		return m, nil

	case " ", "enter":
		mod := m.SelectedMod()
		if mod != nil {
			return m, func() tea.Msg {
				return ToggleModMsg{ID: mod.ID}
			}
		}
		return m, nil

	case "K": // move up in manual order
		mod := m.SelectedMod()
		if mod != nil && !m.automatic {
			return m, func() tea.Msg {
				return ShiftModMsg{ID: mod.ID, Delta: -1}
			}
		}
		return m, nil

	case "J": // move down in manual order
		mod := m.SelectedMod()
		if mod != nil && !m.automatic {
			return m, func() tea.Msg {
				return ShiftModMsg{ID: mod.ID, Delta: 1}
			}
		}
		return m, nil

	case "home", "g":
		m.selected = 0
		return m, nil

	case "end", "G":
		m.selected = len(m.mods) - 1
		return m, nil
	}

	return m, nil
}

// flagBadges renders the staleness badges for a mod, or "".
func flagBadges(flags domain.Flags) string {
	var badges []string
	if flags.Outdated {
		badges = append(badges, "outdated")
	}
	if flags.DataOlderThanSecondary {
		badges = append(badges, "data<secondary")
	}
	if flags.DataOlderThanContent {
		badges = append(badges, "data<content")
	}
	if flags.SecondaryOlderThanContent {
		badges = append(badges, "secondary<content")
	}
	if len(badges) == 0 {
		return ""
	}
	return " [" + strings.Join(badges, " ") + "]"
}

// View implements tea.Model
func (m Mods) View() string {
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

	disabledStyle := lipgloss.NewStyle().
		PaddingLeft(2).
		Foreground(lipgloss.Color("241"))

	warnStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("214"))

	detailStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		PaddingLeft(4)

	output := titleStyle.Render("Mods") + "\n"

	mode := "automatic"
	if !m.automatic {
		mode = "manual"
	}
	output += infoStyle.Render(fmt.Sprintf("Order mode: %s  Mods: %d", mode, len(m.mods))) + "\n\n"

	if len(m.mods) == 0 {
		output += itemStyle.Render("No mods found.") + "\n\n"
		output += infoStyle.Render("Press 'r' to rescan the mod folders.") + "\n"
		return output
	}

	for i, mod := range m.mods {
		cursor := "  "
		style := itemStyle

		if i == m.selected {
			cursor = "▸ "
			style = selectedStyle
		} else if !mod.Enabled {
			style = disabledStyle
		}

		status := "[✓]"
		if !mod.Enabled {
			status = "[ ]"
		}

		line := fmt.Sprintf("%s%s %s", cursor, status, mod.Name)
		output += style.Render(line)
		if badges := flagBadges(mod.Flags); badges != "" {
			output += warnStyle.Render(badges)
		}
		output += "\n"

		if i == m.selected {
			if mod.Creator != "" {
				output += detailStyle.Render(fmt.Sprintf("by %s", mod.Creator)) + "\n"
			}
			output += detailStyle.Render(fmt.Sprintf("Pack: %s  Loaded from: %s", mod.ID, mod.ResolvedTier())) + "\n"
			if m.category != nil {
				output += detailStyle.Render(fmt.Sprintf("Category: %s", m.category(mod.ID))) + "\n"
			}
			if mod.SteamID != "" {
				output += detailStyle.Render(fmt.Sprintf("Workshop: %s", mod.SteamID)) + "\n"
			}
			if !mod.UpdatedRemote.IsZero() {
				output += detailStyle.Render(fmt.Sprintf("Updated: %s", mod.UpdatedRemote.Format("2006-01-02"))) + "\n"
			}
			output += "\n"
		}
	}

	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		MarginTop(1)
	help := "↑/↓: navigate  space: toggle  r: rescan"
	if !m.automatic {
		help += "  K/J: reorder"
	}
	output += helpStyle.Render(help)

	return output
}
