package views

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// LoadProfileMsg is sent to restore a saved profile
type LoadProfileMsg struct {
	Name string
}

// SaveProfileMsg is sent to snapshot the current state under a name
type SaveProfileMsg struct {
	Name string
}

// DeleteProfileMsg is sent to delete a saved profile
type DeleteProfileMsg struct {
	Name string
}

// Profiles is the profile management view
type Profiles struct {
	names     []string
	selected  int
	saving    bool
	nameInput textinput.Model
	width     int
	height    int
}

// NewProfiles creates a new profiles view
func NewProfiles(names []string) Profiles {
	ti := textinput.New()
	ti.Placeholder = "Profile name..."
	ti.CharLimit = 50
	ti.Width = 30

	return Profiles{
		names:     names,
		nameInput: ti,
		width:     80,
		height:    24,
	}
}

// Selected returns the currently selected index
func (p Profiles) Selected() int {
	return p.selected
}

// ProfileCount returns the number of saved profiles
func (p Profiles) ProfileCount() int {
	return len(p.names)
}

// IsSaving returns whether the view is prompting for a profile name
func (p Profiles) IsSaving() bool {
	return p.saving
}

// SelectedName returns the currently selected profile name, or ""
func (p Profiles) SelectedName() string {
	if len(p.names) == 0 || p.selected >= len(p.names) {
		return ""
	}
	return p.names[p.selected]
}

// Init implements tea.Model
func (p Profiles) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (p Profiles) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if p.saving {
			return p.handleSaveMode(msg)
		}
		return p.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		p.width = msg.Width
		p.height = msg.Height
		return p, nil
	}

	return p, nil
}

func (p Profiles) handleSaveMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		p.saving = false
		p.nameInput.Reset()
		p.nameInput.Blur()
		return p, nil

	case tea.KeyEnter:
		name := p.nameInput.Value()
		if name != "" {
			p.saving = false
			p.nameInput.Reset()
			p.nameInput.Blur()
			return p, func() tea.Msg {
				return SaveProfileMsg{Name: name}
			}
		}
		return p, nil

	default:
		var cmd tea.Cmd
		p.nameInput, cmd = p.nameInput.Update(msg)
		return p, cmd
	}
}

func (p Profiles) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if len(p.names) > 0 {
			p.selected--
			if p.selected < 0 {
				p.selected = len(p.names) - 1
			}
		}
		return p, nil

	case "down", "j":
		if len(p.names) > 0 {
			p.selected++
			if p.selected >= len(p.names) {
				p.selected = 0
			}
		}
		return p, nil

	case "enter", " ":
		if name := p.SelectedName(); name != "" {
			return p, func() tea.Msg {
				return LoadProfileMsg{Name: name}
			}
		}
		return p, nil

	case "n":
		p.saving = true
		p.nameInput.Focus()
		return p, textinput.Blink

	case "d", "delete":
		if name := p.SelectedName(); name != "" {
			return p, func() tea.Msg {
				return DeleteProfileMsg{Name: name}
			}
		}
		return p, nil
	}

	return p, nil
}

// View implements tea.Model
func (p Profiles) View() string {
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

	output := titleStyle.Render("Profiles") + "\n"
	output += infoStyle.Render("A profile is a saved snapshot of the enabled set, categories and order.") + "\n\n"

	if p.saving {
		output += "Save as: " + p.nameInput.View() + "\n\n"
		output += infoStyle.Render("enter: save  esc: cancel")
		return output
	}

	if len(p.names) == 0 {
		output += itemStyle.Render("No saved profiles.") + "\n\n"
		output += infoStyle.Render("Press 'n' to save the current state as a profile.") + "\n"
		return output
	}

	for i, name := range p.names {
		cursor := "  "
		style := itemStyle
		if i == p.selected {
			cursor = "▸ "
			style = selectedStyle
		}
		output += style.Render(cursor+name) + "\n"
	}

	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		MarginTop(1)
	output += helpStyle.Render("enter: load  n: save current  d: delete")

	return output
}
