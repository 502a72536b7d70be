package views

import (
	"fmt"

	"lom/internal/domain"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// CreateCategoryMsg is sent when a new category is named
type CreateCategoryMsg struct {
	Name string
}

// DeleteCategoryMsg is sent to delete the selected category
type DeleteCategoryMsg struct {
	Name string
}

// SortCategoryMsg is sent to sort a category by mod name
type SortCategoryMsg struct {
	Name string
}

// ShiftCategoryMsg is sent to move a category among its siblings
type ShiftCategoryMsg struct {
	Name  string
	Index int
}

// Categories is the category tree view.
type Categories struct {
	categories []domain.Category
	modName    func(id string) string
	selected   int
	creating   bool
	nameInput  textinput.Model
	width      int
	height     int
}

// NewCategories creates a new category tree view. modName maps a mod id to
// its display name; it may be nil.
func NewCategories(categories []domain.Category, modName func(id string) string) Categories {
	ti := textinput.New()
	ti.Placeholder = "Category name..."
	ti.CharLimit = 50
	ti.Width = 30

	return Categories{
		categories: categories,
		modName:    modName,
		nameInput:  ti,
		width:      80,
		height:     24,
	}
}

// Selected returns the currently selected index
func (c Categories) Selected() int {
	return c.selected
}

// IsCreating returns whether the view is prompting for a new category name
func (c Categories) IsCreating() bool {
	return c.creating
}

// SelectedCategory returns the currently selected category
func (c Categories) SelectedCategory() *domain.Category {
	if len(c.categories) == 0 || c.selected >= len(c.categories) {
		return nil
	}
	return &c.categories[c.selected]
}

// Init implements tea.Model
func (c Categories) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (c Categories) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if c.creating {
			return c.handleCreateMode(msg)
		}
		return c.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		c.width = msg.Width
		c.height = msg.Height
		return c, nil
	}

	return c, nil
}

func (c Categories) handleCreateMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		c.creating = false
		c.nameInput.Reset()
		c.nameInput.Blur()
		return c, nil

	case tea.KeyEnter:
		name := c.nameInput.Value()
		if name != "" {
			c.creating = false
			c.nameInput.Reset()
			c.nameInput.Blur()
			return c, func() tea.Msg {
				return CreateCategoryMsg{Name: name}
			}
		}
		return c, nil

	default:
		var cmd tea.Cmd
		c.nameInput, cmd = c.nameInput.Update(msg)
		return c, cmd
	}
}

func (c Categories) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if len(c.categories) > 0 {
			c.selected--
			if c.selected < 0 {
				c.selected = len(c.categories) - 1
			}
		}
		return c, nil

	case "down", "j":
		if len(c.categories) > 0 {
			c.selected++
			if c.selected >= len(c.categories) {
				c.selected = 0
			}
		}
		return c, nil

	case "n":
		c.creating = true
		c.nameInput.Focus()
		return c, textinput.Blink

	case "d", "delete":
		cat := c.SelectedCategory()
		if cat != nil && cat.Name != domain.UnassignedCategory {
			return c, func() tea.Msg {
				return DeleteCategoryMsg{Name: cat.Name}
			}
		}
		return c, nil

	case "s":
		cat := c.SelectedCategory()
		if cat != nil {
			return c, func() tea.Msg {
				return SortCategoryMsg{Name: cat.Name}
			}
		}
		return c, nil

	case "K":
		cat := c.SelectedCategory()
		if cat != nil && c.selected > 0 {
			index := c.selected - 1
			return c, func() tea.Msg {
				return ShiftCategoryMsg{Name: cat.Name, Index: index}
			}
		}
		return c, nil

	case "J":
		cat := c.SelectedCategory()
		if cat != nil && c.selected < len(c.categories)-1 {
			index := c.selected + 1
			return c, func() tea.Msg {
				return ShiftCategoryMsg{Name: cat.Name, Index: index}
			}
		}
		return c, nil
	}

	return c, nil
}

// View implements tea.Model
func (c Categories) View() string {
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

	modStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		PaddingLeft(6)

	output := titleStyle.Render("Categories") + "\n"
	output += infoStyle.Render("Categories set the automatic load order, top to bottom.") + "\n\n"

	if c.creating {
		output += "New category name: " + c.nameInput.View() + "\n\n"
		output += infoStyle.Render("enter: create  esc: cancel")
		return output
	}

	for i, cat := range c.categories {
		cursor := "  "
		style := itemStyle

		if i == c.selected {
			cursor = "▸ "
			style = selectedStyle
		}

		line := fmt.Sprintf("%s%s (%d)", cursor, cat.Name, len(cat.Mods))
		output += style.Render(line) + "\n"

		if i == c.selected {
			for _, id := range cat.Mods {
				name := id
				if c.modName != nil {
					if n := c.modName(id); n != "" {
						name = n
					}
				}
				output += modStyle.Render(name) + "\n"
			}
		}
	}

	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		MarginTop(1)
	output += helpStyle.Render("↑/↓: navigate  n: new  d: delete  s: sort  K/J: reorder")

	return output
}
