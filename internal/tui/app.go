package tui

import (
	"context"
	"fmt"

	"lom/internal/core"
	"lom/internal/tui/views"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ViewType represents different screens in the TUI
type ViewType int

const (
	ViewMods ViewType = iota
	ViewCategories
	ViewOrder
	ViewProfiles
)

// NavigateMsg is sent to change views
type NavigateMsg struct {
	View ViewType
}

// ErrorMsg is sent when an operation fails
type ErrorMsg struct {
	Err error
}

// refreshedMsg is sent when a background rescan finishes
type refreshedMsg struct{}

// App is the main TUI application model. Views never touch the service; they
// emit messages and App applies them, so every state change funnels through
// one place and the sub-models are rebuilt from fresh snapshots afterwards.
type App struct {
	service     *core.Service
	keys        *KeyMap
	currentView ViewType
	width       int
	height      int
	err         error

	mods       tea.Model
	categories tea.Model
	order      tea.Model
	profiles   tea.Model
}

// NewApp creates a new TUI application
func NewApp(service *core.Service) App {
	a := App{
		service:     service,
		keys:        NewKeyMap(service.Config().Keybindings),
		currentView: ViewMods,
		width:       80,
		height:      24,
	}
	a.reloadViews()
	return a
}

// CurrentView returns the current view type
func (a App) CurrentView() ViewType {
	return a.currentView
}

// reloadViews rebuilds every sub-model from the service's current state.
func (a *App) reloadViews() {
	mods := a.service.Mods()
	cats := a.service.Categories()
	automatic := a.service.Automatic()

	category := func(id string) string {
		for _, c := range cats {
			for _, mid := range c.Mods {
				if mid == id {
					return c.Name
				}
			}
		}
		return ""
	}
	modName := func(id string) string {
		if mod, ok := a.service.GetMod(id); ok {
			return mod.Name
		}
		return ""
	}

	a.mods = views.NewMods(mods, category, automatic)
	a.categories = views.NewCategories(cats, modName)
	a.order = views.NewOrder(a.service.Resolve(), automatic)

	names, err := a.service.ListProfiles()
	if err != nil {
		a.err = err
	}
	a.profiles = views.NewProfiles(names)
}

// Init implements tea.Model
func (a App) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return a.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a.updateCurrentView(msg)

	case NavigateMsg:
		a.currentView = msg.View
		return a, nil

	case ErrorMsg:
		a.err = msg.Err
		return a, nil

	case refreshedMsg:
		a.reloadViews()
		return a, nil
	}

	if model, cmd, handled := a.applyViewMsg(msg); handled {
		return model, cmd
	}
	return a.updateCurrentView(msg)
}

// applyViewMsg executes the state changes the sub-views request.
func (a App) applyViewMsg(msg tea.Msg) (tea.Model, tea.Cmd, bool) {
	apply := func(err error) (tea.Model, tea.Cmd, bool) {
		if err != nil {
			a.err = err
			return a, nil, true
		}
		a.err = nil
		a.reloadViews()
		return a, nil, true
	}

	switch msg := msg.(type) {
	case views.ToggleModMsg:
		mod, ok := a.service.GetMod(msg.ID)
		if !ok {
			return apply(nil)
		}
		return apply(a.service.SetEnabled(msg.ID, !mod.Enabled))

	case views.ShiftModMsg:
		return apply(a.service.SetManualOrder(shifted(a.service.ManualOrder(), msg.ID, msg.Delta)))

	case views.RefreshMsg:
		service := a.service
		return a, func() tea.Msg {
			if err := service.Refresh(context.Background()); err != nil {
				return ErrorMsg{Err: err}
			}
			return refreshedMsg{}
		}, true

	case views.CreateCategoryMsg:
		return apply(a.service.CreateCategory(msg.Name))

	case views.DeleteCategoryMsg:
		return apply(a.service.DeleteCategory(msg.Name))

	case views.SortCategoryMsg:
		return apply(a.service.SortCategory(msg.Name))

	case views.ShiftCategoryMsg:
		return apply(a.service.ReorderCategory(msg.Name, msg.Index))

	case views.ToggleOrderModeMsg:
		return apply(a.service.SetAutomatic(!a.service.Automatic()))

	case views.LoadProfileMsg:
		return apply(a.service.LoadProfile(msg.Name))

	case views.SaveProfileMsg:
		return apply(a.service.SaveProfile(msg.Name))

	case views.DeleteProfileMsg:
		return apply(a.service.DeleteProfile(msg.Name))
	}

	return a, nil, false
}

// shifted moves id by delta within order, clamping at the ends.
func shifted(order []string, id string, delta int) []string {
	from := -1
	for i, o := range order {
		if o == id {
			from = i
			break
		}
	}
	if from == -1 {
		return order
	}
	to := from + delta
	if to < 0 || to >= len(order) {
		return order
	}
	order[from], order[to] = order[to], order[from]
	return order
}

func (a App) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Text inputs swallow everything, including our global keys.
	if a.inputActive() {
		return a.updateCurrentView(msg)
	}

	if a.keys.IsQuit(msg) {
		return a, tea.Quit
	}

	switch msg.String() {
	case "1":
		a.currentView = ViewMods
		return a, nil
	case "2":
		a.currentView = ViewCategories
		return a, nil
	case "3":
		a.currentView = ViewOrder
		return a, nil
	case "4":
		a.currentView = ViewProfiles
		return a, nil
	}

	return a.updateCurrentView(msg)
}

func (a App) inputActive() bool {
	switch a.currentView {
	case ViewCategories:
		if c, ok := a.categories.(views.Categories); ok {
			return c.IsCreating()
		}
	case ViewProfiles:
		if p, ok := a.profiles.(views.Profiles); ok {
			return p.IsSaving()
		}
	}
	return false
}

func (a App) updateCurrentView(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch a.currentView {
	case ViewMods:
		if a.mods != nil {
			a.mods, cmd = a.mods.Update(msg)
		}
	case ViewCategories:
		if a.categories != nil {
			a.categories, cmd = a.categories.Update(msg)
		}
	case ViewOrder:
		if a.order != nil {
			a.order, cmd = a.order.Update(msg)
		}
	case ViewProfiles:
		if a.profiles != nil {
			a.profiles, cmd = a.profiles.Update(msg)
		}
	}

	return a, cmd
}

// View implements tea.Model
func (a App) View() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("205")).
		MarginBottom(1)

	tabStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))

	activeTabStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("205")).
		Bold(true)

	header := titleStyle.Render(fmt.Sprintf("lom - %s", a.service.Game().Name))

	tabs := []string{"[1]Mods", "[2]Categories", "[3]Order", "[4]Profiles"}
	tabBar := ""
	for i, tab := range tabs {
		if ViewType(i) == a.currentView {
			tabBar += activeTabStyle.Render(tab) + "  "
		} else {
			tabBar += tabStyle.Render(tab) + "  "
		}
	}

	content := a.renderCurrentView()

	if a.err != nil {
		errStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
		content = errStyle.Render(fmt.Sprintf("Error: %v", a.err)) + "\n\n" + content
	}

	footerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		MarginTop(1)
	footer := footerStyle.Render("q: quit  1-4: switch view")

	return fmt.Sprintf("%s\n%s\n\n%s\n\n%s", header, tabBar, content, footer)
}

func (a App) renderCurrentView() string {
	switch a.currentView {
	case ViewMods:
		if a.mods != nil {
			return a.mods.View()
		}
	case ViewCategories:
		if a.categories != nil {
			return a.categories.View()
		}
	case ViewOrder:
		if a.order != nil {
			return a.order.View()
		}
	case ViewProfiles:
		if a.profiles != nil {
			return a.profiles.View()
		}
	}
	return "Unknown view"
}

// Run starts the TUI application
func Run(service *core.Service) error {
	app := NewApp(service)
	p := tea.NewProgram(app, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
