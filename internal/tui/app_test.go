package tui_test

import (
	"testing"
	"time"

	"lom/internal/core"
	"lom/internal/domain"
	"lom/internal/tui"
	"lom/internal/tui/views"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAppService(t *testing.T) *core.Service {
	t.Helper()
	svc, err := core.NewService(core.ServiceConfig{
		ConfigDir: t.TempDir(),
		DataDir:   t.TempDir(),
		GameID:    "warhammer_3",
	})
	require.NoError(t, err)
	t.Cleanup(func() { svc.Close() })

	scans := []core.TierScan{
		{Tier: domain.TierData, Entries: []core.ScanEntry{
			{Path: "/data/alpha.pack", ModTime: time.Unix(1, 0), PackType: domain.PackMod},
			{Path: "/data/bravo.pack", ModTime: time.Unix(2, 0), PackType: domain.PackMod},
		}},
	}
	require.NoError(t, svc.RefreshFromScans(scans, time.Time{}))
	return svc
}

func keyMsg(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestAppTabSwitching(t *testing.T) {
	app := tui.NewApp(newAppService(t))
	assert.Equal(t, tui.ViewMods, app.CurrentView())

	model, _ := app.Update(keyMsg("3"))
	app = model.(tui.App)
	assert.Equal(t, tui.ViewOrder, app.CurrentView())

	model, _ = app.Update(tui.NavigateMsg{View: tui.ViewProfiles})
	app = model.(tui.App)
	assert.Equal(t, tui.ViewProfiles, app.CurrentView())
}

func TestAppQuit(t *testing.T) {
	app := tui.NewApp(newAppService(t))
	_, cmd := app.Update(keyMsg("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestAppAppliesToggle(t *testing.T) {
	svc := newAppService(t)
	app := tui.NewApp(svc)

	model, _ := app.Update(views.ToggleModMsg{ID: "alpha.pack"})
	app = model.(tui.App)

	mod, ok := svc.GetMod("alpha.pack")
	require.True(t, ok)
	assert.True(t, mod.Enabled)

	// Toggling again flips it back.
	model, _ = app.Update(views.ToggleModMsg{ID: "alpha.pack"})
	_ = model
	mod, _ = svc.GetMod("alpha.pack")
	assert.False(t, mod.Enabled)
}

func TestAppAppliesCategoryOps(t *testing.T) {
	svc := newAppService(t)
	app := tui.NewApp(svc)

	model, _ := app.Update(views.CreateCategoryMsg{Name: "Maps"})
	app = model.(tui.App)
	assert.Equal(t, "Maps", svc.Categories()[0].Name)

	// Duplicate creation surfaces the error in the view.
	model, _ = app.Update(views.CreateCategoryMsg{Name: "Maps"})
	app = model.(tui.App)
	assert.Contains(t, app.View(), "Error:")
}

func TestAppAppliesOrderModeToggle(t *testing.T) {
	svc := newAppService(t)
	app := tui.NewApp(svc)
	require.True(t, svc.Automatic())

	model, _ := app.Update(views.ToggleOrderModeMsg{})
	_ = model
	assert.False(t, svc.Automatic())
}

func TestAppProfileRoundTrip(t *testing.T) {
	svc := newAppService(t)
	app := tui.NewApp(svc)

	model, _ := app.Update(views.SaveProfileMsg{Name: "snap"})
	app = model.(tui.App)

	names, err := svc.ListProfiles()
	require.NoError(t, err)
	assert.Equal(t, []string{"snap"}, names)

	model, _ = app.Update(views.DeleteProfileMsg{Name: "snap"})
	_ = model
	names, err = svc.ListProfiles()
	require.NoError(t, err)
	assert.Empty(t, names)
}

func TestAppViewRendersTabs(t *testing.T) {
	app := tui.NewApp(newAppService(t))
	out := app.View()
	assert.Contains(t, out, "[1]Mods")
	assert.Contains(t, out, "[4]Profiles")
	assert.Contains(t, out, "Total War: Warhammer 3")
}
