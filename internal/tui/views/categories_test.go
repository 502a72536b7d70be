package views_test

import (
	"testing"

	"lom/internal/domain"
	"lom/internal/tui/views"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleCategories() []domain.Category {
	return []domain.Category{
		{Name: "Overhauls", Mods: []string{"big.pack"}},
		{Name: domain.UnassignedCategory, Mods: []string{"small.pack"}},
	}
}

func TestCategoriesNavigation(t *testing.T) {
	c := views.NewCategories(sampleCategories(), nil)
	assert.Equal(t, 0, c.Selected())

	model, _ := c.Update(keyMsg("j"))
	c = model.(views.Categories)
	assert.Equal(t, 1, c.Selected())
	assert.Equal(t, domain.UnassignedCategory, c.SelectedCategory().Name)
}

func TestCategoriesCreateFlow(t *testing.T) {
	c := views.NewCategories(sampleCategories(), nil)

	model, _ := c.Update(keyMsg("n"))
	c = model.(views.Categories)
	require.True(t, c.IsCreating())

	// Type a name and confirm.
	for _, r := range "Maps" {
		model, _ = c.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		c = model.(views.Categories)
	}
	model, cmd := c.Update(tea.KeyMsg{Type: tea.KeyEnter})
	c = model.(views.Categories)
	assert.False(t, c.IsCreating())
	require.NotNil(t, cmd)
	msg, ok := cmd().(views.CreateCategoryMsg)
	require.True(t, ok)
	assert.Equal(t, "Maps", msg.Name)
}

func TestCategoriesCreateCancel(t *testing.T) {
	c := views.NewCategories(sampleCategories(), nil)
	model, _ := c.Update(keyMsg("n"))
	c = model.(views.Categories)

	model, cmd := c.Update(tea.KeyMsg{Type: tea.KeyEsc})
	c = model.(views.Categories)
	assert.False(t, c.IsCreating())
	assert.Nil(t, cmd)
}

func TestCategoriesDeleteRefusesUnassigned(t *testing.T) {
	c := views.NewCategories(sampleCategories(), nil)

	// Move onto Unassigned and try to delete it.
	model, _ := c.Update(keyMsg("j"))
	c = model.(views.Categories)
	_, cmd := c.Update(keyMsg("d"))
	assert.Nil(t, cmd)

	// The regular category deletes fine.
	model, _ = c.Update(keyMsg("k"))
	c = model.(views.Categories)
	_, cmd = c.Update(keyMsg("d"))
	require.NotNil(t, cmd)
	msg, ok := cmd().(views.DeleteCategoryMsg)
	require.True(t, ok)
	assert.Equal(t, "Overhauls", msg.Name)
}

func TestCategoriesSortEmitsMsg(t *testing.T) {
	c := views.NewCategories(sampleCategories(), nil)
	_, cmd := c.Update(keyMsg("s"))
	require.NotNil(t, cmd)
	msg, ok := cmd().(views.SortCategoryMsg)
	require.True(t, ok)
	assert.Equal(t, "Overhauls", msg.Name)
}

func TestCategoriesViewShowsMods(t *testing.T) {
	names := map[string]string{"big.pack": "Big Overhaul"}
	c := views.NewCategories(sampleCategories(), func(id string) string { return names[id] })

	out := c.View()
	assert.Contains(t, out, "Overhauls (1)")
	assert.Contains(t, out, "Big Overhaul")
}
