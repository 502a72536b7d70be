package tui_test

import (
	"testing"

	"lom/internal/tui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

func TestKeyMapDefaultsToVim(t *testing.T) {
	k := tui.NewKeyMap("")
	assert.Equal(t, "vim", k.Mode())
}

func TestKeyMapVimNavigation(t *testing.T) {
	k := tui.NewKeyMap("vim")
	assert.True(t, k.IsUp(keyMsg("k")))
	assert.True(t, k.IsDown(keyMsg("j")))
	assert.True(t, k.IsUp(tea.KeyMsg{Type: tea.KeyUp}))
	assert.True(t, k.IsDown(tea.KeyMsg{Type: tea.KeyDown}))
}

func TestKeyMapArrowsOnly(t *testing.T) {
	k := tui.NewKeyMap("arrows")
	assert.False(t, k.IsUp(keyMsg("k")))
	assert.False(t, k.IsDown(keyMsg("j")))
	assert.True(t, k.IsUp(tea.KeyMsg{Type: tea.KeyUp}))
}

func TestKeyMapQuitAndCancel(t *testing.T) {
	k := tui.NewKeyMap("vim")
	assert.True(t, k.IsQuit(keyMsg("q")))
	assert.True(t, k.IsQuit(tea.KeyMsg{Type: tea.KeyCtrlC}))
	assert.True(t, k.IsCancel(tea.KeyMsg{Type: tea.KeyEsc}))
	assert.True(t, k.IsMoveUp(keyMsg("K")))
	assert.True(t, k.IsMoveDown(keyMsg("J")))
}
