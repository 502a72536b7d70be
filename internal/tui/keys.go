package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// KeyMap defines keybindings for the TUI
type KeyMap struct {
	mode string
}

// NewKeyMap creates a new keymap for the given mode
func NewKeyMap(mode string) *KeyMap {
	if mode == "" {
		mode = "vim"
	}
	return &KeyMap{mode: mode}
}

// Mode returns the current keybinding mode
func (k *KeyMap) Mode() string {
	return k.mode
}

// IsUp returns true if the key is an "up" navigation key
func (k *KeyMap) IsUp(msg tea.KeyMsg) bool {
	if msg.Type == tea.KeyUp {
		return true
	}
	return k.mode == "vim" && msg.String() == "k"
}

// IsDown returns true if the key is a "down" navigation key
func (k *KeyMap) IsDown(msg tea.KeyMsg) bool {
	if msg.Type == tea.KeyDown {
		return true
	}
	return k.mode == "vim" && msg.String() == "j"
}

// IsConfirm returns true if the key is a confirm/select key
func (k *KeyMap) IsConfirm(msg tea.KeyMsg) bool {
	return msg.Type == tea.KeyEnter || msg.String() == " "
}

// IsCancel returns true if the key is a cancel/back key
func (k *KeyMap) IsCancel(msg tea.KeyMsg) bool {
	return msg.Type == tea.KeyEsc
}

// IsQuit returns true if the key is a quit key
func (k *KeyMap) IsQuit(msg tea.KeyMsg) bool {
	return msg.String() == "q" || msg.Type == tea.KeyCtrlC
}

// IsDelete returns true if the key is a delete key
func (k *KeyMap) IsDelete(msg tea.KeyMsg) bool {
	return msg.String() == "d" || msg.Type == tea.KeyDelete
}

// IsMoveUp returns true if the key should move an item up in order
func (k *KeyMap) IsMoveUp(msg tea.KeyMsg) bool {
	return msg.String() == "K"
}

// IsMoveDown returns true if the key should move an item down in order
func (k *KeyMap) IsMoveDown(msg tea.KeyMsg) bool {
	return msg.String() == "J"
}

// NavigationHelp returns help text for navigation keys
func (k *KeyMap) NavigationHelp() string {
	if k.mode == "vim" {
		return "j/k: navigate"
	}
	return "↑/↓: navigate"
}
