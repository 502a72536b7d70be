package main

import (
	"testing"

	"lom/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestCommandStructure(t *testing.T) {
	assert.Equal(t, "list", listCmd.Use)
	assert.NotEmpty(t, listCmd.Short)
	assert.NotNil(t, listCmd.Flags().Lookup("no-refresh"))

	assert.Equal(t, "enable <pack>...", enableCmd.Use)
	assert.Equal(t, "disable <pack>...", disableCmd.Use)

	assert.Equal(t, "category", categoryCmd.Use)
	assert.True(t, categoryCmd.HasSubCommands())
	assert.NotNil(t, categoryMoveCmd.Flags().Lookup("index"))

	assert.Equal(t, "profile", profileCmd.Use)
	assert.True(t, profileCmd.HasSubCommands())

	assert.Equal(t, "order", orderCmd.Use)
	assert.NotNil(t, orderImportCmd.Flags().Lookup("modlist"))

	assert.Equal(t, "launch", launchCmd.Use)
	assert.NotNil(t, launchCmd.Flags().Lookup("output"))

	assert.Equal(t, "workshop", workshopCmd.Use)
	assert.Equal(t, "tui", tuiCmd.Use)
	assert.Equal(t, "refresh", refreshCmd.Use)
	assert.Equal(t, "games", gamesCmd.Use)
}

func TestRootPersistentFlags(t *testing.T) {
	for _, name := range []string{"config", "data", "game", "verbose", "json", "no-color"} {
		assert.NotNil(t, rootCmd.PersistentFlags().Lookup(name), name)
	}
}

func TestFlagSummary(t *testing.T) {
	assert.Empty(t, flagSummary(domain.Flags{}))
	assert.Equal(t, "outdated", flagSummary(domain.Flags{Outdated: true}))
	assert.Equal(t, "outdated,data<content",
		flagSummary(domain.Flags{Outdated: true, DataOlderThanContent: true}))
}
