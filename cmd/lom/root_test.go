package main

import (
	"testing"
	"time"

	"lom/internal/core"
	"lom/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitService_UsesFlagDirs(t *testing.T) {
	configDir = t.TempDir()
	dataDir = t.TempDir()
	gameID = "warhammer_3"

	svc, err := initService()
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, svc.Close())
	})

	assert.Equal(t, "warhammer_3", svc.Game().ID)
}

func TestInitService_UnknownGame(t *testing.T) {
	configDir = t.TempDir()
	dataDir = t.TempDir()
	gameID = "medieval_1"
	t.Cleanup(func() { gameID = "warhammer_3" })

	_, err := initService()
	assert.Error(t, err)
}

func TestEnsureMod(t *testing.T) {
	configDir = t.TempDir()
	dataDir = t.TempDir()
	gameID = "warhammer_3"

	svc, err := initService()
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, svc.Close())
	})

	scans := []core.TierScan{
		{Tier: domain.TierData, Entries: []core.ScanEntry{
			{Path: "/data/known.pack", ModTime: time.Unix(1, 0), PackType: domain.PackMod},
		}},
	}
	require.NoError(t, svc.RefreshFromScans(scans, time.Time{}))

	assert.NoError(t, ensureMod(svc, "known.pack"))
	assert.ErrorIs(t, ensureMod(svc, "ghost.pack"), domain.ErrModNotFound)
}

func TestColorEnabled_RespectsNoColorFlag(t *testing.T) {
	noColor = true
	t.Cleanup(func() { noColor = false })
	assert.False(t, colorEnabled())
	assert.Equal(t, "plain", colorGreen("plain"))
}

func TestColorEnabled_RespectsNoColorEnv(t *testing.T) {
	noColor = false
	t.Setenv("NO_COLOR", "1")
	assert.False(t, colorEnabled())
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "lengthy...", truncate("lengthy name here", 10))
	assert.Equal(t, "ab", truncate("abcdef", 2))
}
