package domain_test

import (
	"testing"
	"time"

	"lom/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModResolvedLocation(t *testing.T) {
	mod := &domain.Mod{
		ID: "m.pack",
		Locations: []domain.Location{
			{Tier: domain.TierData, Path: "/data/m.pack", ModTime: time.Unix(10, 0)},
			{Tier: domain.TierContent, Path: "/content/1/m.pack", ModTime: time.Unix(99, 0)},
		},
	}

	assert.Equal(t, "/data/m.pack", mod.ResolvedPath())
	assert.Equal(t, domain.TierData, mod.ResolvedTier())
	assert.Equal(t, time.Unix(99, 0), mod.NewestTime())

	loc := mod.Location(domain.TierContent)
	require.NotNil(t, loc)
	assert.Equal(t, "/content/1/m.pack", loc.Path)
	assert.Nil(t, mod.Location(domain.TierSecondary))
}

func TestModNoLocations(t *testing.T) {
	mod := &domain.Mod{ID: "ghost.pack"}
	assert.Empty(t, mod.ResolvedPath())
	assert.True(t, mod.NewestTime().IsZero())
}

func TestFlagsAny(t *testing.T) {
	assert.False(t, domain.Flags{}.Any())
	assert.True(t, domain.Flags{Outdated: true}.Any())
	assert.True(t, domain.Flags{DataOlderThanContent: true}.Any())
}

func TestIsReservedPack(t *testing.T) {
	assert.True(t, domain.IsReservedPack(domain.ReservedPackName))
	assert.True(t, domain.IsReservedPack(domain.ReservedPackNameAlt))
	assert.False(t, domain.IsReservedPack("normal.pack"))
}

func TestGameByID(t *testing.T) {
	game, err := domain.GameByID("warhammer_3")
	require.NoError(t, err)
	assert.Equal(t, 1142710, game.SteamAppID)
	assert.True(t, game.SupportsContent)

	_, err = domain.GameByID("rome_1")
	assert.ErrorIs(t, err, domain.ErrGameNotFound)
}
