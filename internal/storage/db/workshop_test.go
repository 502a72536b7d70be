package db_test

import (
	"path/filepath"
	"testing"

	"lom/internal/storage/db"
	"lom/internal/workshop"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDB(t *testing.T) *db.DB {
	t.Helper()
	d, err := db.New(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { d.Close() })
	return d
}

func TestSaveAndGetWorkshopMods(t *testing.T) {
	d := newTestDB(t)

	infos := []workshop.Info{
		{SteamID: "100", Title: "First", Creator: "alice", TimeUpdated: 1700000000, FileSize: 1024},
		{SteamID: "200", Title: "Second", Creator: "bob", TimeUpdated: 1700000001, FileSize: 2048},
		{SteamID: "", Title: "no id, skipped"},
	}
	require.NoError(t, d.SaveWorkshopMods("warhammer_3", infos))

	got, err := d.GetWorkshopMods("warhammer_3")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "First", got["100"].Title)
	assert.Equal(t, "bob", got["200"].Creator)
	assert.Equal(t, int64(2048), got["200"].FileSize)
}

func TestSaveWorkshopModsUpserts(t *testing.T) {
	d := newTestDB(t)

	require.NoError(t, d.SaveWorkshopMods("troy", []workshop.Info{
		{SteamID: "100", Title: "Old Title", TimeUpdated: 1},
	}))
	require.NoError(t, d.SaveWorkshopMods("troy", []workshop.Info{
		{SteamID: "100", Title: "New Title", TimeUpdated: 2},
	}))

	got, err := d.GetWorkshopMods("troy")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "New Title", got["100"].Title)
	assert.Equal(t, int64(2), got["100"].TimeUpdated)
}

func TestGetWorkshopModsScopedByGame(t *testing.T) {
	d := newTestDB(t)

	require.NoError(t, d.SaveWorkshopMods("warhammer_3", []workshop.Info{{SteamID: "100", Title: "WH3"}}))
	require.NoError(t, d.SaveWorkshopMods("attila", []workshop.Info{{SteamID: "100", Title: "Attila"}}))

	wh3, err := d.GetWorkshopMods("warhammer_3")
	require.NoError(t, err)
	assert.Equal(t, "WH3", wh3["100"].Title)

	attila, err := d.GetWorkshopMods("attila")
	require.NoError(t, err)
	assert.Equal(t, "Attila", attila["100"].Title)

	empty, err := d.GetWorkshopMods("shogun_2")
	require.NoError(t, err)
	assert.Empty(t, empty)
}
