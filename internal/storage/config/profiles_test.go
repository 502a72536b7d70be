package config_test

import (
	"testing"

	"lom/internal/domain"
	"lom/internal/storage/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleProfile(name string) *domain.Profile {
	return &domain.Profile{
		Name:      name,
		GameID:    "warhammer_3",
		Automatic: true,
		Categories: []domain.Category{
			{Name: "Cat", Mods: []string{"a.pack"}},
			{Name: domain.UnassignedCategory},
		},
		Enabled: []string{"a.pack"},
	}
}

func TestProfileRoundTrip(t *testing.T) {
	dir := t.TempDir()
	in := sampleProfile("campaign")
	require.NoError(t, config.SaveProfile(dir, in))

	out, err := config.LoadProfile(dir, "warhammer_3", "campaign")
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestLoadProfileMissing(t *testing.T) {
	_, err := config.LoadProfile(t.TempDir(), "warhammer_3", "nope")
	assert.ErrorIs(t, err, domain.ErrProfileNotFound)
}

func TestListProfiles(t *testing.T) {
	dir := t.TempDir()

	names, err := config.ListProfiles(dir, "warhammer_3")
	require.NoError(t, err)
	assert.Empty(t, names)

	require.NoError(t, config.SaveProfile(dir, sampleProfile("alpha")))
	require.NoError(t, config.SaveProfile(dir, sampleProfile("beta")))

	names, err = config.ListProfiles(dir, "warhammer_3")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"alpha", "beta"}, names)

	// Profiles are per game.
	names, err = config.ListProfiles(dir, "troy")
	require.NoError(t, err)
	assert.Empty(t, names)
}

func TestDeleteProfile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, config.SaveProfile(dir, sampleProfile("gone")))

	require.NoError(t, config.DeleteProfile(dir, "warhammer_3", "gone"))
	assert.ErrorIs(t, config.DeleteProfile(dir, "warhammer_3", "gone"), domain.ErrProfileNotFound)
}

func TestRenameProfile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, config.SaveProfile(dir, sampleProfile("old")))

	require.NoError(t, config.RenameProfile(dir, "warhammer_3", "old", "new"))

	_, err := config.LoadProfile(dir, "warhammer_3", "old")
	assert.ErrorIs(t, err, domain.ErrProfileNotFound)

	renamed, err := config.LoadProfile(dir, "warhammer_3", "new")
	require.NoError(t, err)
	assert.Equal(t, "new", renamed.Name, "the stored name follows the file name")
}

func TestRenameProfileRefusesClobber(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, config.SaveProfile(dir, sampleProfile("one")))
	require.NoError(t, config.SaveProfile(dir, sampleProfile("two")))

	assert.ErrorIs(t, config.RenameProfile(dir, "warhammer_3", "one", "two"), domain.ErrProfileExists)
	assert.ErrorIs(t, config.RenameProfile(dir, "warhammer_3", "ghost", "three"), domain.ErrProfileNotFound)
}
