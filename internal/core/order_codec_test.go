package core_test

import (
	"testing"

	"lom/internal/core"
	"lom/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderStringRoundTrip(t *testing.T) {
	reg := core.BuildRegistry([]core.TierScan{
		{Tier: domain.TierData, Entries: []core.ScanEntry{
			entry("/data/alpha.pack", 1, domain.PackMod),
			entry("/data/bravo.pack", 2, domain.PackMod),
		}},
	}, nil)
	reg.SetEnabled("bravo.pack", true)

	entries := []core.Entry{
		{ID: "bravo.pack", Rank: 0, Path: "/data/bravo.pack"},
		{ID: "alpha.pack", Rank: 1, Path: "/data/alpha.pack"},
	}

	encoded, err := core.EncodeOrder(reg, entries)
	require.NoError(t, err)
	assert.True(t, len(encoded) > len("lom1:"))

	shared, err := core.DecodeOrder(encoded)
	require.NoError(t, err)
	require.Len(t, shared, 2)
	assert.Equal(t, "bravo.pack", shared[0].ID)
	assert.True(t, shared[0].Enabled)
	assert.Equal(t, "alpha.pack", shared[1].ID)
	assert.False(t, shared[1].Enabled)
}

func TestDecodeOrderRejectsUnknownVersion(t *testing.T) {
	_, err := core.DecodeOrder("lom2:abcdef")
	assert.ErrorIs(t, err, domain.ErrUnknownOrderVersion)

	_, err = core.DecodeOrder("not an order string at all")
	assert.ErrorIs(t, err, domain.ErrUnknownOrderVersion)
}

func TestDecodeOrderRejectsGarbagePayload(t *testing.T) {
	_, err := core.DecodeOrder("lom1:!!!not-base64!!!")
	assert.Error(t, err)
}

func TestImportModlist(t *testing.T) {
	text := `# my list
mod "first.pack";
mod   "second.pack";
bare_third.pack

random chatter that is not a mod line
`
	shared := core.ImportModlist(text)
	require.Len(t, shared, 3)
	assert.Equal(t, "first.pack", shared[0].ID)
	assert.Equal(t, "second.pack", shared[1].ID)
	assert.Equal(t, "bare_third.pack", shared[2].ID)
	for _, sm := range shared {
		assert.True(t, sm.Enabled)
	}
}

func TestMatchSharedExactAndFuzzy(t *testing.T) {
	reg := core.BuildRegistry([]core.TierScan{
		{Tier: domain.TierData, Entries: []core.ScanEntry{
			entry("/data/exact.pack", 1, domain.PackMod),
			entry("/data/cool_mod.pack", 2, domain.PackMod),
		}},
	}, nil)

	shared := []domain.ShareableMod{
		{ID: "exact.pack", Enabled: true},
		{ID: "renamed.pack", Name: "Cool Mod v1.2", Enabled: true},
		{ID: "absent.pack", Name: "Nowhere To Be Found"},
	}

	result := core.MatchShared(reg, shared)
	assert.Equal(t, []string{"exact.pack", "cool_mod.pack"}, result.Order)
	assert.Equal(t, []string{"exact.pack", "cool_mod.pack"}, result.Enabled)
	assert.Equal(t, []string{"absent.pack"}, result.Skipped)
}

func TestMatchSharedPathSuffix(t *testing.T) {
	reg := core.BuildRegistry([]core.TierScan{
		{Tier: domain.TierContent, Entries: []core.ScanEntry{
			entry("/content/555/item.pack", 1, domain.PackMod),
		}},
	}, nil)

	// The sender's id carries a path fragment rather than the bare pack name.
	result := core.MatchShared(reg, []domain.ShareableMod{{ID: "555/item.pack", Enabled: true}})
	assert.Equal(t, []string{"item.pack"}, result.Order)
	assert.Empty(t, result.Skipped)
}

func TestMatchSharedNeverMatchesTwice(t *testing.T) {
	reg := core.BuildRegistry([]core.TierScan{
		{Tier: domain.TierData, Entries: []core.ScanEntry{
			entry("/data/one.pack", 1, domain.PackMod),
		}},
	}, nil)

	result := core.MatchShared(reg, []domain.ShareableMod{
		{ID: "one.pack", Enabled: true},
		{ID: "one.pack", Enabled: true},
	})
	assert.Equal(t, []string{"one.pack"}, result.Order)
	assert.Equal(t, []string{"one.pack"}, result.Skipped)
}

func TestNormalizedNameMatchIsCaseInsensitive(t *testing.T) {
	reg := core.BuildRegistry([]core.TierScan{
		{Tier: domain.TierData, Entries: []core.ScanEntry{
			entry("/data/grand_overhaul.pack", 1, domain.PackMod),
		}},
	}, nil)

	result := core.MatchShared(reg, []domain.ShareableMod{
		{ID: "other-id.pack", Name: "Grand Overhaul", Enabled: true},
	})
	assert.Equal(t, []string{"grand_overhaul.pack"}, result.Order)
}
