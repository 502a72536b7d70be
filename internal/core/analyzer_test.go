package core_test

import (
	"testing"
	"time"

	"lom/internal/core"
	"lom/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeFlagsOutdated(t *testing.T) {
	reg := core.BuildRegistry([]core.TierScan{
		{Tier: domain.TierData, Entries: []core.ScanEntry{
			entry("/data/old.pack", 100, domain.PackMod),
			entry("/data/fresh.pack", 300, domain.PackMod),
		}},
	}, nil)

	core.ComputeFlags(reg, time.Unix(200, 0))

	old, ok := reg.Get("old.pack")
	require.True(t, ok)
	assert.True(t, old.Flags.Outdated)

	fresh, ok := reg.Get("fresh.pack")
	require.True(t, ok)
	assert.False(t, fresh.Flags.Outdated)
}

func TestComputeFlagsOutdatedUsesNewestCopy(t *testing.T) {
	// The content copy is stale but the data copy is fresh; the newest copy
	// decides, so the mod is not outdated.
	reg := core.BuildRegistry([]core.TierScan{
		{Tier: domain.TierContent, Entries: []core.ScanEntry{entry("/content/1/m.pack", 50, domain.PackMod)}},
		{Tier: domain.TierData, Entries: []core.ScanEntry{entry("/data/m.pack", 300, domain.PackMod)}},
	}, nil)

	core.ComputeFlags(reg, time.Unix(200, 0))

	m, ok := reg.Get("m.pack")
	require.True(t, ok)
	assert.False(t, m.Flags.Outdated)
}

func TestComputeFlagsZeroGameTimeDisablesOutdated(t *testing.T) {
	reg := core.BuildRegistry([]core.TierScan{
		{Tier: domain.TierData, Entries: []core.ScanEntry{entry("/data/m.pack", 1, domain.PackMod)}},
	}, nil)

	core.ComputeFlags(reg, time.Time{})

	m, _ := reg.Get("m.pack")
	assert.False(t, m.Flags.Outdated)
}

func TestComputeFlagsPairwiseStaleness(t *testing.T) {
	reg := core.BuildRegistry([]core.TierScan{
		{Tier: domain.TierContent, Entries: []core.ScanEntry{entry("/content/1/m.pack", 30, domain.PackMod)}},
		{Tier: domain.TierSecondary, Entries: []core.ScanEntry{entry("/secondary/m.pack", 20, domain.PackMod)}},
		{Tier: domain.TierData, Entries: []core.ScanEntry{entry("/data/m.pack", 10, domain.PackMod)}},
	}, nil)

	core.ComputeFlags(reg, time.Time{})

	m, ok := reg.Get("m.pack")
	require.True(t, ok)
	assert.True(t, m.Flags.DataOlderThanSecondary)
	assert.True(t, m.Flags.DataOlderThanContent)
	assert.True(t, m.Flags.SecondaryOlderThanContent)
}

func TestComputeFlagsNoPairWithoutBothCopies(t *testing.T) {
	reg := core.BuildRegistry([]core.TierScan{
		{Tier: domain.TierData, Entries: []core.ScanEntry{entry("/data/m.pack", 10, domain.PackMod)}},
	}, nil)

	core.ComputeFlags(reg, time.Time{})

	m, _ := reg.Get("m.pack")
	assert.False(t, m.Flags.DataOlderThanSecondary)
	assert.False(t, m.Flags.DataOlderThanContent)
	assert.False(t, m.Flags.SecondaryOlderThanContent)
}

func TestComputeFlagsRecomputedWholesale(t *testing.T) {
	reg := core.BuildRegistry([]core.TierScan{
		{Tier: domain.TierData, Entries: []core.ScanEntry{entry("/data/m.pack", 100, domain.PackMod)}},
	}, nil)

	core.ComputeFlags(reg, time.Unix(200, 0))
	m, _ := reg.Get("m.pack")
	require.True(t, m.Flags.Outdated)

	// A later pass with the check disabled must clear the stale flag.
	core.ComputeFlags(reg, time.Time{})
	assert.False(t, m.Flags.Any())
}
