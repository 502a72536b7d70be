package core

import (
	"path/filepath"
	"sort"
	"time"

	"lom/internal/domain"
	"lom/internal/workshop"
)

// ScanEntry is one discovered pack file within a tier. Produced by the
// filesystem scanner or fed directly by tests and external collaborators.
type ScanEntry struct {
	Path     string
	ModTime  time.Time
	PackType domain.PackType
	SteamID  string // workshop item id, content tier only
}

// TierScan is everything discovered in one provenance tier.
type TierScan struct {
	Tier    domain.Tier
	Entries []ScanEntry
}

// Registry is an immutable snapshot of every discovered logical mod. It is
// rebuilt wholesale on refresh and published by a single atomic swap; nothing
// mutates a live snapshot except the enabled bit, which only the interactive
// owner touches.
type Registry struct {
	mods  map[string]*domain.Mod
	order []string // discovery order
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{mods: make(map[string]*domain.Mod)}
}

// BuildRegistry rebuilds the full mod set from tier scans. Tiers must be
// passed in precedence order (content, then secondary, then data); copies of
// the same pack name merge into one logical mod, with higher-tier copies
// placed first in the location list. Reserved marker packs are skipped: they
// are engine artifacts, not user mods.
func BuildRegistry(scans []TierScan, known map[string]workshop.Info) *Registry {
	reg := NewRegistry()

	for _, scan := range scans {
		// Deterministic discovery order regardless of filesystem iteration.
		entries := make([]ScanEntry, len(scan.Entries))
		copy(entries, scan.Entries)
		sort.Slice(entries, func(i, j int) bool { return entries[i].Path < entries[j].Path })

		for _, entry := range entries {
			packName := filepath.Base(entry.Path)
			if domain.IsReservedPack(packName) {
				continue
			}

			loc := domain.Location{
				Tier:    scan.Tier,
				Path:    entry.Path,
				ModTime: entry.ModTime,
			}

			mod, ok := reg.mods[packName]
			if !ok {
				mod = &domain.Mod{
					ID:       packName,
					Name:     packName,
					PackType: entry.PackType,
				}
				reg.mods[packName] = mod
				reg.order = append(reg.order, packName)
			}

			// Higher tiers are scanned later and win at load time.
			mod.Locations = append([]domain.Location{loc}, mod.Locations...)
			mod.PackType = entry.PackType
			if entry.SteamID != "" {
				mod.SteamID = entry.SteamID
			}
		}
	}

	// Enrich with workshop metadata where the snapshot knows the item.
	for _, id := range reg.order {
		mod := reg.mods[id]
		if mod.SteamID == "" {
			continue
		}
		if info, ok := known[mod.SteamID]; ok {
			if info.Title != "" {
				mod.Name = info.Title
			}
			mod.Creator = info.Creator
			mod.FileSize = info.FileSize
			if info.TimeUpdated > 0 {
				mod.UpdatedRemote = time.Unix(info.TimeUpdated, 0)
			}
		}
	}

	return reg
}

// Get returns the mod with the given id, if present.
func (r *Registry) Get(id string) (*domain.Mod, bool) {
	mod, ok := r.mods[id]
	return mod, ok
}

// SetEnabled flips a mod's enabled bit. Unknown ids are a no-op: the UI and
// the registry can transiently disagree during a refresh.
func (r *Registry) SetEnabled(id string, enabled bool) {
	if mod, ok := r.mods[id]; ok {
		mod.Enabled = enabled
	}
}

// Mods returns all mods in discovery order.
func (r *Registry) Mods() []*domain.Mod {
	mods := make([]*domain.Mod, 0, len(r.order))
	for _, id := range r.order {
		mods = append(mods, r.mods[id])
	}
	return mods
}

// IDs returns all mod ids in discovery order.
func (r *Registry) IDs() []string {
	ids := make([]string, len(r.order))
	copy(ids, r.order)
	return ids
}

// Len returns the number of logical mods.
func (r *Registry) Len() int {
	return len(r.order)
}

// EnabledIDs returns the ids of all enabled mods in discovery order.
func (r *Registry) EnabledIDs() []string {
	var ids []string
	for _, id := range r.order {
		if r.mods[id].Enabled {
			ids = append(ids, id)
		}
	}
	return ids
}
