package core

import (
	"sort"

	"lom/internal/domain"
)

// Entry is one resolved load-order line: a mod id, its final rank and the
// physical copy the game will load. Entries are derived output; they are
// never persisted.
type Entry struct {
	ID       string
	Rank     int
	Path     string
	Tier     domain.Tier
	PackType domain.PackType
}

// OrderInput is everything the resolver reads. The registry and tree are
// borrowed read-only; Resolve never mutates them.
type OrderInput struct {
	Registry    *Registry
	Tree        *Tree
	Automatic   bool
	ManualOrder []string // meaningful when !Automatic
}

// Resolve linearizes the load order. Automatic mode flattens the category
// tree (Unassigned last); manual mode replays the persisted sequence,
// dropping mods no longer present and appending newly discovered ones in
// registry order. Enabled normal packs come first, then movie packs, then
// reserved packs, both of the latter in pack-name order regardless of
// category position: that placement is an engine constraint, not a
// preference.
//
// Given identical inputs the output is byte-identical, which the load-order
// string export depends on.
func Resolve(in OrderInput) []Entry {
	reg := in.Registry

	var base []string
	if in.Automatic {
		base = in.Tree.Flatten()
	} else {
		present := make(map[string]bool, len(in.ManualOrder))
		for _, id := range in.ManualOrder {
			if _, ok := reg.Get(id); ok && !present[id] {
				base = append(base, id)
				present[id] = true
			}
		}
		for _, id := range reg.IDs() {
			if !present[id] {
				base = append(base, id)
			}
		}
	}

	var entries []Entry
	var movies, reserved []string

	for _, id := range base {
		mod, ok := reg.Get(id)
		if !ok || !mod.Enabled || len(mod.Locations) == 0 {
			continue
		}
		switch mod.PackType {
		case domain.PackMovie:
			movies = append(movies, id)
		case domain.PackReserved:
			reserved = append(reserved, id)
		default:
			entries = append(entries, entryFor(mod))
		}
	}

	// Movie and reserved packs ignore user ordering entirely.
	sort.Strings(movies)
	sort.Strings(reserved)
	for _, id := range movies {
		mod, _ := reg.Get(id)
		entries = append(entries, entryFor(mod))
	}
	for _, id := range reserved {
		mod, _ := reg.Get(id)
		entries = append(entries, entryFor(mod))
	}

	for i := range entries {
		entries[i].Rank = i
	}
	return entries
}

func entryFor(mod *domain.Mod) Entry {
	return Entry{
		ID:       mod.ID,
		Path:     mod.ResolvedPath(),
		Tier:     mod.ResolvedTier(),
		PackType: mod.PackType,
	}
}

// EffectiveManualOrder returns the manual sequence as the resolver would use
// it: stale ids dropped, new ids appended. Persisted after each resolution so
// the saved order tracks reality.
func EffectiveManualOrder(reg *Registry, manual []string) []string {
	var out []string
	present := make(map[string]bool, len(manual))
	for _, id := range manual {
		if _, ok := reg.Get(id); ok && !present[id] {
			out = append(out, id)
			present[id] = true
		}
	}
	for _, id := range reg.IDs() {
		if !present[id] {
			out = append(out, id)
		}
	}
	return out
}
