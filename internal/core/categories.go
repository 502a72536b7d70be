package core

import (
	"fmt"
	"sort"
	"strings"

	"lom/internal/domain"
)

// Tree is the category tree for one game: named, ordered buckets of mod ids.
// The implicit Unassigned bucket always exists and is always last. The tree
// holds identifiers only; it never owns mod records, and every lookup into the
// registry tolerates a missing id.
type Tree struct {
	categories []*domain.Category
}

// NewTree returns a tree containing only the Unassigned bucket.
func NewTree() *Tree {
	return &Tree{categories: []*domain.Category{{Name: domain.UnassignedCategory}}}
}

// TreeFromCategories restores a tree from a persisted snapshot, repairing the
// Unassigned bucket's existence and position if needed.
func TreeFromCategories(cats []domain.Category) *Tree {
	t := &Tree{}
	var unassigned *domain.Category
	for i := range cats {
		c := cats[i]
		if c.Name == domain.UnassignedCategory {
			unassigned = &c
			continue
		}
		t.categories = append(t.categories, &c)
	}
	if unassigned == nil {
		unassigned = &domain.Category{Name: domain.UnassignedCategory}
	}
	t.categories = append(t.categories, unassigned)
	return t
}

// Categories returns a snapshot copy of the tree, suitable for persisting.
func (t *Tree) Categories() []domain.Category {
	out := make([]domain.Category, len(t.categories))
	for i, c := range t.categories {
		out[i] = domain.Category{
			Name:      c.Name,
			Mods:      append([]string(nil), c.Mods...),
			Collapsed: c.Collapsed,
		}
	}
	return out
}

func (t *Tree) find(name string) *domain.Category {
	for _, c := range t.categories {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func (t *Tree) unassigned() *domain.Category {
	return t.categories[len(t.categories)-1]
}

// Create adds an empty category just above Unassigned. Names are
// case-sensitive and must be unique.
func (t *Tree) Create(name string) error {
	if t.find(name) != nil {
		return domain.ErrDuplicateName
	}
	cat := &domain.Category{Name: name}
	last := len(t.categories) - 1
	t.categories = append(t.categories[:last], cat, t.categories[last])
	return nil
}

// Delete removes a category, reassigning its mods to Unassigned.
func (t *Tree) Delete(name string) error {
	if name == domain.UnassignedCategory {
		return domain.ErrCannotDeleteUnassigned
	}
	for i, c := range t.categories {
		if c.Name == name {
			t.unassigned().Mods = append(t.unassigned().Mods, c.Mods...)
			t.categories = append(t.categories[:i], t.categories[i+1:]...)
			return nil
		}
	}
	return domain.ErrCategoryNotFound
}

// Rename changes a category's name in place.
func (t *Tree) Rename(oldName, newName string) error {
	if oldName == domain.UnassignedCategory {
		return domain.ErrCannotDeleteUnassigned
	}
	if t.find(newName) != nil {
		return domain.ErrDuplicateName
	}
	cat := t.find(oldName)
	if cat == nil {
		return domain.ErrCategoryNotFound
	}
	cat.Name = newName
	return nil
}

// MoveMod removes a mod id from whatever category holds it and inserts it at
// index in the target category, clamping the index to bounds. This is the
// whole drag-and-drop contract: the UI reports (mod, target, index) and the
// tree does the rest.
func (t *Tree) MoveMod(modID, target string, index int) error {
	dst := t.find(target)
	if dst == nil {
		return domain.ErrCategoryNotFound
	}

	for _, c := range t.categories {
		for i, id := range c.Mods {
			if id == modID {
				c.Mods = append(c.Mods[:i], c.Mods[i+1:]...)
				break
			}
		}
	}

	if index < 0 {
		index = 0
	}
	if index > len(dst.Mods) {
		index = len(dst.Mods)
	}
	dst.Mods = append(dst.Mods[:index], append([]string{modID}, dst.Mods[index:]...)...)
	return nil
}

// ReorderCategory moves a category among its siblings. Unassigned stays
// pinned last; requests past the last valid position clamp instead of
// erroring.
func (t *Tree) ReorderCategory(name string, index int) error {
	if name == domain.UnassignedCategory {
		return nil // pinned
	}
	from := -1
	for i, c := range t.categories {
		if c.Name == name {
			from = i
			break
		}
	}
	if from == -1 {
		return domain.ErrCategoryNotFound
	}

	last := len(t.categories) - 2 // position before Unassigned
	if index < 0 {
		index = 0
	}
	if index > last {
		index = last
	}

	cat := t.categories[from]
	t.categories = append(t.categories[:from], t.categories[from+1:]...)
	t.categories = append(t.categories[:index], append([]*domain.Category{cat}, t.categories[index:]...)...)
	return nil
}

// SortCategory orders a category's mods by case-insensitive display name.
// displayName maps a mod id to its name; missing ids sort by their id.
func (t *Tree) SortCategory(name string, displayName func(id string) string) error {
	cat := t.find(name)
	if cat == nil {
		return domain.ErrCategoryNotFound
	}
	sort.SliceStable(cat.Mods, func(i, j int) bool {
		a, b := cat.Mods[i], cat.Mods[j]
		an, bn := displayName(a), displayName(b)
		if an == "" {
			an = a
		}
		if bn == "" {
			bn = b
		}
		al, bl := strings.ToLower(an), strings.ToLower(bn)
		if al != bl {
			return al < bl
		}
		return a < b // deterministic tie-break
	})
	return nil
}

// CategoryOf returns the name of the category holding a mod id, defaulting to
// Unassigned for unknown ids.
func (t *Tree) CategoryOf(modID string) string {
	for _, c := range t.categories {
		for _, id := range c.Mods {
			if id == modID {
				return c.Name
			}
		}
	}
	return domain.UnassignedCategory
}

// Flatten returns every mod id in category order, Unassigned last, honoring
// each category's internal order. This is the resolver's automatic base rank.
func (t *Tree) Flatten() []string {
	var out []string
	for _, c := range t.categories {
		out = append(out, c.Mods...)
	}
	return out
}

// Reconcile aligns the tree with a fresh registry snapshot: ids no longer in
// the registry are dropped from their categories, and new registry ids are
// appended to Unassigned in discovery order. A mod found in two categories is
// a broken invariant and panics; recovering silently would risk launching the
// game with a wrong order.
func (t *Tree) Reconcile(reg *Registry) {
	seen := make(map[string]string, reg.Len())
	for _, c := range t.categories {
		kept := c.Mods[:0]
		for _, id := range c.Mods {
			if _, ok := reg.Get(id); !ok {
				continue
			}
			if prev, dup := seen[id]; dup {
				panic(fmt.Sprintf("mod %q present in categories %q and %q", id, prev, c.Name))
			}
			seen[id] = c.Name
			kept = append(kept, id)
		}
		c.Mods = kept
	}

	for _, id := range reg.IDs() {
		if _, ok := seen[id]; !ok {
			t.unassigned().Mods = append(t.unassigned().Mods, id)
		}
	}
}
