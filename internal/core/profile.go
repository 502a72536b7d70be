package core

import (
	"fmt"

	"lom/internal/domain"
	"lom/internal/storage/config"

	"go.uber.org/zap"
)

// SaveProfile snapshots the current resolver inputs (category tree, manual
// order, enabled set, mode flag) under a name. The resolved order is derived
// state and is never written.
func (s *Service) SaveProfile(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	profile := &domain.Profile{
		Name:        name,
		GameID:      s.game.ID,
		Automatic:   s.automatic,
		Categories:  s.tree.Categories(),
		ManualOrder: append([]string(nil), s.manual...),
		Enabled:     s.enabledIDs(),
	}
	return config.SaveProfile(s.configDir, profile)
}

// LoadProfile replaces the live category tree, manual order and enabled set
// with a saved snapshot. Profile references to mods no longer in the registry
// are dropped silently; the profile was saved against a different filesystem
// state and that is expected, not an error.
func (s *Service) LoadProfile(name string) error {
	profile, err := config.LoadProfile(s.configDir, s.game.ID, name)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.tree = TreeFromCategories(profile.Categories)
	s.tree.Reconcile(s.registry)
	s.automatic = profile.Automatic
	s.manual = EffectiveManualOrder(s.registry, profile.ManualOrder)

	dropped := 0
	for _, mod := range s.registry.Mods() {
		mod.Enabled = false
	}
	for _, id := range profile.Enabled {
		if _, ok := s.registry.Get(id); !ok {
			dropped++
			continue
		}
		s.registry.SetEnabled(id, true)
	}
	if dropped > 0 {
		s.log.Warn("profile references mods no longer installed",
			zap.String("profile", name), zap.Int("dropped", dropped))
	}

	return s.saveStateLocked()
}

// DeleteProfile removes a saved profile.
func (s *Service) DeleteProfile(name string) error {
	return config.DeleteProfile(s.configDir, s.game.ID, name)
}

// RenameProfile renames a saved profile, refusing to clobber an existing one.
func (s *Service) RenameProfile(oldName, newName string) error {
	return config.RenameProfile(s.configDir, s.game.ID, oldName, newName)
}

// ListProfiles returns the saved profile names for this game.
func (s *Service) ListProfiles() ([]string, error) {
	names, err := config.ListProfiles(s.configDir, s.game.ID)
	if err != nil {
		return nil, fmt.Errorf("listing profiles: %w", err)
	}
	return names, nil
}
