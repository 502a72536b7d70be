package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"lom/internal/domain"

	"gopkg.in/yaml.v3"
)

// ProfileConfig is the YAML representation of a profile
type ProfileConfig struct {
	Name        string            `yaml:"name"`
	GameID      string            `yaml:"game_id"`
	Automatic   bool              `yaml:"automatic"`
	Categories  []domain.Category `yaml:"categories"`
	ManualOrder []string          `yaml:"manual_order,omitempty"`
	Enabled     []string          `yaml:"enabled"`
}

func profilePath(configDir, gameID, profileName string) string {
	return filepath.Join(configDir, "games", gameID, "profiles", profileName+".yaml")
}

// LoadProfile reads a profile from disk
func LoadProfile(configDir, gameID, profileName string) (*domain.Profile, error) {
	data, err := os.ReadFile(profilePath(configDir, gameID, profileName))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, domain.ErrProfileNotFound
		}
		return nil, fmt.Errorf("reading profile: %w", err)
	}

	var cfg ProfileConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing profile: %w", err)
	}

	return &domain.Profile{
		Name:        cfg.Name,
		GameID:      cfg.GameID,
		Automatic:   cfg.Automatic,
		Categories:  cfg.Categories,
		ManualOrder: cfg.ManualOrder,
		Enabled:     cfg.Enabled,
	}, nil
}

// SaveProfile writes a profile to disk
func SaveProfile(configDir string, profile *domain.Profile) error {
	cfg := ProfileConfig{
		Name:        profile.Name,
		GameID:      profile.GameID,
		Automatic:   profile.Automatic,
		Categories:  profile.Categories,
		ManualOrder: profile.ManualOrder,
		Enabled:     profile.Enabled,
	}

	data, err := yaml.Marshal(&cfg)
	if err != nil {
		return fmt.Errorf("marshaling profile: %w", err)
	}

	profileDir := filepath.Join(configDir, "games", profile.GameID, "profiles")
	if err := os.MkdirAll(profileDir, 0755); err != nil {
		return fmt.Errorf("creating profiles dir: %w", err)
	}

	if err := os.WriteFile(profilePath(configDir, profile.GameID, profile.Name), data, 0644); err != nil {
		return fmt.Errorf("writing profile: %w", err)
	}

	return nil
}

// ListProfiles returns all profile names for a game
func ListProfiles(configDir, gameID string) ([]string, error) {
	profileDir := filepath.Join(configDir, "games", gameID, "profiles")
	entries, err := os.ReadDir(profileDir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading profiles dir: %w", err)
	}

	var profiles []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if strings.HasSuffix(name, ".yaml") {
			profiles = append(profiles, strings.TrimSuffix(name, ".yaml"))
		}
	}

	return profiles, nil
}

// DeleteProfile removes a profile from disk
func DeleteProfile(configDir, gameID, profileName string) error {
	if err := os.Remove(profilePath(configDir, gameID, profileName)); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return domain.ErrProfileNotFound
		}
		return fmt.Errorf("deleting profile: %w", err)
	}
	return nil
}

// RenameProfile renames a profile file, failing if the target name is taken.
func RenameProfile(configDir, gameID, oldName, newName string) error {
	newPath := profilePath(configDir, gameID, newName)
	if _, err := os.Stat(newPath); err == nil {
		return domain.ErrProfileExists
	}

	oldPath := profilePath(configDir, gameID, oldName)
	data, err := os.ReadFile(oldPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return domain.ErrProfileNotFound
		}
		return fmt.Errorf("reading profile: %w", err)
	}

	// Rewrite the name field so the file content matches the file name.
	var cfg ProfileConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return fmt.Errorf("parsing profile: %w", err)
	}
	cfg.Name = newName

	out, err := yaml.Marshal(&cfg)
	if err != nil {
		return fmt.Errorf("marshaling profile: %w", err)
	}
	if err := os.WriteFile(newPath, out, 0644); err != nil {
		return fmt.Errorf("writing renamed profile: %w", err)
	}

	return os.Remove(oldPath)
}
