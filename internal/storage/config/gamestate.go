package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"lom/internal/domain"

	"gopkg.in/yaml.v3"
)

// GameState is the persisted per-game state: the category tree, the load-order
// mode, the manual order and the enabled set. It holds the resolver's inputs,
// never its output.
type GameState struct {
	GameID      string            `yaml:"game_id"`
	InstallPath string            `yaml:"install_path,omitempty"` // overrides Steam discovery
	Automatic   bool              `yaml:"automatic"`
	Categories  []domain.Category `yaml:"categories"`
	ManualOrder []string          `yaml:"manual_order,omitempty"`
	Enabled     []string          `yaml:"enabled"`
}

func gameStatePath(configDir, gameID string) string {
	return filepath.Join(configDir, "games", gameID, "state.yaml")
}

// LoadGameState reads a game's persisted state. A missing file yields a fresh
// default state (automatic mode, only the Unassigned category).
func LoadGameState(configDir, gameID string) (*GameState, error) {
	data, err := os.ReadFile(gameStatePath(configDir, gameID))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &GameState{
				GameID:     gameID,
				Automatic:  true,
				Categories: []domain.Category{{Name: domain.UnassignedCategory}},
			}, nil
		}
		return nil, fmt.Errorf("reading game state: %w", err)
	}

	var state GameState
	if err := yaml.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("%w: game state: %v", domain.ErrInvalidConfig, err)
	}
	state.GameID = gameID

	// Older files may predate the implicit category.
	hasUnassigned := false
	for _, c := range state.Categories {
		if c.Name == domain.UnassignedCategory {
			hasUnassigned = true
			break
		}
	}
	if !hasUnassigned {
		state.Categories = append(state.Categories, domain.Category{Name: domain.UnassignedCategory})
	}

	return &state, nil
}

// SaveGameState writes a game's state to disk.
func SaveGameState(configDir string, state *GameState) error {
	data, err := yaml.Marshal(state)
	if err != nil {
		return fmt.Errorf("marshaling game state: %w", err)
	}

	path := gameStatePath(configDir, state.GameID)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating game dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing game state: %w", err)
	}

	return nil
}
