package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"lom/internal/domain"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds global application settings. Values come from config.yaml in
// the config directory, with LOM_* environment variables taking precedence.
type Config struct {
	SteamRoot     string `yaml:"steam_root" env:"LOM_STEAM_ROOT"`
	SecondaryPath string `yaml:"secondary_mods_path" env:"LOM_SECONDARY_PATH"`
	DateFormat    string `yaml:"date_format" env:"LOM_DATE_FORMAT" env-default:"2006-01-02 15:04"`
	Keybindings   string `yaml:"keybindings" env:"LOM_KEYBINDINGS" env-default:"vim"`
}

// Load reads configuration from the given directory. A missing config.yaml is
// not an error; defaults and environment variables still apply.
func Load(configDir string) (*Config, error) {
	cfg := &Config{}

	configPath := filepath.Join(configDir, "config.yaml")
	if _, err := os.Stat(configPath); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
		if err := cleanenv.ReadEnv(cfg); err != nil {
			return nil, err
		}
		return cfg, nil
	}

	if err := cleanenv.ReadConfig(configPath, cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrInvalidConfig, configPath, err)
	}
	return cfg, nil
}

// SecondaryModsPath returns the secondary folder for a game, or "" when no
// secondary path is configured.
func (c *Config) SecondaryModsPath(gameID string) string {
	if c.SecondaryPath == "" {
		return ""
	}
	return filepath.Join(c.SecondaryPath, gameID)
}
