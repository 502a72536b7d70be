package main

import (
	"fmt"
	"os"
	"path/filepath"

	"lom/internal/core"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	version = "0.3.0"

	// Global flags
	configDir  string
	dataDir    string
	gameID     string
	verbose    bool
	jsonOutput bool
	noColor    bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "lom",
	Short: "Load Order Manager - mod load orders for Total War games",
	Long: `lom manages mod load orders for the Total War family of games: it scans
the workshop content, secondary and data folders, merges duplicate packs,
resolves the final load order and renders the launch script the game reads.

Use subcommands for operations. Run 'lom --help' for available commands.`,
	Version:       version,
	SilenceUsage:  true, // Runtime errors should not print usage
	SilenceErrors: true, // We handle error output in Execute()
}

func init() {
	// Persistent flags available to all commands
	rootCmd.PersistentFlags().StringVar(&configDir, "config", "", "config directory (default: ~/.config/lom)")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data", "", "data directory (default: ~/.local/share/lom)")
	rootCmd.PersistentFlags().StringVarP(&gameID, "game", "g", "warhammer_3", "game ID to operate on")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "output in JSON format (list, order)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
}

// colorEnabled returns true if colored output should be used (respects --no-color and NO_COLOR env).
// NO_COLOR: if set (any value), color is disabled per https://no-color.org
func colorEnabled() bool {
	if noColor {
		return false
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	return true
}

const (
	ansiReset  = "\033[0m"
	ansiGreen  = "\033[32m"
	ansiRed    = "\033[31m"
	ansiYellow = "\033[33m"
)

// colorGreen returns s with green ANSI when color is enabled, otherwise s.
func colorGreen(s string) string {
	if !colorEnabled() {
		return s
	}
	return ansiGreen + s + ansiReset
}

// colorRed returns s with red ANSI when color is enabled, otherwise s.
func colorRed(s string) string {
	if !colorEnabled() {
		return s
	}
	return ansiRed + s + ansiReset
}

// colorYellow returns s with yellow ANSI when color is enabled, otherwise s.
func colorYellow(s string) string {
	if !colorEnabled() {
		return s
	}
	return ansiYellow + s + ansiReset
}

// Execute runs the root command. Exit codes: 0 = success, 1 = error.
// When --json is set and an error occurs, prints {"error":"..."} to stdout.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		if jsonOutput {
			fmt.Printf(`{"error":%q}`+"\n", err.Error())
		} else {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}

// buildLogger returns the zap logger for CLI runs: human-readable diagnostics
// with --verbose, silence otherwise.
func buildLogger() *zap.Logger {
	if !verbose {
		return zap.NewNop()
	}
	logger, err := zap.NewDevelopment()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}

// getServiceConfig returns the service configuration with defaults.
// Returns an error if UserHomeDir fails and defaults are needed.
func getServiceConfig() (core.ServiceConfig, error) {
	cfg := core.ServiceConfig{
		ConfigDir: configDir,
		DataDir:   dataDir,
		GameID:    gameID,
		Logger:    buildLogger(),
	}

	if cfg.ConfigDir != "" && cfg.DataDir != "" {
		return cfg, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return core.ServiceConfig{}, fmt.Errorf("home directory: %w", err)
	}
	if cfg.ConfigDir == "" {
		cfg.ConfigDir = filepath.Join(homeDir, ".config", "lom")
	}
	if cfg.DataDir == "" {
		cfg.DataDir = filepath.Join(homeDir, ".local", "share", "lom")
	}
	return cfg, nil
}

// initService creates and initializes the core service
func initService() (*core.Service, error) {
	cfg, err := getServiceConfig()
	if err != nil {
		return nil, err
	}

	// Ensure directories exist
	if err := os.MkdirAll(cfg.ConfigDir, 0755); err != nil {
		return nil, fmt.Errorf("creating config dir: %w", err)
	}
	if err := os.MkdirAll(cfg.DataDir, 0755); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}

	return core.NewService(cfg)
}

// truncate shortens s to max runes, appending "..." when cut.
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	if max <= 3 {
		return string(runes[:max])
	}
	return string(runes[:max-3]) + "..."
}
