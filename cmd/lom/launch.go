package main

import (
	"fmt"
	"os"

	"lom/internal/core"

	"github.com/spf13/cobra"
)

var launchOutput string

var launchCmd = &cobra.Command{
	Use:   "launch",
	Short: "Render the launch script for the resolved load order",
	Long: `Render the user-script the game engine reads at startup: one
add_working_directory directive per extra pack folder, then one mod directive
per enabled pack, in load order.

By default the script is printed to stdout; --output writes it to a file
(typically the game's user.script.txt).

Examples:
  lom launch
  lom launch --output ~/.steam/steam/.../scripts/user.script.txt`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withService(func(service *core.Service) error {
			manifest := service.Manifest()
			script := manifest.Script()

			if launchOutput == "" {
				fmt.Println(script)
				return nil
			}

			if err := os.WriteFile(launchOutput, []byte(script), 0644); err != nil {
				return fmt.Errorf("writing launch script: %w", err)
			}
			if verbose {
				fmt.Printf("Wrote %d directive(s) to %s\n", countDirectives(manifest), launchOutput)
			}
			return nil
		})
	},
}

func countDirectives(m core.Manifest) int {
	return len(m.WorkingDirs) + len(m.PackLines)
}

func init() {
	launchCmd.Flags().StringVarP(&launchOutput, "output", "o", "", "write the script to a file instead of stdout")

	rootCmd.AddCommand(launchCmd)
}
