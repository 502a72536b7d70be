package main

import (
	"fmt"
	"os"

	"lom/internal/core"
	"lom/internal/domain"

	"github.com/spf13/cobra"
)

var refreshCmd = &cobra.Command{
	Use:   "refresh",
	Short: "Rescan the mod folders",
	Long: `Rescan the workshop content, secondary and data folders and rebuild the
mod registry. Scan problems (unreadable files, unrecognized packs) are
reported as warnings, never as failures.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withService(func(service *core.Service) error {
			fmt.Printf("Found %d mod(s)\n", len(service.Mods()))
			for _, warning := range service.Warnings() {
				fmt.Fprintln(os.Stderr, colorYellow("warning: "+warning))
			}
			return nil
		})
	},
}

var gamesCmd = &cobra.Command{
	Use:   "games",
	Short: "List supported games",
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, game := range domain.SupportedGames {
			marker := "  "
			if game.ID == gameID {
				marker = colorGreen("* ")
			}
			fmt.Printf("%s%-16s %s\n", marker, game.ID, game.Name)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(refreshCmd)
	rootCmd.AddCommand(gamesCmd)
}
