package main

import (
	"context"
	"fmt"

	"lom/internal/tui"

	"github.com/spf13/cobra"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Open the interactive terminal UI",
	RunE: func(cmd *cobra.Command, args []string) error {
		service, err := initService()
		if err != nil {
			return fmt.Errorf("initializing service: %w", err)
		}
		defer service.Close()

		if err := service.Refresh(context.Background()); err != nil {
			return fmt.Errorf("scanning mods: %w", err)
		}

		return tui.Run(service)
	},
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}
