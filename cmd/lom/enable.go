package main

import (
	"context"
	"fmt"

	"lom/internal/core"
	"lom/internal/domain"

	"github.com/spf13/cobra"
)

var enableCmd = &cobra.Command{
	Use:   "enable <pack>...",
	Short: "Enable one or more mods",
	Long: `Mark mods as enabled so they appear in the resolved load order.

Examples:
  lom enable cool_mod.pack
  lom enable first.pack second.pack`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return setEnabled(args, true)
	},
}

var disableCmd = &cobra.Command{
	Use:   "disable <pack>...",
	Short: "Disable one or more mods",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return setEnabled(args, false)
	},
}

func init() {
	rootCmd.AddCommand(enableCmd)
	rootCmd.AddCommand(disableCmd)
}

// ensureMod resolves a pack argument against the registry.
func ensureMod(service *core.Service, pack string) error {
	if _, ok := service.GetMod(pack); !ok {
		return fmt.Errorf("%w: %s", domain.ErrModNotFound, pack)
	}
	return nil
}

func setEnabled(packs []string, enabled bool) error {
	service, err := initService()
	if err != nil {
		return fmt.Errorf("initializing service: %w", err)
	}
	defer service.Close()

	if err := service.Refresh(context.Background()); err != nil {
		return fmt.Errorf("scanning mods: %w", err)
	}

	verb := "Enabled"
	if !enabled {
		verb = "Disabled"
	}

	for _, pack := range packs {
		if err := ensureMod(service, pack); err != nil {
			return err
		}
		if err := service.SetEnabled(pack, enabled); err != nil {
			return fmt.Errorf("updating %s: %w", pack, err)
		}
		fmt.Printf("%s %s\n", verb, pack)
	}

	return nil
}
