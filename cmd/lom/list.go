package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"lom/internal/domain"

	"github.com/spf13/cobra"
)

var listNoRefresh bool

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List discovered mods",
	Long: `List every mod discovered for the game, with its enabled state, the tier
its pack will load from, and any staleness warnings.

Examples:
  lom list --game warhammer_3
  lom list --game attila --json`,
	RunE: runList,
}

func init() {
	listCmd.Flags().BoolVar(&listNoRefresh, "no-refresh", false, "list the last known state without rescanning")

	rootCmd.AddCommand(listCmd)
}

// flagSummary renders a mod's staleness flags as a short comma list.
func flagSummary(flags domain.Flags) string {
	var parts []string
	if flags.Outdated {
		parts = append(parts, "outdated")
	}
	if flags.DataOlderThanSecondary {
		parts = append(parts, "data<secondary")
	}
	if flags.DataOlderThanContent {
		parts = append(parts, "data<content")
	}
	if flags.SecondaryOlderThanContent {
		parts = append(parts, "secondary<content")
	}
	return strings.Join(parts, ",")
}

func runList(cmd *cobra.Command, args []string) error {
	service, err := initService()
	if err != nil {
		return fmt.Errorf("initializing service: %w", err)
	}
	defer service.Close()

	if listNoRefresh {
		if err := service.RestoreCached(); err != nil {
			return fmt.Errorf("restoring cached state: %w", err)
		}
	} else {
		if err := service.Refresh(context.Background()); err != nil {
			return fmt.Errorf("scanning mods: %w", err)
		}
	}

	mods := service.Mods()

	if jsonOutput {
		type jsonMod struct {
			ID       string `json:"id"`
			Name     string `json:"name"`
			SteamID  string `json:"steam_id,omitempty"`
			Creator  string `json:"creator,omitempty"`
			Enabled  bool   `json:"enabled"`
			Tier     string `json:"tier"`
			Path     string `json:"path"`
			PackType string `json:"pack_type"`
			Updated  string `json:"updated,omitempty"` // workshop update time
			Flags    string `json:"flags,omitempty"`
		}
		out := make([]jsonMod, 0, len(mods))
		for _, mod := range mods {
			updated := ""
			if !mod.UpdatedRemote.IsZero() {
				updated = mod.UpdatedRemote.Format(service.Config().DateFormat)
			}
			out = append(out, jsonMod{
				ID:       mod.ID,
				Name:     mod.Name,
				SteamID:  mod.SteamID,
				Creator:  mod.Creator,
				Enabled:  mod.Enabled,
				Tier:     mod.ResolvedTier().String(),
				Path:     mod.ResolvedPath(),
				PackType: mod.PackType.String(),
				Updated:  updated,
				Flags:    flagSummary(mod.Flags),
			})
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	if verbose {
		fmt.Printf("Mods for %s\n\n", service.Game().Name)
	}

	if len(mods) == 0 {
		fmt.Println("No mods found.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "PACK\tNAME\tENABLED\tTIER\tTYPE\tFLAGS")
	fmt.Fprintln(w, "----\t----\t-------\t----\t----\t-----")

	for _, mod := range mods {
		enabled := colorGreen("yes")
		if !mod.Enabled {
			enabled = "no"
		}
		flags := flagSummary(mod.Flags)
		if flags != "" {
			flags = colorYellow(flags)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			mod.ID,
			truncate(mod.Name, 40),
			enabled,
			mod.ResolvedTier(),
			mod.PackType,
			flags,
		)
	}
	w.Flush()

	for _, warning := range service.Warnings() {
		fmt.Fprintln(os.Stderr, colorYellow("warning: "+warning))
	}

	if verbose {
		fmt.Printf("\nTotal: %d mod(s)\n", len(mods))
	}

	return nil
}
