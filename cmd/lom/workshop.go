package main

import (
	"fmt"

	"lom/internal/core"

	"github.com/spf13/cobra"
)

var workshopCmd = &cobra.Command{
	Use:   "workshop",
	Short: "Manage cached workshop metadata",
}

var workshopMergeCmd = &cobra.Command{
	Use:   "merge <snapshot.json>",
	Short: "Merge a workshop metadata snapshot",
	Long: `Merge a metadata snapshot produced by an external workshop query tool:
a JSON array of records with steam_id, title, creator, time_updated and
file_size. Records are cached in the local database and the display names of
matching mods update immediately.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withService(func(service *core.Service) error {
			merged, err := service.MergeWorkshopSnapshot(args[0])
			if err != nil {
				return err
			}
			fmt.Printf("Merged snapshot; %d installed mod(s) matched\n", merged)
			return nil
		})
	},
}

func init() {
	workshopCmd.AddCommand(workshopMergeCmd)
	rootCmd.AddCommand(workshopCmd)
}
