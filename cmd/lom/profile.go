package main

import (
	"fmt"

	"lom/internal/core"

	"github.com/spf13/cobra"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Manage saved load-order profiles",
	Long: `A profile is a named snapshot of the enabled set, the category tree, the
manual order and the order mode. Loading a profile replaces the live state;
mods the profile references that are no longer installed are skipped.`,
}

var profileListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved profiles",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withService(func(service *core.Service) error {
			names, err := service.ListProfiles()
			if err != nil {
				return err
			}
			if len(names) == 0 {
				fmt.Println("No saved profiles.")
				return nil
			}
			for _, name := range names {
				fmt.Println(name)
			}
			return nil
		})
	},
}

var profileSaveCmd = &cobra.Command{
	Use:   "save <name>",
	Short: "Save the current state as a profile",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withService(func(service *core.Service) error {
			if err := service.SaveProfile(args[0]); err != nil {
				return err
			}
			fmt.Printf("Saved profile %q\n", args[0])
			return nil
		})
	},
}

var profileLoadCmd = &cobra.Command{
	Use:   "load <name>",
	Short: "Restore a saved profile",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withService(func(service *core.Service) error {
			if err := service.LoadProfile(args[0]); err != nil {
				return err
			}
			fmt.Printf("Loaded profile %q\n", args[0])
			return nil
		})
	},
}

var profileDeleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Delete a saved profile",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		service, err := initService()
		if err != nil {
			return fmt.Errorf("initializing service: %w", err)
		}
		defer service.Close()

		if err := service.DeleteProfile(args[0]); err != nil {
			return err
		}
		fmt.Printf("Deleted profile %q\n", args[0])
		return nil
	},
}

var profileRenameCmd = &cobra.Command{
	Use:   "rename <old> <new>",
	Short: "Rename a saved profile",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		service, err := initService()
		if err != nil {
			return fmt.Errorf("initializing service: %w", err)
		}
		defer service.Close()

		if err := service.RenameProfile(args[0], args[1]); err != nil {
			return err
		}
		fmt.Printf("Renamed profile %q to %q\n", args[0], args[1])
		return nil
	},
}

func init() {
	profileCmd.AddCommand(profileListCmd)
	profileCmd.AddCommand(profileSaveCmd)
	profileCmd.AddCommand(profileLoadCmd)
	profileCmd.AddCommand(profileDeleteCmd)
	profileCmd.AddCommand(profileRenameCmd)

	rootCmd.AddCommand(profileCmd)
}
