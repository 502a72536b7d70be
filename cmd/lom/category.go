package main

import (
	"context"
	"fmt"
	"strconv"

	"lom/internal/core"

	"github.com/spf13/cobra"
)

var categoryCmd = &cobra.Command{
	Use:     "category",
	Aliases: []string{"cat"},
	Short:   "Manage mod categories",
	Long: `Categories group mods and drive the automatic load order: categories load
top to bottom, mods within a category in their listed order, and the
Unassigned category always loads last.`,
}

var categoryListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show the category tree",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withService(func(service *core.Service) error {
			for _, cat := range service.Categories() {
				fmt.Printf("%s (%d)\n", cat.Name, len(cat.Mods))
				for _, id := range cat.Mods {
					name := id
					if mod, ok := service.GetMod(id); ok {
						name = fmt.Sprintf("%s  (%s)", mod.Name, id)
					}
					fmt.Printf("  %s\n", name)
				}
			}
			return nil
		})
	},
}

var categoryCreateCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Create a new category",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withService(func(service *core.Service) error {
			if err := service.CreateCategory(args[0]); err != nil {
				return err
			}
			fmt.Printf("Created category %q\n", args[0])
			return nil
		})
	},
}

var categoryDeleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Delete a category, moving its mods to Unassigned",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withService(func(service *core.Service) error {
			if err := service.DeleteCategory(args[0]); err != nil {
				return err
			}
			fmt.Printf("Deleted category %q\n", args[0])
			return nil
		})
	},
}

var categoryRenameCmd = &cobra.Command{
	Use:   "rename <old> <new>",
	Short: "Rename a category",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withService(func(service *core.Service) error {
			if err := service.RenameCategory(args[0], args[1]); err != nil {
				return err
			}
			fmt.Printf("Renamed category %q to %q\n", args[0], args[1])
			return nil
		})
	},
}

var categoryMoveIndex int

var categoryMoveCmd = &cobra.Command{
	Use:   "move <pack> <category>",
	Short: "Move a mod into a category",
	Long: `Move a mod into a category at a given position.

Examples:
  lom category move cool_mod.pack Overhauls
  lom category move cool_mod.pack Overhauls --index 0`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withService(func(service *core.Service) error {
			if err := ensureMod(service, args[0]); err != nil {
				return err
			}
			if err := service.MoveMod(args[0], args[1], categoryMoveIndex); err != nil {
				return err
			}
			fmt.Printf("Moved %s to %q\n", args[0], args[1])
			return nil
		})
	},
}

var categoryReorderCmd = &cobra.Command{
	Use:   "reorder <name> <index>",
	Short: "Move a category among its siblings",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		index, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("index must be a number: %s", args[1])
		}
		return withService(func(service *core.Service) error {
			if err := service.ReorderCategory(args[0], index); err != nil {
				return err
			}
			fmt.Printf("Moved category %q to position %d\n", args[0], index)
			return nil
		})
	},
}

var categorySortCmd = &cobra.Command{
	Use:   "sort <name>",
	Short: "Sort a category's mods by display name",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withService(func(service *core.Service) error {
			if err := service.SortCategory(args[0]); err != nil {
				return err
			}
			fmt.Printf("Sorted category %q\n", args[0])
			return nil
		})
	},
}

func init() {
	categoryMoveCmd.Flags().IntVar(&categoryMoveIndex, "index", 1<<30, "position within the category (default: append)")

	categoryCmd.AddCommand(categoryListCmd)
	categoryCmd.AddCommand(categoryCreateCmd)
	categoryCmd.AddCommand(categoryDeleteCmd)
	categoryCmd.AddCommand(categoryRenameCmd)
	categoryCmd.AddCommand(categoryMoveCmd)
	categoryCmd.AddCommand(categoryReorderCmd)
	categoryCmd.AddCommand(categorySortCmd)

	rootCmd.AddCommand(categoryCmd)
}

// withService runs fn against a freshly scanned service.
func withService(fn func(*core.Service) error) error {
	service, err := initService()
	if err != nil {
		return fmt.Errorf("initializing service: %w", err)
	}
	defer service.Close()

	if err := service.Refresh(context.Background()); err != nil {
		return fmt.Errorf("scanning mods: %w", err)
	}
	return fn(service)
}
