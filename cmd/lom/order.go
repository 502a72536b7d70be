package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"lom/internal/core"

	"github.com/spf13/cobra"
)

var orderCmd = &cobra.Command{
	Use:   "order",
	Short: "Show, export and import the resolved load order",
}

var orderShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the resolved load order",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withService(func(service *core.Service) error {
			entries := service.Resolve()

			if jsonOutput {
				type jsonEntry struct {
					Rank int    `json:"rank"`
					ID   string `json:"id"`
					Path string `json:"path"`
					Tier string `json:"tier"`
				}
				out := make([]jsonEntry, 0, len(entries))
				for _, e := range entries {
					out = append(out, jsonEntry{Rank: e.Rank, ID: e.ID, Path: e.Path, Tier: e.Tier.String()})
				}
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(out)
			}

			if len(entries) == 0 {
				fmt.Println("Nothing to load: no mods are enabled.")
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "RANK\tPACK\tTIER\tPATH")
			for _, e := range entries {
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", e.Rank, e.ID, e.Tier, e.Path)
			}
			return w.Flush()
		})
	},
}

var orderModeCmd = &cobra.Command{
	Use:   "mode [automatic|manual]",
	Short: "Show or set the load-order mode",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withService(func(service *core.Service) error {
			if len(args) == 0 {
				if service.Automatic() {
					fmt.Println("automatic")
				} else {
					fmt.Println("manual")
				}
				return nil
			}
			switch args[0] {
			case "automatic":
				return service.SetAutomatic(true)
			case "manual":
				return service.SetAutomatic(false)
			default:
				return fmt.Errorf("unknown mode %q (want automatic or manual)", args[0])
			}
		})
	},
}

var orderExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the load order as a portable string",
	Long: `Export the resolved load order as a compact string another lom instance
can import. The string carries pack names, workshop ids and content hashes
so the receiver can match mods even when paths differ.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withService(func(service *core.Service) error {
			encoded, err := service.ExportOrderString()
			if err != nil {
				return err
			}
			fmt.Println(encoded)
			return nil
		})
	},
}

var orderImportModlist bool

var orderImportCmd = &cobra.Command{
	Use:   "import [file]",
	Short: "Import a load order from a string or modlist file",
	Long: `Import a load order. With a file argument the file's contents are read;
otherwise stdin is. By default the input is a string produced by
'lom order export'; with --modlist it is a plain modlist of
  mod "some_mod.pack";
lines or bare pack names.

Mods the input references that are not installed are reported and skipped.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var data []byte
		var err error
		if len(args) == 1 {
			data, err = os.ReadFile(args[0])
		} else {
			data, err = io.ReadAll(os.Stdin)
		}
		if err != nil {
			return fmt.Errorf("reading order: %w", err)
		}

		return withService(func(service *core.Service) error {
			result, err := service.ImportOrderString(string(data), orderImportModlist)
			if err != nil {
				return err
			}
			fmt.Printf("Imported %d mod(s)\n", len(result.Order))
			for _, skipped := range result.Skipped {
				fmt.Fprintln(os.Stderr, colorYellow("not installed, skipped: "+skipped))
			}
			return nil
		})
	},
}

func init() {
	orderImportCmd.Flags().BoolVar(&orderImportModlist, "modlist", false, "treat the input as a plain modlist instead of an exported string")

	orderCmd.AddCommand(orderShowCmd)
	orderCmd.AddCommand(orderModeCmd)
	orderCmd.AddCommand(orderExportCmd)
	orderCmd.AddCommand(orderImportCmd)

	rootCmd.AddCommand(orderCmd)
}
