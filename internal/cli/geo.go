package cli

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/rshade/fieldcarbon/internal/greenops"
)

// NewGeoListCmd lists geo locations with their stock change factors.
func NewGeoListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List geo locations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := activeConfig()
			if err != nil {
				return err
			}
			registry, err := loadLocations(cfg)
			if err != nil {
				return err
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, tabPadding, ' ', 0)
			fmt.Fprintln(w, "Slug\tSOC ref\tFLU\tFI low\tFI high (manure)\tFI high (no manure)\tMethods")
			fmt.Fprintln(w, "----\t-------\t---\t------\t----------------\t-------------------\t-------")
			for _, loc := range registry.All() {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
					loc.Slug,
					greenops.FormatFloat(loc.SOCRef, 1),
					greenops.FormatFloat(loc.FLU, 2),
					greenops.FormatFloat(loc.FILow, 2),
					greenops.FormatFloat(loc.FIHighWithManure, 2),
					greenops.FormatFloat(loc.FIHighWithoutManure, 2),
					strings.Join(loc.Methods(), ","))
			}
			return w.Flush()
		},
	}
}

// NewGeoShowCmd prints one geo location.
func NewGeoShowCmd() *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "show <slug>",
		Short: "Show one geo location",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := activeConfig()
			if err != nil {
				return err
			}
			registry, err := loadLocations(cfg)
			if err != nil {
				return err
			}
			loc, err := registry.Lookup(args[0])
			if err != nil {
				return err
			}
			return writeRecord(cmd.OutOrStdout(), loc, output)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "yaml", "output format: yaml or json")
	return cmd
}
