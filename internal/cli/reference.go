package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/rshade/fieldcarbon/internal/reference"
)

// NewReferenceListCmd lists the catalog tables, or the records of one table.
func NewReferenceListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list [table]",
		Short: "List reference tables or the records of one table",
		Example: `  # All tables with record counts
  fieldcarbon reference list

  # Slugs and titles of the crops table
  fieldcarbon reference list crops`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := activeConfig()
			if err != nil {
				return err
			}
			cat, err := loadCatalog(cfg)
			if err != nil {
				return err
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, tabPadding, ' ', 0)
			if len(args) == 0 {
				listTables(w, cat)
			} else if err = listRecords(w, cat, args[0]); err != nil {
				return err
			}
			return w.Flush()
		},
	}
}

func listTables(w io.Writer, cat *reference.Catalog) {
	fmt.Fprintln(w, "Table\tRecords")
	fmt.Fprintln(w, "-----\t-------")
	for _, t := range cat.Tables() {
		fmt.Fprintf(w, "%s\t%d\n", t.Name(), t.Len())
	}
}

func listRecords(w io.Writer, cat *reference.Catalog, table string) error {
	t, err := cat.Table(table)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, "Slug\tTitle")
	fmt.Fprintln(w, "----\t-----")
	for _, slug := range t.Keys() {
		rec, lookupErr := t.Lookup(slug)
		if lookupErr != nil {
			return lookupErr
		}
		title := ""
		if r, ok := rec.(reference.Record); ok {
			title = r.Label()
		}
		fmt.Fprintf(w, "%s\t%s\n", slug, title)
	}
	return nil
}

// NewReferenceShowCmd prints one record with all of its coefficients.
func NewReferenceShowCmd() *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:     "show <table> <slug>",
		Short:   "Show one reference record",
		Example: `  fieldcarbon reference show fertilizer_types urea`,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := activeConfig()
			if err != nil {
				return err
			}
			cat, err := loadCatalog(cfg)
			if err != nil {
				return err
			}
			t, err := cat.Table(args[0])
			if err != nil {
				return err
			}
			rec, err := t.Lookup(args[1])
			if err != nil {
				return err
			}
			return writeRecord(cmd.OutOrStdout(), rec, output)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "yaml", "output format: yaml or json")
	return cmd
}

// writeRecord encodes v as YAML or indented JSON.
func writeRecord(w io.Writer, v any, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unsupported output format %q", format)
	}
}

// NewReferenceVersionCmd prints the catalog version and whether it
// satisfies reference.compatible.
func NewReferenceVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show the reference catalog version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := activeConfig()
			if err != nil {
				return err
			}
			cat, err := loadCatalog(cfg)
			if err != nil {
				return err
			}
			source := "embedded"
			if cfg.Reference.CatalogFile != "" {
				source = cfg.Reference.CatalogFile
			}
			constraint := cfg.Reference.Compatible
			if constraint == "" {
				constraint = reference.DefaultConstraint
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Catalog version: %s\n", cat.Version)
			fmt.Fprintf(out, "Source: %s\n", source)
			fmt.Fprintf(out, "Compatible range: %s\n", constraint)
			return nil
		},
	}
}
