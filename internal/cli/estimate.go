package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rshade/fieldcarbon/internal/config"
	"github.com/rshade/fieldcarbon/internal/emissions"
	"github.com/rshade/fieldcarbon/internal/greenops"
	"github.com/rshade/fieldcarbon/internal/ingest"
)

// estimateOptions holds the estimate command flags.
type estimateOptions struct {
	output      string
	inputFormat string
	precision   int
	noSummary   bool
}

// NewEstimateCmd creates the estimate command, which evaluates every
// analysis in an input document.
func NewEstimateCmd() *cobra.Command {
	var opts estimateOptions

	cmd := &cobra.Command{
		Use:   "estimate <file|->",
		Short: "Estimate emissions for the analyses in a document",
		Long: `Reads a YAML or JSON document of analyses and reports, per analysis, the
nine emission figures in t CO2e. Additions with a blank amount are ignored.

Use "-" to read the document from stdin; --input-format selects the decoder.`,
		Example: `  # Table output
  fieldcarbon estimate fields.yaml

  # One JSON object per analysis
  fieldcarbon estimate fields.json --output ndjson

  # From stdin
  cat fields.json | fieldcarbon estimate - --input-format json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEstimate(cmd, args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output format: table, json or ndjson (default from config)")
	cmd.Flags().StringVar(&opts.inputFormat, "input-format", string(ingest.FormatYAML), "decoder for stdin input: yaml or json")
	cmd.Flags().IntVar(&opts.precision, "precision", -1, "decimal places in table output (default from config)")
	cmd.Flags().BoolVar(&opts.noSummary, "no-summary", false, "omit the emissions summary")

	return cmd
}

func runEstimate(cmd *cobra.Command, input string, opts estimateOptions) error {
	ctx := cmd.Context()
	cfg, err := activeConfig()
	if err != nil {
		return err
	}

	format := opts.output
	if format == "" {
		format = cfg.Output.DefaultFormat
	}
	format = strings.ToLower(format)
	switch format {
	case config.FormatTable, config.FormatJSON, config.FormatNDJSON:
	default:
		return fmt.Errorf("unsupported output format %q", format)
	}
	precision := opts.precision
	if precision < 0 {
		precision = cfg.Output.Precision
	}

	var doc *ingest.Document
	if input == "-" {
		doc, err = ingest.DecodeWithContext(ctx, cmd.InOrStdin(), ingest.Format(strings.ToLower(opts.inputFormat)))
	} else {
		doc, err = ingest.LoadFileWithContext(ctx, input)
	}
	if err != nil {
		return dataError(err)
	}
	analyses, err := doc.Analyses()
	if err != nil {
		return dataError(err)
	}

	cat, err := loadCatalog(cfg)
	if err != nil {
		return err
	}
	locations, err := loadLocations(cfg)
	if err != nil {
		return err
	}

	reports, err := newCalculator(cfg, cat).EvaluateAll(ctx, analyses, locations)
	if err != nil {
		return dataError(err)
	}
	logger.Info().Ctx(ctx).Int("analyses", len(reports)).Msg("estimate complete")

	var result estimateResult
	result.Reports = reports
	if !opts.noSummary {
		summaries, total := greenops.SummarizeAll(reports)
		result.Summaries, result.Total = summaries, &total
	}

	out := cmd.OutOrStdout()
	switch format {
	case config.FormatJSON:
		return renderEstimateJSON(out, result)
	case config.FormatNDJSON:
		return renderEstimateNDJSON(out, result)
	default:
		return renderEstimateTable(out, result, precision)
	}
}

// estimateResult is everything the estimate renderers need.
type estimateResult struct {
	Reports   []*emissions.Report `json:"reports"`
	Summaries []greenops.Summary  `json:"summaries,omitempty"`
	Total     *greenops.Summary   `json:"total,omitempty"`
}
