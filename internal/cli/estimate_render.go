package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/rshade/fieldcarbon/internal/emissions"
	"github.com/rshade/fieldcarbon/internal/greenops"
	"github.com/rshade/fieldcarbon/internal/tui"
)

const tabPadding = 2

// renderEstimateTable writes one block per analysis and, when present, a
// summary. Styling is applied only on a terminal.
func renderEstimateTable(w io.Writer, result estimateResult, precision int) error {
	styled := isWriterTerminal(w)

	for i, r := range result.Reports {
		if i > 0 {
			fmt.Fprintln(w)
		}
		heading := fmt.Sprintf("%s  %s @ %s  (FI %s = %s%s)",
			analysisLabel(r, i), r.Crop, r.GeoLocation,
			r.FI.Level, greenops.FormatFloat(r.FI.Value, 2), fallbackNote(r.FI))
		if styled {
			heading = tui.RenderHeading(heading)
		}
		fmt.Fprintln(w, heading)

		tw := tabwriter.NewWriter(w, 0, 0, tabPadding, ' ', tabwriter.AlignRight)
		fmt.Fprintln(tw, "Source\tItem\tt CO2e\t")
		fmt.Fprintln(tw, "------\t----\t------\t")
		for _, row := range reportRows(r) {
			fmt.Fprintf(tw, "%s\t%s\t%s\t\n", row.source, row.item, formatValue(row.value, precision))
		}
		if err := tw.Flush(); err != nil {
			return err
		}

		if i < len(result.Summaries) {
			fmt.Fprintln(w, summaryLine(result.Summaries[i], precision, styled))
		}
	}

	if result.Total != nil && len(result.Reports) > 1 {
		fmt.Fprintln(w)
		text := totalText(*result.Total, precision, styled)
		if styled {
			text = tui.RenderBox(text)
		}
		fmt.Fprintln(w, text)
	}
	return nil
}

func analysisLabel(r *emissions.Report, i int) string {
	if r.AnalysisID != "" {
		return r.AnalysisID
	}
	return fmt.Sprintf("#%d", i+1)
}

func fallbackNote(d emissions.FIDecision) string {
	if d.FallbackApplied {
		return ", fallback"
	}
	return ""
}

type reportRow struct {
	source string
	item   string
	value  emissions.Value
}

// reportRows flattens a report in the order formulas are documented.
// Residue burning is the one kg CO2e figure; its item cell says so.
func reportRows(r *emissions.Report) []reportRow {
	rows := []reportRow{{source: "Stable soil carbon content", value: r.StableSoilCarbonContent}}
	rows = append(rows, itemRows("Fertilizer application", r.FertilizerApplication)...)
	rows = append(rows,
		reportRow{source: "Crop residue decomposition", value: r.CropResidueDecomposition},
		reportRow{source: "Crop residue burning", item: "kg CO2e", value: r.CropResidueBurning},
		reportRow{source: "Urea hydrolysis", value: r.UreaHydrolysis},
		reportRow{source: "Lime use", value: r.LimeUse},
		reportRow{source: "Dolomite use", value: r.DolomiteUse},
		reportRow{source: "Agrochemical use", value: r.AgrochemicalUse},
	)
	rows = append(rows, itemRows("Fossil fuel use", r.FossilFuelUse)...)
	rows = append(rows,
		reportRow{source: "Change in carbon content", value: r.ChangeInCarbonContent},
		reportRow{source: "Rice cultivation", value: r.RiceCultivation},
	)
	return rows
}

func itemRows(source string, items []emissions.Item) []reportRow {
	if len(items) == 0 {
		return []reportRow{{source: source, item: "-", value: emissions.NotApplicable()}}
	}
	rows := make([]reportRow, 0, len(items))
	for _, it := range items {
		label := it.TypeTitle
		if label == "" {
			label = it.Type
		}
		rows = append(rows, reportRow{
			source: source,
			item:   fmt.Sprintf("%s (%s)", label, it.Category),
			value:  emissions.Of(it.Value),
		})
	}
	return rows
}

func formatValue(v emissions.Value, precision int) string {
	amount, ok := v.Get()
	if !ok {
		return "n/a"
	}
	return greenops.FormatFloat(amount, precision)
}

func summaryLine(s greenops.Summary, precision int, styled bool) string {
	net := greenops.FormatTonnes(s.Net, precision)
	if styled {
		net = tui.RenderNet(s.Net, net)
	}
	line := fmt.Sprintf("Emissions %s, removals %s, net %s",
		greenops.FormatTonnes(s.Emissions, precision),
		greenops.FormatTonnes(s.Removals, precision),
		net)
	if !s.Equivalencies.IsEmpty {
		line += " " + s.Equivalencies.CompactText
	}
	return line
}

func totalText(s greenops.Summary, precision int, styled bool) string {
	var b strings.Builder
	b.WriteString("Total: " + summaryLine(s, precision, styled))
	if !s.Equivalencies.IsEmpty {
		b.WriteString("\n" + s.Equivalencies.DisplayText)
	}
	return b.String()
}

// renderEstimateJSON writes the whole result as one indented document.
func renderEstimateJSON(w io.Writer, result estimateResult) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}

// ndjsonLine is one analysis in NDJSON output.
type ndjsonLine struct {
	Report  *emissions.Report `json:"report"`
	Summary *greenops.Summary `json:"summary,omitempty"`
}

// renderEstimateNDJSON writes one JSON object per analysis.
func renderEstimateNDJSON(w io.Writer, result estimateResult) error {
	enc := json.NewEncoder(w)
	for i, r := range result.Reports {
		line := ndjsonLine{Report: r}
		if i < len(result.Summaries) {
			line.Summary = &result.Summaries[i]
		}
		if err := enc.Encode(line); err != nil {
			return err
		}
	}
	return nil
}
