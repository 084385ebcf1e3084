package greenops

import (
	"github.com/rshade/fieldcarbon/internal/emissions"
)

// Summary combines one report's outputs in t CO2e. Emissions are the
// source formulas; Removals are the soil and biomass carbon terms.
// Not-applicable outputs contribute nothing.
type Summary struct {
	AnalysisID string  `json:"analysis_id,omitempty"`
	Emissions  float64 `json:"emissions_t"`
	Removals   float64 `json:"removals_t"`
	Net        float64 `json:"net_t"`

	// Equivalencies describe Emissions; empty when they are too small or
	// negative.
	Equivalencies EquivalencyOutput `json:"equivalencies"`
}

// Summarize totals a report in t CO2e.
func Summarize(r *emissions.Report) Summary {
	s := Summary{AnalysisID: r.AnalysisID}

	// Residue burning is reported in kg CO2e.
	if kg, ok := r.CropResidueBurning.Get(); ok {
		s.Emissions += kg / TonsToKg
	}
	for _, v := range []emissions.Value{
		r.CropResidueDecomposition,
		r.UreaHydrolysis,
		r.LimeUse,
		r.DolomiteUse,
		r.AgrochemicalUse,
		r.RiceCultivation,
	} {
		if amount, ok := v.Get(); ok {
			s.Emissions += amount
		}
	}
	s.Emissions += sumItems(r.FertilizerApplication) + sumItems(r.FossilFuelUse)

	for _, v := range []emissions.Value{r.StableSoilCarbonContent, r.ChangeInCarbonContent} {
		if amount, ok := v.Get(); ok {
			s.Removals += amount
		}
	}
	s.Net = s.Emissions - s.Removals

	s.Equivalencies = equivalencies(s.Emissions)
	return s
}

// SummarizeAll summarizes each report and returns the element-wise total
// as the last return value.
func SummarizeAll(reports []*emissions.Report) ([]Summary, Summary) {
	summaries := make([]Summary, 0, len(reports))
	var total Summary
	for _, r := range reports {
		s := Summarize(r)
		summaries = append(summaries, s)
		total.Emissions += s.Emissions
		total.Removals += s.Removals
	}
	total.Net = total.Emissions - total.Removals
	total.Equivalencies = equivalencies(total.Emissions)
	return summaries, total
}

func sumItems(items []emissions.Item) float64 {
	var total float64
	for _, it := range items {
		total += it.Value
	}
	return total
}

// equivalencies never fails: a negative gross figure simply has none.
func equivalencies(tonnes float64) EquivalencyOutput {
	eq, err := Calculate(CarbonInput{Value: tonnes, Unit: UnitTonnes})
	if err != nil {
		return EquivalencyOutput{IsEmpty: true}
	}
	return eq
}
