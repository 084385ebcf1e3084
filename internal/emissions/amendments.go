package emissions

import "github.com/rshade/fieldcarbon/internal/analysis"

// UreaHydrolysis is area * urea * 0.20 * 44/12 / 1000 for the first urea
// fertilizer addition. Later urea additions are ignored.
func (c *Calculator) UreaHydrolysis(a *analysis.Analysis) Value {
	urea, ok := a.Additions.FirstOfType(analysis.CategoryFertilizer, "urea")
	if !ok {
		return NotApplicable()
	}
	return Of(a.Area * urea.Amount * ureaCarbonFraction * CO2PerC / kgPerTonne)
}

// LimeUse is (area * lime * 0.12 * 44/12) / 1000.
func (c *Calculator) LimeUse(a *analysis.Analysis) Value {
	return perHectareUse(a.Area, a.LimeAmount, limeCarbonFraction*CO2PerC)
}

// DolomiteUse is (area * dolomite * 0.13 * 44/12) / 1000.
func (c *Calculator) DolomiteUse(a *analysis.Analysis) Value {
	return perHectareUse(a.Area, a.DolomiteAmount, dolomiteCarbonFraction*CO2PerC)
}

// AgrochemicalUse is (area * agrochemical * 19.4) / 1000.
func (c *Calculator) AgrochemicalUse(a *analysis.Analysis) Value {
	return perHectareUse(a.Area, a.AgrochemicalAmount, agrochemicalEF)
}

// perHectareUse applies factor to a per-hectare amount. Unreported and
// non-positive amounts are not applicable.
func perHectareUse(area float64, amount *float64, factor float64) Value {
	if amount == nil || *amount <= 0 {
		return NotApplicable()
	}
	return Of((area * *amount * factor) / kgPerTonne)
}
