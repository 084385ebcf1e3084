package emissions

import (
	"fmt"

	"github.com/rshade/fieldcarbon/internal/analysis"
	"github.com/rshade/fieldcarbon/internal/geo"
)

// EffectiveFI resolves the input factor and applies the configured
// fallback when no rule matches.
func (c *Calculator) EffectiveFI(a *analysis.Analysis, loc *geo.Location) (FIDecision, error) {
	if loc == nil {
		return FIDecision{}, ErrNoLocation
	}
	d := ResolveFI(a, loc)
	if d.Determined() {
		return d, nil
	}
	if c.fiFallback == nil {
		return d, fmt.Errorf("%w: practices %v", ErrUndeterminedFI, a.CropManagementPractices)
	}
	c.logger.Warn().
		Str("analysis_id", a.ID).
		Strs("practices", a.CropManagementPractices).
		Float64("fi", *c.fiFallback).
		Msg("no input factor rule matched, using fallback")
	d.Value = *c.fiFallback
	d.FallbackApplied = true
	return d, nil
}

// StableSoilCarbonContent is (area * SOCref * FLU * FMG * FI) / 20 * 44/12.
// FMG comes from the location's factor for the tillage's management method.
func (c *Calculator) StableSoilCarbonContent(a *analysis.Analysis, loc *geo.Location) (Value, error) {
	v, _, err := c.stableSoilCarbonContent(a, loc)
	return v, err
}

func (c *Calculator) stableSoilCarbonContent(a *analysis.Analysis, loc *geo.Location) (Value, FIDecision, error) {
	if loc == nil {
		return Value{}, FIDecision{}, ErrNoLocation
	}
	tillage, err := c.catalog.Tillages.Resolve(a.Tillage)
	if err != nil {
		return Value{}, FIDecision{}, err
	}
	fmg, err := loc.ManagementFactor(tillage.Method)
	if err != nil {
		return Value{}, FIDecision{}, err
	}
	fi, err := c.EffectiveFI(a, loc)
	if err != nil {
		return Value{}, fi, err
	}
	v := (a.Area * loc.SOCRef * loc.FLU * fmg * fi.Value) / soilCarbonPeriodYears * CO2PerC
	return Of(v), fi, nil
}
