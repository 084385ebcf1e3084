package emissions

import (
	"fmt"
	"math"

	"github.com/rshade/fieldcarbon/internal/analysis"
)

// RiceCultivation is (EF_rice * days * area * 1e-6) * 25 with
// EF_rice = 1.30 * SF_water * SF_pre-flooding * (1 + rate * CF)^0.59.
// Only the first nutrient-management addition is used. Upland rice has a
// water scaling factor of zero and its irrigation regime is not looked up.
// Not applicable to crops other than rice.
func (c *Calculator) RiceCultivation(a *analysis.Analysis) (Value, error) {
	if !a.Rice() {
		return NotApplicable(), nil
	}
	if len(a.Additions.NutrientManagements) == 0 {
		return Value{}, fmt.Errorf("analysis %q: %w", a.ID, ErrMissingNutrientManagement)
	}
	amendment := a.Additions.NutrientManagements[0]

	water := 0.0
	if a.RiceType != analysis.RiceTypeUpland {
		regime, err := c.catalog.IrrigationRegimes.Resolve(a.IrrigationRegime)
		if err != nil {
			return Value{}, err
		}
		water = regime.ScalingFactor
	}

	flooding, err := c.catalog.FloodingPractices.Resolve(a.Flooding)
	if err != nil {
		return Value{}, err
	}
	mgmt, err := c.catalog.RiceNutrientManagement.Resolve(amendment.AdditionType)
	if err != nil {
		return Value{}, &AdditionError{
			Category:     amendment.Category,
			AdditionType: amendment.AdditionType,
			Err:          err,
		}
	}

	organic := math.Pow(1+amendment.Amount*mgmt.ConversionFactor, organicAmendmentExponent)
	efRice := riceBaselineEF * water * flooding.ScalingFactor * organic
	return Of((efRice * a.CultivationTime * a.Area * kgToGg) * methaneGWP), nil
}
