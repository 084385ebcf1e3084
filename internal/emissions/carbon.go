package emissions

import "github.com/rshade/fieldcarbon/internal/analysis"

// ChangeInCarbonContent is ((area * C_monoculture) + (area * C_agroforestry)) * 44/12.
// Not applicable to rice.
func (c *Calculator) ChangeInCarbonContent(a *analysis.Analysis) (Value, error) {
	if a.Rice() {
		return NotApplicable(), nil
	}
	crop, err := c.catalog.Crops.Resolve(a.Crop)
	if err != nil {
		return Value{}, err
	}
	return Of(((a.Area * crop.CMonoculture) + (a.Area * crop.CAgroforestry)) * CO2PerC), nil
}
