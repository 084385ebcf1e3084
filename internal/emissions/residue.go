package emissions

import "github.com/rshade/fieldcarbon/internal/analysis"

// CropResidueDecomposition is
// ((area * residue * N_AG + residue * R_BG * N_BG) * 5.736) / 1000.
// It is zero when residue is burned or the crop is a full-burn crop;
// in that case the crop is not looked up.
func (c *Calculator) CropResidueDecomposition(a *analysis.Analysis) (Value, error) {
	if a.HasPractice(analysis.PracticeResidueBurning) || fullBurnCrops[a.Crop] {
		return Of(0), nil
	}
	crop, err := c.catalog.Crops.Resolve(a.Crop)
	if err != nil {
		return Value{}, err
	}
	residue := crop.Residue(a.Yield)
	v := ((a.Area*residue*crop.NAG + residue*crop.RBG*crop.NBG) * residueN2OFactor) / kgPerTonne
	return Of(v), nil
}

// CropResidueBurning is area * residue * EF in kg CO2e, with the rice
// straw factor for rice and the crop residue factor otherwise. It does not depend on
// whether residue burning was reported.
func (c *Calculator) CropResidueBurning(a *analysis.Analysis) (Value, error) {
	crop, err := c.catalog.Crops.Resolve(a.Crop)
	if err != nil {
		return Value{}, err
	}
	ef := cropResidueBurningEF
	if a.Rice() {
		ef = riceStrawBurningEF
	}
	return Of(a.Area * crop.Residue(a.Yield) * ef), nil
}
