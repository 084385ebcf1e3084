package emissions

// CO2PerC converts a mass of carbon to a mass of CO2 (molar masses 44/12).
const CO2PerC = 44.0 / 12.0

// Soil carbon.
const (
	// soilCarbonPeriodYears is the IPCC default inventory period.
	soilCarbonPeriodYears = 20.0

	// MediumFI is the input factor for medium carbon input management.
	MediumFI = 1.00
)

// Crop residue.
const (
	// residueN2OFactor converts residue nitrogen to kg CO2e.
	residueN2OFactor = 5.736

	// Burning emission factors, kg CO2e per kg dry matter burned.
	riceStrawBurningEF   = 1.5
	cropResidueBurningEF = 1.6
)

// Amendments. Rates are kg/ha; results are divided by kgPerTonne.
const (
	kgPerTonne = 1000.0

	ureaCarbonFraction     = 0.20
	limeCarbonFraction     = 0.12
	dolomiteCarbonFraction = 0.13

	// agrochemicalEF is kg CO2e per kg of agrochemical applied.
	agrochemicalEF = 19.4
)

// Rice cultivation.
const (
	// riceBaselineEF is the baseline CH4 emission factor, kg CH4/ha/day.
	riceBaselineEF = 1.30

	organicAmendmentExponent = 0.59

	kgToGg = 1e-6

	// methaneGWP is the 100-year global warming potential of CH4.
	methaneGWP = 25.0
)

// fullBurnCrops are assumed to have all residue burned, so nothing
// decomposes. The "coccoa" spelling is the stored slug.
//
//nolint:gochecknoglobals // Package-level lookup table.
var fullBurnCrops = map[string]bool{
	"coccoa": true,
	"coffee": true,
	"tea":    true,
}
