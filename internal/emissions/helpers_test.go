package emissions

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rshade/fieldcarbon/internal/analysis"
	"github.com/rshade/fieldcarbon/internal/geo"
	"github.com/rshade/fieldcarbon/internal/reference"
)

const delta = 1e-9

func testLocation() *geo.Location {
	return &geo.Location{
		Slug:                "test-region",
		SOCRef:              50,
		FLU:                 0.5,
		FILow:               0.9,
		FIHighWithManure:    1.4,
		FIHighWithoutManure: 1.1,
		ManagementFactors: map[string]float64{
			"fmg_full_tillage":    1.0,
			"fmg_reduced_tillage": 1.1,
			"fmg_no_tillage":      1.2,
		},
	}
}

func testCalculator(t testing.TB, opts ...Option) *Calculator {
	t.Helper()
	cat, err := reference.Default()
	require.NoError(t, err)
	return NewCalculator(cat, opts...)
}

// maizeAnalysis is two hectares of maize yielding 1000 kg/ha with nothing
// reported.
func maizeAnalysis() *analysis.Analysis {
	return &analysis.Analysis{
		ID:          "plot-1",
		GeoLocation: "test-region",
		Area:        2,
		Yield:       1000,
		Crop:        "maize",
		Tillage:     "full-tillage",
	}
}

func riceAnalysis() *analysis.Analysis {
	return &analysis.Analysis{
		ID:               "paddy-1",
		GeoLocation:      "test-region",
		Area:             2,
		Yield:            4000,
		Crop:             analysis.CropRice,
		Tillage:          "full-tillage",
		IrrigationRegime: "intermittent-single-aeration",
		Flooding:         "flooded-pre-season",
		CultivationTime:  120,
		Additions: analysis.Collections{
			NutrientManagements: []analysis.Addition{
				{AdditionType: "compost", Category: analysis.CategoryNutrientManagement, Amount: 4000},
				{AdditionType: "straw-short", Category: analysis.CategoryNutrientManagement, Amount: 9000},
			},
		},
	}
}

func fertilizer(slug string, amount float64) analysis.Addition {
	return analysis.Addition{AdditionType: slug, Category: analysis.CategoryFertilizer, Amount: amount}
}

func manure(slug string, amount float64) analysis.Addition {
	return analysis.Addition{AdditionType: slug, Category: analysis.CategoryManure, Amount: amount}
}

func ptr(v float64) *float64 { return &v }
