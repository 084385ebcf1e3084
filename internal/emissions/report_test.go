package emissions

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/fieldcarbon/internal/analysis"
	"github.com/rshade/fieldcarbon/internal/geo"
	"github.com/rshade/fieldcarbon/internal/logging"
)

func TestEvaluate_Maize(t *testing.T) {
	a := maizeAnalysis()
	a.LimeAmount = ptr(1000)
	a.Additions.Fertilizers = []analysis.Addition{fertilizer("urea", 50)}

	r, err := testCalculator(t).Evaluate(context.Background(), a, testLocation())
	require.NoError(t, err)

	assert.NotEmpty(t, r.RunID)
	assert.Equal(t, "plot-1", r.AnalysisID)
	assert.Equal(t, "maize", r.Crop)
	assert.Equal(t, "test-region", r.GeoLocation)
	assert.Equal(t, FIMedium, r.FI.Level)
	assert.InDelta(t, 1.0, r.FI.Value, delta)

	assert.InDelta(t, (2*50*0.5*1.0*1.0)/20*CO2PerC, r.StableSoilCarbonContent.Amount, delta)
	require.Len(t, r.FertilizerApplication, 1)
	assert.InDelta(t, 2*50*0.46*(4.68+3.3)/1000, r.FertilizerApplication[0].Value, delta)
	assert.InDelta(t, ((2*850*0.006+850*0.22*0.007)*5.736)/1000, r.CropResidueDecomposition.Amount, 1e-9)
	assert.InDelta(t, 2*850*1.6, r.CropResidueBurning.Amount, 1e-6)
	assert.InDelta(t, 2*50*0.20*CO2PerC/1000, r.UreaHydrolysis.Amount, delta)
	assert.InDelta(t, 2*1000*0.12*CO2PerC/1000, r.LimeUse.Amount, delta)
	assert.False(t, r.DolomiteUse.Applicable)
	assert.False(t, r.AgrochemicalUse.Applicable)
	assert.Empty(t, r.FossilFuelUse)
	assert.InDelta(t, 2*2.6*CO2PerC, r.ChangeInCarbonContent.Amount, delta)
	assert.False(t, r.RiceCultivation.Applicable)
}

func TestEvaluate_Rice(t *testing.T) {
	r, err := testCalculator(t).Evaluate(context.Background(), riceAnalysis(), testLocation())
	require.NoError(t, err)

	assert.False(t, r.ChangeInCarbonContent.Applicable)
	assert.True(t, r.RiceCultivation.Applicable)
	assert.Positive(t, r.RiceCultivation.Amount)
	assert.False(t, r.UreaHydrolysis.Applicable)
}

func TestEvaluate_DoesNotMutateInput(t *testing.T) {
	a := riceAnalysis()
	a.CropManagementPractices = []string{analysis.PracticeCropRotation}
	a.Additions.Fertilizers = []analysis.Addition{fertilizer("urea", 10)}
	before := *a
	beforeNM := append([]analysis.Addition(nil), a.Additions.NutrientManagements...)

	_, err := testCalculator(t).Evaluate(context.Background(), a, testLocation())
	require.NoError(t, err)

	assert.Equal(t, before, *a)
	assert.Equal(t, beforeNM, a.Additions.NutrientManagements)
}

func TestEvaluate_Errors(t *testing.T) {
	calc := testCalculator(t)
	ctx := context.Background()

	_, err := calc.Evaluate(ctx, maizeAnalysis(), nil)
	require.ErrorIs(t, err, ErrNoLocation)

	invalid := maizeAnalysis()
	invalid.Area = 0
	_, err = calc.Evaluate(ctx, invalid, testLocation())
	require.ErrorIs(t, err, analysis.ErrInvalidAnalysis)

	undetermined := maizeAnalysis()
	undetermined.CropManagementPractices = []string{analysis.PracticeImprovedFallow}
	_, err = calc.Evaluate(ctx, undetermined, testLocation())
	require.ErrorIs(t, err, ErrUndeterminedFI)
	assert.Contains(t, err.Error(), `analysis "plot-1"`)
	assert.Contains(t, err.Error(), "stable soil carbon content")

	noMgmt := riceAnalysis()
	noMgmt.Additions.NutrientManagements = nil
	_, err = calc.Evaluate(ctx, noMgmt, testLocation())
	require.ErrorIs(t, err, ErrMissingNutrientManagement)

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	_, err = calc.Evaluate(cancelled, maizeAnalysis(), testLocation())
	require.ErrorIs(t, err, context.Canceled)
}

func TestEvaluate_FallbackLogged(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)
	calc := testCalculator(t, WithFIFallback(1.0), WithLogger(logger))

	a := maizeAnalysis()
	a.CropManagementPractices = []string{analysis.PracticeImprovedFallow}
	ctx := logging.ContextWithTraceID(context.Background(), "trace-123")

	r, err := calc.Evaluate(ctx, a, testLocation())
	require.NoError(t, err)
	assert.Equal(t, FIUndetermined, r.FI.Level)
	assert.True(t, r.FI.FallbackApplied)
	assert.InDelta(t, 1.0, r.FI.Value, delta)
	assert.Contains(t, buf.String(), "using fallback")
}

func TestEvaluateAll(t *testing.T) {
	registry, err := geo.Default()
	require.NoError(t, err)

	analyses := make([]analysis.Analysis, 0, 12)
	for i := range 12 {
		var a *analysis.Analysis
		if i%3 == 0 {
			a = riceAnalysis()
		} else {
			a = maizeAnalysis()
		}
		a.ID = string(rune('a' + i))
		a.GeoLocation = "tropical-moist"
		a.Area = float64(i + 1)
		analyses = append(analyses, *a)
	}

	reports, err := testCalculator(t, WithConcurrency(3)).EvaluateAll(context.Background(), analyses, registry)
	require.NoError(t, err)
	require.Len(t, reports, len(analyses))
	for i, r := range reports {
		assert.Equal(t, analyses[i].ID, r.AnalysisID)
		assert.Equal(t, "tropical-moist", r.GeoLocation)
		assert.InDelta(t, (analyses[i].Area*47*0.48*1.0*1.0)/20*CO2PerC, r.StableSoilCarbonContent.Amount, 1e-9)
	}
}

func TestEvaluateAll_UnknownLocation(t *testing.T) {
	registry, err := geo.Default()
	require.NoError(t, err)

	good := *maizeAnalysis()
	good.GeoLocation = "tropical-dry"
	bad := *maizeAnalysis()
	bad.ID = "plot-2"
	bad.GeoLocation = "atlantis"

	_, err = testCalculator(t).EvaluateAll(context.Background(), []analysis.Analysis{good, bad}, registry)
	require.ErrorIs(t, err, geo.ErrUnknownLocation)
	assert.Contains(t, err.Error(), "analysis 1 (plot-2)")
}

func TestEvaluateAll_Empty(t *testing.T) {
	registry, err := geo.Default()
	require.NoError(t, err)

	reports, err := testCalculator(t).EvaluateAll(context.Background(), nil, registry)
	require.NoError(t, err)
	assert.Empty(t, reports)
}

func TestReport_JSON(t *testing.T) {
	r, err := testCalculator(t).Evaluate(context.Background(), maizeAnalysis(), testLocation())
	require.NoError(t, err)

	data, err := json.Marshal(r)
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Nil(t, doc["emissions_from_rice_cultivation"])
	assert.Contains(t, doc, "emissions_from_rice_cultivation")
	assert.Nil(t, doc["emissions_from_lime_use"])
	assert.IsType(t, float64(0), doc["changes_in_carbon_content"])
	assert.Equal(t, []any{}, doc["emissions_from_fertilizers_application"])

	fi, ok := doc["fi"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "medium", fi["level"])
}

func TestValue_JSON(t *testing.T) {
	data, err := json.Marshal(NotApplicable())
	require.NoError(t, err)
	assert.JSONEq(t, "null", string(data))

	data, err = json.Marshal(Of(0))
	require.NoError(t, err)
	assert.JSONEq(t, "0", string(data))

	var v Value
	require.NoError(t, json.Unmarshal([]byte("null"), &v))
	assert.False(t, v.Applicable)
	require.NoError(t, json.Unmarshal([]byte("2.5"), &v))
	amount, ok := v.Get()
	assert.True(t, ok)
	assert.InDelta(t, 2.5, amount, delta)

	assert.Equal(t, "n/a", NotApplicable().String())
}

func BenchmarkEvaluate(b *testing.B) {
	calc := testCalculator(b)
	a := maizeAnalysis()
	a.Additions.Fertilizers = []analysis.Addition{fertilizer("urea", 50), fertilizer("npk-15-15-15", 120)}
	loc := testLocation()
	ctx := context.Background()

	for b.Loop() {
		if _, err := calc.Evaluate(ctx, a, loc); err != nil {
			b.Fatal(err)
		}
	}
}
