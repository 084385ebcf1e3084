package ingest

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/fieldcarbon/internal/analysis"
)

func TestLoadFile_YAML(t *testing.T) {
	doc, err := LoadFile("testdata/analyses.yaml")
	require.NoError(t, err)
	require.Len(t, doc.Records, 2)

	analyses, err := doc.Analyses()
	require.NoError(t, err)
	require.Len(t, analyses, 2)

	north := analyses[0]
	assert.Equal(t, "north-field", north.ID)
	assert.InDelta(t, 2.0, north.Area, 1e-9)
	require.NotNil(t, north.LimeAmount)
	assert.InDelta(t, 500.0, *north.LimeAmount, 1e-9)
	assert.Nil(t, north.DolomiteAmount)
	assert.Len(t, north.Additions.Fertilizers, 1)
	assert.Len(t, north.Additions.Manures, 1)
	assert.Len(t, north.Additions.Fuels, 1)
	assert.Empty(t, north.Additions.TransportationFuels, "blank amount is dropped")
	assert.Equal(t, analysis.UnitLiters, north.Additions.Fuels[0].Unit)

	paddy := analyses[1]
	assert.True(t, paddy.Rice())
	require.Len(t, paddy.Additions.NutrientManagements, 1)
	assert.Equal(t, analysis.CategoryNutrientManagement, paddy.Additions.NutrientManagements[0].Category)
}

func TestLoadFile_JSON(t *testing.T) {
	doc, err := LoadFile("testdata/analyses.json")
	require.NoError(t, err)

	analyses, err := doc.Analyses()
	require.NoError(t, err)
	require.Len(t, analyses, 1)
	assert.Equal(t, "wheat", analyses[0].Crop)
	assert.Len(t, analyses[0].Additions.IrrigationFuels, 1)
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := LoadFile("testdata/nope.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "opening analysis document")
}

func TestFormatFromPath(t *testing.T) {
	assert.Equal(t, FormatJSON, FormatFromPath("in/plots.JSON"))
	assert.Equal(t, FormatYAML, FormatFromPath("plots.yml"))
	assert.Equal(t, FormatYAML, FormatFromPath("plots"))
}

func TestDecode_Errors(t *testing.T) {
	_, err := Decode(strings.NewReader(`{"analyses": [], "extra": 1}`), FormatJSON)
	require.Error(t, err)

	_, err = Decode(strings.NewReader("analyses:\n  - crop: maize\n    colour: red\n"), FormatYAML)
	require.Error(t, err)

	_, err = Decode(strings.NewReader(""), "toml")
	require.Error(t, err)
}

func TestDocument_NoAnalyses(t *testing.T) {
	doc, err := Decode(strings.NewReader(""), FormatYAML)
	require.NoError(t, err)

	_, err = doc.Analyses()
	require.ErrorIs(t, err, ErrNoAnalyses)
}

func ptr(v float64) *float64 { return &v }

func validRecord() Record {
	return Record{
		ID:          "r1",
		GeoLocation: "tropical-moist",
		Area:        ptr(1),
		Yield:       ptr(0),
		Crop:        "maize",
	}
}

func TestRecord_Analysis(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(r *Record)
		wantErr error
	}{
		{name: "valid with zero yield"},
		{name: "missing area", mutate: func(r *Record) { r.Area = nil }, wantErr: analysis.ErrInvalidAnalysis},
		{name: "zero area", mutate: func(r *Record) { r.Area = ptr(0) }, wantErr: analysis.ErrInvalidAnalysis},
		{name: "missing yield", mutate: func(r *Record) { r.Yield = nil }, wantErr: analysis.ErrInvalidAnalysis},
		{name: "missing crop", mutate: func(r *Record) { r.Crop = "" }, wantErr: analysis.ErrInvalidAnalysis},
		{
			name: "unknown practice",
			mutate: func(r *Record) {
				r.CropManagementPractices = []string{"terracing"}
			},
			wantErr: analysis.ErrInvalidAnalysis,
		},
		{
			name: "unknown category",
			mutate: func(r *Record) {
				r.Additions = []AdditionRecord{{AdditionType: "urea", Category: "pesticide", Amount: ptr(1)}}
			},
			wantErr: analysis.ErrUnknownCategory,
		},
		{
			name: "unknown category with blank amount is dropped first",
			mutate: func(r *Record) {
				r.Additions = []AdditionRecord{{AdditionType: "urea", Category: "pesticide"}}
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := validRecord()
			if tt.mutate != nil {
				tt.mutate(&r)
			}
			_, err := r.Analysis()
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestDocument_AnalysesWrapsIndex(t *testing.T) {
	bad := validRecord()
	bad.ID = "broken"
	bad.Crop = ""
	anonymous := validRecord()
	anonymous.ID = ""
	anonymous.Area = nil

	_, err := (&Document{Records: []Record{validRecord(), bad}}).Analyses()
	require.ErrorIs(t, err, analysis.ErrInvalidAnalysis)
	assert.Contains(t, err.Error(), "analysis 1 (broken)")

	_, err = (&Document{Records: []Record{anonymous}}).Analyses()
	require.Error(t, err)
	assert.True(t, strings.HasPrefix(err.Error(), "analysis 0: "))
}

func TestPresent(t *testing.T) {
	in := []AdditionRecord{
		{AdditionType: "a", Amount: ptr(1)},
		{AdditionType: "b"},
		{AdditionType: "c", Amount: ptr(0)},
	}
	got := Present(in)
	require.Len(t, got, 2)
	assert.Equal(t, "a", got[0].AdditionType)
	assert.Equal(t, "c", got[1].AdditionType)
	assert.Len(t, in, 3)
}
