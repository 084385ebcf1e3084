package cli_test

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/fieldcarbon/internal/cli"
	"github.com/rshade/fieldcarbon/internal/config"
	"github.com/rshade/fieldcarbon/internal/emissions"
	"github.com/rshade/fieldcarbon/internal/ingest"
)

func TestEstimate_Table(t *testing.T) {
	setupCLITest(t)

	out, _, err := execute(t, nil, "estimate", yamlFixture)
	require.NoError(t, err)

	assert.Contains(t, out, "north-field  maize @ tropical-moist  (FI medium = 1.00)")
	assert.Contains(t, out, "paddy  rice @ tropical-moist")
	assert.Contains(t, out, "Source")
	assert.Contains(t, out, "Urea (fertilizer)")
	assert.Contains(t, out, "Rice cultivation")
	assert.Contains(t, out, "kg CO2e")
	assert.Contains(t, out, "n/a")
	assert.Contains(t, out, "Emissions ")
	assert.Contains(t, out, "Total: ")
	// Blank amounts are dropped before evaluation.
	assert.NotContains(t, out, "Gasoline")
	// Not a terminal: no ANSI escapes.
	assert.NotContains(t, out, "\x1b[")
}

func TestEstimate_TablePrecisionAndNoSummary(t *testing.T) {
	setupCLITest(t)

	out, _, err := execute(t, nil, "estimate", jsonFixture, "--precision", "0", "--no-summary")
	require.NoError(t, err)

	assert.Contains(t, out, "east-field  wheat @ tropical-dry")
	assert.NotContains(t, out, "Emissions ")
	assert.NotContains(t, out, "Total: ")
	assert.Contains(t, out, "Diesel (irrigation-fuel)")
}

func TestEstimate_JSON(t *testing.T) {
	setupCLITest(t)

	out, _, err := execute(t, nil, "estimate", yamlFixture, "--output", "json")
	require.NoError(t, err)

	var got struct {
		Reports   []map[string]any `json:"reports"`
		Summaries []map[string]any `json:"summaries"`
		Total     map[string]any   `json:"total"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Len(t, got.Reports, 2)
	require.Len(t, got.Summaries, 2)
	require.NotNil(t, got.Total)

	maize, rice := got.Reports[0], got.Reports[1]
	assert.Equal(t, "north-field", maize["analysis_id"])
	assert.Nil(t, maize["emissions_from_rice_cultivation"])
	assert.NotNil(t, maize["changes_in_carbon_content"])
	assert.Equal(t, "paddy", rice["analysis_id"])
	assert.NotNil(t, rice["emissions_from_rice_cultivation"])
	assert.Nil(t, rice["changes_in_carbon_content"])

	fi, ok := maize["fi"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "medium", fi["level"])
}

func TestEstimate_JSONNoSummary(t *testing.T) {
	setupCLITest(t)

	out, _, err := execute(t, nil, "estimate", yamlFixture, "-o", "json", "--no-summary")
	require.NoError(t, err)
	assert.NotContains(t, out, `"summaries"`)
	assert.NotContains(t, out, `"total"`)
}

func TestEstimate_NDJSON(t *testing.T) {
	setupCLITest(t)

	out, _, err := execute(t, nil, "estimate", yamlFixture, "-o", "ndjson")
	require.NoError(t, err)

	var ids []string
	sc := bufio.NewScanner(strings.NewReader(out))
	for sc.Scan() {
		var line struct {
			Report  map[string]any `json:"report"`
			Summary map[string]any `json:"summary"`
		}
		require.NoError(t, json.Unmarshal(sc.Bytes(), &line))
		assert.NotNil(t, line.Summary)
		id, _ := line.Report["analysis_id"].(string)
		ids = append(ids, id)
	}
	assert.Equal(t, []string{"north-field", "paddy"}, ids)
}

func TestEstimate_OutputFormatFromEnv(t *testing.T) {
	setupCLITest(t)
	t.Setenv("FIELDCARBON_OUTPUT_FORMAT", "ndjson")

	out, _, err := execute(t, nil, "estimate", jsonFixture)
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(out, "\n"))
	assert.True(t, strings.HasPrefix(out, `{"report":`))
}

func TestEstimate_Stdin(t *testing.T) {
	setupCLITest(t)

	f, err := os.Open(jsonFixture)
	require.NoError(t, err)
	defer f.Close()

	out, _, err := execute(t, f, "estimate", "-", "--input-format", "json", "-o", "json")
	require.NoError(t, err)
	assert.Contains(t, out, `"analysis_id": "east-field"`)
}

func TestEstimate_StrictFI(t *testing.T) {
	home := setupCLITest(t)

	cfgPath := filepath.Join(home, "strict.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("engine:\n  fi_fallback: 1\n  strict_fi: true\n"), 0o600))

	doc := `analyses:
  - id: orchard
    geo_location: tropical-moist
    area: 1
    yield: 800
    crop: maize
    tillage: full-tillage
    crop_management_practices: [cover-crop]
    additions:
      - addition_type: cattle-manure
        category: manure
        amount: 100
`
	_, _, err := execute(t, strings.NewReader(doc), "estimate", "-", "--config", cfgPath)
	require.Error(t, err)
	require.ErrorIs(t, err, emissions.ErrUndeterminedFI)
	assert.Contains(t, err.Error(), "orchard")
	assert.Equal(t, 2, cli.ExitCode(err))

	// Without strict mode the same document evaluates with the fallback.
	out, _, err := execute(t, strings.NewReader(doc), "estimate", "-")
	require.NoError(t, err)
	assert.Contains(t, out, "(FI undetermined = 1.00, fallback)")
}

func TestEstimate_Errors(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		stdin    string
		wantErr  error
		contains string
		exitCode int
	}{
		{
			name:     "missing file",
			args:     []string{"estimate", "does-not-exist.yaml"},
			contains: "does-not-exist.yaml",
			exitCode: 2,
		},
		{
			name:     "unsupported output format",
			args:     []string{"estimate", yamlFixture, "-o", "xml"},
			contains: `unsupported output format "xml"`,
			exitCode: 1,
		},
		{
			name:     "empty document",
			args:     []string{"estimate", "-"},
			stdin:    "",
			wantErr:  ingest.ErrNoAnalyses,
			exitCode: 2,
		},
		{
			name:     "unknown location",
			args:     []string{"estimate", "-"},
			stdin:    "analyses:\n  - {id: x, geo_location: atlantis, area: 1, yield: 1, crop: maize}\n",
			contains: "atlantis",
			exitCode: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setupCLITest(t)

			_, _, err := execute(t, strings.NewReader(tt.stdin), tt.args...)
			require.Error(t, err)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			}
			if tt.contains != "" {
				assert.Contains(t, err.Error(), tt.contains)
			}
			assert.Equal(t, tt.exitCode, cli.ExitCode(err))
		})
	}
}

func TestEstimate_RequiresOneArg(t *testing.T) {
	setupCLITest(t)

	_, _, err := execute(t, nil, "estimate")
	require.Error(t, err)
	assert.Equal(t, 1, cli.ExitCode(err))
}

func TestEstimate_RejectsInvalidConfig(t *testing.T) {
	doc := `analyses:
  - id: orchard
    geo_location: tropical-moist
    area: 1
    yield: 800
    crop: maize
    tillage: full-tillage
    crop_management_practices: [cover-crop]
`
	tests := []struct {
		name     string
		content  string
		contains string
	}{
		{"negative fallback", "engine:\n  fi_fallback: -5\n", "FIFallback"},
		{"zero fallback", "engine:\n  fi_fallback: 0\n", "FIFallback"},
		{"precision out of range", "output:\n  default_format: table\n  precision: 42\n", "Precision"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			home := setupCLITest(t)
			cfgPath := filepath.Join(home, "bad.yaml")
			require.NoError(t, os.WriteFile(cfgPath, []byte(tt.content), 0o600))

			out, _, err := execute(t, strings.NewReader(doc), "estimate", "-", "-o", "json", "--config", cfgPath)
			require.ErrorIs(t, err, config.ErrInvalidConfig)
			assert.Contains(t, err.Error(), tt.contains)
			assert.Empty(t, out)
			assert.Equal(t, 1, cli.ExitCode(err))
		})
	}
}

func TestEstimate_BrokenGlobalConfig(t *testing.T) {
	home := setupCLITest(t)
	t.Setenv("FIELDCARBON_LOG_LEVEL", "warn")
	require.NoError(t, os.WriteFile(filepath.Join(home, "config.yaml"),
		[]byte("engine:\n  strict_fi: [true\n"), 0o600))

	out, stderr, err := execute(t, nil, "estimate", jsonFixture)
	require.ErrorIs(t, err, config.ErrInvalidConfig)
	assert.Empty(t, out)
	assert.Contains(t, stderr, "config file could not be parsed")
}
