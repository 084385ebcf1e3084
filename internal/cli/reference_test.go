package cli_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/rshade/fieldcarbon/internal/reference"
)

func TestReferenceList_Tables(t *testing.T) {
	setupCLITest(t)

	out, _, err := execute(t, nil, "reference", "list")
	require.NoError(t, err)

	cat, err := reference.Default()
	require.NoError(t, err)
	for _, table := range cat.Tables() {
		assert.Contains(t, out, table.Name())
	}
	assert.Contains(t, out, "Records")
}

func TestReferenceList_Records(t *testing.T) {
	setupCLITest(t)

	out, _, err := execute(t, nil, "reference", "list", reference.TableCrops)
	require.NoError(t, err)
	assert.Contains(t, out, "maize")
	assert.Contains(t, out, "Maize")
	assert.Contains(t, out, "rice")
}

func TestReferenceList_UnknownTable(t *testing.T) {
	setupCLITest(t)

	_, _, err := execute(t, nil, "reference", "list", "soils")
	require.ErrorIs(t, err, reference.ErrUnknownTable)
}

func TestReferenceShow(t *testing.T) {
	setupCLITest(t)

	t.Run("yaml", func(t *testing.T) {
		out, _, err := execute(t, nil, "reference", "show", reference.TableCrops, "maize")
		require.NoError(t, err)

		var crop reference.Crop
		require.NoError(t, yaml.Unmarshal([]byte(out), &crop))
		assert.Equal(t, "maize", crop.Slug)
		assert.InDelta(t, 2.6, crop.CAgroforestry, 1e-9)
	})

	t.Run("json", func(t *testing.T) {
		out, _, err := execute(t, nil, "reference", "show", reference.TableCrops, "maize", "-o", "json")
		require.NoError(t, err)

		var crop reference.Crop
		require.NoError(t, json.Unmarshal([]byte(out), &crop))
		assert.Equal(t, "Maize", crop.Title)
	})

	t.Run("unknown slug", func(t *testing.T) {
		_, _, err := execute(t, nil, "reference", "show", reference.TableCrops, "quinoa")
		require.ErrorIs(t, err, reference.ErrUnknownSlug)
	})

	t.Run("unsupported format", func(t *testing.T) {
		_, _, err := execute(t, nil, "reference", "show", reference.TableCrops, "maize", "-o", "toml")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "toml")
	})
}

func TestReferenceVersion(t *testing.T) {
	home := setupCLITest(t)

	out, _, err := execute(t, nil, "reference", "version")
	require.NoError(t, err)

	cat, err := reference.Default()
	require.NoError(t, err)
	assert.Contains(t, out, "Catalog version: "+cat.Version.String())
	assert.Contains(t, out, "Source: embedded")
	assert.Contains(t, out, "Compatible range: "+reference.DefaultConstraint)

	cfgPath := filepath.Join(home, "future.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("reference:\n  compatible: \">=9.0.0\"\n"), 0o600))

	_, _, err = execute(t, nil, "reference", "version", "--config", cfgPath)
	require.ErrorIs(t, err, reference.ErrIncompatibleVersion)
}
