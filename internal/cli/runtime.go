package cli

import (
	"github.com/rshade/fieldcarbon/internal/config"
	"github.com/rshade/fieldcarbon/internal/emissions"
	"github.com/rshade/fieldcarbon/internal/geo"
	"github.com/rshade/fieldcarbon/internal/reference"
)

// activeConfig returns the global configuration after validating it.
// Commands that evaluate or read reference data must not run on settings
// that `config validate` rejects.
func activeConfig() (*config.Config, error) {
	cfg := config.GetGlobalConfig()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// loadCatalog returns the configured reference catalog after checking its
// version against reference.compatible.
func loadCatalog(cfg *config.Config) (*reference.Catalog, error) {
	var (
		cat *reference.Catalog
		err error
	)
	if cfg.Reference.CatalogFile != "" {
		cat, err = reference.LoadFile(cfg.Reference.CatalogFile)
	} else {
		cat, err = reference.Default()
	}
	if err != nil {
		return nil, err
	}
	if err = cat.CheckCompatible(cfg.Reference.Compatible); err != nil {
		return nil, err
	}
	logger.Debug().
		Str("catalog_version", cat.Version.String()).
		Str("catalog_file", cfg.Reference.CatalogFile).
		Msg("reference catalog loaded")
	return cat, nil
}

// loadLocations returns the configured geo registry.
func loadLocations(cfg *config.Config) (*geo.Registry, error) {
	if cfg.Reference.GeoFile != "" {
		return geo.LoadFile(cfg.Reference.GeoFile)
	}
	return geo.Default()
}

// newCalculator builds a calculator honoring the engine section.
func newCalculator(cfg *config.Config, cat *reference.Catalog) *emissions.Calculator {
	opts := []emissions.Option{
		emissions.WithConcurrency(cfg.Engine.Concurrency),
		emissions.WithLogger(logger),
	}
	if fb := cfg.FIFallback(); fb != nil {
		opts = append(opts, emissions.WithFIFallback(*fb))
	}
	return emissions.NewCalculator(cat, opts...)
}
