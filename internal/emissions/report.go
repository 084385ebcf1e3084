package emissions

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/rshade/fieldcarbon/internal/analysis"
	"github.com/rshade/fieldcarbon/internal/geo"
	"github.com/rshade/fieldcarbon/internal/logging"
)

// Report holds every formula output for one analysis.
type Report struct {
	RunID       string `json:"run_id" yaml:"run_id"`
	AnalysisID  string `json:"analysis_id,omitempty" yaml:"analysis_id,omitempty"`
	Crop        string `json:"crop" yaml:"crop"`
	GeoLocation string `json:"geo_location" yaml:"geo_location"`

	FI FIDecision `json:"fi" yaml:"fi"`

	StableSoilCarbonContent  Value  `json:"stable_soil_carbon_content" yaml:"stable_soil_carbon_content"`
	FertilizerApplication    []Item `json:"emissions_from_fertilizers_application" yaml:"emissions_from_fertilizers_application"`
	CropResidueDecomposition Value  `json:"emissions_from_crop_residue_decomposition" yaml:"emissions_from_crop_residue_decomposition"`
	CropResidueBurning       Value  `json:"emissions_from_crop_residue_or_rice_straw_burning" yaml:"emissions_from_crop_residue_or_rice_straw_burning"`
	UreaHydrolysis           Value  `json:"emissions_from_urea_hydrolysis" yaml:"emissions_from_urea_hydrolysis"`
	LimeUse                  Value  `json:"emissions_from_lime_use" yaml:"emissions_from_lime_use"`
	DolomiteUse              Value  `json:"emissions_from_dolomite_use" yaml:"emissions_from_dolomite_use"`
	AgrochemicalUse          Value  `json:"emissions_from_agrochemical_use" yaml:"emissions_from_agrochemical_use"`
	FossilFuelUse            []Item `json:"emissions_from_fossil_fuel_use" yaml:"emissions_from_fossil_fuel_use"`
	ChangeInCarbonContent    Value  `json:"changes_in_carbon_content" yaml:"changes_in_carbon_content"`
	RiceCultivation          Value  `json:"emissions_from_rice_cultivation" yaml:"emissions_from_rice_cultivation"`
}

// Evaluate validates the analysis and runs every formula concurrently.
// The first formula error is returned and no report is produced.
func (c *Calculator) Evaluate(ctx context.Context, a *analysis.Analysis, loc *geo.Location) (*Report, error) {
	if loc == nil {
		return nil, ErrNoLocation
	}
	if err := a.Validate(); err != nil {
		return nil, err
	}

	logger := c.logger.With().
		Str("analysis_id", a.ID).
		Str("trace_id", logging.TraceIDFromContext(ctx)).
		Logger()
	start := time.Now()

	r := &Report{
		RunID:       logging.NewID(),
		AnalysisID:  a.ID,
		Crop:        a.Crop,
		GeoLocation: loc.Slug,
	}

	// Each task writes a distinct field of r.
	g, gctx := errgroup.WithContext(ctx)
	task := func(name string, fn func() error) {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			if err := fn(); err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
			return nil
		})
	}

	task("stable soil carbon content", func() (err error) {
		r.StableSoilCarbonContent, r.FI, err = c.stableSoilCarbonContent(a, loc)
		return err
	})
	task("fertilizer application", func() (err error) {
		r.FertilizerApplication, err = c.FertilizerApplication(a)
		return err
	})
	task("crop residue decomposition", func() (err error) {
		r.CropResidueDecomposition, err = c.CropResidueDecomposition(a)
		return err
	})
	task("crop residue burning", func() (err error) {
		r.CropResidueBurning, err = c.CropResidueBurning(a)
		return err
	})
	task("amendments", func() error {
		r.UreaHydrolysis = c.UreaHydrolysis(a)
		r.LimeUse = c.LimeUse(a)
		r.DolomiteUse = c.DolomiteUse(a)
		r.AgrochemicalUse = c.AgrochemicalUse(a)
		return nil
	})
	task("fossil fuel use", func() (err error) {
		r.FossilFuelUse, err = c.FossilFuelUse(a)
		return err
	})
	task("change in carbon content", func() (err error) {
		r.ChangeInCarbonContent, err = c.ChangeInCarbonContent(a)
		return err
	})
	task("rice cultivation", func() (err error) {
		r.RiceCultivation, err = c.RiceCultivation(a)
		return err
	})

	if err := g.Wait(); err != nil {
		logger.Debug().Err(err).Msg("evaluation failed")
		return nil, fmt.Errorf("analysis %q: %w", a.ID, err)
	}

	logger.Debug().
		Str("fi_level", r.FI.Level.String()).
		Float64("fi", r.FI.Value).
		Bool("fi_fallback", r.FI.FallbackApplied).
		Dur("elapsed", time.Since(start)).
		Msg("analysis evaluated")
	return r, nil
}

// EvaluateAll evaluates analyses concurrently, resolving each one's geo
// location from locations. Reports are returned in input order. The first
// failing analysis cancels the rest.
func (c *Calculator) EvaluateAll(
	ctx context.Context,
	analyses []analysis.Analysis,
	locations *geo.Registry,
) ([]*Report, error) {
	reports := make([]*Report, len(analyses))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.concurrency)
	for i := range analyses {
		a := &analyses[i]
		g.Go(func() error {
			loc, err := locations.Lookup(a.GeoLocation)
			if err != nil {
				return fmt.Errorf("analysis %d (%s): %w", i, a.ID, err)
			}
			r, err := c.Evaluate(gctx, a, loc)
			if err != nil {
				return fmt.Errorf("analysis %d: %w", i, err)
			}
			reports[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	c.logger.Debug().Int("analyses", len(analyses)).Msg("batch evaluated")
	return reports, nil
}
