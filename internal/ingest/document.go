// Package ingest reads analysis documents from YAML or JSON and turns
// them into engine-ready analyses: presence checks, blank-amount
// rejection and partitioning of additions by category.
package ingest

import (
	"fmt"

	"github.com/rshade/fieldcarbon/internal/analysis"
)

// constError is an immutable error type for sentinel errors.
type constError string

func (e constError) Error() string { return string(e) }

// ErrNoAnalyses is returned for a document without any analysis.
const ErrNoAnalyses = constError("document contains no analyses")

// Document is the on-disk shape of an input file.
type Document struct {
	Records []Record `json:"analyses" yaml:"analyses"`
}

// Record is one analysis as written by a user. Amounts are pointers so a
// missing value can be told apart from zero.
type Record struct {
	ID          string   `json:"id,omitempty" yaml:"id,omitempty"`
	GeoLocation string   `json:"geo_location" yaml:"geo_location" validate:"required"`
	Area        *float64 `json:"area" yaml:"area" validate:"required,gt=0"`
	Yield       *float64 `json:"yield" yaml:"yield" validate:"required"`
	Crop        string   `json:"crop" yaml:"crop" validate:"required"`

	Tillage          string  `json:"tillage,omitempty" yaml:"tillage,omitempty"`
	IrrigationRegime string  `json:"irrigation_regime,omitempty" yaml:"irrigation_regime,omitempty"`
	Flooding         string  `json:"flooding,omitempty" yaml:"flooding,omitempty"`
	RiceType         string  `json:"rice_type,omitempty" yaml:"rice_type,omitempty"`
	CultivationTime  float64 `json:"cultivation_time,omitempty" yaml:"cultivation_time,omitempty"`

	LimeAmount         *float64 `json:"lime_amount,omitempty" yaml:"lime_amount,omitempty"`
	DolomiteAmount     *float64 `json:"dolomite_amount,omitempty" yaml:"dolomite_amount,omitempty"`
	AgrochemicalAmount *float64 `json:"agrochemical_amount,omitempty" yaml:"agrochemical_amount,omitempty"`

	CropManagementPractices []string `json:"crop_management_practices,omitempty" yaml:"crop_management_practices,omitempty"`

	Additions []AdditionRecord `json:"additions,omitempty" yaml:"additions,omitempty"`
}

// AdditionRecord is one reported input application in flat form.
type AdditionRecord struct {
	AdditionType string   `json:"addition_type" yaml:"addition_type"`
	Category     string   `json:"category" yaml:"category"`
	Amount       *float64 `json:"amount" yaml:"amount"`
	Unit         string   `json:"unit,omitempty" yaml:"unit,omitempty"`
}

// Present drops additions whose amount was left blank.
func Present(records []AdditionRecord) []AdditionRecord {
	kept := make([]AdditionRecord, 0, len(records))
	for _, r := range records {
		if r.Amount != nil {
			kept = append(kept, r)
		}
	}
	return kept
}

// Analyses converts every record, stopping at the first invalid one.
func (d *Document) Analyses() ([]analysis.Analysis, error) {
	if len(d.Records) == 0 {
		return nil, ErrNoAnalyses
	}
	out := make([]analysis.Analysis, 0, len(d.Records))
	for i := range d.Records {
		a, err := d.Records[i].Analysis()
		if err != nil {
			if id := d.Records[i].ID; id != "" {
				return nil, fmt.Errorf("analysis %d (%s): %w", i, id, err)
			}
			return nil, fmt.Errorf("analysis %d: %w", i, err)
		}
		out = append(out, a)
	}
	return out, nil
}

// Analysis checks presence rules, drops blank additions and partitions
// the rest. The result has passed analysis.Validate.
func (r *Record) Analysis() (analysis.Analysis, error) {
	if err := analysis.Validator().Struct(r); err != nil {
		return analysis.Analysis{}, fmt.Errorf("%w: %w", analysis.ErrInvalidAnalysis, err)
	}

	present := Present(r.Additions)
	additions := make([]analysis.Addition, 0, len(present))
	for _, rec := range present {
		cat, err := analysis.ParseCategory(rec.Category)
		if err != nil {
			return analysis.Analysis{}, fmt.Errorf("addition %s: %w", rec.AdditionType, err)
		}
		additions = append(additions, analysis.Addition{
			AdditionType: rec.AdditionType,
			Category:     cat,
			Amount:       *rec.Amount,
			Unit:         rec.Unit,
		})
	}
	collections, err := analysis.Partition(additions)
	if err != nil {
		return analysis.Analysis{}, err
	}

	a := analysis.Analysis{
		ID:                      r.ID,
		GeoLocation:             r.GeoLocation,
		Area:                    *r.Area,
		Yield:                   *r.Yield,
		Crop:                    r.Crop,
		Tillage:                 r.Tillage,
		IrrigationRegime:        r.IrrigationRegime,
		Flooding:                r.Flooding,
		RiceType:                r.RiceType,
		CultivationTime:         r.CultivationTime,
		LimeAmount:              r.LimeAmount,
		DolomiteAmount:          r.DolomiteAmount,
		AgrochemicalAmount:      r.AgrochemicalAmount,
		CropManagementPractices: r.CropManagementPractices,
		Additions:               collections,
	}
	if err = a.Validate(); err != nil {
		return analysis.Analysis{}, err
	}
	return a, nil
}
