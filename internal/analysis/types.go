// Package analysis models a single field-season record and the input
// applications (additions) reported for it.
//
// Values in this package are read-only once they reach the emissions
// engine: every calculator receives them by value or pointer and never
// writes back.
package analysis

import "slices"

// CropRice is the crop slug that switches the engine onto the rice
// cultivation path and off the carbon-content path.
const CropRice = "rice"

// RiceTypeUpland marks upland rice, which carries no water-regime emissions.
const RiceTypeUpland = "upland"

// UnitLiters selects the per-liter emission factor for fuel additions.
const UnitLiters = "liters"

// Addition is one reported input application.
type Addition struct {
	// AdditionType is the practice slug; its table depends on Category.
	AdditionType string `json:"addition_type" yaml:"addition_type" validate:"required"`

	// Category partitions additions into the six fixed collections.
	Category Category `json:"category" yaml:"category" validate:"required,category"`

	// Amount is the applied quantity. Additions without an amount never
	// reach this type; see ingest.
	Amount float64 `json:"amount" yaml:"amount"`

	// Unit selects the emission factor variant for fuels ("liters" or other).
	Unit string `json:"unit,omitempty" yaml:"unit,omitempty"`
}

// Analysis is one field-season record.
type Analysis struct {
	ID string `json:"id,omitempty" yaml:"id,omitempty"`

	// GeoLocation is the slug of the region coefficient bundle.
	GeoLocation string `json:"geo_location" yaml:"geo_location" validate:"required"`

	Area  float64 `json:"area" yaml:"area" validate:"gt=0"`
	Yield float64 `json:"yield" yaml:"yield"`
	Crop  string  `json:"crop" yaml:"crop" validate:"required"`

	Tillage          string `json:"tillage,omitempty" yaml:"tillage,omitempty"`
	IrrigationRegime string `json:"irrigation_regime,omitempty" yaml:"irrigation_regime,omitempty"`
	Flooding         string `json:"flooding,omitempty" yaml:"flooding,omitempty"`
	RiceType         string `json:"rice_type,omitempty" yaml:"rice_type,omitempty"`
	CultivationTime  float64 `json:"cultivation_time,omitempty" yaml:"cultivation_time,omitempty"`

	// Nil means not reported.
	LimeAmount         *float64 `json:"lime_amount,omitempty" yaml:"lime_amount,omitempty"`
	DolomiteAmount     *float64 `json:"dolomite_amount,omitempty" yaml:"dolomite_amount,omitempty"`
	AgrochemicalAmount *float64 `json:"agrochemical_amount,omitempty" yaml:"agrochemical_amount,omitempty"`

	CropManagementPractices []string `json:"crop_management_practices,omitempty" yaml:"crop_management_practices,omitempty" validate:"dive,practice"`

	Additions Collections `json:"additions" yaml:"additions"`
}

// Rice reports whether the analysis is for a rice crop.
func (a *Analysis) Rice() bool {
	return a.Crop == CropRice
}

// HasPractice reports whether the crop management practice was reported.
func (a *Analysis) HasPractice(slug string) bool {
	return slices.Contains(a.CropManagementPractices, slug)
}

// HasAnyPractice reports whether at least one of the practices was reported.
func (a *Analysis) HasAnyPractice(slugs ...string) bool {
	return slices.ContainsFunc(slugs, a.HasPractice)
}

// NoPractices reports whether no crop management practice was reported.
func (a *Analysis) NoPractices() bool {
	return len(a.CropManagementPractices) == 0
}
