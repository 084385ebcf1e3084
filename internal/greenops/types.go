// Package greenops turns per-analysis CO2e results into figures a reader
// can relate to: a gross/removal/net summary in tonnes and equivalencies
// such as miles driven or tree seedlings grown, using EPA-published factors.
//
// Nothing here feeds back into the emissions engine; it only consumes
// finished reports.
package greenops

import "fmt"

// EquivalencyType is a category of carbon equivalency.
type EquivalencyType int

const (
	// EquivalencyMilesDriven converts CO2e to miles driven in an average passenger vehicle.
	EquivalencyMilesDriven EquivalencyType = iota

	// EquivalencyTreeSeedlings converts CO2e to tree seedlings grown for 10 years.
	EquivalencyTreeSeedlings

	// EquivalencyHomeDays converts CO2e to days of average US home electricity use.
	EquivalencyHomeDays
)

func (e EquivalencyType) String() string {
	switch e {
	case EquivalencyMilesDriven:
		return "MilesDriven"
	case EquivalencyTreeSeedlings:
		return "TreeSeedlings"
	case EquivalencyHomeDays:
		return "HomeDays"
	default:
		return fmt.Sprintf("EquivalencyType(%d)", e)
	}
}

// CarbonInput is an amount of CO2e in a named unit.
type CarbonInput struct {
	Value float64 `json:"value"`

	// Unit is one of g, kg, t, lb, optionally suffixed with CO2e.
	Unit string `json:"unit"`
}

// EquivalencyResult is a single calculated equivalency.
type EquivalencyResult struct {
	Type           EquivalencyType `json:"type"`
	Value          float64         `json:"value"`
	FormattedValue string          `json:"formatted_value"`

	// Label is the descriptive phrase, e.g. "miles driven".
	Label string `json:"label"`
}

// EquivalencyOutput holds every equivalency for one input.
type EquivalencyOutput struct {
	InputKg float64             `json:"input_kg"`
	Results []EquivalencyResult `json:"results"`

	// DisplayText is the prose form, e.g.
	// "Equivalent to driving ~781 miles or growing ~3 tree seedlings for 10 years".
	DisplayText string `json:"display_text"`

	// CompactText is the short form used in table footers.
	CompactText string `json:"compact_text"`

	IsEmpty bool `json:"is_empty"`
}
