package emissions

import (
	"fmt"

	"github.com/rshade/fieldcarbon/internal/analysis"
	"github.com/rshade/fieldcarbon/internal/geo"
)

// FILevel is the carbon input management level selected for an analysis.
type FILevel int

const (
	// FIUndetermined means no rule matched the reported practices.
	FIUndetermined FILevel = iota
	FIHighWithManure
	FIMedium
	FILow
	FIHighWithoutManure
)

func (l FILevel) String() string {
	switch l {
	case FIUndetermined:
		return "undetermined"
	case FIHighWithManure:
		return "high-with-manure"
	case FIMedium:
		return "medium"
	case FILow:
		return "low"
	case FIHighWithoutManure:
		return "high-without-manure"
	default:
		return fmt.Sprintf("FILevel(%d)", int(l))
	}
}

// MarshalText encodes the level by name.
func (l FILevel) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

// Facts are the predicates the input-factor rules are written against.
type Facts struct {
	NoPractices bool
	Fertilizers bool
	Manures     bool

	// SyntheticOrRotationOrFixing: fertilizers present, or crop rotation
	// or nitrogen fixing practiced.
	SyntheticOrRotationOrFixing bool

	ResidueBurning bool

	// CarbonInput: any of cover crop, green manure or improved fallow.
	CarbonInput bool
}

// NoInputs reports that no fertilizer, manure or practice was reported.
func (f Facts) NoInputs() bool {
	return !f.Fertilizers && !f.Manures && f.NoPractices
}

// FactsOf derives the rule predicates from an analysis.
func FactsOf(a *analysis.Analysis) Facts {
	fertilizers := a.Additions.Any(analysis.CategoryFertilizer)
	return Facts{
		NoPractices: a.NoPractices(),
		Fertilizers: fertilizers,
		Manures:     a.Additions.Any(analysis.CategoryManure),
		SyntheticOrRotationOrFixing: fertilizers ||
			a.HasAnyPractice(analysis.PracticeCropRotation, analysis.PracticeNitrogenFixing),
		ResidueBurning: a.HasPractice(analysis.PracticeResidueBurning),
		CarbonInput:    a.HasAnyPractice(analysis.CarbonInputPractices()...),
	}
}

// Rule is one input-factor policy: when Applies holds, the level is
// selected and Factor supplies its value for a location.
type Rule struct {
	Level   FILevel
	Applies func(Facts) bool
	Factor  func(*geo.Location) float64
}

// Rules returns the input-factor rules in evaluation order. The first
// matching rule wins; the order is part of the contract.
func Rules() []Rule {
	return []Rule{
		{
			Level: FIHighWithManure,
			Applies: func(f Facts) bool {
				return f.NoPractices && !f.Fertilizers && f.Manures
			},
			Factor: func(l *geo.Location) float64 { return l.FIHighWithManure },
		},
		{
			Level: FIMedium,
			Applies: func(f Facts) bool {
				return f.NoInputs() ||
					f.SyntheticOrRotationOrFixing && !f.ResidueBurning && !f.CarbonInput
			},
			Factor: func(*geo.Location) float64 { return MediumFI },
		},
		{
			// The no-inputs clause never fires here: medium claims it first.
			Level: FILow,
			Applies: func(f Facts) bool {
				return f.NoInputs() ||
					f.SyntheticOrRotationOrFixing && f.ResidueBurning
			},
			Factor: func(l *geo.Location) float64 { return l.FILow },
		},
		{
			Level: FIHighWithoutManure,
			Applies: func(f Facts) bool {
				return f.SyntheticOrRotationOrFixing && !f.ResidueBurning && f.CarbonInput
			},
			Factor: func(l *geo.Location) float64 { return l.FIHighWithoutManure },
		},
	}
}

// FIDecision is the outcome of input-factor resolution.
type FIDecision struct {
	Level FILevel `json:"level" yaml:"level"`
	Value float64 `json:"value" yaml:"value"`

	// FallbackApplied is set when Level is undetermined and Value came
	// from the configured fallback.
	FallbackApplied bool `json:"fallback_applied,omitempty" yaml:"fallback_applied,omitempty"`
}

// Determined reports whether a rule matched.
func (d FIDecision) Determined() bool {
	return d.Level != FIUndetermined
}

// ResolveFI applies Rules to the analysis. When no rule matches the
// decision is FIUndetermined with a zero value; callers choose the
// substitute.
func ResolveFI(a *analysis.Analysis, loc *geo.Location) FIDecision {
	facts := FactsOf(a)
	for _, r := range Rules() {
		if r.Applies(facts) {
			return FIDecision{Level: r.Level, Value: r.Factor(loc)}
		}
	}
	return FIDecision{Level: FIUndetermined}
}
