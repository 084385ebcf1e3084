// Package geo provides the per-region soil and input coefficients used by
// the soil carbon calculation.
package geo

import (
	"fmt"
	"sort"
)

// constError is an immutable error type for sentinel errors.
type constError string

func (e constError) Error() string { return string(e) }

var (
	// ErrUnknownLocation indicates a geo location slug with no record.
	ErrUnknownLocation = constError("unknown geo location")

	// ErrUnknownMethod indicates a tillage management method the location
	// does not define a factor for.
	ErrUnknownMethod = constError("unknown management method")
)

// Location is a static per-region coefficient bundle.
type Location struct {
	Slug  string `json:"slug" yaml:"slug"`
	Title string `json:"title" yaml:"title"`

	SOCRef              float64 `json:"soc_ref" yaml:"soc_ref"`
	FLU                 float64 `json:"flu" yaml:"flu"`
	FILow               float64 `json:"fi_low" yaml:"fi_low"`
	FIHighWithManure    float64 `json:"fi_high_w_manure" yaml:"fi_high_w_manure"`
	FIHighWithoutManure float64 `json:"fi_high_wo_manure" yaml:"fi_high_wo_manure"`

	// ManagementFactors maps a tillage method name to its fmg.
	ManagementFactors map[string]float64 `json:"fmg" yaml:"fmg"`
}

// ManagementFactor returns the fmg for a tillage method name.
func (l *Location) ManagementFactor(method string) (float64, error) {
	fmg, ok := l.ManagementFactors[method]
	if !ok {
		return 0, fmt.Errorf("%s: %w: %q", l.Slug, ErrUnknownMethod, method)
	}
	return fmg, nil
}

// Methods returns the defined management method names, sorted.
func (l *Location) Methods() []string {
	methods := make([]string, 0, len(l.ManagementFactors))
	for m := range l.ManagementFactors {
		methods = append(methods, m)
	}
	sort.Strings(methods)
	return methods
}
