package emissions

import (
	"encoding/json"
	"strconv"

	"github.com/rshade/fieldcarbon/internal/analysis"
)

// Value is a scalar result in t CO2e. A formula whose conditions are not
// met returns a Value with Applicable false, which is distinct from zero.
type Value struct {
	Amount     float64
	Applicable bool
}

// Of returns an applicable value.
func Of(amount float64) Value {
	return Value{Amount: amount, Applicable: true}
}

// NotApplicable returns the absent value.
func NotApplicable() Value {
	return Value{}
}

// Get returns the amount and whether it applies.
func (v Value) Get() (float64, bool) {
	return v.Amount, v.Applicable
}

// String renders the amount, or "n/a".
func (v Value) String() string {
	if !v.Applicable {
		return "n/a"
	}
	return strconv.FormatFloat(v.Amount, 'g', -1, 64)
}

// MarshalJSON encodes an absent value as null.
func (v Value) MarshalJSON() ([]byte, error) {
	if !v.Applicable {
		return []byte("null"), nil
	}
	return json.Marshal(v.Amount)
}

// UnmarshalJSON decodes null as an absent value.
func (v *Value) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*v = NotApplicable()
		return nil
	}
	var amount float64
	if err := json.Unmarshal(data, &amount); err != nil {
		return err
	}
	*v = Of(amount)
	return nil
}

// MarshalYAML encodes an absent value as null.
func (v Value) MarshalYAML() (any, error) {
	if !v.Applicable {
		return nil, nil
	}
	return v.Amount, nil
}

// Item is one per-addition result of a multi-item formula.
type Item struct {
	Type      string            `json:"type" yaml:"type"`
	Category  analysis.Category `json:"category" yaml:"category"`
	TypeTitle string            `json:"type_title" yaml:"type_title"`
	Value     float64           `json:"value" yaml:"value"`
}
