package analysis

import "fmt"

// Collections holds an analysis's additions partitioned by category.
// Each slice keeps the order in which the additions were reported.
type Collections struct {
	Fertilizers         []Addition `json:"fertilizers,omitempty" yaml:"fertilizers,omitempty" validate:"dive"`
	Manures             []Addition `json:"manures,omitempty" yaml:"manures,omitempty" validate:"dive"`
	Fuels               []Addition `json:"fuels,omitempty" yaml:"fuels,omitempty" validate:"dive"`
	NutrientManagements []Addition `json:"nutrient_managements,omitempty" yaml:"nutrient_managements,omitempty" validate:"dive"`
	TransportationFuels []Addition `json:"transportation_fuels,omitempty" yaml:"transportation_fuels,omitempty" validate:"dive"`
	IrrigationFuels     []Addition `json:"irrigation_fuels,omitempty" yaml:"irrigation_fuels,omitempty" validate:"dive"`
}

// Partition splits a flat list of additions into the six collections,
// preserving the relative order within each category.
func Partition(additions []Addition) (Collections, error) {
	var c Collections
	for i, a := range additions {
		slot := c.slot(a.Category)
		if slot == nil {
			return Collections{}, fmt.Errorf("addition %d (%s): %w: %q",
				i, a.AdditionType, ErrUnknownCategory, a.Category)
		}
		*slot = append(*slot, a)
	}
	return c, nil
}

// Of returns the collection for a category. Unknown categories yield nil.
func (c Collections) Of(cat Category) []Addition {
	if slot := c.slot(cat); slot != nil {
		return *slot
	}
	return nil
}

// Any reports whether the collection for cat has at least one addition.
func (c Collections) Any(cat Category) bool {
	return len(c.Of(cat)) > 0
}

// FirstOfType returns the first addition in cat whose type matches.
func (c Collections) FirstOfType(cat Category, additionType string) (Addition, bool) {
	for _, a := range c.Of(cat) {
		if a.AdditionType == additionType {
			return a, true
		}
	}
	return Addition{}, false
}

// Len is the number of additions across all collections.
func (c Collections) Len() int {
	n := 0
	for _, cat := range Categories() {
		n += len(c.Of(cat))
	}
	return n
}

// slot returns the backing slice for cat, or nil for an unknown category.
func (c *Collections) slot(cat Category) *[]Addition {
	switch cat {
	case CategoryFertilizer:
		return &c.Fertilizers
	case CategoryManure:
		return &c.Manures
	case CategoryFuel:
		return &c.Fuels
	case CategoryNutrientManagement:
		return &c.NutrientManagements
	case CategoryTransportationFuel:
		return &c.TransportationFuels
	case CategoryIrrigationFuel:
		return &c.IrrigationFuels
	default:
		return nil
	}
}
