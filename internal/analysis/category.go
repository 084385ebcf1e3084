package analysis

import (
	"fmt"
	"strings"
)

// Category is the fixed set of addition collections.
type Category string

const (
	CategoryFertilizer         Category = "fertilizer"
	CategoryManure             Category = "manure"
	CategoryFuel               Category = "fuel"
	CategoryNutrientManagement Category = "nutrient-management"
	CategoryTransportationFuel Category = "transportation-fuel"
	CategoryIrrigationFuel     Category = "irrigation-fuel"
)

// Categories returns every category in collection order.
func Categories() []Category {
	return []Category{
		CategoryFertilizer,
		CategoryManure,
		CategoryFuel,
		CategoryNutrientManagement,
		CategoryTransportationFuel,
		CategoryIrrigationFuel,
	}
}

// FuelCategories returns the fuel collections in the order their
// emissions are reported.
func FuelCategories() []Category {
	return []Category{CategoryFuel, CategoryTransportationFuel, CategoryIrrigationFuel}
}

// Valid reports whether c is one of the six known categories.
func (c Category) Valid() bool {
	for _, known := range Categories() {
		if c == known {
			return true
		}
	}
	return false
}

// ParseCategory normalizes s and returns the matching category.
// Underscores are accepted in place of dashes.
func ParseCategory(s string) (Category, error) {
	c := Category(strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "_", "-"))
	if !c.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownCategory, s)
	}
	return c, nil
}

func (c Category) String() string { return string(c) }
