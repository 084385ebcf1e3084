package emissions

import (
	"github.com/rshade/fieldcarbon/internal/analysis"
	"github.com/rshade/fieldcarbon/internal/reference"
)

// itemize resolves every addition against table and emits one Item per
// addition, in order. It stops at the first addition that does not resolve.
func itemize[T reference.Record](
	additions []analysis.Addition,
	table *reference.Table[T],
	value func(analysis.Addition, T) float64,
) ([]Item, error) {
	items := make([]Item, 0, len(additions))
	for i, add := range additions {
		rec, err := table.Resolve(add.AdditionType)
		if err != nil {
			return nil, &AdditionError{
				Category:     add.Category,
				Index:        i,
				AdditionType: add.AdditionType,
				Err:          err,
			}
		}
		items = append(items, Item{
			Type:      add.AdditionType,
			Category:  add.Category,
			TypeTitle: rec.Label(),
			Value:     value(add, rec),
		})
	}
	return items, nil
}

// FertilizerApplication emits one item per fertilizer then per manure:
// area * amount * %N * (EF application + EF production) / 1000.
func (c *Calculator) FertilizerApplication(a *analysis.Analysis) ([]Item, error) {
	value := func(add analysis.Addition, t reference.InputType) float64 {
		return a.Area * add.Amount * t.NFertilizerType * (t.ApplicationEF + t.ProductionEF) / kgPerTonne
	}

	fertilizers, err := itemize(a.Additions.Fertilizers, c.catalog.FertilizerTypes, value)
	if err != nil {
		return nil, err
	}
	manures, err := itemize(a.Additions.Manures, c.catalog.ManureTypes, value)
	if err != nil {
		return nil, err
	}
	return append(fertilizers, manures...), nil
}

// FossilFuelUse emits one item per fuel, transportation fuel and
// irrigation fuel addition, in that order: amount * EF, where EF is per
// liter when the unit is liters and per gallon otherwise.
func (c *Calculator) FossilFuelUse(a *analysis.Analysis) ([]Item, error) {
	value := func(add analysis.Addition, f reference.FuelType) float64 {
		if add.Unit == analysis.UnitLiters {
			return add.Amount * f.EFPerLiter
		}
		return add.Amount * f.EFPerGallon
	}

	items := []Item{}
	for _, cat := range analysis.FuelCategories() {
		fuels, err := itemize(a.Additions.Of(cat), c.catalog.FuelTypes, value)
		if err != nil {
			return nil, err
		}
		items = append(items, fuels...)
	}
	return items, nil
}
