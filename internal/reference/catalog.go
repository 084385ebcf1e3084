package reference

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/Masterminds/semver/v3"
	"gopkg.in/yaml.v3"
)

// Table names, as used in catalog files and on the command line.
const (
	TableTillages               = "tillages"
	TableFertilizerTypes        = "fertilizer_types"
	TableManureTypes            = "manure_types"
	TableFuelTypes              = "fuel_types"
	TableCrops                  = "crops"
	TableIrrigationRegimes      = "irrigation_regimes"
	TableFloodingPractices      = "flooding_practices"
	TableRiceNutrientManagement = "rice_nutrient_management"
)

// DefaultConstraint is the catalog version range this build understands.
const DefaultConstraint = ">= 1.0.0, < 2.0.0"

//go:embed data/catalog.yaml
var defaultCatalogYAML []byte

// Catalog bundles every reference table.
type Catalog struct {
	Version *semver.Version

	Tillages               *Table[Tillage]
	FertilizerTypes        *Table[InputType]
	ManureTypes            *Table[InputType]
	FuelTypes              *Table[FuelType]
	Crops                  *Table[Crop]
	IrrigationRegimes      *Table[ScalingFactor]
	FloodingPractices      *Table[ScalingFactor]
	RiceNutrientManagement *Table[NutrientManagement]
}

// catalogFile is the on-disk shape of a catalog.
type catalogFile struct {
	Version                string               `yaml:"version"`
	Tillages               []Tillage            `yaml:"tillages"`
	FertilizerTypes        []InputType          `yaml:"fertilizer_types"`
	ManureTypes            []InputType          `yaml:"manure_types"`
	FuelTypes              []FuelType           `yaml:"fuel_types"`
	Crops                  []Crop               `yaml:"crops"`
	IrrigationRegimes      []ScalingFactor      `yaml:"irrigation_regimes"`
	FloodingPractices      []ScalingFactor      `yaml:"flooding_practices"`
	RiceNutrientManagement []NutrientManagement `yaml:"rice_nutrient_management"`
}

//nolint:gochecknoglobals // The embedded catalog is parsed once per process.
var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
	defaultErr     error
)

// Default returns the catalog embedded in the binary.
func Default() (*Catalog, error) {
	defaultOnce.Do(func() {
		defaultCatalog, defaultErr = Load(bytes.NewReader(defaultCatalogYAML))
	})
	return defaultCatalog, defaultErr
}

// LoadFile reads a catalog from a YAML file.
func LoadFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening reference catalog: %w", err)
	}
	defer f.Close()

	cat, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("loading reference catalog %s: %w", path, err)
	}
	return cat, nil
}

// Load decodes a YAML catalog and indexes every table.
func Load(r io.Reader) (*Catalog, error) {
	var raw catalogFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("parsing reference catalog: %w", err)
	}

	if raw.Version == "" {
		return nil, errors.New("reference catalog has no version")
	}
	v, err := semver.NewVersion(raw.Version)
	if err != nil {
		return nil, fmt.Errorf("reference catalog version %q: %w", raw.Version, err)
	}

	cat := &Catalog{Version: v}
	if cat.Tillages, err = NewTable(TableTillages, raw.Tillages); err != nil {
		return nil, err
	}
	if cat.FertilizerTypes, err = NewTable(TableFertilizerTypes, raw.FertilizerTypes); err != nil {
		return nil, err
	}
	if cat.ManureTypes, err = NewTable(TableManureTypes, raw.ManureTypes); err != nil {
		return nil, err
	}
	if cat.FuelTypes, err = NewTable(TableFuelTypes, raw.FuelTypes); err != nil {
		return nil, err
	}
	if cat.Crops, err = NewTable(TableCrops, raw.Crops); err != nil {
		return nil, err
	}
	if cat.IrrigationRegimes, err = NewTable(TableIrrigationRegimes, raw.IrrigationRegimes); err != nil {
		return nil, err
	}
	if cat.FloodingPractices, err = NewTable(TableFloodingPractices, raw.FloodingPractices); err != nil {
		return nil, err
	}
	if cat.RiceNutrientManagement, err = NewTable(TableRiceNutrientManagement, raw.RiceNutrientManagement); err != nil {
		return nil, err
	}
	return cat, nil
}

// CheckCompatible reports ErrIncompatibleVersion when the catalog version
// falls outside constraint.
func (c *Catalog) CheckCompatible(constraint string) error {
	if constraint == "" {
		constraint = DefaultConstraint
	}
	cons, err := semver.NewConstraint(constraint)
	if err != nil {
		return fmt.Errorf("parsing catalog version constraint %q: %w", constraint, err)
	}
	if !cons.Check(c.Version) {
		return fmt.Errorf("%w: %s does not satisfy %q", ErrIncompatibleVersion, c.Version, constraint)
	}
	return nil
}

// Tables lists every table in catalog order.
func (c *Catalog) Tables() []Listing {
	return []Listing{
		c.Tillages,
		c.FertilizerTypes,
		c.ManureTypes,
		c.FuelTypes,
		c.Crops,
		c.IrrigationRegimes,
		c.FloodingPractices,
		c.RiceNutrientManagement,
	}
}

// Table returns a table by name.
func (c *Catalog) Table(name string) (Listing, error) {
	for _, t := range c.Tables() {
		if t.Name() == name {
			return t, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownTable, name)
}
