package reference

// Crop carries the agronomic constants for one crop.
type Crop struct {
	Slug            string  `json:"slug" yaml:"slug"`
	Title           string  `json:"title" yaml:"title"`
	RPR             float64 `json:"rpr" yaml:"rpr"`
	MoistureContent float64 `json:"moisture_content" yaml:"moisture_content"`
	NAG             float64 `json:"n_ag" yaml:"n_ag"`
	RBG             float64 `json:"r_bg" yaml:"r_bg"`
	NBG             float64 `json:"n_bg" yaml:"n_bg"`
	CMonoculture    float64 `json:"c_monoculture" yaml:"c_monoculture"`
	CAgroforestry   float64 `json:"c_agroforestry" yaml:"c_agroforestry"`

	// FinalDefaultResidueAmount overrides the yield-based residue estimate.
	FinalDefaultResidueAmount *float64 `json:"final_default_residue_amount,omitempty" yaml:"final_default_residue_amount,omitempty"`
}

func (c Crop) Key() string { return c.Slug }
func (c Crop) Label() string { return c.Title }

// Residue returns the crop residue amount for a given yield.
func (c Crop) Residue(yield float64) float64 {
	if c.FinalDefaultResidueAmount != nil {
		return *c.FinalDefaultResidueAmount
	}
	return yield * c.RPR * (1 - c.MoistureContent)
}

// Tillage maps a tillage practice to the management method whose
// factor the geo location provides.
type Tillage struct {
	Slug   string `json:"slug" yaml:"slug"`
	Title  string `json:"title" yaml:"title"`
	Method string `json:"method" yaml:"method"`
}

func (t Tillage) Key() string { return t.Slug }
func (t Tillage) Label() string { return t.Title }

// InputType is a fertilizer or manure type.
type InputType struct {
	Slug            string  `json:"slug" yaml:"slug"`
	Title           string  `json:"title" yaml:"title"`
	NFertilizerType float64 `json:"nfertilizer_type" yaml:"nfertilizer_type"`
	ApplicationEF   float64 `json:"fertilizer_type_app" yaml:"fertilizer_type_app"`
	ProductionEF    float64 `json:"fertilizer_type_prod" yaml:"fertilizer_type_prod"`
}

func (i InputType) Key() string { return i.Slug }
func (i InputType) Label() string { return i.Title }

// FuelType carries emission factors per liter and per gallon.
type FuelType struct {
	Slug        string  `json:"slug" yaml:"slug"`
	Title       string  `json:"title" yaml:"title"`
	EFPerLiter  float64 `json:"ef_per_liter" yaml:"ef_per_liter"`
	EFPerGallon float64 `json:"ef_per_gallon" yaml:"ef_per_gallon"`
}

func (f FuelType) Key() string { return f.Slug }
func (f FuelType) Label() string { return f.Title }

// ScalingFactor is a rice water-management factor (irrigation regime or
// pre-cultivation flooding).
type ScalingFactor struct {
	Slug          string  `json:"slug" yaml:"slug"`
	Title         string  `json:"title" yaml:"title"`
	ScalingFactor float64 `json:"scaling_factor" yaml:"scaling_factor"`
}

func (s ScalingFactor) Key() string { return s.Slug }
func (s ScalingFactor) Label() string { return s.Title }

// NutrientManagement is an organic amendment for rice.
type NutrientManagement struct {
	Slug             string  `json:"slug" yaml:"slug"`
	Title            string  `json:"title" yaml:"title"`
	ConversionFactor float64 `json:"conversion_factor" yaml:"conversion_factor"`
}

func (n NutrientManagement) Key() string { return n.Slug }
func (n NutrientManagement) Label() string { return n.Title }
