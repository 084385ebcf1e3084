package emissions

import (
	"runtime"

	"github.com/rs/zerolog"

	"github.com/rshade/fieldcarbon/internal/reference"
)

// Calculator evaluates emission formulas against a reference catalog.
// It holds no per-analysis state and is safe for concurrent use.
type Calculator struct {
	catalog     *reference.Catalog
	fiFallback  *float64
	concurrency int
	logger      zerolog.Logger
}

// Option configures a Calculator.
type Option func(*Calculator)

// WithFIFallback substitutes v for an undetermined input factor. Without
// it, an undetermined input factor is an error.
func WithFIFallback(v float64) Option {
	return func(c *Calculator) {
		c.fiFallback = &v
	}
}

// WithConcurrency bounds how many analyses EvaluateAll runs at once.
// Values below 1 are ignored.
func WithConcurrency(n int) Option {
	return func(c *Calculator) {
		if n >= 1 {
			c.concurrency = n
		}
	}
}

// WithLogger sets the logger used for evaluation diagnostics.
func WithLogger(l zerolog.Logger) Option {
	return func(c *Calculator) {
		c.logger = l
	}
}

// NewCalculator returns a Calculator reading from catalog.
func NewCalculator(catalog *reference.Catalog, opts ...Option) *Calculator {
	c := &Calculator{
		catalog:     catalog,
		concurrency: runtime.NumCPU(),
		logger:      zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Catalog returns the reference catalog the calculator reads from.
func (c *Calculator) Catalog() *reference.Catalog {
	return c.catalog
}
