package emissions

import (
	"fmt"

	"github.com/rshade/fieldcarbon/internal/analysis"
)

// constError is an immutable error type for sentinel errors.
type constError string

func (e constError) Error() string { return string(e) }

var (
	// ErrUndeterminedFI is returned when no input-factor rule matches the
	// reported practices and no fallback is configured.
	ErrUndeterminedFI = constError("input factor undetermined for reported practices")

	// ErrMissingNutrientManagement is returned for a rice analysis that
	// reports no nutrient-management addition.
	ErrMissingNutrientManagement = constError("rice analysis has no nutrient-management addition")

	// ErrNoLocation is returned when an analysis is evaluated without a geo location.
	ErrNoLocation = constError("no geo location")
)

// AdditionError identifies the addition a multi-item formula failed on.
type AdditionError struct {
	Category     analysis.Category
	Index        int
	AdditionType string
	Err          error
}

func (e *AdditionError) Error() string {
	return fmt.Sprintf("%s[%d] (%s): %v", e.Category, e.Index, e.AdditionType, e.Err)
}

func (e *AdditionError) Unwrap() error { return e.Err }
