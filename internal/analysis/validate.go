package analysis

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

//nolint:gochecknoglobals // validator caches struct metadata and is safe for concurrent use.
var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// Validator returns the shared validator with the domain tags registered:
// "category" for addition categories and "practice" for crop management
// practice slugs.
func Validator() *validator.Validate {
	validateOnce.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		_ = v.RegisterValidation("category", func(fl validator.FieldLevel) bool {
			return Category(fl.Field().String()).Valid()
		})
		_ = v.RegisterValidation("practice", func(fl validator.FieldLevel) bool {
			return IsPractice(fl.Field().String())
		})
		validate = v
	})
	return validate
}

// Validate checks the presence rules an analysis must satisfy before it
// is handed to the engine: positive area, a crop, a geo location, known
// practices and well-formed additions.
func (a *Analysis) Validate() error {
	if err := Validator().Struct(a); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidAnalysis, describe(err))
	}
	for _, cat := range Categories() {
		for i, add := range a.Additions.Of(cat) {
			if add.Category != cat {
				return fmt.Errorf("%w: %s[%d] has category %q",
					ErrInvalidAnalysis, cat, i, add.Category)
			}
		}
	}
	return nil
}

// describe flattens validator errors into a single readable line.
func describe(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		if fe.Param() != "" {
			parts = append(parts, fmt.Sprintf("%s failed %s=%s", fe.Namespace(), fe.Tag(), fe.Param()))
			continue
		}
		parts = append(parts, fmt.Sprintf("%s failed %s", fe.Namespace(), fe.Tag()))
	}
	return strings.Join(parts, "; ")
}
