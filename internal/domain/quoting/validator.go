// Package quoting holds the quote business rules: property validation and
// the pricing engine. Nothing here performs I/O.
package quoting

import (
	"errors"
	"math"
	"property_quote/internal/domain/entities"
	"sort"

	"github.com/go-playground/validator/v10"
)

const (
	MsgAddressRequired = "Address is required"
	MsgStreetInvalid   = "Street address is required (min 5 characters)"
	MsgCityInvalid     = "City is required (min 2 characters)"
	MsgStateInvalid    = "State must be 2-letter code (e.g., TX)"
	MsgZipCodeInvalid  = "Zip code must be 5 digits"
	MsgSizeInvalid     = "Property size must be between 100 and 50,000 sq ft"
	MsgCoverageInvalid = "Coverage amount must be between $50,000 and $2,000,000"
)

// fieldMessages lists every validated field in reporting order.
var fieldMessages = []struct {
	namespace string
	message   string
}{
	{"Property.Address", MsgAddressRequired},
	{"Property.Address.Street", MsgStreetInvalid},
	{"Property.Address.City", MsgCityInvalid},
	{"Property.Address.State", MsgStateInvalid},
	{"Property.Address.ZipCode", MsgZipCodeInvalid},
	{"Property.SquareFeet", MsgSizeInvalid},
	{"Property.Coverage", MsgCoverageInvalid},
}

// ValidationResult is the outcome of validating a property.
type ValidationResult struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors"`
}

// Validator checks properties against the field rules declared on
// entities.Property. It is safe for concurrent use.
type Validator struct {
	validate *validator.Validate
	order    map[string]int
}

func NewValidator() *Validator {
	v := validator.New()
	mustRegister(v, "finite", func(fl validator.FieldLevel) bool {
		f := fl.Field().Float()
		return !math.IsNaN(f) && !math.IsInf(f, 0)
	})
	mustRegister(v, "integral", func(fl validator.FieldLevel) bool {
		f := fl.Field().Float()
		return !math.IsNaN(f) && !math.IsInf(f, 0) && f == math.Trunc(f)
	})

	order := make(map[string]int, len(fieldMessages))
	for i, fm := range fieldMessages {
		order[fm.namespace] = i
	}
	return &Validator{validate: v, order: order}
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(err)
	}
}

// Validate checks every rule and collects all violations. Messages come back
// in a fixed order: address (or street, city, state, zip code), size, coverage.
func (v *Validator) Validate(p entities.Property) ValidationResult {
	err := v.validate.Struct(p)
	if err == nil {
		return ValidationResult{Valid: true, Errors: []string{}}
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return ValidationResult{Valid: false, Errors: []string{err.Error()}}
	}

	seen := make(map[int]bool, len(fieldErrs))
	idx := make([]int, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		i, ok := v.order[fe.StructNamespace()]
		if !ok || seen[i] {
			continue
		}
		seen[i] = true
		idx = append(idx, i)
	}
	sort.Ints(idx)

	msgs := make([]string, 0, len(idx))
	for _, i := range idx {
		msgs = append(msgs, fieldMessages[i].message)
	}
	if len(msgs) == 0 {
		msgs = append(msgs, err.Error())
	}
	return ValidationResult{Valid: false, Errors: msgs}
}
