// Package address validates entity.Address values and address documents.
package address

import (
	"math"

	"github.com/dmitrymomot/custcheck/pkg/argument"
	"github.com/dmitrymomot/custcheck/pkg/entity"
	"github.com/dmitrymomot/custcheck/pkg/validator"
)

var (
	line = validator.StringProperty{
		Arg:   "line",
		Name:  "Line",
		Rules: []validator.StringRule{validator.MaxLenRule(100)},
	}
	line2 = validator.StringProperty{
		Arg:      "line2",
		Name:     "Line2",
		Optional: true,
		Rules:    []validator.StringRule{validator.MaxLenRule(100)},
	}
	city = validator.StringProperty{
		Arg:   "city",
		Name:  "City",
		Rules: []validator.StringRule{validator.MaxLenRule(50)},
	}
	postalCode = validator.StringProperty{
		Arg:   "postalCode",
		Name:  "Postal code",
		Rules: []validator.StringRule{validator.MaxLenRule(6)},
	}
	state = validator.StringProperty{
		Arg:   "state",
		Name:  "State",
		Rules: []validator.StringRule{validator.MaxLenRule(20)},
	}
	country = validator.StringProperty{
		Arg:   "country",
		Name:  "Country",
		Rules: []validator.StringRule{validator.OneOfRule("United States", "Canada")},
	}
)

// ValidateLine checks the first address line: required, at most 100 characters.
func ValidateLine(v any) (validator.PropertyResult, error) {
	return line.Validate(v)
}

// ValidateLine2 checks the second address line: optional, at most 100 characters.
func ValidateLine2(v any) (validator.PropertyResult, error) {
	return line2.Validate(v)
}

// ValidateType checks the address type. The type is not a user-facing
// property: anything but Shipping or Billing is a contract violation.
func ValidateType(v any) (validator.PropertyResult, error) {
	a := argument.Named("type", v)
	if err := argument.Required(a, argument.TypeNumber).Err(); err != nil {
		return validator.PropertyResult{}, err
	}

	n, _ := argument.NumberValue(v)
	if n != math.Trunc(n) || !entity.AddressType(n).Valid() {
		return validator.PropertyResult{}, argument.New(a, argument.BadValue, "either 1 (Shipping) or 2 (Billing)")
	}

	return validator.Valid(), nil
}

// ValidateCity checks the city: required, at most 50 characters.
func ValidateCity(v any) (validator.PropertyResult, error) {
	return city.Validate(v)
}

// ValidatePostalCode checks the postal code: required, at most 6 characters.
func ValidatePostalCode(v any) (validator.PropertyResult, error) {
	return postalCode.Validate(v)
}

// ValidateState checks the state: required, at most 20 characters.
func ValidateState(v any) (validator.PropertyResult, error) {
	return state.Validate(v)
}

// ValidateCountry checks the country: required, United States or Canada.
func ValidateCountry(v any) (validator.PropertyResult, error) {
	return country.Validate(v)
}
