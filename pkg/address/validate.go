package address

import (
	"github.com/dmitrymomot/custcheck/pkg/argument"
	"github.com/dmitrymomot/custcheck/pkg/entity"
	"github.com/dmitrymomot/custcheck/pkg/validator"
)

// Document keys of an address.
const (
	KeyLine       = "line"
	KeyLine2      = "line2"
	KeyType       = "type"
	KeyCity       = "city"
	KeyPostalCode = "postalCode"
	KeyState      = "state"
	KeyCountry    = "country"
)

// Validate runs every property check of the address and reports all
// violations. The error is non-nil only for contract violations, such as a
// nil address.
func Validate(address *entity.Address) (validator.Result, error) {
	if err := argument.ValidateInstanceOf[*entity.Address](argument.Named("address", address)).Err(); err != nil {
		return validator.Result{}, err
	}

	return validator.Run(
		validator.Check{Validate: ValidateLine, Value: address.Line},
		validator.Check{Validate: ValidateLine2, Value: address.Line2},
		validator.Check{Validate: ValidateType, Value: address.Type},
		validator.Check{Validate: ValidateCity, Value: address.City},
		validator.Check{Validate: ValidatePostalCode, Value: address.PostalCode},
		validator.Check{Validate: ValidateState, Value: address.State},
		validator.Check{Validate: ValidateCountry, Value: address.Country},
	)
}

// ValidateDocument validates a decoded address document. Missing keys are
// treated as null.
func ValidateDocument(doc map[string]any) (validator.Result, error) {
	if err := argument.ValidateInstanceOf[map[string]any](argument.Named("address", doc)).Err(); err != nil {
		return validator.Result{}, err
	}

	return validator.Run(
		validator.Check{Validate: ValidateLine, Value: doc[KeyLine]},
		validator.Check{Validate: ValidateLine2, Value: doc[KeyLine2]},
		validator.Check{Validate: ValidateType, Value: doc[KeyType]},
		validator.Check{Validate: ValidateCity, Value: doc[KeyCity]},
		validator.Check{Validate: ValidatePostalCode, Value: doc[KeyPostalCode]},
		validator.Check{Validate: ValidateState, Value: doc[KeyState]},
		validator.Check{Validate: ValidateCountry, Value: doc[KeyCountry]},
	)
}

// ValidateValue validates an address held in v, which may be an
// *entity.Address, an entity.Address or an address document.
func ValidateValue(v any) (validator.Result, error) {
	switch a := v.(type) {
	case *entity.Address:
		return Validate(a)
	case entity.Address:
		return Validate(&a)
	case map[string]any:
		return ValidateDocument(a)
	}
	return validator.Result{}, argument.ValidateInstanceOf[*entity.Address](argument.Named("address", v)).Err()
}
