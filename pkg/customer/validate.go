package customer

import (
	"github.com/dmitrymomot/custcheck/pkg/argument"
	"github.com/dmitrymomot/custcheck/pkg/entity"
	"github.com/dmitrymomot/custcheck/pkg/validator"
)

// Document keys of a customer.
const (
	KeyFirstName            = "firstName"
	KeyLastName             = "lastName"
	KeyAddresses            = "addresses"
	KeyPhoneNumber          = "phoneNumber"
	KeyEmail                = "email"
	KeyNotes                = "notes"
	KeyTotalPurchasesAmount = "totalPurchasesAmount"
	KeyLastPurchaseDate     = "lastPurchaseDate"
)

// Validate runs every property check of the customer and reports all
// violations in declaration order. The error is non-nil only for contract
// violations, such as a nil customer or an address of the wrong type.
func Validate(c *entity.Customer) (validator.Result, error) {
	if err := argument.ValidateInstanceOf[*entity.Customer](argument.Named("customer", c)).Err(); err != nil {
		return validator.Result{}, err
	}

	return validator.Run(
		validator.Check{Validate: ValidateFirstName, Value: c.FirstName},
		validator.Check{Validate: ValidateLastName, Value: c.LastName},
		validator.Check{Validate: ValidateAddresses, Value: c.Addresses},
		validator.Check{Validate: ValidatePhoneNumber, Value: c.PhoneNumber},
		validator.Check{Validate: ValidateEmail, Value: c.Email},
		validator.Check{Validate: ValidateNotes, Value: c.Notes},
		validator.Check{Validate: ValidateTotalPurchasesAmount, Value: c.TotalPurchasesAmount},
		validator.Check{Validate: ValidateLastPurchaseDate, Value: c.LastPurchaseDate},
	)
}

// ValidateDocument validates a decoded customer document. Missing keys are
// treated as null.
func ValidateDocument(doc map[string]any) (validator.Result, error) {
	if err := argument.ValidateInstanceOf[map[string]any](argument.Named("customer", doc)).Err(); err != nil {
		return validator.Result{}, err
	}

	return validator.Run(
		validator.Check{Validate: ValidateFirstName, Value: doc[KeyFirstName]},
		validator.Check{Validate: ValidateLastName, Value: doc[KeyLastName]},
		validator.Check{Validate: ValidateAddresses, Value: doc[KeyAddresses]},
		validator.Check{Validate: ValidatePhoneNumber, Value: doc[KeyPhoneNumber]},
		validator.Check{Validate: ValidateEmail, Value: doc[KeyEmail]},
		validator.Check{Validate: ValidateNotes, Value: doc[KeyNotes]},
		validator.Check{Validate: ValidateTotalPurchasesAmount, Value: doc[KeyTotalPurchasesAmount]},
		validator.Check{Validate: ValidateLastPurchaseDate, Value: doc[KeyLastPurchaseDate]},
	)
}
