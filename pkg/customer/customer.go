// Package customer validates entity.Customer values and customer documents.
package customer

import (
	"fmt"
	"reflect"
	"time"

	"github.com/dmitrymomot/custcheck/pkg/address"
	"github.com/dmitrymomot/custcheck/pkg/argument"
	"github.com/dmitrymomot/custcheck/pkg/validator"
)

// MinPurchaseDate is the earliest accepted last purchase date.
var MinPurchaseDate = time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC)

var (
	firstName = validator.StringProperty{
		Arg:      "firstName",
		Name:     "First name",
		Optional: true,
		Rules:    []validator.StringRule{validator.MaxLenRule(50)},
	}
	lastName = validator.StringProperty{
		Arg:   "lastName",
		Name:  "Last name",
		Rules: []validator.StringRule{validator.MaxLenRule(50)},
	}
	phoneNumber = validator.StringProperty{
		Arg:      "phoneNumber",
		Name:     "Phone number",
		Optional: true,
		Rules:    []validator.StringRule{validator.E164Phone},
	}
	email = validator.StringProperty{
		Arg:      "email",
		Name:     "Email",
		Optional: true,
		Rules:    []validator.StringRule{validator.Email},
	}
)

// ValidateFirstName checks the first name: optional, at most 50 characters.
func ValidateFirstName(v any) (validator.PropertyResult, error) {
	return firstName.Validate(v)
}

// ValidateLastName checks the last name: required, at most 50 characters.
func ValidateLastName(v any) (validator.PropertyResult, error) {
	return lastName.Validate(v)
}

// ValidateAddresses requires at least one address and reports how many of
// the given addresses are invalid. v must be a list; its elements may be
// *entity.Address, entity.Address or address documents.
func ValidateAddresses(v any) (validator.PropertyResult, error) {
	const property = "Addresses"
	const msgEmpty = "At least one address is required."

	if argument.IsNull(v) {
		return validator.Invalid(property, msgEmpty), nil
	}

	list, ok := listOf(v)
	if !ok {
		return validator.PropertyResult{}, argument.New(argument.Named("addresses", v), argument.BadValue, "Address[]")
	}

	invalid := 0
	for _, item := range list {
		r, err := address.ValidateValue(item)
		if err != nil {
			return validator.PropertyResult{}, err
		}
		if !r.IsValid {
			invalid++
		}
	}

	return validator.First(property,
		validator.NotEmpty(len(list), msgEmpty),
		validator.NoneInvalid(invalid, fmt.Sprintf("%d addresses invalid.", invalid)),
	), nil
}

// ValidatePhoneNumber checks the phone number: optional, E.164 format.
func ValidatePhoneNumber(v any) (validator.PropertyResult, error) {
	return phoneNumber.Validate(v)
}

// ValidateEmail checks the email: optional, local@domain.tld shape.
func ValidateEmail(v any) (validator.PropertyResult, error) {
	return email.Validate(v)
}

// ValidateNotes requires at least one note and rejects blank notes.
// Every element must be a string or null.
func ValidateNotes(v any) (validator.PropertyResult, error) {
	const property = "Notes"
	const msgEmpty = "At least one note is required."

	if argument.IsNull(v) {
		return validator.Invalid(property, msgEmpty), nil
	}

	list, ok := listOf(v)
	if !ok {
		return validator.PropertyResult{}, argument.New(argument.Named("notes", v), argument.BadValue, "string[]")
	}

	blank := 0
	for _, note := range list {
		if err := argument.Optional(argument.Named("note", note), argument.TypeString).Err(); err != nil {
			return validator.PropertyResult{}, err
		}
		if s, ok := argument.StringValue(note); !ok || validator.IsBlank(s) {
			blank++
		}
	}

	return validator.First(property,
		validator.NotEmpty(len(list), msgEmpty),
		validator.NoneInvalid(blank, "Cannot contain empty notes."),
	), nil
}

// ValidateTotalPurchasesAmount checks the total purchases amount: optional,
// must have the shape of a monetary amount.
func ValidateTotalPurchasesAmount(v any) (validator.PropertyResult, error) {
	if argument.IsNull(v) {
		return validator.Valid(), nil
	}

	if err := argument.ValidateCurrency(v).Err(); err != nil {
		return validator.PropertyResult{}, err
	}

	return validator.Valid(), nil
}

// ValidateLastPurchaseDate checks the last purchase date: optional, not
// earlier than MinPurchaseDate.
func ValidateLastPurchaseDate(v any) (validator.PropertyResult, error) {
	if argument.IsNull(v) {
		return validator.Valid(), nil
	}

	if p, ok := v.(*time.Time); ok {
		v = *p
	}

	if err := argument.ValidateInstanceOf[time.Time](argument.Named("lastPurchaseDate", v)).Err(); err != nil {
		return validator.PropertyResult{}, err
	}

	return validator.First("Last purchase date",
		validator.NotBefore(v.(time.Time), MinPurchaseDate, "Must be not earlier than 2020-1-1."),
	), nil
}

func listOf(v any) ([]any, bool) {
	if list, ok := v.([]any); ok {
		return list, true
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false
	}

	list := make([]any, rv.Len())
	for i := range list {
		list[i] = rv.Index(i).Interface()
	}
	return list, true
}
