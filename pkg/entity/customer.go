package entity

import (
	"time"

	"github.com/dmitrymomot/custcheck/pkg/money"
)

// Person holds the name attributes shared by people in the model.
type Person struct {
	FirstName *string
	LastName  *string
}

// Customer is a person with addresses, contact details and purchase history.
type Customer struct {
	Person
	Addresses            []*Address
	PhoneNumber          *string
	Email                *string
	Notes                []string
	TotalPurchasesAmount *money.Amount
	LastPurchaseDate     *time.Time
}

// NewCustomer creates a customer with the required attributes set.
func NewCustomer(lastName string, addresses []*Address, notes ...string) *Customer {
	return &Customer{
		Person:    Person{LastName: &lastName},
		Addresses: addresses,
		Notes:     notes,
	}
}
