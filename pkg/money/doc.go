// Package money implements Amount, an immutable monetary value stored as an
// integer number of minor units together with its formatting settings.
//
//	total := money.New(19.99).Add(money.New(5))
//	total.Format() // "$24.99"
//
// Amount satisfies argument.Currency, so it can be passed anywhere a
// monetary value is validated.
package money
