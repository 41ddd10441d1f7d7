package money

import "errors"

// ErrInvalidAmount is returned by Parse for input that is not a number when
// the ErrorOnInvalid setting is enabled.
var ErrInvalidAmount = errors.New("invalid monetary amount")
