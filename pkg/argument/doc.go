// Package argument provides precondition checks for function arguments and
// the ArgumentError type used to report contract violations.
//
// Checks never panic and never return errors directly. Each one returns a
// Result value describing whether the argument is acceptable and, when it is
// not, which argument failed, why it failed and what was expected instead.
// Result.Err converts a failed Result into an *Error so that call sites can
// bail out with a single line:
//
//	if err := argument.Required(argument.Named("line", line), argument.TypeString).Err(); err != nil {
//	    return validator.PropertyResult{}, err
//	}
//
// # Architecture
//
//   - DataType      – closed set of runtime type tags ("object", "string", ...)
//   - ErrorType     – closed set of failure reasons with display labels
//   - Arg           – an argument value paired with the name used in messages
//   - Result        – immutable outcome of one check (Valid / Invalid)
//   - Error         – the rendered contract violation, unwraps to ErrInvalidArgument
//
// The primitives are Validate (with the Required and Optional shorthands),
// ValidateInstanceOf and ValidateCurrency.
//
// # Error Handling
//
// Errors produced by this package are meant for programmer mistakes: the
// caller passed a number where a string was required, or a list where an
// entity was expected. Business rule failures are never reported through
// this package; see package validator for those.
//
// The message format is stable and safe to compare byte for byte:
//
//	The argument 'line' is invalid. Reason: Wrong type.
//	Actual type: 'number'; expected: 'string'.
//
// New refuses to build an *Error from a malformed description (an empty
// argument name or an unknown ErrorType) and returns an error wrapping
// ErrMalformed instead.
package argument
