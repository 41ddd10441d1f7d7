package argument

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

var (
	// ErrInvalidArgument is matched by every *Error via errors.Is.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrMalformed is returned by New when the error description itself is unusable.
	ErrMalformed = errors.New("malformed argument error")
)

// Error reports an argument that violates a function's contract.
type Error struct {
	Arg      Arg
	Type     ErrorType
	Expected any
}

// New builds an *Error. A malformed description (empty argument name or
// unknown error type) produces an error wrapping ErrMalformed instead.
func New(arg Arg, errType ErrorType, expected any) error {
	if r := ValidateArg(arg); !r.IsValid {
		return malformed(r)
	}

	if !errType.Valid() {
		return malformed(Invalid(Named("errorType", errType), BadValue, "any of ErrorType"))
	}

	return &Error{
		Arg:      arg,
		Type:     errType,
		Expected: expected,
	}
}

func malformed(r Result) error {
	return fmt.Errorf("%w: %s", ErrMalformed, render(r.Arg, r.ErrorType, r.Expected))
}

func (e *Error) Error() string {
	return render(e.Arg, e.Type, e.Expected)
}

func (e *Error) Unwrap() error {
	return ErrInvalidArgument
}

func render(arg Arg, errType ErrorType, expected any) string {
	var detail string
	switch errType {
	case WrongType:
		detail = fmt.Sprintf("Actual type: '%s'; expected: '%s'.", TypeOf(arg.Value), display(expected))
	case MissingProperty:
		detail = fmt.Sprintf("Missing properties: '%s'.", display(expected))
	default:
		detail = fmt.Sprintf("Actual value: '%s'; expected: '%s'.", display(arg.Value), display(expected))
	}

	return fmt.Sprintf("The argument '%s' is invalid. Reason: %s.\n%s", arg.Name, errType, detail)
}

// display renders a value the way it appears inside messages: null for nil,
// lists joined with commas.
func display(v any) string {
	if IsNull(v) {
		return "null"
	}

	if n, ok := NumberValue(v); ok {
		return strconv.FormatFloat(n, 'f', -1, 64)
	}

	v = Indirect(v)
	switch x := v.(type) {
	case string:
		return x
	case fmt.Stringer:
		return x.String()
	case error:
		return x.Error()
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array {
		parts := make([]string, rv.Len())
		for i := range parts {
			parts[i] = display(rv.Index(i).Interface())
		}
		return strings.Join(parts, ",")
	}

	return fmt.Sprint(v)
}
