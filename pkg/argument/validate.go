package argument

import (
	"reflect"
	"strings"
)

// ValidateArg checks that a carries a usable name.
func ValidateArg(a Arg) Result {
	if strings.TrimSpace(a.Name) == "" {
		return Invalid(Named("arg", a.Name), BadValue, "non-empty name")
	}
	return Valid()
}

// Validate checks that the argument value has type t. A null value passes
// only when notNull is false.
func Validate(a Arg, t DataType, notNull bool) Result {
	if !t.Valid() {
		return Invalid(Named("type", t), BadValue, "any of DataType")
	}

	if r := ValidateArg(a); !r.IsValid {
		return r
	}

	if IsNull(a.Value) {
		if notNull {
			return Invalid(a, BadValue, "not null")
		}
		return Valid()
	}

	if TypeOf(a.Value) != t {
		expected := string(t)
		if !notNull {
			expected += " or null"
		}
		return Invalid(a, WrongType, expected)
	}

	return Valid()
}

// Required is Validate with notNull set.
func Required(a Arg, t DataType) Result {
	return Validate(a, t, true)
}

// Optional is Validate accepting null values.
func Optional(a Arg, t DataType) Result {
	return Validate(a, t, false)
}

// ValidateInstanceOf checks that the argument value is a non-null T.
func ValidateInstanceOf[T any](a Arg) Result {
	if r := ValidateArg(a); !r.IsValid {
		return r
	}

	if !IsNull(a.Value) {
		if _, ok := a.Value.(T); ok {
			return Valid()
		}
	}

	return Invalid(a, BadValue, "instanceof "+typeName[T]())
}

func typeName[T any]() string {
	t := reflect.TypeFor[T]()
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Name() == "" {
		return t.String()
	}
	return t.Name()
}
