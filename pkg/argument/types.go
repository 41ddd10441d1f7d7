package argument

import (
	"math/big"
	"reflect"
	"strconv"
)

// DataType is a runtime type tag.
type DataType string

const (
	TypeObject    DataType = "object"
	TypeString    DataType = "string"
	TypeBoolean   DataType = "boolean"
	TypeNumber    DataType = "number"
	TypeSymbol    DataType = "symbol"
	TypeBigInt    DataType = "bigint"
	TypeFunction  DataType = "function"
	TypeUndefined DataType = "undefined"
)

// Valid reports whether t is one of the declared type tags.
func (t DataType) Valid() bool {
	switch t {
	case TypeObject, TypeString, TypeBoolean, TypeNumber,
		TypeSymbol, TypeBigInt, TypeFunction, TypeUndefined:
		return true
	}
	return false
}

// TypeOf classifies v. Nil and every composite value (structs, maps, slices,
// pointers to those) are objects. Pointers to scalars are classified by the
// value they point to.
func TypeOf(v any) DataType {
	if IsNull(v) {
		return TypeObject
	}
	if _, ok := v.(*big.Int); ok {
		return TypeBigInt
	}

	switch reflect.TypeOf(Indirect(v)).Kind() {
	case reflect.String:
		return TypeString
	case reflect.Bool:
		return TypeBoolean
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return TypeNumber
	case reflect.Func:
		return TypeFunction
	default:
		return TypeObject
	}
}

// ErrorType is the reason an argument was rejected.
type ErrorType uint8

const (
	BadValue ErrorType = iota + 1
	WrongType
	MissingProperty
)

// Valid reports whether e is one of the declared error types.
func (e ErrorType) Valid() bool {
	switch e {
	case BadValue, WrongType, MissingProperty:
		return true
	}
	return false
}

// String returns the display label used in error messages.
func (e ErrorType) String() string {
	switch e {
	case BadValue:
		return "Bad value"
	case WrongType:
		return "Wrong type"
	case MissingProperty:
		return "Missing property"
	}
	return "ErrorType(" + strconv.Itoa(int(e)) + ")"
}

// IsNull reports whether v is nil or a nil pointer, map, slice, interface or func.
func IsNull(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func:
		return rv.IsNil()
	}
	return false
}

// Indirect follows non-nil pointers to scalar values and returns the value
// they point to. Pointers to structs are left untouched so that nominal type
// checks keep working on them.
func Indirect(v any) any {
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer && !rv.IsNil() && rv.Elem().Kind() != reflect.Struct {
		rv = rv.Elem()
	}
	if !rv.IsValid() {
		return v
	}
	return rv.Interface()
}

// StringValue returns the string held by v, including named string types
// and pointers to strings. ok is false when v is not a string.
func StringValue(v any) (s string, ok bool) {
	if IsNull(v) {
		return "", false
	}
	rv := reflect.ValueOf(Indirect(v))
	if rv.Kind() != reflect.String {
		return "", false
	}
	return rv.String(), true
}

// NumberValue returns v as a float64 when it is any Go numeric type.
func NumberValue(v any) (n float64, ok bool) {
	if IsNull(v) {
		return 0, false
	}
	rv := reflect.ValueOf(Indirect(v))
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	}
	return 0, false
}
