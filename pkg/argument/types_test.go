package argument_test

import (
	"math/big"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/custcheck/pkg/argument"
	"github.com/dmitrymomot/custcheck/pkg/entity"
)

func TestTypeOf(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value any
		want  argument.DataType
	}{
		{name: "nil", value: nil, want: argument.TypeObject},
		{name: "string", value: "s", want: argument.TypeString},
		{name: "pointer to string", value: entity.String("s"), want: argument.TypeString},
		{name: "nil pointer to string", value: (*string)(nil), want: argument.TypeObject},
		{name: "bool", value: true, want: argument.TypeBoolean},
		{name: "int", value: 1, want: argument.TypeNumber},
		{name: "float", value: 1.5, want: argument.TypeNumber},
		{name: "uint8", value: uint8(3), want: argument.TypeNumber},
		{name: "named numeric type", value: entity.Shipping, want: argument.TypeNumber},
		{name: "big int", value: big.NewInt(1), want: argument.TypeBigInt},
		{name: "func", value: func() {}, want: argument.TypeFunction},
		{name: "map", value: map[string]any{}, want: argument.TypeObject},
		{name: "slice", value: []int{1}, want: argument.TypeObject},
		{name: "struct", value: time.Now(), want: argument.TypeObject},
		{name: "pointer to struct", value: &entity.Address{}, want: argument.TypeObject},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, argument.TypeOf(tt.value))
		})
	}
}

func TestDataType_Valid(t *testing.T) {
	t.Parallel()

	for _, dt := range []argument.DataType{
		argument.TypeObject, argument.TypeString, argument.TypeBoolean, argument.TypeNumber,
		argument.TypeSymbol, argument.TypeBigInt, argument.TypeFunction, argument.TypeUndefined,
	} {
		assert.True(t, dt.Valid(), dt)
	}
	assert.False(t, argument.DataType("date").Valid())
	assert.False(t, argument.DataType("").Valid())
}

func TestErrorType(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Bad value", argument.BadValue.String())
	assert.Equal(t, "Wrong type", argument.WrongType.String())
	assert.Equal(t, "Missing property", argument.MissingProperty.String())
	assert.Equal(t, "ErrorType(0)", argument.ErrorType(0).String())

	assert.True(t, argument.MissingProperty.Valid())
	assert.False(t, argument.ErrorType(0).Valid())
	assert.False(t, argument.ErrorType(4).Valid())
}

func TestIsNull(t *testing.T) {
	t.Parallel()

	assert.True(t, argument.IsNull(nil))
	assert.True(t, argument.IsNull((*string)(nil)))
	assert.True(t, argument.IsNull([]string(nil)))
	assert.True(t, argument.IsNull(map[string]any(nil)))
	assert.False(t, argument.IsNull(""))
	assert.False(t, argument.IsNull(0))
	assert.False(t, argument.IsNull([]string{}))
}

func TestValueHelpers(t *testing.T) {
	t.Parallel()

	type name string

	s, ok := argument.StringValue(name("ada"))
	assert.True(t, ok)
	assert.Equal(t, "ada", s)

	s, ok = argument.StringValue(entity.String("ptr"))
	assert.True(t, ok)
	assert.Equal(t, "ptr", s)

	_, ok = argument.StringValue(1)
	assert.False(t, ok)

	n, ok := argument.NumberValue(entity.Billing)
	assert.True(t, ok)
	assert.Equal(t, 2.0, n)

	n, ok = argument.NumberValue(uint16(7))
	assert.True(t, ok)
	assert.Equal(t, 7.0, n)

	_, ok = argument.NumberValue("1")
	assert.False(t, ok)
}
