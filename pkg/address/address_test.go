package address_test

import (
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/custcheck/pkg/address"
	"github.com/dmitrymomot/custcheck/pkg/argument"
	"github.com/dmitrymomot/custcheck/pkg/entity"
	"github.com/dmitrymomot/custcheck/pkg/validator"
)

type propertyFunc func(any) (validator.PropertyResult, error)

func TestStringProperties(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		validate propertyFunc
		property string
		param    string
		valid    string
		max      int
		optional bool
	}{
		{name: "line", validate: address.ValidateLine, property: "Line", param: "line", valid: "1 Main St", max: 100},
		{name: "line2", validate: address.ValidateLine2, property: "Line2", param: "line2", valid: "Apt 4", max: 100, optional: true},
		{name: "city", validate: address.ValidateCity, property: "City", param: "city", valid: "Springfield", max: 50},
		{name: "postal code", validate: address.ValidatePostalCode, property: "Postal code", param: "postalCode", valid: "M5V2T6", max: 6},
		{name: "state", validate: address.ValidateState, property: "State", param: "state", valid: "Illinois", max: 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r, err := tt.validate(tt.valid)
			require.NoError(t, err)
			assert.Equal(t, validator.Valid(), r)

			r, err = tt.validate(entity.String(tt.valid))
			require.NoError(t, err)
			assert.True(t, r.IsValid)

			r, err = tt.validate(strings.Repeat("a", tt.max))
			require.NoError(t, err)
			assert.True(t, r.IsValid)

			r, err = tt.validate(strings.Repeat("a", tt.max+1))
			require.NoError(t, err)
			assert.Equal(t, validator.Invalid(tt.property, "Maximum "+strconv.Itoa(tt.max)+" characters."), r)

			for _, blank := range []string{"", " ", "\t"} {
				r, err = tt.validate(blank)
				require.NoError(t, err)
				assert.Equal(t, validator.Invalid(tt.property, validator.MsgBlank), r)
			}

			r, err = tt.validate(nil)
			require.NoError(t, err)
			if tt.optional {
				assert.True(t, r.IsValid)
			} else {
				assert.Equal(t, validator.Invalid(tt.property, validator.MsgRequired), r)
			}

			expected := "string"
			if tt.optional {
				expected = "string or null"
			}
			_, err = tt.validate(10)
			assert.EqualError(t, err,
				"The argument '"+tt.param+"' is invalid. Reason: Wrong type.\nActual type: 'number'; expected: '"+expected+"'.")
		})
	}
}

func TestValidateCountry(t *testing.T) {
	t.Parallel()

	for _, c := range []string{"United States", "Canada"} {
		r, err := address.ValidateCountry(c)
		require.NoError(t, err)
		assert.True(t, r.IsValid, c)
	}

	for _, c := range []string{"Mexico", "canada", "USA"} {
		r, err := address.ValidateCountry(c)
		require.NoError(t, err)
		assert.Equal(t, validator.Invalid("Country", "Either 'United States' or 'Canada'."), r, c)
	}

	r, err := address.ValidateCountry(" ")
	require.NoError(t, err)
	assert.Equal(t, validator.MsgBlank, r.Message)

	r, err = address.ValidateCountry(nil)
	require.NoError(t, err)
	assert.Equal(t, validator.MsgRequired, r.Message)

	_, err = address.ValidateCountry([]string{"Canada"})
	assert.EqualError(t, err,
		"The argument 'country' is invalid. Reason: Wrong type.\nActual type: 'object'; expected: 'string'.")
}

func TestValidateType(t *testing.T) {
	t.Parallel()

	for _, v := range []any{entity.Shipping, entity.Billing, 1, 2.0, uint8(2)} {
		r, err := address.ValidateType(v)
		require.NoError(t, err, v)
		assert.True(t, r.IsValid)
	}

	tests := []struct {
		name  string
		value any
		msg   string
	}{
		{name: "null", value: nil, msg: "Reason: Bad value.\nActual value: 'null'; expected: 'not null'."},
		{name: "string", value: "1", msg: "Reason: Wrong type.\nActual type: 'string'; expected: 'number'."},
		{name: "unknown type", value: entity.AddressType(3), msg: "Reason: Bad value.\nActual value: '3'; expected: 'either 1 (Shipping) or 2 (Billing)'."},
		{name: "zero", value: 0, msg: "Reason: Bad value.\nActual value: '0'; expected: 'either 1 (Shipping) or 2 (Billing)'."},
		{name: "fraction", value: 1.5, msg: "Reason: Bad value.\nActual value: '1.5'; expected: 'either 1 (Shipping) or 2 (Billing)'."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := address.ValidateType(tt.value)
			require.ErrorIs(t, err, argument.ErrInvalidArgument)
			assert.EqualError(t, err, "The argument 'type' is invalid. "+tt.msg)
		})
	}
}
