package document_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/custcheck/pkg/argument"
	"github.com/dmitrymomot/custcheck/pkg/document"
	"github.com/dmitrymomot/custcheck/pkg/validator"
)

const validCustomer = `
firstName: Ada
lastName: Lovelace
addresses:
  - line: 1 Main St
    type: 1
    city: Springfield
    postalCode: "62701"
    state: Illinois
    country: United States
phoneNumber: "+14155550123"
email: ada@example.com
notes:
  - prefers email
totalPurchasesAmount: "$1,250.00"
lastPurchaseDate: 2023-04-01
`

func TestKind_Valid(t *testing.T) {
	t.Parallel()

	assert.True(t, document.KindCustomer.Valid())
	assert.True(t, document.KindAddress.Valid())
	assert.False(t, document.Kind("order").Valid())
}

func TestDecode(t *testing.T) {
	t.Parallel()

	t.Run("yaml", func(t *testing.T) {
		doc, err := document.Decode([]byte(validCustomer))
		require.NoError(t, err)
		assert.Equal(t, "Lovelace", doc["lastName"])
	})

	t.Run("json", func(t *testing.T) {
		doc, err := document.Decode([]byte(`{"lastName": "Lovelace", "notes": ["a"]}`))
		require.NoError(t, err)
		assert.Equal(t, []any{"a"}, doc["notes"])
	})

	t.Run("invalid syntax", func(t *testing.T) {
		_, err := document.Decode([]byte("lastName: [unclosed"))
		assert.ErrorIs(t, err, document.ErrDecode)
	})

	t.Run("not a mapping", func(t *testing.T) {
		_, err := document.Decode([]byte("- a\n- b\n"))
		require.ErrorIs(t, err, document.ErrNotMapping)
		assert.EqualError(t, err, "document is not a mapping: got object")

		_, err = document.Decode([]byte("42"))
		assert.EqualError(t, err, "document is not a mapping: got number")

		_, err = document.Decode(nil)
		assert.ErrorIs(t, err, document.ErrNotMapping)
	})
}

func TestValidate(t *testing.T) {
	t.Parallel()

	t.Run("valid customer", func(t *testing.T) {
		r, err := document.Validate(document.KindCustomer, []byte(validCustomer))
		require.NoError(t, err)
		assert.True(t, r.IsValid)
	})

	t.Run("numeric amount and timestamp", func(t *testing.T) {
		src := strings.NewReplacer(
			`totalPurchasesAmount: "$1,250.00"`, `totalPurchasesAmount: 1250.5`,
			`lastPurchaseDate: 2023-04-01`, `lastPurchaseDate: 2023-04-01T10:30:00Z`,
		).Replace(validCustomer)

		r, err := document.Validate(document.KindCustomer, []byte(src))
		require.NoError(t, err)
		assert.True(t, r.IsValid)
	})

	t.Run("date before bound", func(t *testing.T) {
		src := strings.Replace(validCustomer, "2023-04-01", "2019-12-31", 1)

		r, err := document.Validate(document.KindCustomer, []byte(src))
		require.NoError(t, err)
		assert.Equal(t, []validator.Violation{
			{PropertyName: "Last purchase date", Message: "Must be not earlier than 2020-1-1."},
		}, r.Messages)
	})

	t.Run("unparseable date", func(t *testing.T) {
		src := strings.Replace(validCustomer, "2023-04-01", "yesterday", 1)

		_, err := document.Validate(document.KindCustomer, []byte(src))
		assert.EqualError(t, err,
			"The argument 'lastPurchaseDate' is invalid. Reason: Bad value.\nActual value: 'yesterday'; expected: 'instanceof Time'.")
	})

	t.Run("unparseable amount", func(t *testing.T) {
		src := strings.Replace(validCustomer, `"$1,250.00"`, "lots", 1)

		_, err := document.Validate(document.KindCustomer, []byte(src))
		assert.EqualError(t, err,
			"The argument 'currency' is invalid. Reason: Wrong type.\nActual type: 'string'; expected: 'object'.")
	})

	t.Run("address", func(t *testing.T) {
		r, err := document.Validate(document.KindAddress, []byte(`
line: 1 Main St
type: 2
city: Toronto
postalCode: M5V 2T6
state: ON
country: Canada
`))
		require.NoError(t, err)
		assert.Equal(t, []validator.Violation{
			{PropertyName: "Postal code", Message: "Maximum 6 characters."},
		}, r.Messages)
	})

	t.Run("unknown kind", func(t *testing.T) {
		_, err := document.Validate(document.Kind("order"), []byte(validCustomer))
		assert.ErrorIs(t, err, document.ErrUnknownKind)
	})
}

func TestValidateStream(t *testing.T) {
	t.Parallel()

	t.Run("reports each document", func(t *testing.T) {
		stream := validCustomer + "---\nlastName: null\nnotes: []\n---\nlastName: 42\n---\n- not a mapping\n"

		reports, err := document.ValidateBytes(document.KindCustomer, []byte(stream))
		require.NoError(t, err)
		require.Len(t, reports, 4)

		for i, rep := range reports {
			assert.Equal(t, i, rep.Index)
		}

		assert.NoError(t, reports[0].Err)
		assert.True(t, reports[0].Result.IsValid)

		assert.NoError(t, reports[1].Err)
		assert.Equal(t, []validator.Violation{
			{PropertyName: "Last name", Message: "Required."},
			{PropertyName: "Addresses", Message: "At least one address is required."},
			{PropertyName: "Notes", Message: "At least one note is required."},
		}, reports[1].Result.Messages)

		assert.ErrorIs(t, reports[2].Err, argument.ErrInvalidArgument)
		assert.ErrorIs(t, reports[3].Err, document.ErrNotMapping)
	})

	t.Run("broken stream", func(t *testing.T) {
		stream := validCustomer + "---\nlastName: [unclosed\n"

		reports, err := document.ValidateStream(document.KindCustomer, strings.NewReader(stream))
		require.ErrorIs(t, err, document.ErrDecode)
		assert.Len(t, reports, 1)
	})

	t.Run("empty stream", func(t *testing.T) {
		reports, err := document.ValidateBytes(document.KindAddress, nil)
		require.NoError(t, err)
		assert.Empty(t, reports)
	})

	t.Run("unknown kind", func(t *testing.T) {
		_, err := document.ValidateBytes(document.Kind("order"), []byte(validCustomer))
		assert.ErrorIs(t, err, document.ErrUnknownKind)
	})
}
