package argument

import (
	"slices"

	"github.com/dmitrymomot/custcheck/pkg/money"
)

// Currency is the shape of a monetary amount.
type Currency interface {
	IntValue() int64
	Value() float64
	Scale() int64
	Settings() money.Settings
}

var (
	currencyProperties = []string{"intValue", "value", "s", "p"}
	settingsProperties = []string{
		"symbol",
		"separator",
		"decimal",
		"errorOnInvalid",
		"precision",
		"pattern",
		"negativePattern",
		"format",
		"fromCents",
		"increment",
		"groups",
	}
)

// ValidateCurrency checks that v is a non-null monetary amount. Values
// implementing Currency always pass. Decoded documents (map[string]any) are
// checked against the property set of an amount and its "s" settings object;
// every missing property is reported, top-level names first, nested ones
// prefixed with "s.".
func ValidateCurrency(v any) Result {
	a := Named("currency", v)
	if r := Required(a, TypeObject); !r.IsValid {
		return r
	}

	if _, ok := v.(Currency); ok {
		return Valid()
	}

	doc, _ := v.(map[string]any)

	var missing []string
	for _, name := range currencyProperties {
		if _, ok := doc[name]; !ok {
			missing = append(missing, name)
		}
	}

	if !slices.Contains(missing, "s") {
		settings, _ := doc["s"].(map[string]any)
		for _, name := range settingsProperties {
			if _, ok := settings[name]; !ok {
				missing = append(missing, "s."+name)
			}
		}
	}

	if len(missing) > 0 {
		return Invalid(a, MissingProperty, missing)
	}

	return Valid()
}
