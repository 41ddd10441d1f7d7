package validator

import (
	"slices"
	"strings"
)

// OneOf fails when value is not one of options. The message lists the
// options, e.g. "Either 'United States' or 'Canada'.".
func OneOf(value string, options ...string) Rule {
	return Rule{
		Check: func() bool {
			return slices.Contains(options, value)
		},
		Message: eitherMessage(options),
	}
}

func eitherMessage(options []string) string {
	quoted := make([]string, len(options))
	for i, o := range options {
		quoted[i] = "'" + o + "'"
	}

	switch len(quoted) {
	case 0:
		return "No value is allowed."
	case 1:
		return "Must be " + quoted[0] + "."
	}
	return "Either " + strings.Join(quoted[:len(quoted)-1], ", ") + " or " + quoted[len(quoted)-1] + "."
}
