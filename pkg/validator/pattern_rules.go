package validator

import "regexp"

var (
	// E.164: optional plus, no leading zero, at most 15 digits
	e164Regex = regexp.MustCompile(`^\+?[1-9]\d{1,14}$`)

	emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

// Matches fails when value does not match re.
func Matches(value string, re *regexp.Regexp, message string) Rule {
	return Rule{
		Check: func() bool {
			return re.MatchString(value)
		},
		Message: message,
	}
}

// E164Phone fails for phone numbers not in E.164 format.
func E164Phone(value string) Rule {
	return Matches(value, e164Regex, "Must be in E.164 format.")
}

// Email fails for strings not shaped like local@domain.tld.
func Email(value string) Rule {
	return Matches(value, emailRegex, "Must be a valid email.")
}
