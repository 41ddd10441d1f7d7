package validator

import "time"

// NotBefore fails when value is earlier than min.
func NotBefore(value, min time.Time, message string) Rule {
	return Rule{
		Check: func() bool {
			return !value.Before(min)
		},
		Message: message,
	}
}
