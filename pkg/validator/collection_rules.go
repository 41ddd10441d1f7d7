package validator

// NotEmpty fails when n is zero.
func NotEmpty(n int, message string) Rule {
	return Rule{
		Check: func() bool {
			return n > 0
		},
		Message: message,
	}
}

// NoneInvalid fails when invalid is positive.
func NoneInvalid(invalid int, message string) Rule {
	return Rule{
		Check: func() bool {
			return invalid == 0
		},
		Message: message,
	}
}
