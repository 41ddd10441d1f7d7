package validator

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// NotBlank fails for empty and whitespace-only strings.
func NotBlank(value string) Rule {
	return Rule{
		Check: func() bool {
			return !IsBlank(value)
		},
		Message: MsgBlank,
	}
}

// MaxLen fails when value has more than max characters. Characters are
// counted after NFC normalization, so precomposed and decomposed accents
// count the same.
func MaxLen(value string, max int) Rule {
	return Rule{
		Check: func() bool {
			return CharCount(value) <= max
		},
		Message: fmt.Sprintf("Maximum %d characters.", max),
	}
}

// IsBlank reports whether s is empty or consists of whitespace only.
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// CharCount returns the number of characters in s.
func CharCount(s string) int {
	return utf8.RuneCountInString(norm.NFC.String(s))
}
