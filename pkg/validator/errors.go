package validator

import "errors"

// ErrValidationFailed is matched by ValidationErrors via errors.Is.
var ErrValidationFailed = errors.New("validation failed")

// Messages shared by the entity validators.
const (
	MsgRequired = "Required."
	MsgBlank    = "Cannot be empty or consist of whitespace characters."
)
