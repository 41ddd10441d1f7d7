package validator

import (
	"errors"
	"fmt"
	"strings"
)

// PropertyResult is the outcome of validating one property.
// PropertyName and Message are empty when IsValid is true.
type PropertyResult struct {
	IsValid      bool
	PropertyName string
	Message      string
}

// Valid returns a passing PropertyResult.
func Valid() PropertyResult {
	return PropertyResult{IsValid: true}
}

// Invalid returns a failing PropertyResult.
func Invalid(propertyName, message string) PropertyResult {
	return PropertyResult{
		PropertyName: propertyName,
		Message:      message,
	}
}

// Rule represents a single validation rule.
type Rule struct {
	Check   func() bool
	Message string
}

// First evaluates rules in order and reports the first one that fails.
func First(propertyName string, rules ...Rule) PropertyResult {
	for _, rule := range rules {
		if !rule.Check() {
			return Invalid(propertyName, rule.Message)
		}
	}
	return Valid()
}

// Violation describes one invalid property.
type Violation struct {
	PropertyName string `json:"propertyName" yaml:"propertyName"`
	Message      string `json:"message" yaml:"message"`
}

// Result is the outcome of validating a whole entity.
type Result struct {
	IsValid  bool        `json:"isValid" yaml:"isValid"`
	Messages []Violation `json:"messages" yaml:"messages"`
}

// Collect merges property results, keeping the order of failures.
func Collect(results ...PropertyResult) Result {
	messages := make([]Violation, 0, len(results))
	for _, r := range results {
		if !r.IsValid {
			messages = append(messages, Violation{
				PropertyName: r.PropertyName,
				Message:      r.Message,
			})
		}
	}
	return Result{IsValid: len(messages) == 0, Messages: messages}
}

// Err returns nil for a valid result and ValidationErrors otherwise.
func (r Result) Err() error {
	if r.IsValid {
		return nil
	}
	errs := make(ValidationErrors, 0, len(r.Messages))
	for _, v := range r.Messages {
		errs.Add(ValidationError{Field: v.PropertyName, Message: v.Message})
	}
	return errs
}

// ValidationError represents a single validation error.
type ValidationError struct {
	Field   string
	Message string
}

// ValidationErrors represents a collection of validation errors.
type ValidationErrors []ValidationError

func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return ErrValidationFailed.Error()
	}

	var parts []string
	for _, err := range ve {
		parts = append(parts, fmt.Sprintf("%s: %s", err.Field, err.Message))
	}
	return ErrValidationFailed.Error() + ": " + strings.Join(parts, "; ")
}

func (ve ValidationErrors) Is(target error) bool {
	return target == ErrValidationFailed
}

func (ve *ValidationErrors) Add(err ValidationError) {
	*ve = append(*ve, err)
}

func (ve ValidationErrors) Has(field string) bool {
	for _, err := range ve {
		if err.Field == field {
			return true
		}
	}
	return false
}

func (ve ValidationErrors) Get(field string) []string {
	var messages []string
	for _, err := range ve {
		if err.Field == field {
			messages = append(messages, err.Message)
		}
	}
	return messages
}

func (ve ValidationErrors) Fields() []string {
	var fields []string
	seen := make(map[string]bool)
	for _, err := range ve {
		if !seen[err.Field] {
			fields = append(fields, err.Field)
			seen[err.Field] = true
		}
	}
	return fields
}

func (ve ValidationErrors) IsEmpty() bool {
	return len(ve) == 0
}

// ExtractValidationErrors extracts ValidationErrors from an error.
func ExtractValidationErrors(err error) ValidationErrors {
	if err == nil {
		return nil
	}

	var validationErr ValidationErrors
	if errors.As(err, &validationErr) {
		return validationErr
	}

	return nil
}

func IsValidationError(err error) bool {
	if err == nil {
		return false
	}

	var validationErr ValidationErrors
	return errors.As(err, &validationErr)
}

// Check pairs a property validator with the value to validate.
type Check struct {
	Validate func(any) (PropertyResult, error)
	Value    any
}

// Run executes every check in order and collects the results. A contract
// error from any check aborts the run and is returned as is.
func Run(checks ...Check) (Result, error) {
	results := make([]PropertyResult, 0, len(checks))
	for _, c := range checks {
		r, err := c.Validate(c.Value)
		if err != nil {
			return Result{}, err
		}
		results = append(results, r)
	}
	return Collect(results...), nil
}
