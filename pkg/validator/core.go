package validator

import (
	"errors"
	"fmt"
	"strings"
)

// ValidationError represents a single validation error with translation support.
type ValidationError struct {
	Field             string
	Message           string
	TranslationKey    string
	TranslationValues map[string]any
}

// ValidationErrors represents a collection of validation errors.
type ValidationErrors []ValidationError

func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return "validation failed"
	}

	var parts []string
	for _, err := range ve {
		parts = append(parts, fmt.Sprintf("%s: %s", err.Field, err.Message))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Is lets errors.Is(err, ErrValidationFailed) match any ValidationErrors.
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

// First returns the first message recorded for field, or an empty string.
func (ve ValidationErrors) First(field string) string {
	for _, err := range ve {
		if err.Field == field {
			return err.Message
		}
	}
	return ""
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

// Result is the outcome of validating one field value: valid, or invalid
// with exactly one human-readable message.
type Result struct {
	invalid bool
	message string
	key     string
}

// Valid returns a passing result.
func Valid() Result {
	return Result{}
}

// Invalid returns a failing result carrying message.
func Invalid(message string) Result {
	return Result{invalid: true, message: message, key: "validation.invalid"}
}

func invalid(key, message string) Result {
	return Result{invalid: true, message: message, key: key}
}

func (r Result) IsValid() bool {
	return !r.invalid
}

// Message returns the failure message, empty for valid results.
func (r Result) Message() string {
	return r.message
}

// TranslationKey returns the message key of a failing result.
func (r Result) TranslationKey() string {
	return r.key
}

// Rule adapts the result to a Rule bound to field so that results of
// several fields can be aggregated with Apply.
func (r Result) Rule(field string) Rule {
	return Rule{
		Check: r.IsValid,
		Error: ValidationError{
			Field:          field,
			Message:        r.message,
			TranslationKey: r.key,
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// Rule represents a single validation rule.
type Rule struct {
	Check func() bool
	Error ValidationError
}

// Apply executes multiple validation rules and returns any validation errors.
func Apply(rules ...Rule) error {
	var errors ValidationErrors

	for _, rule := range rules {
		if !rule.Check() {
			errors = append(errors, rule.Error)
		}
	}

	if errors.IsEmpty() {
		return nil
	}

	return errors
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

// onlyDigits keeps ASCII digits, dropping any formatting.
func onlyDigits(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
