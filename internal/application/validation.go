package application

import (
	"math"
	"strconv"
	"strings"

	"taxcollection/internal/domain"
)

// Field names used in validation errors
const (
	FieldName = "name"
	FieldRate = "rate"
)

// Messages surfaced inline by the form
const (
	MsgRequired    = "Required"
	MsgNotANumber  = "Must be a number"
	MsgNonNegative = "Must be greater than or equal to 0"
)

// ValidateRequired checks if a string field is non-empty (after trimming whitespace).
// Returns a ValidationError if the field is empty.
func ValidateRequired(fieldName, value string) error {
	if strings.TrimSpace(value) == "" {
		return &ValidationError{
			Field:   fieldName,
			Message: MsgRequired,
		}
	}
	return nil
}

// ValidateRate parses a percentage typed by the user.
// The value is required, numeric and non-negative.
func ValidateRate(fieldName, value string) (float64, error) {
	if err := ValidateRequired(fieldName, value); err != nil {
		return 0, err
	}

	rate, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil || math.IsInf(rate, 0) {
		return 0, &ValidationError{Field: fieldName, Message: MsgNotANumber}
	}

	// NaN fails every comparison, so check it explicitly
	if rate != rate || rate < 0 {
		return 0, &ValidationError{Field: fieldName, Message: MsgNonNegative}
	}
	return rate, nil
}

// ValidateTaxForm checks the scalar fields of the tax form and returns the
// parsed values. All failing fields are reported, not just the first.
func ValidateTaxForm(name, rate string, mode domain.Mode) (domain.FormValues, error) {
	var errs ValidationErrors

	if err := ValidateRequired(FieldName, name); err != nil {
		errs = append(errs, err.(*ValidationError))
	}

	parsed, err := ValidateRate(FieldRate, rate)
	if err != nil {
		errs = append(errs, err.(*ValidationError))
	}

	if len(errs) > 0 {
		return domain.FormValues{}, errs
	}

	return domain.FormValues{
		Name:      strings.TrimSpace(name),
		Rate:      parsed,
		AppliedTo: mode,
	}, nil
}
