package application

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common conditions
var (
	ErrInvalidCatalog = errors.New("invalid catalog")
	ErrNoItems        = errors.New("catalog has no items")
	ErrInvalidForm    = errors.New("invalid form")
)

// ValidationError represents a validation failure with details
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidForm
}

// ValidationErrors collects the per-field failures of a form
type ValidationErrors []*ValidationError

func (e ValidationErrors) Error() string {
	parts := make([]string, len(e))
	for i, v := range e {
		parts[i] = v.Error()
	}
	return strings.Join(parts, "; ")
}

func (e ValidationErrors) Is(target error) bool {
	return target == ErrInvalidForm
}

// Field returns the message recorded for field, or "" if it is valid
func (e ValidationErrors) Field(field string) string {
	for _, v := range e {
		if v.Field == field {
			return v.Message
		}
	}
	return ""
}

// CatalogError represents a catalog entry that could not be loaded
type CatalogError struct {
	Source string
	Reason string
}

func (e *CatalogError) Error() string {
	return fmt.Sprintf("invalid catalog %s: %s", e.Source, e.Reason)
}

func (e *CatalogError) Is(target error) bool {
	return target == ErrInvalidCatalog
}
