// Package server provides the HTTP REST API for the resume analyzer.
package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/resume-analyzer/internal/extraction"
	"github.com/jonathan/resume-analyzer/internal/schemas"
)

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// ErrNotConfigured indicates a capability the server was started without
type ErrNotConfigured struct {
	Capability string
}

func (e *ErrNotConfigured) Error() string {
	return fmt.Sprintf("%s is not configured on this server", e.Capability)
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	var (
		validationErr       *ErrValidation
		notConfiguredErr    *ErrNotConfigured
		schemaErr           *schemas.ValidationError
		unsupportedErr      *extraction.UnsupportedFormatError
		extractionErr       *extraction.ExtractionError
		fieldValidationErrs validator.ValidationErrors
	)
	switch {
	case errors.As(err, &validationErr),
		errors.As(err, &schemaErr),
		errors.As(err, &fieldValidationErrs),
		errors.As(err, &unsupportedErr):
		return http.StatusBadRequest
	case errors.As(err, &extractionErr):
		return http.StatusUnprocessableEntity
	case errors.As(err, &notConfiguredErr):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
