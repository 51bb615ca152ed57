// Package server provides the HTTP REST API for the outreach composer.
package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/sabbir/outreach-composer/internal/promptgen"
)

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s", e.Message)
}

// ErrNotFound indicates a catalog record was not found
type ErrNotFound struct {
	Kind string
	Key  string
}

func (e *ErrNotFound) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Kind, e.Key)
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	var templateNotFound *promptgen.TemplateNotFoundError
	var profileNotFound *promptgen.ProfileNotFoundError
	var notFound *ErrNotFound
	var validation *ErrValidation

	switch {
	case errors.As(err, &templateNotFound), errors.As(err, &profileNotFound), errors.As(err, &notFound):
		return http.StatusNotFound
	case errors.As(err, &validation):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
