// Package server provides the HTTP REST API for the intersync backend.
package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
)

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// HTTPStatus returns the appropriate HTTP status code for an error.
// AI-path failures never reach this mapping; the pipeline absorbs them.
func HTTPStatus(err error) int {
	var ev *ErrValidation
	if errors.As(err, &ev) {
		return http.StatusBadRequest
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		return http.StatusBadRequest
	}

	return http.StatusInternalServerError
}

// validationMessage flattens a validator error into a short user-facing
// message naming the first failing field.
func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		first := verrs[0]
		return fmt.Sprintf("field %s failed on the %s rule", first.Field(), first.Tag())
	}
	return err.Error()
}
