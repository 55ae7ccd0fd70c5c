// Package server provides the HTTP REST API for the placement prep agent.
package server

import (
	"errors"
	"net/http"

	"github.com/jonathan/placement-prep/internal/history"
)

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	var validationErr *history.ValidationError
	var notFoundErr *history.NotFoundError
	var skillErr *history.SkillNotFoundError

	switch {
	case errors.As(err, &validationErr):
		return http.StatusBadRequest
	case errors.As(err, &notFoundErr), errors.As(err, &skillErr):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
