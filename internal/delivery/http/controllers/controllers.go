// Package controllers translates HTTP requests and responses to and from
// the service layer.
package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	"eventbooking/internal/delivery/http/helpers"
	"eventbooking/internal/domain"
)

// writeDomainError translates a service error into the status the boundary
// contract promises: validation 400, not found 404, conflict 409, anything
// unclassified 500.
func writeDomainError(w http.ResponseWriter, r *http.Request, logger *slog.Logger, err error) {
	var (
		validationErr *domain.ValidationError
		notFoundErr   *domain.NotFoundError
		conflictErr   *domain.ConflictError
	)
	switch {
	case errors.As(err, &validationErr):
		helpers.WriteJSONError(w, http.StatusBadRequest, validationErr.Message)
	case errors.As(err, &notFoundErr):
		helpers.WriteJSONError(w, http.StatusNotFound, notFoundErr.Message)
	case errors.As(err, &conflictErr):
		helpers.WriteJSONError(w, http.StatusConflict, conflictErr.Message)
	default:
		logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, "internal server error")
	}
}
