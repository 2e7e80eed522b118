package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"regexp"

	"eventcheckin/internal/delivery/http/helpers"
	"eventcheckin/internal/domain"
)

// emailRegex matches a simple email format (local@domain with at least one dot in domain).
var emailRegex = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// cpfRegex matches an 11-digit CPF, with or without the usual punctuation.
var cpfRegex = regexp.MustCompile(`^\d{3}\.?\d{3}\.?\d{3}-?\d{2}$`)

// writeServiceError maps domain errors to their HTTP status; anything not
// classified by the domain is logged and returned as 500.
func writeServiceError(logger *slog.Logger, w http.ResponseWriter, r *http.Request, err error) {
	if !errors.Is(err, domain.ErrNotFound) &&
		!errors.Is(err, domain.ErrConflict) &&
		!errors.Is(err, domain.ErrInvalidInput) &&
		!errors.Is(err, domain.ErrForbidden) {
		logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
	}
	helpers.WriteDomainError(w, err)
}
