package services

import (
	"errors"

	"github.com/mailsift/mailsift/internal/api"
)

// Standard service errors
var (
	// Validation errors - caught before any request is sent
	ErrEmptyLabel      = errors.New("label cannot be empty")
	ErrNoSelection     = errors.New("no emails selected")
	ErrUnknownCategory = errors.New("unknown category")
	ErrEmailNotFound   = errors.New("email not found")
)

// IsServerRejection reports whether the error is a non-2xx response with
// an error body from the server (e.g. deleting a protected category).
// These are surfaced to the user verbatim.
func IsServerRejection(err error) (*api.ServerError, bool) {
	var serr *api.ServerError
	if errors.As(err, &serr) {
		return serr, true
	}
	return nil, false
}

// IsValidationError reports whether the error was caught client-side
// before any network request was issued.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrEmptyLabel) ||
		errors.Is(err, ErrNoSelection) ||
		errors.Is(err, ErrUnknownCategory) ||
		errors.Is(err, ErrEmailNotFound)
}
