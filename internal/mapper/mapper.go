package mapper

import (
	"errors"
	"net/http"

	"tasklist/internal/core/domain/exceptions"
)

const (
	KindAuthentication = "authentication_error"
	KindValidation     = "validation_error"
	KindNotFound       = "not_found"
	KindConflict       = "conflict"
	KindInternal       = "internal_error"
)

type ErrorBody struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

// Error maps a domain error to an HTTP status and a stable machine-readable
// body. Unknown errors collapse to internal_error with a generic message so
// store internals never leak to clients.
func Error(err error) (int, ErrorResponse) {
	var status int
	var kind string
	message := err.Error()

	switch {
	case errors.Is(err, exceptions.ErrMissingToken),
		errors.Is(err, exceptions.ErrInvalidToken),
		errors.Is(err, exceptions.ErrInvalidCredentials):
		status, kind = http.StatusUnauthorized, KindAuthentication
	case errors.Is(err, exceptions.ErrEmptyTitle),
		errors.Is(err, exceptions.ErrInvalidStatus),
		errors.Is(err, exceptions.ErrInvalidEmail),
		errors.Is(err, exceptions.ErrEmptyPassword):
		status, kind = http.StatusBadRequest, KindValidation
	case errors.Is(err, exceptions.ErrTaskNotFound):
		status, kind = http.StatusNotFound, KindNotFound
	case errors.Is(err, exceptions.ErrEmailTaken):
		status, kind = http.StatusConflict, KindConflict
	default:
		status, kind = http.StatusInternalServerError, KindInternal
		message = "internal error"
	}

	return status, ErrorResponse{Error: ErrorBody{Kind: kind, Message: message}}
}
