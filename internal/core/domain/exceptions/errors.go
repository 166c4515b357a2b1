package exceptions

import "errors"

var (
	ErrMissingToken       = errors.New("authorization token is missing")
	ErrInvalidToken       = errors.New("authorization token is invalid or expired")
	ErrInvalidCredentials = errors.New("invalid email or password")

	ErrEmptyTitle    = errors.New("title must not be empty")
	ErrInvalidStatus = errors.New("status must be one of TODO, IN_PROGRESS, DONE")
	ErrInvalidEmail  = errors.New("email is malformed")
	ErrEmptyPassword = errors.New("password must not be empty")

	ErrTaskNotFound = errors.New("task not found")
	ErrEmailTaken   = errors.New("email is already registered")
)
