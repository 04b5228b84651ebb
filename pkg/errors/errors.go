package errors

import "errors"

var (
	ErrNotFound     = errors.New("resource not found")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrValidation   = errors.New("validation failed")
	ErrInvalidState = errors.New("invalid state transition")
	ErrConflict     = errors.New("conflicting concurrent update")
	ErrUnavailable  = errors.New("dependency unavailable")
	ErrInternal     = errors.New("internal server error")
)
