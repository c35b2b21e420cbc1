package domain

import "errors"

// Domain error taxonomy. Usecases return these (optionally wrapped) and
// delivery maps them to HTTP status codes with errors.Is.
var (
	ErrValidation   = errors.New("validation failed")
	ErrNotFound     = errors.New("not found")
	ErrForbidden    = errors.New("forbidden")
	ErrInvalidState = errors.New("invalid state")
)
