package domain

import "errors"

// Sentinel errors for the record store and its command layer. Callers
// match them with errors.Is; the API layer maps them to status codes.
var (
	ErrNotFound       = errors.New("employee: not found")
	ErrDuplicateEmail = errors.New("employee: email already in use")
	ErrValidation     = errors.New("employee: invalid record")
	ErrPersistence    = errors.New("employee: persistence failure")
)
