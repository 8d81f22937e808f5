package bookingerrors

import (
	"errors"
	"fmt"
)

// Request-scoped error classes. Every error leaving the service layer wraps one of these.
var (
	ErrStorage    = errors.New("storage error")
	ErrTemplate   = errors.New("template error")
	ErrBadRequest = errors.New("bad request")
	ErrNotFound   = errors.New("not found")
)

// lookup errors
var (
	ErrFurnitureNotFound = fmt.Errorf("furniture %w", ErrNotFound)
	ErrUserNotFound      = fmt.Errorf("user %w", ErrNotFound)
)

// input errors
var (
	ErrInvalidID    = fmt.Errorf("invalid id: %w", ErrBadRequest)
	ErrMissingField = fmt.Errorf("missing required field: %w", ErrBadRequest)
)

// ErrInvalidCredentials is returned when no user matches an email and password pair.
// It is not an HTTP error: the login flow redirects back to the form.
var ErrInvalidCredentials = errors.New("invalid credentials")
