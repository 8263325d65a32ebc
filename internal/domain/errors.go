package domain

import "errors"

// ErrNotFound is returned by repo and service functions when the requested
// trip (or other resource) does not exist for the given user.
// Handlers map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned by service functions when input fails business
// rule validation (e.g. missing trip name or start date).
// Handlers map this to HTTP 422 Unprocessable Entity.
var ErrValidation = errors.New("validation error")

// ErrUnauthorized is returned when a request carries no user identity.
// Handlers map this to HTTP 401.
var ErrUnauthorized = errors.New("unauthorized")
