package common

import "errors"

// Sentinel errors shared by repositories, services and the GraphQL layer.
// Anything that does not wrap one of these is treated as an upstream
// failure (database, session store) and reported as an internal error.
var (
	// repositories
	ErrorNotFound      = errors.New("not found")
	ErrorAlreadyExists = errors.New("already exists")

	// services
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")
	ErrorForbidden    = errors.New("forbidden")
	ErrorValidation   = errors.New("validation error")

	// session cookies
	ErrInvalidToken = errors.New("invalid token")
)
