package services

import "errors"

// Typed failures returned by domain operations. Handlers are the only place
// that translates them into transport status codes and response bodies.
var (
	// ErrMissingFields signals required request input that is absent.
	ErrMissingFields = errors.New("missing required fields")

	// ErrUserAlreadyExists is returned when the registration email is taken.
	ErrUserAlreadyExists = errors.New("email already registered")

	// ErrInvalidCredentials is returned for a wrong email or password.
	// The same error covers both so account existence is never leaked.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrNotFound signals a referenced entity that does not exist.
	ErrNotFound = errors.New("not found")

	// ErrForbidden signals an actor who is not permitted to touch a resource.
	ErrForbidden = errors.New("forbidden")
)
