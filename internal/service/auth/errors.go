package auth

import "errors"

// Common authentication errors.
var (
	// ErrInvalidToken is returned when a token is malformed, carries the
	// wrong secret prefix, or has a non-numeric user ID.
	ErrInvalidToken = errors.New("invalid token")

	// ErrEmptySecret is returned when a token service is constructed
	// without a secret.
	ErrEmptySecret = errors.New("token secret cannot be empty")
)
