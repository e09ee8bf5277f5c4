package http

import "errors"

// Sentinel errors produced while extracting the session credential from the
// "Authorization" header.
var (
	// ErrEmptyAuthorizationHeader is returned when the header is absent.
	ErrEmptyAuthorizationHeader = errors.New("you must be logged in to continue")
	// ErrInvalidAuthorizationHeader is returned when the header cannot be
	// split into "<scheme> <token>".
	ErrInvalidAuthorizationHeader = errors.New("invalid authorization header")
	// ErrEmptyToken is returned when the scheme is present but the token is
	// an empty string.
	ErrEmptyToken = errors.New("empty token")
)
