package service

import "errors"

var (
	// ErrMissingFields is returned when a required request field is empty.
	ErrMissingFields = errors.New("please fill all the details")
	// ErrPasswordTooShort is returned when the supplied password is shorter
	// than six characters. Both registration and login enforce it, even
	// though a stored password altered out-of-band could be shorter.
	ErrPasswordTooShort = errors.New("password must be 6 characters long")
	// ErrInvalidEmail is returned when the email does not match the accepted
	// address pattern. Deliberately distinct from ErrMissingFields.
	ErrInvalidEmail = errors.New("invalid email provided")
	// ErrEmailAlreadyTaken is returned when registration finds an existing
	// account with the same email. Registration reveals existence on
	// purpose; login never does.
	ErrEmailAlreadyTaken = errors.New("account already exists")
	// ErrWrongCredentials covers both an unknown email and a wrong password
	// so that callers cannot probe which emails are registered.
	ErrWrongCredentials = errors.New("wrong email or password")
	// ErrTokenInvalid is returned for any session token that fails
	// verification: bad signature, tampered payload, malformed structure.
	ErrTokenInvalid = errors.New("token is invalid")
	// ErrTokenCreationFailed is returned when signing a session token fails.
	ErrTokenCreationFailed = errors.New("token creation failed")
)
