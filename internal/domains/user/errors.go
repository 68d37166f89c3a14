package user

import "errors"

var (
	// ErrDuplicateUser is returned when the email is already registered.
	ErrDuplicateUser = errors.New("user already exists")

	// ErrInvalidCredentials covers both unknown email and wrong password,
	// so callers cannot probe which emails exist.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrUserNotFound is returned for operations on an absent user id.
	ErrUserNotFound = errors.New("user not found")
)
