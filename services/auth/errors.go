package auth

import "errors"

var (
	// ErrUserNotFound is returned when no account exists for a username
	ErrUserNotFound = errors.New("user not found")

	// ErrInvalidCredentials is returned when the password check fails
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrUsernameTaken is returned when registering an existing username
	ErrUsernameTaken = errors.New("username already registered")

	// ErrInvalidCode is returned when second-factor verification fails.
	// A failed verification never consumes a pending challenge.
	ErrInvalidCode = errors.New("invalid verification code")

	// ErrDeliveryFailed is returned when the email transport fails. The
	// stored challenge stays pending; the caller may retry delivery.
	ErrDeliveryFailed = errors.New("failed to deliver verification code")
)
