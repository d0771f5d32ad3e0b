package auth

import "errors"

var (
	// ErrInvalidCredentials is the generic login failure, it does not tell which factor was wrong.
	ErrInvalidCredentials = errors.New("Invalid credentials") //nolint:staticcheck // shown to the user as is

	// ErrRedirectToLogin is returned by RequireAdmin for sessions that are not authenticated.
	ErrRedirectToLogin = errors.New("admin login required")

	// ErrUnsupportedHash is returned when the configured password hash is neither argon2id nor bcrypt.
	ErrUnsupportedHash = errors.New("unsupported password hash format")

	// ErrEmptyUsername is returned when no admin username is configured.
	ErrEmptyUsername = errors.New("admin username is empty")

	// ErrEmptyPassword is returned when HashPassword is called without a password.
	ErrEmptyPassword = errors.New("password is empty")

	// ErrSessionNil is returned when a nil session is passed.
	ErrSessionNil = errors.New("session is nil")
)
