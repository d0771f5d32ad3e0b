package web

import "errors"

var (
	// ErrNilDependency is returned by New when the config or the database is missing.
	ErrNilDependency = errors.New("web: config and db are required")
	// ErrInvalidCookieKey is returned when the cookie key is not base64 of 16, 24 or 32 bytes.
	ErrInvalidCookieKey = errors.New("web: cookie encryption key must be base64 encoded 16, 24 or 32 bytes")
)
