package config

import (
	"errors"
)

var (
	// ErrEmptyURL error if config webserver.URL is empty.
	ErrEmptyURL = errors.New("toml config webserver.url can not be empty")
	// ErrWebServerPortCanNotBeZero error if config webserver listening port is 0.
	ErrWebServerPortCanNotBeZero = errors.New("toml config webserver.port listening port can not be 0")
	// ErrEmptyAdminUsername error if config admin.username is empty.
	ErrEmptyAdminUsername = errors.New("toml config admin.username can not be empty")
	// ErrEmptyAdminPasswordHash error if no admin password hash was configured.
	ErrEmptyAdminPasswordHash = errors.New(
		"admin password hash is missing, set admin.passwordHash or " + EnvAdminPasswordHash,
	)
	// ErrEmptyCookieKey error if no cookie encryption key was configured outside dev mode.
	ErrEmptyCookieKey = errors.New(
		"cookie encryption key is missing, set webserver.cookieEncryptionKey or " + EnvCookieKey,
	)
	// ErrUnknownDBEngine error if db.engine is not supported.
	ErrUnknownDBEngine = errors.New("toml config db.engine must be sqlite, mysql or postgres")
)
