package db

import "errors"

// ErrNilConfig is returned when Open is called without a configuration.
var ErrNilConfig = errors.New("database config is nil")
