package daemon

import "errors"

// ErrNilConfig is returned by New without a config.
var ErrNilConfig = errors.New("daemon: config is nil")
