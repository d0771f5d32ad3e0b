// Package handler holds what the route handlers share.
package handler

import "errors"

const (
	// BaseLayout is the default path for layout templates.
	BaseLayout = "layouts/base"

	// RootPath is the root path the route group.
	RootPath = "/"

	// MsgInternalServerError is the only detail a client gets about a server side failure.
	MsgInternalServerError = "Internal server error"
)

// ErrNilDependency is returned by Init when app, config or a service is nil.
var ErrNilDependency = errors.New("handler dependency is nil")
