package http

import "errors"

var (
	// ErrBind is returned when the listening socket cannot be created
	ErrBind = errors.New("failed to bind listener")

	// ErrServe is returned when the server stops for a reason other than Stop
	ErrServe = errors.New("http server failed")

	// ErrEmptyAddress is returned by NewRunner when no listen address is given
	ErrEmptyAddress = errors.New("listen address is empty")

	// ErrNoRoutes is returned by NewRunner when the route list is empty
	ErrNoRoutes = errors.New("at least one route is required")
)
