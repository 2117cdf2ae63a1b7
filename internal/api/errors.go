package api

import "errors"

var (
	// ErrUnavailable indicates the sync server could not be reached.
	ErrUnavailable = errors.New("sync server unavailable")

	// ErrServerStatus indicates the server answered with a non-2xx status.
	ErrServerStatus = errors.New("sync server error")
)
