package service

import "errors"

// Sentinel errors of the service.
var (
	ErrNoStore    = errors.New("service has no dataset store")
	ErrNotStarted = errors.New("service not started")
)
