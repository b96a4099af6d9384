package smoke

import "errors"

var (
	// ErrUnhealthy is returned when the service health check fails.
	ErrUnhealthy = errors.New("service unhealthy")
	// ErrUnexpectedStatus is returned for responses with an unexpected status code.
	ErrUnexpectedStatus = errors.New("unexpected status")
	// ErrViolation marks an invariant broken by a response.
	ErrViolation = errors.New("invariant violated")
)
