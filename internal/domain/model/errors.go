package model

import "errors"

// Sentinel kinds for record validation.
var (
	ErrInvalidValue = errors.New("invalid record value")
)
