package repository

import "errors"

// Sentinel kinds for dataset errors.
var (
	ErrNotLoaded     = errors.New("dataset not loaded")
	ErrFetch         = errors.New("dataset fetch failed")
	ErrMissingColumn = errors.New("dataset column missing")
	ErrParse         = errors.New("dataset parse failed")
)
