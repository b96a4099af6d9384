package render

import "errors"

// ErrRender wraps template failures of the chart page.
var ErrRender = errors.New("render dashboard failed")
