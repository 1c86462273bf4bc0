package exact

import "errors"

// MaxNodes is the largest instance the solver accepts.
const MaxNodes = 16

// ErrTooLarge is returned for instances with more than MaxNodes points.
var ErrTooLarge = errors.New("exact: instance too large")
