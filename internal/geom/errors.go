package geom

import "errors"

// ErrDimension indicates a component count that does not match the
// requested dimension.
var ErrDimension = errors.New("geom: dimension mismatch")
