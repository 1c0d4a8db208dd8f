package verlet

import "errors"

// Domain errors for integrator operations.
var (
	// ErrZeroMass indicates an attempt to push a particle whose mass is
	// not strictly positive; acceleration would be undefined.
	ErrZeroMass = errors.New("verlet: particle mass must be positive")

	// ErrInvalidHandle indicates a dereference through a handle that does
	// not refer to a live record.
	ErrInvalidHandle = errors.New("verlet: invalid handle")

	// ErrDimensionMismatch indicates a velocity whose dimension does not
	// match the coordinate system of the position.
	ErrDimensionMismatch = errors.New("verlet: dimension mismatch between position and velocity")
)
