package field

import (
	"github.com/The-Cobalt-Develop-Team/phosphorus/internal/constants"
	"github.com/The-Cobalt-Develop-Team/phosphorus/internal/coords"
	"github.com/The-Cobalt-Develop-Team/phosphorus/internal/geom"
	"github.com/The-Cobalt-Develop-Team/phosphorus/internal/particle"
)

// CentralGravity is the 1/r^2 attractive field of a point source mass
// fixed at a Cartesian center:
//
//	F = -G * M * m * (r - c) / |r - c|^3
//
// The force vector is expressed in Cartesian components; for particles
// stored in a Cartesian system that is the native basis. Evaluation at
// the center itself divides by zero and propagates the resulting
// non-finite components rather than erroring.
type CentralGravity[P coords.Point[P]] struct {
	Center geom.Euclidean
	Mass   float64
}

func NewCentralGravity[P coords.Point[P]](center geom.Euclidean, mass float64) CentralGravity[P] {
	return CentralGravity[P]{Center: center, Mass: mass}
}

func (g CentralGravity[P]) Evaluate(pos P, par particle.Particle) geom.Vector {
	r := pos.ToCartesian().Sub(g.Center).Vector()
	dist := r.Norm()
	unit := r.Div(dist)
	magnitude := -constants.G * g.Mass * par.Mass / (dist * dist)
	return unit.Scale(magnitude)
}

// UniformGravity is a constant acceleration field, F = m * Accel. The
// classic surface-gravity case is Accel = (0, 0, -9.8).
type UniformGravity[P coords.Point[P]] struct {
	Accel geom.Vector
}

func NewUniformGravity[P coords.Point[P]](accel geom.Vector) UniformGravity[P] {
	return UniformGravity[P]{Accel: accel}
}

func (u UniformGravity[P]) Evaluate(_ P, par particle.Particle) geom.Vector {
	return u.Accel.Scale(par.Mass)
}

// UniformElectric is a constant electric field, F = q * E. A neutral
// particle passes through unaffected.
type UniformElectric[P coords.Point[P]] struct {
	E geom.Vector
}

func NewUniformElectric[P coords.Point[P]](e geom.Vector) UniformElectric[P] {
	return UniformElectric[P]{E: e}
}

func (u UniformElectric[P]) Evaluate(_ P, par particle.Particle) geom.Vector {
	return u.E.Scale(par.Charge)
}

// Hooke is a linear restoring field anchored at a Cartesian point,
// F = -k * (r - anchor). Mass and charge do not enter; pair it with a
// Lambda field when the spring constant should scale with either.
type Hooke[P coords.Point[P]] struct {
	Anchor geom.Euclidean
	K      float64
}

func NewHooke[P coords.Point[P]](anchor geom.Euclidean, k float64) Hooke[P] {
	return Hooke[P]{Anchor: anchor, K: k}
}

func (h Hooke[P]) Evaluate(pos P, _ particle.Particle) geom.Vector {
	return pos.ToCartesian().Sub(h.Anchor).Vector().Scale(-h.K)
}
