// Package particle defines the intrinsic attributes of a simulated body.
package particle

// Particle is a plain value carrying the two intrinsic attributes the
// engine cares about. Massless particles may be constructed (photons in
// a lambda field, test charges) but cannot be pushed into an integrator,
// which divides force by mass.
type Particle struct {
	Mass   float64
	Charge float64
}

func New(mass, charge float64) Particle {
	return Particle{Mass: mass, Charge: charge}
}

// Massive reports whether the particle can be integrated.
func (p Particle) Massive() bool { return p.Mass > 0 }
