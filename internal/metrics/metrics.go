// Package metrics computes conserved-quantity observables over a running
// integrator: energies, momentum, center of mass, and a drift tracker for
// judging integration quality.
package metrics

import (
	"math"

	"github.com/The-Cobalt-Develop-Team/phosphorus/internal/constants"
	"github.com/The-Cobalt-Develop-Team/phosphorus/internal/coords"
	"github.com/The-Cobalt-Develop-Team/phosphorus/internal/geom"
	"github.com/The-Cobalt-Develop-Team/phosphorus/internal/particle"
)

// System is the read surface the observables need; both integrator
// variants satisfy it.
type System[P coords.Point[P]] interface {
	Len() int
	Each(fn func(par particle.Particle, pos P, vel geom.Vector))
}

// Kinetic is the total kinetic energy, sum of 0.5*m*v^2.
func Kinetic[P coords.Point[P]](sys System[P]) float64 {
	total := 0.0
	sys.Each(func(par particle.Particle, _ P, vel geom.Vector) {
		total += 0.5 * par.Mass * vel.Dot(vel)
	})
	return total
}

// Momentum is the total linear momentum in the native component basis.
// Returns nil for an empty system.
func Momentum[P coords.Point[P]](sys System[P]) geom.Vector {
	var total geom.Vector
	sys.Each(func(par particle.Particle, _ P, vel geom.Vector) {
		mv := vel.Scale(par.Mass)
		if total == nil {
			total = mv
			return
		}
		total = total.Add(mv)
	})
	return total
}

// CenterOfMass is the mass-weighted mean of the Cartesian images.
// Returns nil for an empty system.
func CenterOfMass[P coords.Point[P]](sys System[P]) geom.Euclidean {
	var weighted geom.Vector
	mass := 0.0
	sys.Each(func(par particle.Particle, pos P, _ geom.Vector) {
		c := pos.ToCartesian().Vector().Scale(par.Mass)
		if weighted == nil {
			weighted = c
		} else {
			weighted = weighted.Add(c)
		}
		mass += par.Mass
	})
	if weighted == nil {
		return nil
	}
	return geom.Euclidean(weighted.Div(mass))
}

// PairwisePotential is the gravitational potential energy of every
// particle pair, -G*m_i*m_j/r, with the same softening convention as the
// gravity integrator: eps^2 joins r^2 under the root, and exactly
// collocated unsoftened pairs contribute nothing.
func PairwisePotential[P coords.Point[P]](sys System[P], eps float64) float64 {
	type body struct {
		mass float64
		pos  geom.Euclidean
	}
	bodies := make([]body, 0, sys.Len())
	sys.Each(func(par particle.Particle, pos P, _ geom.Vector) {
		bodies = append(bodies, body{mass: par.Mass, pos: pos.ToCartesian()})
	})

	eps2 := eps * eps
	total := 0.0
	for i := range bodies {
		for j := i + 1; j < len(bodies); j++ {
			d := bodies[j].pos.Sub(bodies[i].pos)
			r2 := d.Dot(d) + eps2
			if r2 == 0 {
				continue
			}
			total -= constants.G * bodies[i].mass * bodies[j].mass / math.Sqrt(r2)
		}
	}
	return total
}

// CentralPotential is the potential energy against a fixed point source,
// sum of -G*M*m/r.
func CentralPotential[P coords.Point[P]](sys System[P], center geom.Euclidean, mass float64) float64 {
	total := 0.0
	sys.Each(func(par particle.Particle, pos P, _ geom.Vector) {
		r := pos.ToCartesian().Sub(center).Norm()
		total -= constants.G * mass * par.Mass / r
	})
	return total
}

// TotalEnergy is kinetic plus pairwise potential, the conserved quantity
// of the self-gravitating variant.
func TotalEnergy[P coords.Point[P]](sys System[P], eps float64) float64 {
	return Kinetic[P](sys) + PairwisePotential[P](sys, eps)
}
