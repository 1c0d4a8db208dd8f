package verlet

import (
	"math"

	"github.com/The-Cobalt-Develop-Team/phosphorus/internal/constants"
	"github.com/The-Cobalt-Develop-Team/phosphorus/internal/coords"
	"github.com/The-Cobalt-Develop-Team/phosphorus/internal/geom"
)

// GravityIntegrator is the self-gravitating all-pairs variant: the force
// on record i is
//
//	F_i = m_i * sum_{j != i} G * m_j * (r_j - r_i) / |r_j - r_i|^3
//
// Forces are computed in Cartesian coordinates regardless of the storage
// system. Pairs at exactly zero separation contribute nothing; a nonzero
// softening length eps instead adds eps^2 to every squared distance,
// which bounds the force between near-collocated bodies. Complexity is
// O(N^2) per step, sized for dozens of bodies.
type GravityIntegrator[P coords.Point[P]] struct {
	integrator[P]
	softening float64
	cart      []geom.Euclidean
}

func NewGravityIntegrator[P coords.Point[P]]() *GravityIntegrator[P] {
	return NewSoftenedGravityIntegrator[P](0)
}

// NewSoftenedGravityIntegrator builds a gravity integrator with an
// explicit softening length in the units of the coordinate system.
func NewSoftenedGravityIntegrator[P coords.Point[P]](eps float64) *GravityIntegrator[P] {
	g := &GravityIntegrator[P]{softening: eps}
	g.forceOn = g.force
	return g
}

// Softening returns the configured softening length.
func (g *GravityIntegrator[P]) Softening() float64 { return g.softening }

func (g *GravityIntegrator[P]) force(i int) geom.Vector {
	n := len(g.recs)
	if len(g.cart) != n {
		g.cart = make([]geom.Euclidean, n)
	}
	// The Cartesian image of every record at its current position. Step
	// settles all positions before the first force call, so one pass here
	// is consistent for the whole evaluation.
	for j := range g.recs {
		g.cart[j] = g.recs[j].pos.ToCartesian()
	}

	center := g.cart[i]
	mi := g.recs[i].par.Mass
	eps2 := g.softening * g.softening
	total := geom.Zero(center.Dim())

	for j := range g.recs {
		if j == i {
			continue
		}
		rij := g.cart[j].Sub(center).Vector()
		d2 := rij.Dot(rij) + eps2
		if d2 == 0 {
			continue
		}
		inv := 1.0 / math.Sqrt(d2)
		inv3 := inv * inv * inv
		scale := constants.G * mi * g.recs[j].par.Mass * inv3
		for k := range total {
			total[k] += scale * rij[k]
		}
	}
	return total
}
