// Package verlet advances populations of massive point particles through
// time with the velocity-Verlet scheme.
//
// An integrator owns a growable set of particle records; callers refer to
// individual records through stable [Handle] values that survive any
// number of later Push and Step calls. Records are only ever appended,
// never removed.
//
// Step is single-threaded and fully synchronous. Field evaluations run
// during a step must not mutate observable state and must not call back
// into the owning integrator.
package verlet

import (
	"fmt"

	"github.com/The-Cobalt-Develop-Team/phosphorus/internal/coords"
	"github.com/The-Cobalt-Develop-Team/phosphorus/internal/field"
	"github.com/The-Cobalt-Develop-Team/phosphorus/internal/geom"
	"github.com/The-Cobalt-Develop-Team/phosphorus/internal/particle"
)

// record is a particle together with the kinematic state the integrator
// owns for it. lastAcc caches the acceleration computed at the end of the
// previous step so each step needs a single force evaluation per record.
type record[P coords.Point[P]] struct {
	par     particle.Particle
	pos     P
	vel     geom.Vector
	lastAcc geom.Vector
}

// integrator is the state and stepping machinery shared by the variants.
// forceOn is the variant's force rule for record i, always invoked after
// the positions of all records have settled for the evaluation point.
type integrator[P coords.Point[P]] struct {
	recs    []record[P]
	scratch []geom.Vector
	forceOn func(i int) geom.Vector
}

// Push appends a particle with its initial position and velocity and
// returns a stable handle to the new record. The initial acceleration is
// computed immediately so the first Step can reuse it, and the cached
// accelerations of the earlier records are recomputed too, since a new
// body changes the pairwise forces on them. Pushing a particle
// with non-positive mass fails, as does a velocity whose dimension does
// not match the coordinate system; the integrator state is untouched on
// failure.
func (in *integrator[P]) Push(par particle.Particle, pos P, vel geom.Vector) (Handle[P], error) {
	if !par.Massive() {
		return Handle[P]{}, fmt.Errorf("push mass %g: %w", par.Mass, ErrZeroMass)
	}
	if vel.Dim() != pos.Dim() {
		return Handle[P]{}, fmt.Errorf("push velocity dimension %d in %d-dimensional system: %w",
			vel.Dim(), pos.Dim(), ErrDimensionMismatch)
	}
	in.recs = append(in.recs, record[P]{par: par, pos: pos, vel: vel.Clone()})
	for j := range in.recs {
		in.recs[j].lastAcc = in.forceOn(j).Div(in.recs[j].par.Mass)
	}
	return Handle[P]{owner: in, index: len(in.recs) - 1}, nil
}

// Step advances every record by one velocity-Verlet step of size dt:
//
//	pos   += vel*dt + 0.5*a_prev*dt^2
//	a_new  = force(pos_new) / mass
//	vel   += 0.5*(a_prev + a_new)*dt
//
// Positions and forces update in two separate passes: every new position
// is in place before the first force evaluation, which is what makes the
// pairwise-gravity variant independent of record order. Step never fails;
// non-finite values from pathological inputs propagate silently.
func (in *integrator[P]) Step(dt float64) {
	n := len(in.recs)
	if n == 0 {
		return
	}
	in.ensureScratch(n)

	dt2 := 0.5 * dt * dt
	for i := range in.recs {
		r := &in.recs[i]
		r.pos = r.pos.Translate(r.vel.Scale(dt).Add(r.lastAcc.Scale(dt2)))
	}

	for i := range in.recs {
		in.scratch[i] = in.forceOn(i).Div(in.recs[i].par.Mass)
	}

	halfDt := 0.5 * dt
	for i := range in.recs {
		r := &in.recs[i]
		r.vel = r.vel.Add(r.lastAcc.Add(in.scratch[i]).Scale(halfDt))
		r.lastAcc = in.scratch[i]
	}
}

// ensureScratch keeps the per-instance acceleration buffer sized to the
// record count. Scratch is never shared across integrators.
func (in *integrator[P]) ensureScratch(n int) {
	if len(in.scratch) != n {
		in.scratch = make([]geom.Vector, n)
	}
}

// Len is the number of records pushed so far.
func (in *integrator[P]) Len() int { return len(in.recs) }

// At returns the handle for record i.
func (in *integrator[P]) At(i int) (Handle[P], error) {
	if i < 0 || i >= len(in.recs) {
		return Handle[P]{}, fmt.Errorf("record %d of %d: %w", i, len(in.recs), ErrInvalidHandle)
	}
	return Handle[P]{owner: in, index: i}, nil
}

// Handles returns a handle per record, in insertion order.
func (in *integrator[P]) Handles() []Handle[P] {
	hs := make([]Handle[P], len(in.recs))
	for i := range hs {
		hs[i] = Handle[P]{owner: in, index: i}
	}
	return hs
}

// Each visits every record in insertion order. The callback must not call
// back into the integrator.
func (in *integrator[P]) Each(fn func(par particle.Particle, pos P, vel geom.Vector)) {
	for i := range in.recs {
		r := &in.recs[i]
		fn(r.par, r.pos, r.vel)
	}
}

// FieldIntegrator drives its particles with a single force field; the
// force on a record depends only on that record's own position and
// intrinsic attributes. Composite fields work unchanged.
//
// The integrator must not be copied once in use; handles capture its
// identity.
type FieldIntegrator[P coords.Point[P]] struct {
	integrator[P]
	field field.Field[P]
}

func NewFieldIntegrator[P coords.Point[P]](f field.Field[P]) *FieldIntegrator[P] {
	fi := &FieldIntegrator[P]{field: f}
	fi.forceOn = func(i int) geom.Vector {
		r := &fi.recs[i]
		return fi.field.Evaluate(r.pos, r.par)
	}
	return fi
}
