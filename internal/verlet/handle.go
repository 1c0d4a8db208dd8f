package verlet

import (
	"fmt"

	"github.com/The-Cobalt-Develop-Team/phosphorus/internal/coords"
	"github.com/The-Cobalt-Develop-Team/phosphorus/internal/geom"
	"github.com/The-Cobalt-Develop-Team/phosphorus/internal/particle"
)

// Handle is a stable reference to one record inside an integrator: the
// integrator's identity plus the record's insertion index. Indices are
// never reused (records are only appended), so a handle stays valid
// across any number of later Push and Step calls. The zero Handle refers
// to nothing and fails every dereference.
//
// Handles are comparable with ==, ordered by insertion index, and support
// random-access arithmetic via Add and Diff.
type Handle[P coords.Point[P]] struct {
	owner *integrator[P]
	index int
}

func (h Handle[P]) deref() (*record[P], error) {
	if h.owner == nil || h.index < 0 || h.index >= len(h.owner.recs) {
		return nil, fmt.Errorf("record %d: %w", h.index, ErrInvalidHandle)
	}
	return &h.owner.recs[h.index], nil
}

// Valid reports whether the handle currently refers to a live record.
func (h Handle[P]) Valid() bool {
	_, err := h.deref()
	return err == nil
}

// Index is the record's insertion index within its integrator.
func (h Handle[P]) Index() int { return h.index }

// Particle returns the record's intrinsic attributes.
func (h Handle[P]) Particle() (particle.Particle, error) {
	r, err := h.deref()
	if err != nil {
		return particle.Particle{}, err
	}
	return r.par, nil
}

// Position returns the record's position as of the last Step.
func (h Handle[P]) Position() (P, error) {
	r, err := h.deref()
	if err != nil {
		var zero P
		return zero, err
	}
	return r.pos, nil
}

// Velocity returns the record's velocity as of the last Step.
func (h Handle[P]) Velocity() (geom.Vector, error) {
	r, err := h.deref()
	if err != nil {
		return nil, err
	}
	return r.vel.Clone(), nil
}

// Acceleration returns the acceleration computed at the end of the last
// Step (or at Push, before the first Step).
func (h Handle[P]) Acceleration() (geom.Vector, error) {
	r, err := h.deref()
	if err != nil {
		return nil, err
	}
	return r.lastAcc.Clone(), nil
}

// Add returns the handle n records after h in insertion order. The
// result may be out of range; dereferences report that.
func (h Handle[P]) Add(n int) Handle[P] {
	return Handle[P]{owner: h.owner, index: h.index + n}
}

// Diff is the signed distance in insertion order from o to h. Only
// meaningful for handles of the same integrator.
func (h Handle[P]) Diff(o Handle[P]) int { return h.index - o.index }

// Before orders handles of one integrator by insertion index.
func (h Handle[P]) Before(o Handle[P]) bool { return h.index < o.index }
