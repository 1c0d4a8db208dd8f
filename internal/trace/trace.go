// Package trace samples particle state between integration steps into
// time-indexed series, the feed for plotting, animation, and export.
package trace

import (
	"fmt"

	"github.com/The-Cobalt-Develop-Team/phosphorus/internal/coords"
	"github.com/The-Cobalt-Develop-Team/phosphorus/internal/verlet"
)

// Tracker records the positions of a fixed set of handles at each sample
// time. Paths are stored per handle, in the order the handles were given.
type Tracker[P coords.Point[P]] struct {
	handles []verlet.Handle[P]
	times   []float64
	paths   [][]P
}

func NewTracker[P coords.Point[P]](handles ...verlet.Handle[P]) *Tracker[P] {
	return &Tracker[P]{
		handles: handles,
		paths:   make([][]P, len(handles)),
	}
}

// Sample appends the current position of every tracked handle, stamped
// with the given simulation time. A dead handle fails the whole sample
// and leaves the tracker unchanged.
func (t *Tracker[P]) Sample(time float64) error {
	positions := make([]P, len(t.handles))
	for i, h := range t.handles {
		pos, err := h.Position()
		if err != nil {
			return fmt.Errorf("trace: sampling track %d: %w", i, err)
		}
		positions[i] = pos
	}
	t.times = append(t.times, time)
	for i, pos := range positions {
		t.paths[i] = append(t.paths[i], pos)
	}
	return nil
}

// Tracks is the number of tracked particles.
func (t *Tracker[P]) Tracks() int { return len(t.handles) }

// Samples is the number of samples taken so far.
func (t *Tracker[P]) Samples() int { return len(t.times) }

// Times is the sample time series. The returned slice is shared; treat it
// as read-only.
func (t *Tracker[P]) Times() []float64 { return t.times }

// Path is the ordered position sequence of track k.
func (t *Tracker[P]) Path(k int) []P { return t.paths[k] }

// Component extracts the series of native component i along track k.
func (t *Tracker[P]) Component(k, i int) []float64 {
	out := make([]float64, len(t.paths[k]))
	for s, pos := range t.paths[k] {
		out[s] = pos.Components().At(i)
	}
	return out
}

// CartesianComponent extracts the series of Cartesian component i along
// track k. Identical to Component for Cartesian systems.
func (t *Tracker[P]) CartesianComponent(k, i int) []float64 {
	out := make([]float64, len(t.paths[k]))
	for s, pos := range t.paths[k] {
		out[s] = pos.ToCartesian().At(i)
	}
	return out
}

// Radius extracts the series of distances from the Cartesian origin
// along track k.
func (t *Tracker[P]) Radius(k int) []float64 {
	out := make([]float64, len(t.paths[k]))
	for s, pos := range t.paths[k] {
		out[s] = pos.ToCartesian().Norm()
	}
	return out
}
