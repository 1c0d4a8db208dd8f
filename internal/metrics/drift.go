package metrics

import "math"

// Drift tracks how far a scalar observable wanders from its first
// observed value, as a fraction of that value. Feed it the total energy
// once per step and Value reports the worst relative excursion.
type Drift struct {
	name    string
	initial float64
	max     float64
	samples int
}

func NewDrift(name string) *Drift {
	return &Drift{name: name}
}

func (d *Drift) Name() string { return d.name }

func (d *Drift) Observe(v float64) {
	if d.samples == 0 {
		d.initial = v
	} else if d.initial != 0 {
		rel := math.Abs(v-d.initial) / math.Abs(d.initial)
		if rel > d.max {
			d.max = rel
		}
	}
	d.samples++
}

// Value is the maximum relative deviation seen so far, zero until two
// observations exist.
func (d *Drift) Value() float64 { return d.max }

func (d *Drift) Samples() int { return d.samples }

func (d *Drift) Reset() {
	d.initial = 0
	d.max = 0
	d.samples = 0
}
