// Package scenario turns a validated configuration into a finished run:
// it assembles the integrator and field, pushes the particles, steps,
// samples, and computes summary metrics. This is the orchestration layer
// between the silent core and the CLI.
package scenario

import (
	"fmt"

	"github.com/The-Cobalt-Develop-Team/phosphorus/internal/config"
	"github.com/The-Cobalt-Develop-Team/phosphorus/internal/coords"
	"github.com/The-Cobalt-Develop-Team/phosphorus/internal/geom"
	"github.com/The-Cobalt-Develop-Team/phosphorus/internal/metrics"
	"github.com/The-Cobalt-Develop-Team/phosphorus/internal/particle"
	"github.com/The-Cobalt-Develop-Team/phosphorus/internal/trace"
	"github.com/The-Cobalt-Develop-Team/phosphorus/internal/verlet"
)

// Result is the concrete, dimension-erased outcome of a run.
type Result struct {
	Name    string
	Dt      float64
	Steps   int
	Times   []float64
	// XS and YS are the Cartesian x/y series per track, ready for
	// plotting; the z component of 3-D runs is projected away.
	XS, YS  [][]float64
	Export  trace.ExportData
	Metrics map[string]float64
}

// integrator is the surface shared by both verlet variants.
type integrator[P coords.Point[P]] interface {
	Push(par particle.Particle, pos P, vel geom.Vector) (verlet.Handle[P], error)
	Step(dt float64)
	Len() int
	Each(fn func(par particle.Particle, pos P, vel geom.Vector))
}

// Run executes a validated configuration.
func Run(cfg *config.Config) (*Result, error) {
	switch cfg.Dimension {
	case 2:
		return run(cfg, func(c []float64) coords.Cartesian2 {
			return coords.Cartesian2{c[0], c[1]}
		})
	case 3:
		return run(cfg, func(c []float64) coords.Cartesian3 {
			return coords.Cartesian3{c[0], c[1], c[2]}
		})
	default:
		return nil, fmt.Errorf("scenario: unsupported dimension %d", cfg.Dimension)
	}
}

func run[P coords.Point[P]](cfg *config.Config, mk func([]float64) P) (*Result, error) {
	var integ integrator[P]
	gravity := cfg.Integrator == config.IntegratorGravity
	if gravity {
		integ = verlet.NewSoftenedGravityIntegrator[P](cfg.Softening)
	} else {
		f, err := config.BuildField[P](cfg.Field)
		if err != nil {
			return nil, err
		}
		integ = verlet.NewFieldIntegrator[P](f)
	}

	handles := make([]verlet.Handle[P], 0, len(cfg.Particles))
	for i, pc := range cfg.Particles {
		h, err := integ.Push(particle.New(pc.Mass, pc.Charge), mk(pc.Position), geom.New(pc.Velocity...))
		if err != nil {
			return nil, fmt.Errorf("scenario: particle %d: %w", i, err)
		}
		handles = append(handles, h)
	}

	tracker := trace.NewTracker(handles...)
	if err := tracker.Sample(0); err != nil {
		return nil, err
	}

	drift := metrics.NewDrift("energy_drift")
	observe := func() {
		if gravity {
			drift.Observe(metrics.TotalEnergy[P](integ, cfg.Softening))
		}
	}
	observe()

	for i := 1; i <= cfg.Steps; i++ {
		integ.Step(cfg.Dt)
		observe()
		if i%cfg.SampleStride == 0 || i == cfg.Steps {
			if err := tracker.Sample(float64(i) * cfg.Dt); err != nil {
				return nil, err
			}
		}
	}

	res := &Result{
		Name:    cfg.Name,
		Dt:      cfg.Dt,
		Steps:   cfg.Steps,
		Times:   tracker.Times(),
		XS:      make([][]float64, tracker.Tracks()),
		YS:      make([][]float64, tracker.Tracks()),
		Export:  tracker.Export(cfg.Name, cfg.Dt),
		Metrics: map[string]float64{},
	}
	for k := 0; k < tracker.Tracks(); k++ {
		res.XS[k] = tracker.CartesianComponent(k, 0)
		res.YS[k] = tracker.CartesianComponent(k, 1)
	}

	res.Metrics["kinetic"] = metrics.Kinetic[P](integ)
	if mom := metrics.Momentum[P](integ); mom != nil {
		res.Metrics["momentum"] = mom.Norm()
	}
	if gravity {
		res.Metrics["energy"] = metrics.TotalEnergy[P](integ, cfg.Softening)
		res.Metrics["energy_drift"] = drift.Value()
		if com := metrics.CenterOfMass[P](integ); com != nil {
			res.Metrics["com_radius"] = com.Norm()
		}
	}
	return res, nil
}
