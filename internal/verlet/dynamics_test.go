package verlet_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/The-Cobalt-Develop-Team/phosphorus/internal/constants"
	"github.com/The-Cobalt-Develop-Team/phosphorus/internal/coords"
	"github.com/The-Cobalt-Develop-Team/phosphorus/internal/field"
	"github.com/The-Cobalt-Develop-Team/phosphorus/internal/geom"
	"github.com/The-Cobalt-Develop-Team/phosphorus/internal/metrics"
	"github.com/The-Cobalt-Develop-Team/phosphorus/internal/particle"
	"github.com/The-Cobalt-Develop-Team/phosphorus/internal/verlet"
)

func zeroField3() field.Lambda[coords.Cartesian3] {
	return field.NewLambda(func(coords.Cartesian3, particle.Particle) geom.Vector {
		return geom.Zero(3)
	})
}

var _ = Describe("FieldIntegrator", func() {
	Describe("free drift in an empty field", func() {
		It("moves in a straight line at constant velocity", func() {
			integ := verlet.NewFieldIntegrator[coords.Cartesian3](zeroField3())
			h, err := integ.Push(particle.New(1, 0), coords.Cartesian3{0, 0, 0}, geom.New(1, 0, 0))
			Expect(err).NotTo(HaveOccurred())

			for i := 0; i < 10; i++ {
				integ.Step(1.0)
			}

			pos, err := h.Position()
			Expect(err).NotTo(HaveOccurred())
			Expect(pos).To(Equal(coords.Cartesian3{10, 0, 0}))

			vel, err := h.Velocity()
			Expect(err).NotTo(HaveOccurred())
			Expect(vel.Equal(geom.New(1, 0, 0))).To(BeTrue())
		})
	})

	Describe("uniform gravity", func() {
		const g = 9.8

		It("reproduces the parabolic fall exactly per step", func() {
			f := field.NewUniformGravity[coords.Cartesian3](geom.New(0, 0, g))
			integ := verlet.NewFieldIntegrator[coords.Cartesian3](f)
			h, err := integ.Push(particle.New(1, 0), coords.Cartesian3{0, 0, 0}, geom.Zero(3))
			Expect(err).NotTo(HaveOccurred())

			for i := 1; i <= 10; i++ {
				integ.Step(1.0)
				fi := float64(i)

				pos, err := h.Position()
				Expect(err).NotTo(HaveOccurred())
				Expect(pos[2]).To(BeNumerically("~", 0.5*g*fi*fi, 1e-6))

				vel, err := h.Velocity()
				Expect(err).NotTo(HaveOccurred())
				Expect(vel.At(2)).To(BeNumerically("~", g*fi, 1e-6))
			}
		})
	})

	Describe("harmonic oscillator", func() {
		It("tracks sin(t) within 1e-6 for a thousand millisteps", func() {
			const k, m, v0 = 1.0, 1.0, 1.0
			f := field.NewLambda(func(pos coords.Cartesian3, par particle.Particle) geom.Vector {
				return geom.New(-k*pos[0]*par.Mass, 0, 0)
			})
			integ := verlet.NewFieldIntegrator[coords.Cartesian3](f)
			h, err := integ.Push(particle.New(m, 0), coords.Cartesian3{0, 0, 0}, geom.New(v0, 0, 0))
			Expect(err).NotTo(HaveOccurred())

			dt := 1e-3
			for i := 1; i <= 1000; i++ {
				integ.Step(dt)
				pos, err := h.Position()
				Expect(err).NotTo(HaveOccurred())
				t := float64(i) * dt
				Expect(pos[0]).To(BeNumerically("~", math.Sin(t), 1e-6),
					"step %d", i)
			}
		})
	})

	Describe("circular orbit in central gravity", func() {
		It("returns to its starting radius with a bounded energy band", func() {
			sun := field.NewCentralGravity[coords.Cartesian2](geom.NewEuclidean(0, 0), constants.SolarMass)
			integ := verlet.NewFieldIntegrator[coords.Cartesian2](sun)

			r0 := constants.AU
			h, err := integ.Push(particle.New(1, 0), coords.Cartesian2{r0, 0}, geom.New(0, 2.978e4))
			Expect(err).NotTo(HaveOccurred())

			energy := func() float64 {
				return metrics.Kinetic[coords.Cartesian2](integ) +
					metrics.CentralPotential[coords.Cartesian2](integ, geom.NewEuclidean(0, 0), constants.SolarMass)
			}

			dt := constants.Day / 4
			steps := 1461 // about one year
			drift := metrics.NewDrift("energy")
			drift.Observe(energy())
			for i := 0; i < steps; i++ {
				integ.Step(dt)
				drift.Observe(energy())
			}

			pos, err := h.Position()
			Expect(err).NotTo(HaveOccurred())
			radius := pos.ToCartesian().Norm()
			Expect(math.Abs(radius-r0) / r0).To(BeNumerically("<", 1e-3))
			Expect(drift.Value()).To(BeNumerically("<", 0.01))
		})
	})

	Describe("zero-dt stepping", func() {
		It("is a no-op on position, velocity, and cached acceleration", func() {
			f := field.NewUniformGravity[coords.Cartesian3](geom.New(0, 0, -9.8))
			integ := verlet.NewFieldIntegrator[coords.Cartesian3](f)
			h, err := integ.Push(particle.New(2, 0), coords.Cartesian3{1, 2, 3}, geom.New(4, 5, 6))
			Expect(err).NotTo(HaveOccurred())

			before := snapshot(h)
			integ.Step(0)
			Expect(snapshot(h)).To(Equal(before))
		})
	})

	Describe("determinism", func() {
		It("produces identical state from identical runs", func() {
			build := func() (*verlet.FieldIntegrator[coords.Cartesian2], verlet.Handle[coords.Cartesian2]) {
				f := field.NewCentralGravity[coords.Cartesian2](geom.NewEuclidean(0, 0), constants.SolarMass)
				integ := verlet.NewFieldIntegrator[coords.Cartesian2](f)
				h, err := integ.Push(particle.New(1, 0), coords.Cartesian2{constants.AU, 0}, geom.New(0, 2.978e4))
				Expect(err).NotTo(HaveOccurred())
				return integ, h
			}

			ia, ha := build()
			ib, hb := build()
			for i := 0; i < 100; i++ {
				ia.Step(constants.Day)
				ib.Step(constants.Day)
			}
			Expect(snapshot(ha)).To(Equal(snapshot(hb)))
		})
	})

	Describe("insertion failures", func() {
		It("rejects non-positive mass and leaves the integrator untouched", func() {
			integ := verlet.NewFieldIntegrator[coords.Cartesian3](zeroField3())
			_, err := integ.Push(particle.New(0, 1), coords.Cartesian3{}, geom.Zero(3))
			Expect(err).To(MatchError(verlet.ErrZeroMass))
			_, err = integ.Push(particle.New(-1, 0), coords.Cartesian3{}, geom.Zero(3))
			Expect(err).To(MatchError(verlet.ErrZeroMass))
			Expect(integ.Len()).To(BeZero())
		})

		It("rejects a velocity of the wrong dimension", func() {
			integ := verlet.NewFieldIntegrator[coords.Cartesian3](zeroField3())
			_, err := integ.Push(particle.New(1, 0), coords.Cartesian3{}, geom.New(1, 0))
			Expect(err).To(MatchError(verlet.ErrDimensionMismatch))
			Expect(integ.Len()).To(BeZero())
		})
	})
})

var _ = Describe("GravityIntegrator", func() {
	It("treats a lone body as a free particle", func() {
		integ := verlet.NewGravityIntegrator[coords.Cartesian2]()
		h, err := integ.Push(particle.New(5.972e24, 0), coords.Cartesian2{0, 0}, geom.New(7, 0))
		Expect(err).NotTo(HaveOccurred())

		acc, err := h.Acceleration()
		Expect(err).NotTo(HaveOccurred())
		Expect(acc.Norm()).To(BeZero())

		for i := 0; i < 4; i++ {
			integ.Step(0.5)
		}
		pos, err := h.Position()
		Expect(err).NotTo(HaveOccurred())
		Expect(pos).To(Equal(coords.Cartesian2{14, 0}))
	})

	Describe("symmetric two-body orbit", func() {
		It("pins the center of mass and mirrors the trajectories", func() {
			const mass = 5.972e30
			const speed = 2.97856783e4

			integ := verlet.NewGravityIntegrator[coords.Cartesian2]()
			ha, err := integ.Push(particle.New(mass, 0), coords.Cartesian2{-constants.AU, 0}, geom.New(0, -speed))
			Expect(err).NotTo(HaveOccurred())
			hb, err := integ.Push(particle.New(mass, 0), coords.Cartesian2{constants.AU, 0}, geom.New(0, speed))
			Expect(err).NotTo(HaveOccurred())

			tolerance := 1e-3 * constants.AU
			for i := 0; i < 730; i++ {
				integ.Step(constants.Day)

				com := metrics.CenterOfMass[coords.Cartesian2](integ)
				Expect(com.Norm()).To(BeNumerically("<", tolerance))

				pa, err := ha.Position()
				Expect(err).NotTo(HaveOccurred())
				pb, err := hb.Position()
				Expect(err).NotTo(HaveOccurred())
				mirror := pb.ToCartesian().Scale(-1)
				Expect(pa.ToCartesian().Sub(mirror).Norm()).To(BeNumerically("<", tolerance))
			}
		})

		It("keeps total energy within a tight band over the run", func() {
			const mass = 5.972e30
			const speed = 2.97856783e4

			integ := verlet.NewGravityIntegrator[coords.Cartesian2]()
			_, err := integ.Push(particle.New(mass, 0), coords.Cartesian2{-constants.AU, 0}, geom.New(0, -speed))
			Expect(err).NotTo(HaveOccurred())
			_, err = integ.Push(particle.New(mass, 0), coords.Cartesian2{constants.AU, 0}, geom.New(0, speed))
			Expect(err).NotTo(HaveOccurred())

			drift := metrics.NewDrift("energy")
			drift.Observe(metrics.TotalEnergy[coords.Cartesian2](integ, 0))
			for i := 0; i < 730; i++ {
				integ.Step(constants.Day)
				drift.Observe(metrics.TotalEnergy[coords.Cartesian2](integ, 0))
			}
			Expect(drift.Value()).To(BeNumerically("<", 0.01))
		})
	})

	Describe("collocated bodies", func() {
		It("contributes nothing for exactly coincident unsoftened pairs", func() {
			integ := verlet.NewGravityIntegrator[coords.Cartesian2]()
			ha, err := integ.Push(particle.New(1e20, 0), coords.Cartesian2{1, 1}, geom.Zero(2))
			Expect(err).NotTo(HaveOccurred())
			_, err = integ.Push(particle.New(1e20, 0), coords.Cartesian2{1, 1}, geom.Zero(2))
			Expect(err).NotTo(HaveOccurred())

			acc, err := ha.Acceleration()
			Expect(err).NotTo(HaveOccurred())
			Expect(acc.Norm()).To(BeZero())
		})

		It("bounds the force between near-coincident bodies when softened", func() {
			integ := verlet.NewSoftenedGravityIntegrator[coords.Cartesian2](1.0)
			Expect(integ.Softening()).To(Equal(1.0))

			ha, err := integ.Push(particle.New(1e20, 0), coords.Cartesian2{0, 0}, geom.Zero(2))
			Expect(err).NotTo(HaveOccurred())
			_, err = integ.Push(particle.New(1e20, 0), coords.Cartesian2{1e-3, 0}, geom.Zero(2))
			Expect(err).NotTo(HaveOccurred())

			integ.Step(1)
			acc, err := ha.Acceleration()
			Expect(err).NotTo(HaveOccurred())
			Expect(acc.IsFinite()).To(BeTrue())
		})
	})
})

type state struct {
	pos geom.Euclidean
	vel geom.Vector
	acc geom.Vector
}

func snapshot[P coords.Point[P]](h verlet.Handle[P]) state {
	pos, err := h.Position()
	Expect(err).NotTo(HaveOccurred())
	vel, err := h.Velocity()
	Expect(err).NotTo(HaveOccurred())
	acc, err := h.Acceleration()
	Expect(err).NotTo(HaveOccurred())
	return state{pos: pos.ToCartesian(), vel: vel, acc: acc}
}
