package config

import "github.com/The-Cobalt-Develop-Team/phosphorus/internal/constants"

// Built-in scenarios. SI units; the astronomical ones reproduce the
// classic solar-system setups.
var presets = map[string]*Config{
	// One Earth-like body on a circular orbit around a fixed solar mass.
	"orbit": {
		Name:         "orbit",
		Integrator:   IntegratorField,
		Dimension:    2,
		Dt:           constants.Day / 4,
		Steps:        1461,
		SampleStride: 4,
		Field: &FieldConfig{
			Kind:   "central_gravity",
			Center: []float64{0, 0},
			Mass:   constants.SolarMass,
		},
		Particles: []ParticleConfig{
			{Mass: 1, Position: []float64{constants.AU, 0}, Velocity: []float64{0, 2.978e4}},
		},
	},

	// Two equal masses orbiting their common center with opposing
	// tangential velocities.
	"twobody": {
		Name:       "twobody",
		Integrator: IntegratorGravity,
		Dimension:  2,
		Dt:         constants.Day,
		Steps:      730,
		Particles: []ParticleConfig{
			{Mass: 5.972e30, Position: []float64{-constants.AU, 0}, Velocity: []float64{0, -2.97856783e4}},
			{Mass: 5.972e30, Position: []float64{constants.AU, 0}, Velocity: []float64{0, 2.97856783e4}},
		},
	},

	// Two suns and a light third body starting at rest between them.
	"threebody": {
		Name:       "threebody",
		Integrator: IntegratorGravity,
		Dimension:  2,
		Dt:         constants.Day,
		Steps:      1000,
		Particles: []ParticleConfig{
			{Mass: constants.SolarMass, Position: []float64{-constants.AU, 0}, Velocity: []float64{0, -29788}},
			{Mass: constants.SolarMass, Position: []float64{constants.AU, 0}, Velocity: []float64{0, 0}},
			{Mass: 1.989e20, Position: []float64{0, 0}, Velocity: []float64{0, 0}},
		},
	},

	// Unit-mass harmonic oscillator; the x trace is sin(t).
	"spring": {
		Name:       "spring",
		Integrator: IntegratorField,
		Dimension:  3,
		Dt:         1e-3,
		Steps:      6284,
		Field: &FieldConfig{
			Kind:   "hooke",
			Anchor: []float64{0, 0, 0},
			K:      1,
		},
		Particles: []ParticleConfig{
			{Mass: 1, Position: []float64{0, 0, 0}, Velocity: []float64{1, 0, 0}},
		},
	},
}

// Preset returns a deep copy of the named scenario, or nil when unknown.
func Preset(name string) *Config {
	src, ok := presets[name]
	if !ok {
		return nil
	}
	cfg := *src
	if cfg.SampleStride == 0 {
		cfg.SampleStride = DefaultSampleStride
	}
	cfg.Particles = append([]ParticleConfig(nil), src.Particles...)
	for i := range cfg.Particles {
		cfg.Particles[i].Position = append([]float64(nil), src.Particles[i].Position...)
		cfg.Particles[i].Velocity = append([]float64(nil), src.Particles[i].Velocity...)
	}
	if src.Field != nil {
		cfg.Field = src.Field.clone()
	}
	return &cfg
}

// ListPresets returns the preset names in undefined order.
func ListPresets() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	return names
}

func (fc *FieldConfig) clone() *FieldConfig {
	if fc == nil {
		return nil
	}
	c := *fc
	c.Accel = append([]float64(nil), fc.Accel...)
	c.E = append([]float64(nil), fc.E...)
	c.Center = append([]float64(nil), fc.Center...)
	c.Anchor = append([]float64(nil), fc.Anchor...)
	c.A = fc.A.clone()
	c.B = fc.B.clone()
	return &c
}
