// Package config loads simulation scenarios from YAML: the particle
// population, the force-field specification, and the stepping plan. The
// integration core itself defines no file format; this is the boundary
// where files become typed values.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/The-Cobalt-Develop-Team/phosphorus/internal/coords"
	"github.com/The-Cobalt-Develop-Team/phosphorus/internal/field"
	"github.com/The-Cobalt-Develop-Team/phosphorus/internal/geom"
)

const (
	IntegratorField   = "field"
	IntegratorGravity = "gravity"

	DefaultDt           = 0.01
	DefaultSteps        = 1000
	DefaultSampleStride = 1
)

type Config struct {
	Name         string           `yaml:"name"`
	Integrator   string           `yaml:"integrator"`
	Dimension    int              `yaml:"dimension"`
	Dt           float64          `yaml:"dt"`
	Steps        int              `yaml:"steps"`
	SampleStride int              `yaml:"sample_stride"`
	Softening    float64          `yaml:"softening"`
	Field        *FieldConfig     `yaml:"field"`
	Particles    []ParticleConfig `yaml:"particles"`
}

type ParticleConfig struct {
	Mass     float64   `yaml:"mass"`
	Charge   float64   `yaml:"charge"`
	Position []float64 `yaml:"position"`
	Velocity []float64 `yaml:"velocity"`
}

// FieldConfig is a small expression tree over the built-in field kinds.
type FieldConfig struct {
	Kind string `yaml:"kind"`

	// Leaf parameters; which ones apply depends on Kind.
	Accel  []float64 `yaml:"accel"`
	E      []float64 `yaml:"e"`
	Center []float64 `yaml:"center"`
	Mass   float64   `yaml:"mass"`
	Anchor []float64 `yaml:"anchor"`
	K      float64   `yaml:"k"`

	// Operands for sum, difference, and negate.
	A *FieldConfig `yaml:"a"`
	B *FieldConfig `yaml:"b"`
}

func Default() *Config {
	return &Config{
		Name:         "scenario",
		Integrator:   IntegratorField,
		Dimension:    3,
		Dt:           DefaultDt,
		Steps:        DefaultSteps,
		SampleStride: DefaultSampleStride,
	}
}

// Load reads and validates a scenario file. File values overlay the
// defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return Parse(data)
}

func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Dimension != 2 && c.Dimension != 3 {
		return fmt.Errorf("config: dimension must be 2 or 3, got %d", c.Dimension)
	}
	if c.Dt <= 0 {
		return fmt.Errorf("config: dt must be positive, got %g", c.Dt)
	}
	if c.Steps <= 0 {
		return fmt.Errorf("config: steps must be positive, got %d", c.Steps)
	}
	if c.SampleStride <= 0 {
		return fmt.Errorf("config: sample_stride must be positive, got %d", c.SampleStride)
	}
	if c.Softening < 0 {
		return fmt.Errorf("config: softening must be non-negative, got %g", c.Softening)
	}

	switch c.Integrator {
	case IntegratorField:
		if c.Field == nil {
			return fmt.Errorf("config: field integrator needs a field spec")
		}
		if err := c.Field.validate(c.Dimension); err != nil {
			return err
		}
	case IntegratorGravity:
		if c.Field != nil {
			return fmt.Errorf("config: gravity integrator takes no field spec")
		}
	default:
		return fmt.Errorf("config: unknown integrator %q", c.Integrator)
	}

	if len(c.Particles) == 0 {
		return fmt.Errorf("config: no particles")
	}
	for i, p := range c.Particles {
		if p.Mass <= 0 {
			return fmt.Errorf("config: particle %d mass must be positive, got %g", i, p.Mass)
		}
		if len(p.Position) != c.Dimension {
			return fmt.Errorf("config: particle %d position has %d components in dimension %d", i, len(p.Position), c.Dimension)
		}
		if len(p.Velocity) != c.Dimension {
			return fmt.Errorf("config: particle %d velocity has %d components in dimension %d", i, len(p.Velocity), c.Dimension)
		}
	}
	return nil
}

func (fc *FieldConfig) validate(dim int) error {
	switch fc.Kind {
	case "uniform_gravity":
		if len(fc.Accel) != dim {
			return fmt.Errorf("config: uniform_gravity accel has %d components in dimension %d", len(fc.Accel), dim)
		}
	case "uniform_electric":
		if len(fc.E) != dim {
			return fmt.Errorf("config: uniform_electric e has %d components in dimension %d", len(fc.E), dim)
		}
	case "central_gravity":
		if len(fc.Center) != dim {
			return fmt.Errorf("config: central_gravity center has %d components in dimension %d", len(fc.Center), dim)
		}
		if fc.Mass <= 0 {
			return fmt.Errorf("config: central_gravity mass must be positive, got %g", fc.Mass)
		}
	case "hooke":
		if len(fc.Anchor) != dim {
			return fmt.Errorf("config: hooke anchor has %d components in dimension %d", len(fc.Anchor), dim)
		}
		if fc.K <= 0 {
			return fmt.Errorf("config: hooke k must be positive, got %g", fc.K)
		}
	case "sum", "difference":
		if fc.A == nil || fc.B == nil {
			return fmt.Errorf("config: %s needs operands a and b", fc.Kind)
		}
		if err := fc.A.validate(dim); err != nil {
			return err
		}
		return fc.B.validate(dim)
	case "negate":
		if fc.A == nil {
			return fmt.Errorf("config: negate needs operand a")
		}
		return fc.A.validate(dim)
	default:
		return fmt.Errorf("config: unknown field kind %q", fc.Kind)
	}
	return nil
}

// BuildField assembles the configured field expression for the point
// type the scenario runs in. The config must already be validated.
func BuildField[P coords.Point[P]](fc *FieldConfig) (field.Field[P], error) {
	switch fc.Kind {
	case "uniform_gravity":
		return field.NewUniformGravity[P](geom.New(fc.Accel...)), nil
	case "uniform_electric":
		return field.NewUniformElectric[P](geom.New(fc.E...)), nil
	case "central_gravity":
		return field.NewCentralGravity[P](geom.NewEuclidean(fc.Center...), fc.Mass), nil
	case "hooke":
		return field.NewHooke[P](geom.NewEuclidean(fc.Anchor...), fc.K), nil
	case "sum", "difference":
		a, err := BuildField[P](fc.A)
		if err != nil {
			return nil, err
		}
		b, err := BuildField[P](fc.B)
		if err != nil {
			return nil, err
		}
		if fc.Kind == "sum" {
			return field.Add[P](a, b), nil
		}
		return field.Sub[P](a, b), nil
	case "negate":
		a, err := BuildField[P](fc.A)
		if err != nil {
			return nil, err
		}
		return field.Neg[P](a), nil
	default:
		return nil, fmt.Errorf("config: unknown field kind %q", fc.Kind)
	}
}
