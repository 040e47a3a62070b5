package config

import (
	"fmt"
	"os"

	"github.com/go-gl/mathgl/mgl64"
	"gopkg.in/yaml.v3"

	"github.com/san-kum/bodysim/internal/physics"
)

const (
	DefaultDt       = 0.01
	DefaultDuration = 10.0
	DefaultHeight   = 5.0
	DefaultGravityY = -9.81
)

// Config describes a drop-test scenario: the world, the body parameters,
// and the stepping schedule.
type Config struct {
	Dt       float64     `yaml:"dt"`
	Duration float64     `yaml:"duration"`
	Gravity  [3]float64  `yaml:"gravity"`
	Body     BodyConfig  `yaml:"body"`
	Shape    ShapeConfig `yaml:"shape"`
}

// BodyConfig mirrors the component's physical parameters.
type BodyConfig struct {
	Mass            float64    `yaml:"mass"`
	Friction        float64    `yaml:"friction"`
	RollingFriction float64    `yaml:"rolling_friction"`
	Restitution     float64    `yaml:"restitution"`
	UseGravity      bool       `yaml:"use_gravity"`
	Kinematic       bool       `yaml:"kinematic"`
	Height          float64    `yaml:"height"`
	CenterOfMass    [3]float64 `yaml:"center_of_mass"`
	PositionLock    [3]float64 `yaml:"position_lock"`
	RotationLock    [3]float64 `yaml:"rotation_lock"`
}

// ShapeConfig selects the collision shape: "box" with size or "sphere"
// with radius.
type ShapeConfig struct {
	Type   string     `yaml:"type"`
	Size   [3]float64 `yaml:"size,omitempty"`
	Radius float64    `yaml:"radius,omitempty"`
}

func DefaultConfig() *Config {
	return &Config{
		Dt:       DefaultDt,
		Duration: DefaultDuration,
		Gravity:  [3]float64{0, DefaultGravityY, 0},
		Body: BodyConfig{
			Mass:       1.0,
			Friction:   0.5,
			UseGravity: true,
			Height:     DefaultHeight,
		},
		Shape: ShapeConfig{
			Type: "box",
			Size: [3]float64{1, 1, 1},
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// BuildShape constructs the physics shape described by the config.
func (c *Config) BuildShape() (physics.Shape, error) {
	switch c.Shape.Type {
	case "box", "":
		return physics.NewBox(c.Shape.Size[0], c.Shape.Size[1], c.Shape.Size[2]), nil
	case "sphere":
		return physics.Sphere{Radius: c.Shape.Radius}, nil
	default:
		return nil, fmt.Errorf("config: unknown shape type %q", c.Shape.Type)
	}
}

// GravityVec returns the configured world gravity as a vector.
func (c *Config) GravityVec() mgl64.Vec3 {
	return mgl64.Vec3{c.Gravity[0], c.Gravity[1], c.Gravity[2]}
}
