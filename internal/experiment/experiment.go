// Package experiment wires a config into a runnable drop-test scenario:
// a world, a scene transform, a collider, and the rigidbody component
// bound to them.
package experiment

import (
	"context"
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/san-kum/bodysim/internal/config"
	"github.com/san-kum/bodysim/internal/physics"
	"github.com/san-kum/bodysim/internal/rigidbody"
	"github.com/san-kum/bodysim/internal/scene"
	"github.com/san-kum/bodysim/internal/storage"
)

// Experiment is a built scenario ready to step.
type Experiment struct {
	cfg       *config.Config
	World     *physics.World
	Transform *scene.Transform
	Body      *rigidbody.Body

	t       float64
	asleep  float64 // time the body first went to sleep, NaN until then
	maxV    float64
	samples []storage.Sample
}

// New builds the scenario described by cfg.
func New(cfg *config.Config) (*Experiment, error) {
	if cfg.Dt <= 0 {
		return nil, fmt.Errorf("experiment: dt must be positive, got %f", cfg.Dt)
	}
	if cfg.Duration <= 0 {
		return nil, fmt.Errorf("experiment: duration must be positive, got %f", cfg.Duration)
	}

	shape, err := cfg.BuildShape()
	if err != nil {
		return nil, err
	}

	world := physics.NewWorld()
	world.SetGravity(cfg.GravityVec())

	transform := scene.NewTransformAt(mgl64.Vec3{0, cfg.Body.Height, 0})
	com := cfg.Body.CenterOfMass
	collider := scene.NewCollider(shape, mgl64.Vec3{com[0], com[1], com[2]})

	rb := rigidbody.New(transform, collider, world)
	rb.SetMass(cfg.Body.Mass)
	rb.SetFriction(cfg.Body.Friction)
	rb.SetRollingFriction(cfg.Body.RollingFriction)
	rb.SetRestitution(cfg.Body.Restitution)
	rb.SetUseGravity(cfg.Body.UseGravity)
	rb.SetKinematic(cfg.Body.Kinematic)

	lock := cfg.Body.PositionLock
	rb.SetPositionLock(mgl64.Vec3{lock[0], lock[1], lock[2]})
	lock = cfg.Body.RotationLock
	rb.SetRotationLock(mgl64.Vec3{lock[0], lock[1], lock[2]})

	return &Experiment{
		cfg:       cfg,
		World:     world,
		Transform: transform,
		Body:      rb,
		asleep:    math.NaN(),
	}, nil
}

func (e *Experiment) Config() *config.Config { return e.cfg }

// Time returns the simulated time so far.
func (e *Experiment) Time() float64 { return e.t }

// Done reports whether the configured duration has elapsed.
func (e *Experiment) Done() bool { return e.t >= e.cfg.Duration }

// Step advances the scenario by one tick: reconcile the component with
// its scene transform, step the world, record a sample.
func (e *Experiment) Step() storage.Sample {
	e.Body.Tick()
	e.World.Step(e.cfg.Dt)
	e.t += e.cfg.Dt

	sample := storage.Sample{
		Time:     e.t,
		Position: e.Body.Position(),
		Velocity: e.Body.LinearVelocity(),
		Active:   e.Body.IsActive(),
	}
	e.samples = append(e.samples, sample)

	if speed := sample.Velocity.Len(); speed > e.maxV {
		e.maxV = speed
	}
	if !sample.Active && math.IsNaN(e.asleep) {
		e.asleep = e.t
	}

	return sample
}

// Run steps the scenario to completion and returns the recorded run.
func (e *Experiment) Run(ctx context.Context) (*storage.Run, error) {
	for !e.Done() {
		select {
		case <-ctx.Done():
			return e.result(), ctx.Err()
		default:
		}
		e.Step()
	}
	return e.result(), nil
}

func (e *Experiment) result() *storage.Run {
	metrics := map[string]float64{
		"final_height": e.Body.Position()[1],
		"max_speed":    e.maxV,
	}
	if !math.IsNaN(e.asleep) {
		metrics["time_to_sleep"] = e.asleep
	}
	return &storage.Run{Samples: e.samples, Metrics: metrics}
}
