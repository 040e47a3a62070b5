package rigidbody

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/san-kum/bodysim/internal/physics"
)

// Parameter defaults for a freshly constructed component.
const (
	DefaultMass            = 0.0
	DefaultFriction        = 0.5
	DefaultRollingFriction = 0.0
	DefaultRestitution     = 0.0
)

// SceneTransform is the scene-graph transform the component syncs with.
// It is read before integration and written after.
type SceneTransform interface {
	Position() mgl64.Vec3
	Rotation() mgl64.Quat
	SetPosition(p mgl64.Vec3)
	SetRotation(r mgl64.Quat)
}

// Collider supplies the collision shape and the local center-of-mass
// offset. It is queried once at initialization and again on deserialize.
type Collider interface {
	Shape() physics.Shape
	Center() mgl64.Vec3
}

// ForceMode selects between a continuous force and an instantaneous
// impulse.
type ForceMode int

const (
	Force ForceMode = iota
	Impulse
)

// Body is the public surface of the component. It exclusively owns the
// underlying physics body handle; registering the handle with the world
// grants membership, not ownership.
type Body struct {
	transform SceneTransform
	collider  Collider
	world     physics.Registry

	mass            float64
	friction        float64
	rollingFriction float64
	restitution     float64
	useGravity      bool
	gravity         mgl64.Vec3
	kinematic       bool
	positionLock    mgl64.Vec3
	rotationLock    mgl64.Vec3
	centerOfMass    mgl64.Vec3

	shape   physics.Shape
	body    *physics.Body
	inWorld bool

	constraints []physics.Constraint

	authoring bool
}

// New builds a component bound to transform, acquires the shape from
// collider, and constructs the simulated body. Gravity defaults to the
// world's gravity at construction time.
func New(transform SceneTransform, collider Collider, world physics.Registry) *Body {
	rb := &Body{
		transform:       transform,
		collider:        collider,
		world:           world,
		mass:            DefaultMass,
		friction:        DefaultFriction,
		rollingFriction: DefaultRollingFriction,
		restitution:     DefaultRestitution,
		useGravity:      true,
		gravity:         world.Gravity(),
	}
	rb.acquireShape()
	rb.addToWorld()
	return rb
}

// Close releases the simulated body, notifying attached constraints
// first. Safe to call more than once.
func (rb *Body) Close() {
	rb.release()
}

func (rb *Body) Mass() float64            { return rb.mass }
func (rb *Body) Friction() float64        { return rb.friction }
func (rb *Body) RollingFriction() float64 { return rb.rollingFriction }
func (rb *Body) Restitution() float64     { return rb.restitution }
func (rb *Body) UseGravity() bool         { return rb.useGravity }
func (rb *Body) Gravity() mgl64.Vec3      { return rb.gravity }
func (rb *Body) Kinematic() bool          { return rb.kinematic }
func (rb *Body) PositionLock() mgl64.Vec3 { return rb.positionLock }
func (rb *Body) RotationLock() mgl64.Vec3 { return rb.rotationLock }
func (rb *Body) CenterOfMass() mgl64.Vec3 { return rb.centerOfMass }
func (rb *Body) InWorld() bool            { return rb.inWorld }

// Handle exposes the underlying physics body; nil when none is built.
func (rb *Body) Handle() *physics.Body { return rb.body }

// SetMass clamps to zero and rebuilds when the clamped value differs from
// the current mass. Mass is a construction parameter, so the change is
// always structural.
func (rb *Body) SetMass(mass float64) {
	mass = math.Max(mass, 0)
	if mass != rb.mass {
		rb.mass = mass
		rb.addToWorld()
	}
}

func (rb *Body) SetFriction(friction float64) {
	if rb.body == nil || rb.friction == friction {
		return
	}
	rb.friction = friction
	rb.body.SetFriction(friction)
}

func (rb *Body) SetRollingFriction(friction float64) {
	if rb.body == nil || rb.rollingFriction == friction {
		return
	}
	rb.rollingFriction = friction
	rb.body.SetRollingFriction(friction)
}

func (rb *Body) SetRestitution(restitution float64) {
	if rb.body == nil || rb.restitution == restitution {
		return
	}
	rb.restitution = restitution
	rb.body.SetRestitution(restitution)
}

// SetUseGravity toggles the per-body gravity override. Structural.
func (rb *Body) SetUseGravity(use bool) {
	if use == rb.useGravity {
		return
	}
	rb.useGravity = use
	rb.addToWorld()
}

// SetGravity assigns the body's own gravity vector, which may differ from
// the world's. Structural.
func (rb *Body) SetGravity(acceleration mgl64.Vec3) {
	if rb.gravity == acceleration {
		return
	}
	rb.gravity = acceleration
	rb.addToWorld()
}

// SetKinematic toggles external driving. Structural.
func (rb *Body) SetKinematic(kinematic bool) {
	if kinematic == rb.kinematic {
		return
	}
	rb.kinematic = kinematic
	rb.addToWorld()
}

// SetLinearVelocity writes the body's linear velocity, waking it when the
// velocity is non-zero and activate is set.
func (rb *Body) SetLinearVelocity(velocity mgl64.Vec3, activate bool) {
	if rb.body == nil {
		return
	}
	rb.body.SetLinearVelocity(velocity)
	if velocity != (mgl64.Vec3{}) && activate {
		rb.Activate()
	}
}

func (rb *Body) SetAngularVelocity(velocity mgl64.Vec3, activate bool) {
	if rb.body == nil {
		return
	}
	rb.body.SetAngularVelocity(velocity)
	if velocity != (mgl64.Vec3{}) && activate {
		rb.Activate()
	}
}

func (rb *Body) LinearVelocity() mgl64.Vec3 {
	if rb.body == nil {
		return mgl64.Vec3{}
	}
	return rb.body.LinearVelocity()
}

func (rb *Body) AngularVelocity() mgl64.Vec3 {
	if rb.body == nil {
		return mgl64.Vec3{}
	}
	return rb.body.AngularVelocity()
}

// ApplyForce applies a central force or impulse, waking the body first.
func (rb *Body) ApplyForce(force mgl64.Vec3, mode ForceMode) {
	if rb.body == nil {
		return
	}
	rb.Activate()
	switch mode {
	case Force:
		rb.body.ApplyCentralForce(force)
	case Impulse:
		rb.body.ApplyCentralImpulse(force)
	}
}

// ApplyForceAtPosition applies a force or impulse at a position relative
// to the center of mass, waking the body first.
func (rb *Body) ApplyForceAtPosition(force, position mgl64.Vec3, mode ForceMode) {
	if rb.body == nil {
		return
	}
	rb.Activate()
	switch mode {
	case Force:
		rb.body.ApplyForce(force, position)
	case Impulse:
		rb.body.ApplyImpulse(force, position)
	}
}

// ApplyTorque applies a torque or torque impulse, waking the body first.
func (rb *Body) ApplyTorque(torque mgl64.Vec3, mode ForceMode) {
	if rb.body == nil {
		return
	}
	rb.Activate()
	switch mode {
	case Force:
		rb.body.ApplyTorque(torque)
	case Impulse:
		rb.body.ApplyTorqueImpulse(torque)
	}
}

// ClearForces zeroes the body's force and torque accumulators.
func (rb *Body) ClearForces() {
	if rb.body == nil {
		return
	}
	rb.body.ClearForces()
}

// SetPositionLocked locks or unlocks all position axes.
func (rb *Body) SetPositionLocked(locked bool) {
	if locked {
		rb.SetPositionLock(mgl64.Vec3{1, 1, 1})
	} else {
		rb.SetPositionLock(mgl64.Vec3{})
	}
}

// SetPositionLock stores the per-axis lock vector and complement-
// multiplies it into the body's linear motion factor: a locked axis
// contributes zero motion.
func (rb *Body) SetPositionLock(lock mgl64.Vec3) {
	if rb.body == nil || rb.positionLock == lock {
		return
	}
	rb.positionLock = lock
	rb.applyPositionLock()
}

// SetRotationLocked locks or unlocks all rotation axes.
func (rb *Body) SetRotationLocked(locked bool) {
	if locked {
		rb.SetRotationLock(mgl64.Vec3{1, 1, 1})
	} else {
		rb.SetRotationLock(mgl64.Vec3{})
	}
}

func (rb *Body) SetRotationLock(lock mgl64.Vec3) {
	if rb.body == nil || rb.rotationLock == lock {
		return
	}
	rb.rotationLock = lock
	rb.applyRotationLock()
}

func (rb *Body) applyPositionLock() {
	one := mgl64.Vec3{1, 1, 1}
	rb.body.SetLinearFactor(one.Sub(rb.positionLock))
}

func (rb *Body) applyRotationLock() {
	one := mgl64.Vec3{1, 1, 1}
	rb.body.SetAngularFactor(one.Sub(rb.rotationLock))
}

// SetCenterOfMass stores the offset and rewrites the position through
// it. The simulated world transform stays in place; the scene-space
// position re-derives under the new offset.
func (rb *Body) SetCenterOfMass(center mgl64.Vec3) {
	rb.centerOfMass = center
	rb.SetPosition(rb.Position(), true)
}

// Position returns the scene-space position, compensating for the center
// of mass. Returns the zero vector when no body exists.
func (rb *Body) Position() mgl64.Vec3 {
	if rb.body == nil {
		return mgl64.Vec3{}
	}
	t := rb.body.WorldTransform()
	pos, _ := physicsToEngine(t.Pos, t.Rot, rb.centerOfMass)
	return pos
}

// SetPosition writes pos to both the primary and interpolated world
// transforms; both must move together to avoid a one-step visual
// mismatch.
func (rb *Body) SetPosition(pos mgl64.Vec3, activate bool) {
	if rb.body == nil {
		return
	}

	t := rb.body.WorldTransform()
	t.Pos = pos.Add(t.Rot.Rotate(rb.centerOfMass))
	rb.body.SetWorldTransform(t)

	interp := rb.body.InterpolationTransform()
	interp.Pos = t.Pos
	rb.body.SetInterpolationTransform(interp)

	if activate {
		rb.Activate()
	}
}

// Rotation returns the body's rotation, or identity when no body exists.
func (rb *Body) Rotation() mgl64.Quat {
	if rb.body == nil {
		return mgl64.QuatIdent()
	}
	return rb.body.WorldTransform().Rot
}

// SetRotation writes rot to both world transforms, keeps the scene-space
// position fixed when a center-of-mass offset is present, and recomputes
// the inertia tensor since inertia is orientation-dependent.
func (rb *Body) SetRotation(rot mgl64.Quat, activate bool) {
	if rb.body == nil {
		return
	}

	oldPos := rb.Position()
	t := rb.body.WorldTransform()
	t.Rot = rot
	if rb.centerOfMass != (mgl64.Vec3{}) {
		t.Pos = oldPos.Add(rot.Rotate(rb.centerOfMass))
	}
	rb.body.SetWorldTransform(t)

	interp := rb.body.InterpolationTransform()
	interp.Rot = t.Rot
	if rb.centerOfMass != (mgl64.Vec3{}) {
		interp.Pos = t.Pos
	}
	rb.body.SetInterpolationTransform(interp)

	rb.body.UpdateInertiaTensor()

	if activate {
		rb.Activate()
	}
}

// Activate wakes the body. Static bodies (mass zero) are never activated.
func (rb *Body) Activate() {
	if rb.body == nil {
		return
	}
	if rb.mass > 0 {
		rb.body.Activate(true)
	}
}

// Deactivate requests sleep; the simulation may keep the body awake while
// its motion is above the sleep thresholds.
func (rb *Body) Deactivate() {
	if rb.body == nil {
		return
	}
	rb.body.SetActivationState(physics.StateWantsDeactivation)
}

// IsActive reports whether the body currently participates in
// integration.
func (rb *Body) IsActive() bool {
	if rb.body == nil {
		return false
	}
	return rb.body.IsActive()
}

// SetAuthoring switches authoring mode: while set, Tick lets the scene
// transform drive the body instead of the simulation.
func (rb *Body) SetAuthoring(authoring bool) { rb.authoring = authoring }

func (rb *Body) Authoring() bool { return rb.authoring }

// Tick reconciles the body with its scene transform once per frame. When
// the body is asleep or authoring mode is on, any mismatch is resolved by
// forcing the body to match the transform and discarding residual
// velocity: authoring-time repositioning wins over simulated state.
func (rb *Body) Tick() {
	if rb.body == nil {
		return
	}
	if rb.IsActive() && !rb.authoring {
		return
	}

	if rb.Position() != rb.transform.Position() {
		rb.SetPosition(rb.transform.Position(), false)
		rb.SetLinearVelocity(mgl64.Vec3{}, false)
		rb.SetAngularVelocity(mgl64.Vec3{}, false)
	}

	if rb.Rotation() != rb.transform.Rotation() {
		rb.SetRotation(rb.transform.Rotation(), false)
		rb.SetLinearVelocity(mgl64.Vec3{}, false)
		rb.SetAngularVelocity(mgl64.Vec3{}, false)
	}
}
