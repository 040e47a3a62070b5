package physics

import "github.com/go-gl/mathgl/mgl64"

// ActivationState tracks whether a body participates in integration.
type ActivationState int

const (
	// StateActive bodies are integrated every step.
	StateActive ActivationState = iota + 1
	// StateSleeping bodies are skipped until activated. Static bodies
	// start in this state.
	StateSleeping
	// StateWantsDeactivation requests sleep; the step puts the body to
	// sleep once its velocities drop below the sleep thresholds.
	StateWantsDeactivation
	// StateNeverSleep is pinned for kinematic bodies; SetActivationState
	// cannot leave it, only ForceActivationState can.
	StateNeverSleep
)

// Collision flags.
const (
	// FlagKinematicObject marks an externally driven body: the step pulls
	// its transform from the motion state instead of integrating it.
	FlagKinematicObject uint32 = 1 << iota
)

// Body flags.
const (
	// FlagDisableWorldGravity marks a body whose gravity is overridden
	// per-body rather than taken from the world.
	FlagDisableWorldGravity uint32 = 1 << iota
)

// Sleep thresholds, matched to common engine defaults.
const (
	LinearSleepThreshold  = 0.8
	AngularSleepThreshold = 1.0
	// DeactivationTime is how long velocities must stay below the sleep
	// thresholds before an active body falls asleep.
	DeactivationTime = 2.0
)

// Transform is a rigid transform in world space.
type Transform struct {
	Pos mgl64.Vec3
	Rot mgl64.Quat
}

// IdentityTransform returns a transform at the origin with no rotation.
func IdentityTransform() Transform {
	return Transform{Rot: mgl64.QuatIdent()}
}

// MotionState is the capability pair the stepping loop uses to exchange
// transforms with a body's owner: Pull before integration, Push after,
// exactly once per active body per step.
type MotionState interface {
	PullTransform() (pos mgl64.Vec3, rot mgl64.Quat)
	PushTransform(pos mgl64.Vec3, rot mgl64.Quat)
}

// Constraint is a joint linking bodies. Constraints are owned externally;
// bodies hold non-owning references and must never assume a constraint
// outlives them.
type Constraint interface {
	// ApplyFrames recomputes the attachment frames after a participant's
	// frame (center of mass, geometry) changed.
	ApplyFrames()
	// ReleaseConstraint detaches the constraint from the simulation ahead
	// of a participant's destruction.
	ReleaseConstraint()
	// ObjectID is a stable identity used for registry removal.
	ObjectID() uint64
}

// ConstructionInfo carries the immutable construction parameters of a
// body. Changing any of them requires building a new body.
type ConstructionInfo struct {
	Mass            float64
	Shape           Shape
	LocalInertia    mgl64.Vec3
	Friction        float64
	RollingFriction float64
	Restitution     float64
	MotionState     MotionState
}

// Body is a simulated rigid body. Mass, shape, and local inertia are fixed
// at construction; everything else mutates in place.
type Body struct {
	mass            float64
	invMass         float64
	shape           Shape
	localInertia    mgl64.Vec3
	invInertiaLocal mgl64.Vec3
	invInertiaWorld mgl64.Mat3

	friction        float64
	rollingFriction float64
	restitution     float64

	linearVelocity  mgl64.Vec3
	angularVelocity mgl64.Vec3
	force           mgl64.Vec3
	torque          mgl64.Vec3

	gravity       mgl64.Vec3
	linearFactor  mgl64.Vec3
	angularFactor mgl64.Vec3

	world  Transform
	interp Transform

	collisionFlags   uint32
	flags            uint32
	state            ActivationState
	deactivationTime float64

	motionState MotionState
}

// NewBody constructs a body from info. The initial transform is pulled
// from the motion state when one is provided. Dynamic bodies start
// active; static bodies start asleep.
func NewBody(info ConstructionInfo) *Body {
	b := &Body{
		mass:            info.Mass,
		shape:           info.Shape,
		localInertia:    info.LocalInertia,
		friction:        info.Friction,
		rollingFriction: info.RollingFriction,
		restitution:     info.Restitution,
		linearFactor:    mgl64.Vec3{1, 1, 1},
		angularFactor:   mgl64.Vec3{1, 1, 1},
		world:           IdentityTransform(),
		interp:          IdentityTransform(),
		motionState:     info.MotionState,
	}
	if info.Mass > 0 {
		b.invMass = 1 / info.Mass
		b.state = StateActive
	} else {
		b.state = StateSleeping
	}
	for i := 0; i < 3; i++ {
		if info.LocalInertia[i] != 0 {
			b.invInertiaLocal[i] = 1 / info.LocalInertia[i]
		}
	}
	if info.MotionState != nil {
		pos, rot := info.MotionState.PullTransform()
		b.world = Transform{Pos: pos, Rot: rot}
		b.interp = b.world
	}
	b.UpdateInertiaTensor()
	return b
}

func (b *Body) Mass() float64             { return b.mass }
func (b *Body) InvMass() float64          { return b.invMass }
func (b *Body) Shape() Shape              { return b.shape }
func (b *Body) LocalInertia() mgl64.Vec3  { return b.localInertia }
func (b *Body) MotionState() MotionState  { return b.motionState }
func (b *Body) Friction() float64         { return b.friction }
func (b *Body) RollingFriction() float64  { return b.rollingFriction }
func (b *Body) Restitution() float64      { return b.restitution }
func (b *Body) Gravity() mgl64.Vec3       { return b.gravity }
func (b *Body) LinearFactor() mgl64.Vec3  { return b.linearFactor }
func (b *Body) AngularFactor() mgl64.Vec3 { return b.angularFactor }

func (b *Body) SetFriction(f float64)        { b.friction = f }
func (b *Body) SetRollingFriction(f float64) { b.rollingFriction = f }
func (b *Body) SetRestitution(r float64)     { b.restitution = r }
func (b *Body) SetGravity(g mgl64.Vec3)      { b.gravity = g }

func (b *Body) SetLinearFactor(f mgl64.Vec3) {
	b.linearFactor = f
	b.linearVelocity = mulElem(b.linearVelocity, f)
}

func (b *Body) SetAngularFactor(f mgl64.Vec3) {
	b.angularFactor = f
	b.angularVelocity = mulElem(b.angularVelocity, f)
}

func (b *Body) CollisionFlags() uint32 { return b.collisionFlags }
func (b *Body) Flags() uint32          { return b.flags }

func (b *Body) SetCollisionFlags(flags uint32) { b.collisionFlags = flags }
func (b *Body) SetFlags(flags uint32)          { b.flags = flags }

// IsKinematic reports whether the kinematic collision flag is set.
func (b *Body) IsKinematic() bool {
	return b.collisionFlags&FlagKinematicObject != 0
}

func (b *Body) LinearVelocity() mgl64.Vec3  { return b.linearVelocity }
func (b *Body) AngularVelocity() mgl64.Vec3 { return b.angularVelocity }

func (b *Body) SetLinearVelocity(v mgl64.Vec3)  { b.linearVelocity = mulElem(v, b.linearFactor) }
func (b *Body) SetAngularVelocity(v mgl64.Vec3) { b.angularVelocity = mulElem(v, b.angularFactor) }

// WorldTransform returns the primary world transform.
func (b *Body) WorldTransform() Transform { return b.world }

// SetWorldTransform writes the primary world transform and refreshes the
// world-space inertia for the new orientation.
func (b *Body) SetWorldTransform(t Transform) {
	b.world = t
	b.UpdateInertiaTensor()
}

// InterpolationTransform returns the interpolated world transform used
// for rendering between steps.
func (b *Body) InterpolationTransform() Transform { return b.interp }

func (b *Body) SetInterpolationTransform(t Transform) { b.interp = t }

// UpdateInertiaTensor recomputes the world-space inverse inertia tensor
// from the current rotation. Inertia is orientation-dependent relative to
// the shape, so every rotation write must be followed by this.
func (b *Body) UpdateInertiaTensor() {
	r := b.world.Rot.Mat4().Mat3()
	b.invInertiaWorld = r.Mul3(mgl64.Diag3(b.invInertiaLocal)).Mul3(r.Transpose())
}

// InvInertiaWorld returns the world-space inverse inertia tensor.
func (b *Body) InvInertiaWorld() mgl64.Mat3 { return b.invInertiaWorld }

func (b *Body) ApplyCentralForce(f mgl64.Vec3) {
	b.force = b.force.Add(mulElem(f, b.linearFactor))
}

func (b *Body) ApplyCentralImpulse(impulse mgl64.Vec3) {
	b.linearVelocity = b.linearVelocity.Add(mulElem(impulse.Mul(b.invMass), b.linearFactor))
}

// ApplyForce applies a force at a position relative to the center of mass,
// contributing both linear force and torque.
func (b *Body) ApplyForce(f, relPos mgl64.Vec3) {
	b.ApplyCentralForce(f)
	b.ApplyTorque(relPos.Cross(mulElem(f, b.linearFactor)))
}

func (b *Body) ApplyImpulse(impulse, relPos mgl64.Vec3) {
	if b.invMass == 0 {
		return
	}
	b.ApplyCentralImpulse(impulse)
	b.ApplyTorqueImpulse(relPos.Cross(mulElem(impulse, b.linearFactor)))
}

func (b *Body) ApplyTorque(t mgl64.Vec3) {
	b.torque = b.torque.Add(mulElem(t, b.angularFactor))
}

func (b *Body) ApplyTorqueImpulse(t mgl64.Vec3) {
	b.angularVelocity = b.angularVelocity.Add(mulElem(b.invInertiaWorld.Mul3x1(t), b.angularFactor))
}

// ClearForces zeroes the force and torque accumulators.
func (b *Body) ClearForces() {
	b.force = mgl64.Vec3{}
	b.torque = mgl64.Vec3{}
}

// Force returns the accumulated force for the current step.
func (b *Body) Force() mgl64.Vec3 { return b.force }

// Torque returns the accumulated torque for the current step.
func (b *Body) Torque() mgl64.Vec3 { return b.torque }

// Activate wakes the body and resets its deactivation timer. Kinematic
// bodies are only woken when force is set, mirroring the usual engine
// contract that external forces do not drive them.
func (b *Body) Activate(force bool) {
	if force || !b.IsKinematic() {
		b.SetActivationState(StateActive)
	}
	b.deactivationTime = 0
}

// IsActive reports whether the body participates in integration.
func (b *Body) IsActive() bool {
	return b.state != StateSleeping
}

func (b *Body) ActivationState() ActivationState { return b.state }

// SetActivationState changes the activation state unless the body is
// pinned to StateNeverSleep.
func (b *Body) SetActivationState(s ActivationState) {
	if b.state == StateNeverSleep {
		return
	}
	b.state = s
}

// ForceActivationState changes the activation state unconditionally.
func (b *Body) ForceActivationState(s ActivationState) {
	b.state = s
}

func (b *Body) DeactivationTime() float64     { return b.deactivationTime }
func (b *Body) SetDeactivationTime(t float64) { b.deactivationTime = t }

// sleep puts the body to rest and discards residual motion.
func (b *Body) sleep() {
	b.SetActivationState(StateSleeping)
	b.deactivationTime = 0
	b.linearVelocity = mgl64.Vec3{}
	b.angularVelocity = mgl64.Vec3{}
}

func mulElem(a, b mgl64.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{a[0] * b[0], a[1] * b[1], a[2] * b[2]}
}
