package physics

import "github.com/go-gl/mathgl/mgl64"

// Registry is the dependency surface the rigidbody component needs from a
// physics world: membership plus the ambient gravity vector. Injecting it
// keeps the component testable with a substitute world.
type Registry interface {
	AddBody(b *Body)
	RemoveBody(b *Body)
	Gravity() mgl64.Vec3
}

// World is a body registry with a single-threaded integration step.
// Adding a body grants membership only; the caller keeps ownership.
type World struct {
	gravity mgl64.Vec3
	bodies  []*Body
}

// NewWorld returns a world with default gravity (0, -9.81, 0).
func NewWorld() *World {
	return &World{gravity: mgl64.Vec3{0, -9.81, 0}}
}

func (w *World) Gravity() mgl64.Vec3     { return w.gravity }
func (w *World) SetGravity(g mgl64.Vec3) { w.gravity = g }

// AddBody registers a body with the world.
func (w *World) AddBody(b *Body) {
	w.bodies = append(w.bodies, b)
}

// RemoveBody removes the first entry matching b by identity; unknown
// bodies are ignored.
func (w *World) RemoveBody(b *Body) {
	for i, rb := range w.bodies {
		if rb == b {
			w.bodies = append(w.bodies[:i], w.bodies[i+1:]...)
			return
		}
	}
}

// Bodies returns the registered bodies in insertion order.
func (w *World) Bodies() []*Body {
	out := make([]*Body, len(w.bodies))
	copy(out, w.bodies)
	return out
}

// Step advances the simulation by dt seconds. Kinematic bodies pull their
// transform from their motion state; active dynamic bodies integrate
// semi-implicitly and push the result back. Force accumulators are
// cleared at the end of the step.
func (w *World) Step(dt float64) {
	for _, b := range w.bodies {
		if b.IsKinematic() {
			w.pullKinematic(b)
			continue
		}
		if b.invMass == 0 || !b.IsActive() {
			continue
		}
		w.integrate(b, dt)
		w.updateSleeping(b, dt)
		if ms := b.MotionState(); ms != nil {
			ms.PushTransform(b.world.Pos, b.world.Rot)
		}
	}
	for _, b := range w.bodies {
		b.ClearForces()
	}
}

func (w *World) pullKinematic(b *Body) {
	ms := b.MotionState()
	if ms == nil {
		return
	}
	pos, rot := ms.PullTransform()
	b.SetWorldTransform(Transform{Pos: pos, Rot: rot})
	b.SetInterpolationTransform(b.world)
}

func (w *World) integrate(b *Body, dt float64) {
	accel := b.gravity.Add(b.force.Mul(b.invMass))
	b.linearVelocity = mulElem(b.linearVelocity.Add(accel.Mul(dt)), b.linearFactor)
	b.angularVelocity = mulElem(b.angularVelocity.Add(b.invInertiaWorld.Mul3x1(b.torque).Mul(dt)), b.angularFactor)

	pos := b.world.Pos.Add(b.linearVelocity.Mul(dt))
	rot := integrateRotation(b.world.Rot, b.angularVelocity, dt)

	b.SetWorldTransform(Transform{Pos: pos, Rot: rot})
	b.SetInterpolationTransform(b.world)
}

// updateSleeping advances the deactivation timer and puts the body to
// sleep once it has rested long enough, or immediately when it asked to
// deactivate and its motion is below the thresholds.
func (w *World) updateSleeping(b *Body, dt float64) {
	resting := b.linearVelocity.Len() < LinearSleepThreshold &&
		b.angularVelocity.Len() < AngularSleepThreshold
	if !resting {
		if b.state == StateActive {
			b.deactivationTime = 0
		}
		return
	}
	b.deactivationTime += dt
	if b.state == StateWantsDeactivation || b.deactivationTime > DeactivationTime {
		b.sleep()
	}
}

// integrateRotation applies an angular velocity over dt:
// q' = normalize(q + dt/2 * (0, omega) * q).
func integrateRotation(q mgl64.Quat, omega mgl64.Vec3, dt float64) mgl64.Quat {
	wq := mgl64.Quat{W: 0, V: omega}
	dq := wq.Mul(q)
	q.W += dq.W * 0.5 * dt
	q.V = q.V.Add(dq.V.Mul(0.5 * dt))
	return q.Normalize()
}
