package rigidbody

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/san-kum/bodysim/internal/physics"
)

// addToWorld is the only path that constructs a body. Rebuild is always
// destroy-then-recreate: the construction parameters are immutable once
// built, so a structural change can never mutate in place.
func (rb *Body) addToWorld() {
	if rb.mass < 0 {
		rb.mass = 0
	}

	var localInertia mgl64.Vec3
	if rb.shape != nil {
		localInertia = rb.shape.Inertia(rb.mass)
	}

	rb.release()

	rb.body = physics.NewBody(physics.ConstructionInfo{
		Mass:            rb.mass,
		Shape:           rb.shape,
		LocalInertia:    localInertia,
		Friction:        rb.friction,
		RollingFriction: rb.rollingFriction,
		Restitution:     rb.restitution,
		MotionState:     motionState{rb},
	})

	// Center of mass or geometry may have shifted; every attached
	// constraint recomputes its frames against the new body.
	for _, c := range rb.constraints {
		c.ApplyFrames()
	}

	rb.updateKinematic()
	rb.updateGravity()

	rb.SetPosition(rb.transform.Position(), true)
	rb.SetRotation(rb.transform.Rotation(), true)

	rb.applyPositionLock()
	rb.applyRotationLock()

	// A body without a shape stays out of the world registry: membership
	// requires an assigned shape.
	if rb.shape == nil {
		return
	}

	rb.world.AddBody(rb.body)

	if rb.mass > 0 {
		rb.Activate()
	} else {
		// Discard residual motion carried over from a prior dynamic
		// state.
		rb.SetLinearVelocity(mgl64.Vec3{}, true)
		rb.SetAngularVelocity(mgl64.Vec3{}, true)
	}

	rb.inWorld = true
}

// SetShape assigns a new collision shape. A nil shape removes the body
// from the world and drops the handle; a non-nil shape triggers a full
// rebuild.
func (rb *Body) SetShape(shape physics.Shape) {
	rb.shape = shape

	if rb.shape != nil {
		rb.addToWorld()
	} else {
		rb.removeFromWorld()
		rb.body = nil
	}
}

// Shape returns the assigned collision shape, nil when none is.
func (rb *Body) Shape() physics.Shape { return rb.shape }

// release tears the body down: constraints are notified first so nothing
// dangles, then the body leaves the world and the handle is dropped.
// Idempotent when no body exists. Registry entries survive release so the
// same constraints re-attach on the next rebuild.
func (rb *Body) release() {
	if rb.body == nil {
		return
	}

	for _, c := range rb.constraints {
		c.ReleaseConstraint()
	}

	rb.removeFromWorld()
	rb.body = nil
}

func (rb *Body) removeFromWorld() {
	if rb.body == nil {
		return
	}
	if rb.inWorld {
		rb.world.RemoveBody(rb.body)
		rb.inWorld = false
	}
}

// acquireShape queries the collider for the shape and center-of-mass
// offset. Called at initialization and again on deserialize.
func (rb *Body) acquireShape() {
	if rb.collider == nil {
		return
	}
	rb.shape = rb.collider.Shape()
	rb.centerOfMass = rb.collider.Center()
}
