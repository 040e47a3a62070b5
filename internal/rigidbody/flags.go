package rigidbody

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/san-kum/bodysim/internal/physics"
)

// updateKinematic applies the kinematic flag to the constructed body.
// Kinematic bodies never sleep; everything else starts resting and is
// woken explicitly. The deactivation timer restarts either way.
func (rb *Body) updateKinematic() {
	flags := rb.body.CollisionFlags()

	if rb.kinematic {
		flags |= physics.FlagKinematicObject
	} else {
		flags &^= physics.FlagKinematicObject
	}

	rb.body.SetCollisionFlags(flags)
	if rb.kinematic {
		rb.body.ForceActivationState(physics.StateNeverSleep)
	} else {
		rb.body.ForceActivationState(physics.StateSleeping)
	}
	rb.body.SetDeactivationTime(0)
}

// updateGravity applies the per-body gravity override. With gravity
// enabled the body gets its own gravity vector, which may differ from the
// world's; disabled, it gets zero.
func (rb *Body) updateGravity() {
	flags := rb.body.Flags()

	if rb.useGravity {
		flags &^= physics.FlagDisableWorldGravity
	} else {
		flags |= physics.FlagDisableWorldGravity
	}

	rb.body.SetFlags(flags)

	if rb.useGravity {
		rb.body.SetGravity(rb.gravity)
	} else {
		rb.body.SetGravity(mgl64.Vec3{})
	}
}
