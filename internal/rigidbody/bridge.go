package rigidbody

import "github.com/go-gl/mathgl/mgl64"

// The transform bridge is the pure translation between scene space and
// the body's center-of-mass-relative world space. The body simulates
// about its center of mass; the scene transform sits at the shape origin.

// engineToPhysics maps a scene transform to a body world transform.
func engineToPhysics(pos mgl64.Vec3, rot mgl64.Quat, centerOfMass mgl64.Vec3) (mgl64.Vec3, mgl64.Quat) {
	return pos.Add(rot.Rotate(centerOfMass)), rot
}

// physicsToEngine maps a body world transform back to a scene transform.
func physicsToEngine(worldPos mgl64.Vec3, worldRot mgl64.Quat, centerOfMass mgl64.Vec3) (mgl64.Vec3, mgl64.Quat) {
	return worldPos.Sub(worldRot.Rotate(centerOfMass)), worldRot
}

// motionState is the body's view of the component: the stepping loop
// pulls the scene transform through it before integrating and pushes the
// result back after, once per active body per step.
type motionState struct {
	rb *Body
}

func (m motionState) PullTransform() (mgl64.Vec3, mgl64.Quat) {
	return engineToPhysics(m.rb.transform.Position(), m.rb.transform.Rotation(), m.rb.centerOfMass)
}

func (m motionState) PushTransform(pos mgl64.Vec3, rot mgl64.Quat) {
	enginePos, engineRot := physicsToEngine(pos, rot, m.rb.centerOfMass)
	m.rb.transform.SetPosition(enginePos)
	m.rb.transform.SetRotation(engineRot)
}
