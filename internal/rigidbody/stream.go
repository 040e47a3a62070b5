package rigidbody

import "github.com/san-kum/bodysim/internal/stream"

// Serialize writes the persisted parameters in fixed order: mass,
// friction, rolling friction, restitution, use-gravity, gravity,
// kinematic, position lock, rotation lock, in-world. The order and
// encodings are the persistence format; do not reorder.
func (rb *Body) Serialize(w *stream.Writer) error {
	w.WriteFloat64(rb.mass)
	w.WriteFloat64(rb.friction)
	w.WriteFloat64(rb.rollingFriction)
	w.WriteFloat64(rb.restitution)
	w.WriteBool(rb.useGravity)
	w.WriteVec3(rb.gravity)
	w.WriteBool(rb.kinematic)
	w.WriteVec3(rb.positionLock)
	w.WriteVec3(rb.rotationLock)
	w.WriteBool(rb.inWorld)
	return w.Err()
}

// Deserialize reads the parameters written by Serialize, re-acquires the
// shape from the collider, and rebuilds the body in the world.
func (rb *Body) Deserialize(r *stream.Reader) error {
	rb.mass = r.Float64()
	rb.friction = r.Float64()
	rb.rollingFriction = r.Float64()
	rb.restitution = r.Float64()
	rb.useGravity = r.Bool()
	rb.gravity = r.Vec3()
	rb.kinematic = r.Bool()
	rb.positionLock = r.Vec3()
	rb.rotationLock = r.Vec3()
	rb.inWorld = r.Bool()
	if err := r.Err(); err != nil {
		return err
	}

	rb.acquireShape()
	rb.addToWorld()
	return nil
}
