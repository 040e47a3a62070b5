package rigidbody

import "github.com/san-kum/bodysim/internal/physics"

// AddConstraint registers a non-owning reference to an externally-owned
// constraint. Registered constraints get ApplyFrames on every rebuild and
// ReleaseConstraint on teardown.
func (rb *Body) AddConstraint(c physics.Constraint) {
	rb.constraints = append(rb.constraints, c)
}

// RemoveConstraint deletes the first entry matching c by object identity;
// an unregistered constraint is a no-op. The body is woken afterwards so
// the joint change takes effect.
func (rb *Body) RemoveConstraint(c physics.Constraint) {
	for i, rc := range rb.constraints {
		if rc.ObjectID() == c.ObjectID() {
			rb.constraints = append(rb.constraints[:i], rb.constraints[i+1:]...)
			break
		}
	}

	rb.Activate()
}

// Constraints returns the registered constraints in attachment order.
func (rb *Body) Constraints() []physics.Constraint {
	out := make([]physics.Constraint, len(rb.constraints))
	copy(out, rb.constraints)
	return out
}
