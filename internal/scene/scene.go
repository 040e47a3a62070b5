// Package scene provides minimal scene-graph collaborators for the
// rigidbody component: a transform and a collider. The component itself
// only depends on the interfaces it declares; these are the concrete
// implementations used by the CLI and tests.
package scene

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/san-kum/bodysim/internal/physics"
)

// Transform is a scene-space position and rotation.
type Transform struct {
	pos mgl64.Vec3
	rot mgl64.Quat
}

// NewTransform returns an identity transform.
func NewTransform() *Transform {
	return &Transform{rot: mgl64.QuatIdent()}
}

// NewTransformAt returns a transform at pos with no rotation.
func NewTransformAt(pos mgl64.Vec3) *Transform {
	return &Transform{pos: pos, rot: mgl64.QuatIdent()}
}

func (t *Transform) Position() mgl64.Vec3 { return t.pos }
func (t *Transform) Rotation() mgl64.Quat { return t.rot }

func (t *Transform) SetPosition(p mgl64.Vec3) { t.pos = p }
func (t *Transform) SetRotation(r mgl64.Quat) { t.rot = r }

// Collider owns a collision shape and its local center-of-mass offset.
type Collider struct {
	shape  physics.Shape
	center mgl64.Vec3
}

// NewCollider returns a collider for shape with the given center-of-mass
// offset.
func NewCollider(shape physics.Shape, center mgl64.Vec3) *Collider {
	return &Collider{shape: shape, center: center}
}

func (c *Collider) Shape() physics.Shape { return c.shape }
func (c *Collider) Center() mgl64.Vec3   { return c.center }
