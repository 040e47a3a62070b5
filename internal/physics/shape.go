package physics

import "github.com/go-gl/mathgl/mgl64"

// Shape is a collision shape. The physics layer only needs it for inertia;
// geometry generation lives with the collider that produced it.
type Shape interface {
	// Inertia returns the local inertia diagonal for the given mass.
	// A zero mass yields zero inertia (static body).
	Inertia(mass float64) mgl64.Vec3
}

// Box is an axis-aligned box shape described by its half extents.
type Box struct {
	HalfExtents mgl64.Vec3
}

// NewBox returns a box shape with the given full extents.
func NewBox(width, height, depth float64) Box {
	return Box{HalfExtents: mgl64.Vec3{width / 2, height / 2, depth / 2}}
}

func (b Box) Inertia(mass float64) mgl64.Vec3 {
	if mass <= 0 {
		return mgl64.Vec3{}
	}
	lx := 2 * b.HalfExtents[0]
	ly := 2 * b.HalfExtents[1]
	lz := 2 * b.HalfExtents[2]
	k := mass / 12.0
	return mgl64.Vec3{
		k * (ly*ly + lz*lz),
		k * (lx*lx + lz*lz),
		k * (lx*lx + ly*ly),
	}
}

// Sphere is a solid sphere shape.
type Sphere struct {
	Radius float64
}

func (s Sphere) Inertia(mass float64) mgl64.Vec3 {
	if mass <= 0 {
		return mgl64.Vec3{}
	}
	i := 0.4 * mass * s.Radius * s.Radius
	return mgl64.Vec3{i, i, i}
}
