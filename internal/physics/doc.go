// Package physics provides the simulated rigid-body layer that the
// rigidbody component binds to.
//
// The package defines the engine-level primitives:
//
//   - [Body]: a simulated rigid body, immutable in its construction
//     parameters (mass, shape, inertia) once built
//   - [Shape]: collision shape contract used for inertia computation
//   - [World]: body registry plus the per-tick integration step
//   - [MotionState]: the pull/push capability pair the stepping loop uses
//     to exchange transforms with the owning component
//   - [Constraint]: externally-owned joint contract
//
// # Ownership
//
// A Body is exclusively owned by whoever constructed it; adding it to a
// World grants membership, not ownership. Constraints are owned outside
// this package and referenced without ownership in both directions.
//
// # Thread Safety
//
// World and Body are NOT thread-safe. The simulation is stepped once per
// tick from a single goroutine.
package physics
