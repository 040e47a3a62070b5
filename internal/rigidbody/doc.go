// Package rigidbody binds a scene transform to a simulated rigid body.
//
// [Body] owns the lifecycle of the underlying [physics.Body]: it
// translates between scene-space position/rotation and the body's
// center-of-mass-relative representation, rebuilds the body whenever a
// structural parameter changes (construction parameters are immutable
// once built), and keeps attached constraints consistent across rebuilds.
//
// # Structural vs cosmetic changes
//
// Mass, use-gravity, the gravity vector, and the kinematic flag are
// structural: changing one destroys and reconstructs the body, reapplying
// constraint frames, flags, transform, and locks in a fixed order.
// Friction, rolling friction, and restitution are cosmetic and mutate the
// existing body in place.
//
// # Error handling
//
// Operations that need a constructed body silently no-op when it is
// absent, and queries return defined defaults (zero vector, identity
// rotation). The only value correction is clamping: negative mass becomes
// zero.
package rigidbody
